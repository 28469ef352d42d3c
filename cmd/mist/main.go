package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/bjaus/mist"
	"github.com/bjaus/mist/catalog"
)

type ListCmd struct {
	Platform   string  `arg:"" help:"Platform to list: apple lists firmwares for Apple silicon Macs, intel lists installers for Intel Macs."`
	Export     *string `help:"Export the list to a file. The extension selects the format: csv, json, plist or yaml." placeholder:"PATH"`
	CatalogURL string  `help:"Software update catalog URL used to list installers." env:"MIST_CATALOG_URL" placeholder:"URL"`
	DateFormat string  `help:"strftime pattern for the date column." default:"${default_date_format}" env:"MIST_DATE_FORMAT"`
}

var cli struct {
	LogLevel string  `help:"Log level." default:"info" enum:"debug,info,warn,error" env:"MIST_LOG_LEVEL"`
	List     ListCmd `cmd:"" help:"List macOS firmwares or installers."`
}

func (c *ListCmd) Run(ctx context.Context, logger *slog.Logger) error {
	platform, err := mist.ParsePlatform(c.Platform)
	if err != nil {
		return err
	}
	df, err := mist.ParseDateFormat(c.DateFormat)
	if err != nil {
		return err
	}

	opts := mist.Options{
		ExportPath: c.Export,
		CatalogURL: c.CatalogURL,
		DateFormat: df,
		Logger:     logger,
	}

	client := catalog.NewClient()
	if platform == mist.Apple {
		provider := catalog.NewFirmwareProvider(client)
		provider.Logger = logger
		return mist.ListFirmwares(ctx, os.Stdout, provider, opts)
	}
	provider := catalog.NewProductProvider(client)
	provider.Logger = logger
	return mist.ListProducts(ctx, os.Stdout, provider, opts)
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("mist"),
		kong.Description("List and export macOS firmwares and installers."),
		kong.UsageOnError(),
		kong.Vars{"default_date_format": mist.DefaultDatePattern},
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		kctx.FatalIfErrorf(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	err := kctx.Run(logger)
	stop()
	kctx.FatalIfErrorf(err)
}
