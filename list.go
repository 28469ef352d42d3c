package mist

import (
	"context"
	"io"
	"log/slog"
)

// FirmwareProvider retrieves firmware records.
type FirmwareProvider interface {
	// Firmwares returns the firmware catalog, in catalog order.
	Firmwares(ctx context.Context) ([]Firmware, error)
}

// ProductProvider retrieves installer product records.
type ProductProvider interface {
	// Products returns the products of the catalog at catalogURL. An empty
	// catalogURL selects the provider's default catalog.
	Products(ctx context.Context, catalogURL string) ([]Product, error)
}

// Options configures a listing run.
type Options struct {
	// ExportPath, when non-nil, is the file the records are exported to.
	ExportPath *string
	// CatalogURL overrides the product catalog. Unused for firmwares.
	CatalogURL string
	// DateFormat formats the table's date column.
	DateFormat DateFormat
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ListFirmwares validates the export path, fetches firmwares from p, exports
// them if requested and writes the table to w.
func ListFirmwares(ctx context.Context, w io.Writer, p FirmwareProvider, opts Options) error {
	return list(ctx, w, opts, "firmware", p.Firmwares)
}

// ListProducts validates the export path, fetches products from p, exports
// them if requested and writes the table to w.
func ListProducts(ctx context.Context, w io.Writer, p ProductProvider, opts Options) error {
	return list(ctx, w, opts, "product", func(ctx context.Context) ([]Product, error) {
		return p.Products(ctx, opts.CatalogURL)
	})
}

func list[T Record](ctx context.Context, w io.Writer, opts Options, kind string, fetch func(context.Context) ([]T, error)) error {
	logger := opts.logger().With("kind", kind)

	// The export path is checked before any network access.
	format, err := ValidateExportPath(opts.ExportPath)
	if err != nil {
		return err
	}

	logger.Debug("Fetching catalog")
	items, err := fetch(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Fetched catalog", "records", len(items))

	if opts.ExportPath != nil {
		if err := writeExport(*opts.ExportPath, format, items); err != nil {
			return err
		}
		logger.Info("Exported records", "path", *opts.ExportPath, "records", len(items))
	}

	if len(items) == 0 {
		logger.Info("No records found")
		return nil
	}
	_, err = io.WriteString(w, RenderTable(items, opts.DateFormat))
	return err
}
