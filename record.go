package mist

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DefaultDatePattern is the strftime pattern used when none is configured.
const DefaultDatePattern = "%Y-%m-%d"

// exportDateLayout is the date layout used by every export format.
const exportDateLayout = "2006-01-02"

// DateFormat formats record dates for the table. The zero value formats
// dates as YYYY-MM-DD.
type DateFormat struct {
	f *strftime.Strftime
}

// ParseDateFormat compiles a strftime pattern such as "%d/%m/%Y".
func ParseDateFormat(pattern string) (DateFormat, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return DateFormat{}, fmt.Errorf("%w: %q: %w", ErrInvalidDateFormat, pattern, err)
	}
	return DateFormat{f: f}, nil
}

// Format formats t.
func (d DateFormat) Format(t time.Time) string {
	if d.f == nil {
		return t.Format(exportDateLayout)
	}
	return d.f.FormatString(t)
}

// Firmware is a macOS firmware image (IPSW) for Apple silicon Macs.
type Firmware struct {
	Signed   bool
	Name     string
	Version  string
	Build    string
	Date     time.Time
	URL      string
	Checksum string
}

// Header implements [Record].
func (Firmware) Header() []string {
	return []string{"SIGNED", "NAME", "VERSION", "BUILD", "DATE"}
}

// Row implements [Record].
func (f Firmware) Row(df DateFormat) []string {
	return []string{f.SignedDescription(), f.Name, f.Version, f.Build, df.Format(f.Date)}
}

// CSVHeader implements [Record].
func (Firmware) CSVHeader() []string {
	return []string{"Signed", "Name", "Version", "Build", "Date"}
}

// CSVRow implements [Record].
func (f Firmware) CSVRow() []string {
	return []string{strconv.FormatBool(f.Signed), f.Name, f.Version, f.Build, f.Date.Format(exportDateLayout)}
}

// SignedDescription returns "True" or "False".
func (f Firmware) SignedDescription() string {
	if f.Signed {
		return "True"
	}
	return "False"
}

func (f Firmware) entry() any {
	return firmwareEntry{
		Signed:   f.Signed,
		Name:     f.Name,
		Version:  f.Version,
		Build:    f.Build,
		Date:     f.Date.Format(exportDateLayout),
		URL:      f.URL,
		Checksum: f.Checksum,
	}
}

func (f Firmware) text() []string {
	return []string{f.Name, f.Version, f.Build, f.URL, f.Checksum}
}

type firmwareEntry struct {
	Signed   bool   `json:"signed" yaml:"signed" plist:"signed"`
	Name     string `json:"name" yaml:"name" plist:"name"`
	Version  string `json:"version" yaml:"version" plist:"version"`
	Build    string `json:"build" yaml:"build" plist:"build"`
	Date     string `json:"date" yaml:"date" plist:"date"`
	URL      string `json:"url" yaml:"url" plist:"url"`
	Checksum string `json:"checksum" yaml:"checksum" plist:"checksum"`
}

// Product is a macOS installer product from a software update catalog.
type Product struct {
	Identifier   string
	Name         string
	Version      string
	Build        string
	Date         time.Time
	Distribution string
}

// Header implements [Record].
func (Product) Header() []string {
	return []string{"IDENTIFIER", "NAME", "VERSION", "BUILD", "DATE"}
}

// Row implements [Record].
func (p Product) Row(df DateFormat) []string {
	return []string{p.Identifier, p.Name, p.Version, p.Build, df.Format(p.Date)}
}

// CSVHeader implements [Record].
func (Product) CSVHeader() []string {
	return []string{"Identifier", "Name", "Version", "Build", "Date"}
}

// CSVRow implements [Record].
func (p Product) CSVRow() []string {
	return []string{p.Identifier, p.Name, p.Version, p.Build, p.Date.Format(exportDateLayout)}
}

func (p Product) entry() any {
	return productEntry{
		Identifier:   p.Identifier,
		Name:         p.Name,
		Version:      p.Version,
		Build:        p.Build,
		Date:         p.Date.Format(exportDateLayout),
		Distribution: p.Distribution,
	}
}

func (p Product) text() []string {
	return []string{p.Identifier, p.Name, p.Version, p.Build, p.Distribution}
}

type productEntry struct {
	Identifier   string `json:"identifier" yaml:"identifier" plist:"identifier"`
	Name         string `json:"name" yaml:"name" plist:"name"`
	Version      string `json:"version" yaml:"version" plist:"version"`
	Build        string `json:"build" yaml:"build" plist:"build"`
	Date         string `json:"date" yaml:"date" plist:"date"`
	Distribution string `json:"distribution" yaml:"distribution" plist:"distribution"`
}
