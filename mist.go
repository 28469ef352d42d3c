package mist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingExportPath          = errors.New("missing export path")
	ErrInvalidExportFileExtension = errors.New("invalid export file extension")
	ErrInvalidData                = errors.New("invalid data")
	ErrUnsupportedFormat          = errors.New("unsupported format")
	ErrUnsupportedPlatform        = errors.New("unsupported platform")
	ErrInvalidDateFormat          = errors.New("invalid date format")
)

// Format represents an export file format. Its value is the file extension
// that selects it.
type Format string

const (
	CSV   Format = "csv"
	JSON  Format = "json"
	Plist Format = "plist"
	YAML  Format = "yaml"
)

var formats = []Format{CSV, JSON, Plist, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported export formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a file extension, without the leading dot. The match is
// case sensitive.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidExportFileExtension, s)
}

// Platform selects which catalog is listed.
type Platform string

const (
	// Apple lists firmware images for Apple silicon Macs.
	Apple Platform = "apple"
	// Intel lists installer products for Intel Macs.
	Intel Platform = "intel"
)

// String returns the platform name.
func (p Platform) String() string { return string(p) }

// ParsePlatform parses a platform selector.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case Apple, Intel:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, s)
	}
}

// Record is a catalog entry that can be rendered as a table row and exported.
// It is implemented by [Firmware] and [Product].
type Record interface {
	// Header returns the table column labels.
	Header() []string
	// Row returns the table cells, dates formatted with df.
	Row(df DateFormat) []string
	// CSVHeader returns the first line of a CSV export.
	CSVHeader() []string
	// CSVRow returns the CSV fields, in CSVHeader order.
	CSVRow() []string

	entry() any
	text() []string
}

// Encode writes items to w in format f. It fails with [ErrInvalidData],
// writing nothing, if a field of any item is not valid UTF-8.
func Encode[T Record](w io.Writer, f Format, items []T) error {
	if err := checkText(items); err != nil {
		return err
	}
	switch f {
	case CSV:
		return writeCSV(w, items)
	case JSON:
		return writeJSON(w, items)
	case Plist:
		return writePlist(w, items)
	case YAML:
		return writeYAML(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal encodes items in format f and returns the bytes.
func Marshal[T Record](f Format, items []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func entries[T Record](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item.entry()
	}
	return out
}

func checkText[T Record](items []T) error {
	for _, item := range items {
		for _, s := range item.text() {
			if !utf8.ValidString(s) {
				return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidData, s)
			}
		}
	}
	return nil
}
