package mist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateExportPath checks an optional export path and returns the format
// its extension selects. A nil path is valid and yields an empty format.
//
// It has no side effects and is meant to run before any catalog is fetched.
func ValidateExportPath(path *string) (Format, error) {
	if path == nil {
		return "", nil
	}
	return exportFormat(*path)
}

func exportFormat(path string) (Format, error) {
	if path == "" {
		return "", ErrMissingExportPath
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidExportFileExtension, path)
	}
	return f, nil
}

// Export writes items to path in the format selected by its extension,
// creating missing parent directories. Filesystem errors are returned as is.
func Export[T Record](path string, items []T) error {
	f, err := exportFormat(path)
	if err != nil {
		return err
	}
	return writeExport(path, f, items)
}

func writeExport[T Record](path string, f Format, items []T) error {
	data, err := Marshal(f, items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
