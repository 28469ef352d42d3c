package mist

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML[T Record](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries(items)); err != nil {
		return err
	}
	return enc.Close()
}
