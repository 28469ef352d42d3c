package mist

import (
	"encoding/json"
	"io"
)

func writeJSON[T Record](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(entries(items))
}
