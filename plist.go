package mist

import (
	"io"

	"howett.net/plist"
)

func writePlist[T Record](w io.Writer, items []T) error {
	data, err := plist.MarshalIndent(entries(items), plist.XMLFormat, "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
