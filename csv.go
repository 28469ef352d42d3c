package mist

import (
	"encoding/csv"
	"io"
)

func writeCSV[T Record](w io.Writer, items []T) error {
	var zero T
	cw := csv.NewWriter(w)
	if err := cw.Write(zero.CSVHeader()); err != nil {
		return err
	}
	for _, item := range items {
		if err := cw.Write(item.CSVRow()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
