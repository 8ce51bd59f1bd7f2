// Package export writes classified part records to tabular files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"partcatalog/internal/parse"
)

// ErrNoRecords is returned when there is nothing to write. An empty
// extraction produces no output file rather than a header-only one.
var ErrNoRecords = errors.New("no records to export")

// WriteCSV writes the records to a CSV file at the given path, with the fixed
// twelve-column header. Zero records produce no file and ErrNoRecords.
func WriteCSV(path string, records []parse.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := EncodeCSV(f, records); err != nil {
		return err
	}
	return f.Close()
}

// EncodeCSV writes the header row and one row per record to w. Field quoting
// and escaping follow standard CSV conventions.
func EncodeCSV(w io.Writer, records []parse.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(parse.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.SerialNumber, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
