package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"partcatalog/internal/parse"
)

// xlsxSheet is the sheet name holding the record table.
const xlsxSheet = "Records"

// WriteXLSX writes the records to an XLSX workbook at the given path, same
// table as the CSV export. Zero records produce no file and ErrNoRecords.
func WriteXLSX(path string, records []parse.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	f, err := buildWorkbook(records)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// EncodeXLSX writes the workbook to w.
func EncodeXLSX(w io.Writer, records []parse.Record) error {
	f, err := buildWorkbook(records)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// buildWorkbook assembles the in-memory workbook: header row, then one row
// per record in discovery order.
func buildWorkbook(records []parse.Record) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := setRow(f, 1, parse.Header()); err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := setRow(f, i+2, rec.Row()); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// setRow writes one row of string cells starting at column A.
func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to set row %d: %w", row, err)
	}
	return nil
}
