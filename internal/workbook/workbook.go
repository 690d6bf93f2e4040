// Package workbook writes simple tabular worksheets to an Excel file.
//
// Each Sheet has an optional styled header row, data rows starting on row 2
// and per-column widths. The package knows nothing about skill sheets; the
// root package maps records to sheets.
package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without worksheets.
var ErrNoSheets = errors.New("workbook needs at least one sheet")

// defaultSheet is the worksheet excelize creates with a new file.
const defaultSheet = "Sheet1"

// Sheet is one worksheet.
// Widths apply to columns in order; columns past the end of Widths reuse the
// last width. A sheet without header and rows stays blank.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
	Widths []float64
}

// Style configures the header row. Colors are RRGGBB.
type Style struct {
	HeaderFontColor string
	HeaderFillColor string
}

// Build creates a workbook holding sheets in order. The default "Sheet1" is
// renamed to the first sheet so it never appears in the output.
// The caller must Close the returned file.
func Build(sheets []Sheet, style Style) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: style.HeaderFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{style.HeaderFillColor}, Pattern: 1},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	for i, sheet := range sheets {
		if err := addSheet(f, i == 0, sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
		if err := fillSheet(f, sheet, headerStyle); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}

	return f, nil
}

// Write builds the workbook and writes it to w.
func Write(w io.Writer, sheets []Sheet, style Style) error {
	f, err := Build(sheets, style)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Bytes builds the workbook and returns the encoded file.
func Bytes(sheets []Sheet, style Style) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, sheets, style); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, first bool, sheet Sheet) error {
	if first {
		return f.SetSheetName(defaultSheet, sheet.Name)
	}
	_, err := f.NewSheet(sheet.Name)
	return err
}

func fillSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	columns := len(sheet.Header)

	if columns > 0 {
		header := make([]any, columns)
		for i, h := range sheet.Header {
			header[i] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(columns, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.Name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
		columns = max(columns, len(row))
	}

	if len(sheet.Widths) == 0 {
		return nil
	}
	for col := 1; col <= columns; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		width := sheet.Widths[min(col, len(sheet.Widths))-1]
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
