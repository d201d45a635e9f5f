// Package sheet loads raw table rows from org, csv and xlsx files and
// writes frames out as spreadsheets.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gerunddev/orgbabel/orgtable"
)

// Load reads the table in path, choosing the reader by extension.
// For xlsx files sheetName picks the sheet; empty means the first one.
func Load(path, sheetName string) (*orgtable.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path, sheetName)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open org file: %w", err)
		}
		defer f.Close()
		return ReadOrg(f)
	}
}

// ReadOrg reads the first org table from r
func ReadOrg(r io.Reader) (*orgtable.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read org table: %w", err)
	}
	return orgtable.ParseOrg(string(data))
}

// ReadCSV reads comma separated rows from r
func ReadCSV(r io.Reader) (*orgtable.Source, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: CSV file is empty", orgtable.ErrStructure)
	}

	return &orgtable.Source{Rows: padRows(rows)}, nil
}

func loadXLSX(path, sheetName string) (*orgtable.Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", orgtable.ErrStructure)
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s is empty", orgtable.ErrStructure, sheetName)
	}

	return &orgtable.Source{Name: sheetName, Rows: padRows(rows)}, nil
}

// padRows fills rows shorter than the header with empty cells.
// Spreadsheets drop trailing empty cells; longer rows are left for FromRows to reject.
func padRows(rows [][]string) [][]string {
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}

// WriteXLSX writes the frame to a single-sheet workbook.
// Numbers are stored as numbers and dates as YYYY-MM-DD text.
func WriteXLSX(path string, frame *orgtable.Frame, includeIndex bool) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	columns := frame.Columns
	if includeIndex {
		columns = append([]*orgtable.Column{frame.Index}, frame.Columns...)
	}

	for c, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, col.Name); err != nil {
			return err
		}
	}

	for r := 0; r < frame.Len(); r++ {
		for c, col := range columns {
			value, ok := cellValue(col, r)
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// cellValue returns the typed value for one cell, or false for an empty cell
func cellValue(col *orgtable.Column, r int) (interface{}, bool) {
	switch col.Kind {
	case orgtable.Numeric:
		v := col.Numbers[r]
		if math.IsNaN(v) {
			return nil, false
		}
		return v, true
	case orgtable.Date:
		d := col.Dates[r]
		if !d.Valid {
			return nil, false
		}
		return d.Time.Format("2006-01-02"), true
	default:
		if col.Cells[r] == "" {
			return nil, false
		}
		return col.Cells[r], true
	}
}
