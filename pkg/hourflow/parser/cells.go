package parser

import (
	"errors"
	"strings"

	"github.com/ukaji3/hourflow-go/pkg/hourflow/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptySheet indicates the sheet (or its print area) holds no cells.
var ErrEmptySheet = errors.New("sheet is empty")

// ReadOptions controls which part of a workbook becomes the table.
type ReadOptions struct {
	// Sheet is the sheet to read; empty means the first sheet.
	Sheet string
	// UsePrintArea restricts the table to the sheet's print area when one is defined.
	UsePrintArea bool
}

// ResolveSheet returns the sheet name ReadTable would read.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return "", ErrSheetNotFound
		}
		return list[0], nil
	}
	if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return "", ErrSheetNotFound
	}
	return name, nil
}

// ReadTable reads a sheet as a header row plus data rows.
// The header is the first row holding any value; columns keep sheet order.
func ReadTable(f *excelize.File, opts ReadOptions) (models.Table, error) {
	sheetName, err := ResolveSheet(f, opts.Sheet)
	if err != nil {
		return models.Table{}, err
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Table{}, err
	}

	colOffset := 0
	if opts.UsePrintArea {
		if area, ok := PrintArea(f, sheetName); ok {
			rows = area.clip(rows)
			colOffset = area.C1 - 1
		}
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Table{}, ErrEmptySheet
	}

	width := maxCol - minCol + 1
	header := sliceRow(rows[minRow], minCol, width)
	columns := make([]string, width)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			// Unnamed header cells are addressed by their column letter.
			name, _ = excelize.ColumnNumberToName(colOffset + minCol + i + 1)
		}
		columns[i] = name
	}

	table := models.Table{Columns: columns}
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		table.Rows = append(table.Rows, sliceRow(rows[rowIdx], minCol, width))
	}

	return table, nil
}

// sliceRow returns width cells of row starting at col, padding short rows with "".
func sliceRow(row []string, col, width int) []string {
	out := make([]string, width)
	for i := 0; i < width; i++ {
		if col+i < len(row) {
			out[i] = row[col+i]
		}
	}
	return out
}
