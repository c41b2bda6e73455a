package table

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one worksheet of an Excel workbook.
// The first sheet is used unless opts.Sheet names another one. Cells are read
// as stored (no number formatting), so "0.1" stays "0.1" whatever the cell style.
//
// Excel trims trailing empty cells, so short records are padded to the header
// width; fully empty rows are skipped like blank CSV lines.
func LoadXLSX(path string, opts ReadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no worksheets: %w", path, ErrNoRows)
	}
	sheet := opts.Sheet
	if sheet == "" {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("%s: %q: %w", path, sheet, ErrSheetNotFound)
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: read sheet %q: %w", path, sheet, err)
	}

	grid = dropEmpty(grid)
	if len(grid) == 0 {
		return nil, fmt.Errorf("%s: missing header: %w", path, ErrNoRows)
	}
	header := grid[0]
	rows := grid[1:]
	for i, rec := range rows {
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rows[i] = padded
		}
	}

	t, err := build(header, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// dropEmpty removes rows whose cells are all empty.
func dropEmpty(grid [][]string) [][]string {
	out := grid[:0]
	for _, row := range grid {
		for _, cell := range row {
			if cell != "" {
				out = append(out, row)
				break
			}
		}
	}

	return out
}
