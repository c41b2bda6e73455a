package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// minColumns is the label column plus at least two criteria.
const minColumns = 3

// Table is a loaded decision table.
//
//   - Header   — column names as read, label column first.
//   - Records  — raw data cells, one slice per alternative, same width as Header.
//   - Criteria — numeric view of columns 1..len(Header)-1 (n × m).
type Table struct {
	Header   []string
	Records  [][]string
	Criteria *matrix.Dense
}

// Rows returns the number of alternatives.
func (t *Table) Rows() int { return len(t.Records) }

// CriteriaNames returns the header names of the numeric columns.
func (t *Table) CriteriaNames() []string { return t.Header[1:] }

// Labels returns the first cell of every record.
func (t *Table) Labels() []string {
	out := make([]string, len(t.Records))
	for i, rec := range t.Records {
		out[i] = rec[0]
	}

	return out
}

// Preview returns up to n leading records for display. The slices are shared.
func (t *Table) Preview(n int) [][]string {
	if n < 0 {
		n = 0
	}
	if n > len(t.Records) {
		n = len(t.Records)
	}

	return t.Records[:n]
}

// build validates the raw grid and converts the criteria block.
// rows are data records only; the header is passed separately.
//
// Checks, in order: column count, row count, record width, numeric cells.
// Row numbers in errors are 1-based data-row positions.
func build(header []string, rows [][]string) (*Table, error) {
	if len(header) < minColumns {
		return nil, fmt.Errorf("%d columns: %w", len(header), ErrTooFewColumns)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	cols := len(header)
	for i, rec := range rows {
		if len(rec) != cols {
			return nil, fmt.Errorf("row %d has %d fields, header has %d: %w", i+1, len(rec), cols, ErrRaggedRow)
		}
	}

	crit, err := matrix.NewDense(len(rows), cols-1)
	if err != nil {
		return nil, err
	}
	var v float64
	for i, rec := range rows {
		for j := 1; j < cols; j++ {
			v, err = strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d, column %q: value %q: %w", i+1, header[j], rec[j], ErrNonNumeric)
			}
			if err = crit.Set(i, j-1, v); err != nil {
				return nil, err
			}
		}
	}

	return &Table{Header: header, Records: rows, Criteria: crit}, nil
}
