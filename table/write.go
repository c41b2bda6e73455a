package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/lvtopsis/topsis"
)

// outputPerm matches what os.Create would give under a typical umask.
const outputPerm = 0o644

// WriteCSV writes the original header and raw records of t followed by the
// score and rank columns taken from res.
//
// NaN scores (permissive policy) are written as empty cells.
func WriteCSV(w io.Writer, t *Table, res *topsis.Result, opts WriteOptions) error {
	opts = opts.withDefaults()
	if len(res.Scores) != t.Rows() || len(res.Ranks) != t.Rows() {
		return fmt.Errorf("%d scores, %d ranks for %d records: %w", len(res.Scores), len(res.Ranks), t.Rows(), ErrResultMismatch)
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.Delimiter

	header := make([]string, 0, len(t.Header)+2)
	header = append(header, t.Header...)
	header = append(header, opts.ScoreColumn, opts.RankColumn)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	line := make([]string, len(t.Header)+2)
	for i, rec := range t.Records {
		copy(line, rec)
		line[len(rec)] = FormatScore(res.Scores[i], opts.Precision)
		line[len(rec)+1] = strconv.Itoa(res.Ranks[i])
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCSV writes the scored table to path atomically: the data goes to a
// temporary file in the same directory which is renamed over path on success.
func SaveCSV(path string, t *Table, res *topsis.Result, opts WriteOptions) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".topsis-*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(outputPerm); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err = WriteCSV(tmp, t, res, opts); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}

	return nil
}

// FormatScore renders a score with prec decimals, or the shortest round-trip
// form when prec is negative. NaN renders as an empty string.
func FormatScore(s float64, prec int) string {
	if math.IsNaN(s) {
		return ""
	}
	if prec < 0 {
		prec = -1
	}

	return strconv.FormatFloat(s, 'f', prec, 64)
}
