package topsis_test

import (
	"testing"

	"github.com/katalvlaran/lvtopsis/matrix"
	"github.com/stretchr/testify/require"
)

// epsScore bounds float drift between mathematically equal pipelines.
const epsScore = 1e-12

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows")

	return d
}

// phones is a small smartphone comparison: price, storage, camera, looks.
func phones(t *testing.T) *matrix.Dense {
	return mustDense(t, [][]float64{
		{250, 16, 12, 5},
		{200, 16, 8, 3},
		{300, 32, 16, 4},
		{275, 32, 8, 4},
		{225, 16, 16, 2},
	})
}

// hide wraps a Matrix to disable *Dense fast paths inside the pipeline.
type hide struct{ m matrix.Matrix }

func (h hide) Rows() int                     { return h.m.Rows() }
func (h hide) Cols() int                     { return h.m.Cols() }
func (h hide) At(i, j int) (float64, error)  { return h.m.At(i, j) }
func (h hide) Set(i, j int, v float64) error { return h.m.Set(i, j, v) }
func (h hide) Clone() matrix.Matrix          { return hide{h.m.Clone()} }
