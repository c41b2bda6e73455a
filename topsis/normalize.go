package topsis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// Normalize returns the weighted normalised matrix v_ij = (x_ij / norm_j) · w_j.
//
// Implementation:
//   - Stage 1: validate m (non-empty, finite) and weights (length m, finite, > 0).
//   - Stage 2: compute column norms; under Strict a zero norm fails with
//     ErrDegenerateColumn and an infinite one with ErrOverflow before any division.
//   - Stage 3: divide by the norms, then scale columns by the weights.
//
// Behavior highlights:
//   - The input is never mutated; the result is a fresh *Dense.
//   - Under Permissive a zero-norm column becomes all NaN.
//
// Complexity:
//   - Time O(n·m), Space O(n·m).
func Normalize(m matrix.Matrix, weights []float64, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	d, err := validateMatrix(m, o)
	if err != nil {
		return nil, err
	}
	if err = validateWeights(weights, d.Cols()); err != nil {
		return nil, err
	}

	return normalize(d, weights, o)
}

// normalize runs Stages 2-3 on pre-validated input.
func normalize(d *matrix.Dense, weights []float64, o Options) (*matrix.Dense, error) {
	if o.Policy == Strict {
		norms, err := matrix.ColumnNormsL2(d)
		if err != nil {
			return nil, err
		}
		for j, n := range norms {
			if n == 0 {
				return nil, fmt.Errorf("column %d: %w", j+1, ErrDegenerateColumn)
			}
			if math.IsInf(n, 0) {
				return nil, fmt.Errorf("column %d: %w", j+1, ErrOverflow)
			}
		}
	}

	unit, _, err := matrix.NormalizeColumnsL2(d)
	if err != nil {
		return nil, err
	}
	weighted, err := matrix.ScaleColumns(unit, weights)
	if err != nil {
		return nil, err
	}

	return weighted.(*matrix.Dense), nil
}
