package topsis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// Score computes the TOPSIS closeness score of every alternative (row of m).
//
// Implementation:
//   - Stage 1: validate the matrix, weights and impacts; nothing is computed on failure.
//   - Stage 2: weighted = Normalize(m, weights).
//   - Stage 3: (best, worst) = IdealSolutions(weighted, impacts).
//   - Stage 4: d⁺_i, d⁻_i as Euclidean distances; score_i = d⁻_i / (d⁺_i + d⁻_i).
//     Norms and distances are scaled by their largest term, so inputs near the
//     float64 limits (weights of 1e300, columns of 1e-200) still score correctly.
//
// Returns:
//   - []float64 of length n; every entry is in [0,1] under Strict.
//
// Errors:
//   - ErrEmptyMatrix, ErrNonFinite, ErrShapeMismatch, ErrInvalidWeight,
//     ErrInvalidDirection (validation, always).
//   - ErrDegenerateColumn, ErrDegenerateRow, ErrOverflow (Strict only).
//
// Complexity:
//   - Time O(n·m), Space O(n·m).
//
// AI-Hints:
//   - Scores are invariant under scaling all weights by the same positive factor.
//   - Use Evaluate when the distances or ideal points are needed for reporting.
func Score(m matrix.Matrix, weights []float64, impacts []Impact, opts ...Option) ([]float64, error) {
	res, err := Evaluate(m, weights, impacts, opts...)
	if err != nil {
		return nil, err
	}

	return res.Scores, nil
}

// Evaluate runs the full pipeline and returns every intermediate plus the ranks.
// Same validation, policy and complexity as Score.
func Evaluate(m matrix.Matrix, weights []float64, impacts []Impact, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate everything up front.
	d, err := validateAll(m, weights, impacts, o)
	if err != nil {
		return nil, err
	}

	// Stage 2: weighted normalised matrix.
	weighted, err := normalize(d, weights, o)
	if err != nil {
		return nil, err
	}

	// Stage 3: ideal points.
	best, worst, err := idealSolutions(weighted, impacts)
	if err != nil {
		return nil, err
	}

	// Stage 4: separations and closeness.
	n := weighted.Rows()
	res := &Result{
		Weighted:   weighted,
		IdealBest:  best,
		IdealWorst: worst,
		DistBest:   make([]float64, n),
		DistWorst:  make([]float64, n),
		Scores:     make([]float64, n),
	}
	var row []float64
	for i := 0; i < n; i++ {
		if row, err = weighted.Row(i); err != nil {
			return nil, err
		}
		dp, dm := distance(row, best), distance(row, worst)
		score := closeness(dp, dm)
		if o.Policy == Strict {
			if dp == 0 && dm == 0 {
				return nil, fmt.Errorf("row %d: %w", i+1, ErrDegenerateRow)
			}
			if !isFinite(dp) || !isFinite(dm) || !isFinite(score) {
				return nil, fmt.Errorf("row %d: %w", i+1, ErrOverflow)
			}
		}
		res.DistBest[i], res.DistWorst[i] = dp, dm
		res.Scores[i] = score
	}
	res.Ranks = Rank(res.Scores)

	return res, nil
}

// distance is the Euclidean distance between equal-length vectors, scaled by
// the largest |a_j - b_j| so that squaring neither overflows nor underflows.
// A NaN difference yields NaN; an infinite one yields +Inf.
func distance(a, b []float64) float64 {
	var scale, diff float64
	for j := range a {
		diff = math.Abs(a[j] - b[j])
		if math.IsNaN(diff) {
			return diff
		}
		if diff > scale {
			scale = diff
		}
	}
	if scale == 0 || math.IsInf(scale, 1) {
		return scale
	}

	var s float64
	for j := range a {
		diff = (a[j] - b[j]) / scale
		s += diff * diff
	}

	return scale * math.Sqrt(s)
}

// closeness is d⁻ / (d⁺ + d⁻) with both distances divided by the larger one
// first, so the sum cannot overflow. Two zero distances give NaN.
func closeness(dp, dm float64) float64 {
	m := math.Max(dp, dm)
	if m == 0 || math.IsInf(m, 1) || math.IsNaN(m) {
		return dm / (dp + dm)
	}
	dp, dm = dp/m, dm/m

	return dm / (dp + dm)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
