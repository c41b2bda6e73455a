package topsis

import (
	"fmt"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// IdealSolutions picks the ideal-best and ideal-worst value of every column.
//
//	Beneficial  → best = max, worst = min
//	Detrimental → best = min, worst = max
//
// Every returned value is an entry of its own column. NaN in a column (Permissive
// policy only) makes both ideals of that column NaN.
//
// Errors: ErrEmptyMatrix, ErrShapeMismatch, ErrInvalidDirection.
// Complexity: O(n·m) time, O(m) space.
func IdealSolutions(weighted matrix.Matrix, impacts []Impact) (best, worst []float64, err error) {
	if err = matrix.ValidateNonEmpty(weighted); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEmptyMatrix, err)
	}
	if err = validateImpacts(impacts, weighted.Cols()); err != nil {
		return nil, nil, err
	}

	return idealSolutions(weighted, impacts)
}

// idealSolutions assumes impacts were validated against weighted.
func idealSolutions(weighted matrix.Matrix, impacts []Impact) (best, worst []float64, err error) {
	mins, maxs, err := matrix.ColumnExtrema(weighted)
	if err != nil {
		return nil, nil, err
	}

	// reuse the extrema buffers: each column either keeps or swaps its pair
	best, worst = maxs, mins
	for j, imp := range impacts {
		if imp == Detrimental {
			best[j], worst[j] = worst[j], best[j]
		}
	}

	return best, worst, nil
}
