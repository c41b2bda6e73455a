package topsis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// validateMatrix rejects nil/empty and non-finite criteria matrices and returns
// a private *Dense copy carrying the policy's numeric settings.
// The copy guarantees the caller's matrix is never touched by later stages.
func validateMatrix(m matrix.Matrix, o Options) (*matrix.Dense, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyMatrix, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("%w: %v", ErrNonFinite, err)
		}

		return nil, err
	}

	return matrix.ToDense(m, o.matrixPolicy())
}

// validateWeights checks length against the criteria count, then every value.
func validateWeights(weights []float64, cols int) error {
	if len(weights) != cols {
		return fmt.Errorf("%d weights for %d criteria: %w", len(weights), cols, ErrShapeMismatch)
	}
	for j, w := range weights {
		if err := validateWeight(w); err != nil {
			return fmt.Errorf("weight %d (%v): %w", j+1, w, err)
		}
	}

	return nil
}

// validateImpacts checks length against the criteria count, then every direction.
func validateImpacts(impacts []Impact, cols int) error {
	if len(impacts) != cols {
		return fmt.Errorf("%d impacts for %d criteria: %w", len(impacts), cols, ErrShapeMismatch)
	}
	for j, imp := range impacts {
		if !imp.Valid() {
			return fmt.Errorf("impact %d (%s): %w", j+1, imp, ErrInvalidDirection)
		}
	}

	return nil
}

// validateAll runs every check Score needs, in a fixed order, before any computation.
// Order: matrix → weights → impacts.
func validateAll(m matrix.Matrix, weights []float64, impacts []Impact, o Options) (*matrix.Dense, error) {
	d, err := validateMatrix(m, o)
	if err != nil {
		return nil, err
	}
	if err = validateWeights(weights, d.Cols()); err != nil {
		return nil, err
	}
	if err = validateImpacts(impacts, d.Cols()); err != nil {
		return nil, err
	}

	return d, nil
}
