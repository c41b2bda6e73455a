package topsis

import "errors"

// Sentinel errors. Every message is prefixed with "topsis:"; call sites wrap
// them with context via fmt.Errorf("...: %w", ErrX) and callers match with errors.Is.
//
// Validation errors (shape, direction, weight, empty, non-finite) are raised
// before any computation. Degeneracy errors are raised only under the Strict policy.
var (
	// ErrEmptyMatrix indicates a nil matrix or one without rows or columns.
	ErrEmptyMatrix = errors.New("topsis: criteria matrix is empty")

	// ErrShapeMismatch indicates len(weights) or len(impacts) differs from the criteria count.
	ErrShapeMismatch = errors.New("topsis: weights/impacts length does not match criteria count")

	// ErrInvalidDirection indicates an impact outside {Beneficial, Detrimental},
	// or a symbol other than '+' / '-'.
	ErrInvalidDirection = errors.New("topsis: impact must be '+' or '-'")

	// ErrInvalidWeight indicates a weight that is NaN, ±Inf, not positive or unparsable.
	ErrInvalidWeight = errors.New("topsis: weight must be a finite positive number")

	// ErrNonFinite indicates a NaN or ±Inf cell in the criteria matrix.
	ErrNonFinite = errors.New("topsis: criteria matrix contains NaN or Inf")

	// ErrDegenerateColumn indicates a criterion column with zero Euclidean norm.
	ErrDegenerateColumn = errors.New("topsis: criterion column has zero Euclidean norm")

	// ErrDegenerateRow indicates an alternative whose distances to both ideal points are zero.
	ErrDegenerateRow = errors.New("topsis: alternative coincides with both ideal points")

	// ErrOverflow indicates a column norm, distance or score that is not finite
	// even after scaling, i.e. the true value exceeds the float64 range.
	ErrOverflow = errors.New("topsis: intermediate value overflows float64")
)
