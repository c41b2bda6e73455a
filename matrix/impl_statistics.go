// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column-wise reductions and transforms used by ranking methods
//     (Euclidean column norms, vector normalisation, per-column extrema) as
//     deterministic kernels with Dense fast-paths.
//
// Exposed API (via api.go):
//   - ColumnNormsL2(X)      -> norms               // sqrt(Σ_i x_ij²) per column, scaled
//   - NormalizeColumnsL2(X) -> (Y, norms)          // y_ij = x_ij / norm_j
//   - ColumnExtrema(X)      -> (mins, maxs)        // per-column min and max
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - NormalizeColumnsL2 divides (x/norm) instead of multiplying by 1/norm so the
//     result is bit-identical to the textbook formula.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnNormsL2      = "ColumnNormsL2"
	opNormalizeColumnsL2 = "NormalizeColumnsL2"
	opColumnExtrema      = "ColumnExtrema"
)

// columnNormsL2 computes the Euclidean norm of every column without
// intermediate overflow or underflow.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: scale_j = max_i |x_ij| (NaN is sticky).
//   - Stage 3: Σ (x_ij / scale_j)² per column, every term in [0,1].
//   - Stage 4: norm_j = scale_j · sqrt(Σ).
//
// Behavior highlights:
//   - Columns near the float64 limits (1e-200, 1e200) get their true norm instead of
//     0 or +Inf; +Inf is returned only when the norm itself exceeds MaxFloat64.
//   - A zero entry marks a degenerate (all-zero) column.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c) (two passes), Space O(c).
func columnNormsL2(X Matrix) ([]float64, error) {
	// Stage 1 (Validate): ensure X is present and has elements.
	if err := ValidateNonEmpty(X); err != nil {
		return nil, matrixErrorf(opColumnNormsL2, err)
	}
	r, c := X.Rows(), X.Cols()

	d, isDense := X.(*Dense)
	at := func(i, j int) (float64, error) {
		if isDense {
			return d.data[i*c+j], nil
		}
		return X.At(i, j)
	}

	// Stage 2 (Scale): largest magnitude per column.
	scale := make([]float64, c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = at(i, j); err != nil {
				return nil, matrixErrorf(opColumnNormsL2, err)
			}
			v = math.Abs(v)
			if math.IsNaN(v) || v > scale[j] { // once NaN, v > NaN is false and NaN sticks
				scale[j] = v
			}
		}
	}

	// Stage 3 (Accumulate): scaled squares, skipping columns that are 0, NaN or Inf.
	norms := make([]float64, c)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !isFinitePositive(scale[j]) {
				continue
			}
			if v, err = at(i, j); err != nil {
				return nil, matrixErrorf(opColumnNormsL2, err)
			}
			v /= scale[j]
			norms[j] += v * v
		}
	}

	// Stage 4 (Finalize): undo the scaling; special scales pass through as the norm.
	for j = 0; j < c; j++ {
		if isFinitePositive(scale[j]) {
			norms[j] = scale[j] * math.Sqrt(norms[j])
		} else {
			norms[j] = scale[j]
		}
	}

	return norms, nil
}

// isFinitePositive reports 0 < v < +Inf (false for NaN).
func isFinitePositive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

// normalizeColumnsL2 divides every element by its column's Euclidean norm.
// Implementation:
//   - Stage 1: compute norms via columnNormsL2.
//   - Stage 2: allocate the output with the source's numeric policy.
//   - Stage 3: y_ij = x_ij / norm_j in a fixed i→j pass.
//
// Behavior highlights:
//   - Degenerate columns (norm==0) are divided through: 0/0 yields NaN. This kernel
//     does not guard; callers that need a hard failure inspect the returned norms
//     (or call ColumnNormsL2) first.
//   - Each non-degenerate output column has unit Euclidean norm.
//
// Returns:
//   - Matrix: normalised copy (r×c).
//   - []float64: the column norms used.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func normalizeColumnsL2(X Matrix) (Matrix, []float64, error) {
	norms, err := columnNormsL2(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}
	r, c := X.Rows(), X.Cols()

	policy := DefaultValidateNaNInf
	d, isDense := X.(*Dense)
	if isDense {
		policy = d.validateNaNInf // outputs inherit the source policy
	}
	out, err := newDenseWithPolicy(r, c, policy)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}

	var i, j int
	if isDense {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] / norms[j]
			}
		}

		return out, norms, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
			}
			out.data[i*c+j] = v / norms[j] // direct write: the fallback mirrors the fast path exactly
		}
	}

	return out, norms, nil
}

// columnExtrema returns the per-column minimum and maximum.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: seed mins/maxs from row 0, then scan rows 1..r-1.
//
// Behavior highlights:
//   - NaN is contagious: a column containing NaN reports NaN for both extrema,
//     so degeneracy propagates instead of being silently skipped.
//   - Every reported value is one of the column's own entries (no interpolation).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnExtrema(X Matrix) (mins, maxs []float64, err error) {
	if err = ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opColumnExtrema, err)
	}
	r, c := X.Rows(), X.Cols()
	mins = make([]float64, c)
	maxs = make([]float64, c)

	// at reads (i,j) via the fast path when possible.
	d, isDense := X.(*Dense)
	at := func(i, j int) (float64, error) {
		if isDense {
			return d.data[i*c+j], nil
		}
		return X.At(i, j)
	}

	var i, j int
	var v float64
	for j = 0; j < c; j++ { // seed from the first row
		if v, err = at(0, j); err != nil {
			return nil, nil, matrixErrorf(opColumnExtrema, err)
		}
		mins[j], maxs[j] = v, v
	}
	for i = 1; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = at(i, j); err != nil {
				return nil, nil, matrixErrorf(opColumnExtrema, err)
			}
			switch {
			case math.IsNaN(v) || math.IsNaN(mins[j]):
				mins[j], maxs[j] = math.NaN(), math.NaN()
			case v < mins[j]:
				mins[j] = v
			case v > maxs[j]:
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}
