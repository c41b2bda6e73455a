// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the kernels.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).

package matrix

import "fmt"

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ColumnNormsL2 returns norms where norms[j] = sqrt(Σ_i m[i,j]²).
// Complexity: O(rc).
//
// AI-Hints: a zero entry marks an all-zero column; check it before dividing.
func ColumnNormsL2(m Matrix) ([]float64, error) { return columnNormsL2(m) }

// NormalizeColumnsL2 returns Y with Y[i,j] = m[i,j] / norm_j and the norms used.
// Degenerate columns (norm==0) produce NaN entries; see impl_statistics.go.
// Complexity: O(rc).
func NormalizeColumnsL2(m Matrix) (Matrix, []float64, error) { return normalizeColumnsL2(m) }

// ColumnExtrema returns per-column minimum and maximum values.
// Complexity: O(rc).
func ColumnExtrema(m Matrix) (mins, maxs []float64, err error) { return columnExtrema(m) }

// ScaleColumns returns a copy of m with column j multiplied by scale[j].
// Complexity: O(rc).
//
// AI-Hints: this is the weighting step of TOPSIS-like pipelines.
func ScaleColumns(m Matrix, scale []float64) (Matrix, error) { return ewScaleCols(m, scale) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
