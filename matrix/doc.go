// Package matrix offers dense row-major storage and the column kernels used by
// the TOPSIS scorer.
//
// The matrix package provides:
//
//   - Dense: a flat-slice, row-major Matrix with bounds-checked At/Set and a
//     per-instance numeric policy (reject or admit NaN/±Inf).
//   - Column kernels: ColumnNormsL2, NormalizeColumnsL2, ColumnExtrema and
//     ScaleColumns, all deterministic and allocation-bounded.
//   - Validators: a single source of truth for nil/shape/finite checks.
//
// All public functions return sentinel errors (see errors.go) wrapped with a
// call-site tag; callers match them with errors.Is. Nothing here panics on
// user input.
//
// See the examples in this package and in topsis for usage patterns.
package matrix
