// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - validateNaNInf controls whether Set() and ingestion reject NaN/±Inf.
//   - Kernels that write into the flat buffer directly (Dense fast-paths) do not
//     re-check the policy; they inherit it into their output so that later Set
//     calls behave like the source matrix.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-only ingestion (the default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf admits NaN and ±Inf in Set and ingestion.
// Use when NaN propagation is the documented contract of the caller.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ValidatesNaNInf reports the resolved numeric policy.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// NewMatrixOptions resolves user options over defaults.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user setters, in order, over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range user {
		if fn != nil { // nil setters are ignored
			fn(&o)
		}
	}

	return o
}
