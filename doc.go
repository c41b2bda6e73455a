// Package lvtopsis is an in-memory toolkit for ranking alternatives with
// TOPSIS (Technique for Order of Preference by Similarity to Ideal Solution).
//
// 🚀 What is lvtopsis?
//
//	A small, deterministic library plus a command-line tool that brings together:
//		• Dense storage: row-major float64 matrices with bounds-checked access
//		• Column kernels: Euclidean (L2) norms, vector normalisation, extrema
//		• Scoring: weighting, ideal-best / ideal-worst points, closeness scores
//		• Ranking: stable descending ranks (rank 1 = best)
//		• I/O glue: CSV / XLSX loading and annotated CSV output
//
// ✨ Why choose lvtopsis?
//
//   - Pure scorer – no I/O, no shared state, safe for concurrent callers
//   - Explicit failure modes – degenerate columns/rows are reported, not hidden
//   - Deterministic – fixed loop orders, identical inputs give identical scores
//
// Under the hood, everything is organized under these packages:
//
//	matrix/         — Dense storage, validators and column kernels
//	topsis/         — the scorer: Normalize, IdealSolutions, Score, Evaluate, Rank
//	table/          — typed table loading (CSV, XLSX) and result writing
//	config/         — YAML configuration and flag binding
//	internal/app/   — one CLI run: load, score, save, with progress logging
//	internal/logging/ — zerolog console/JSON logger construction
//	cmd/topsis/     — the CLI: topsis <input> <weights> <impacts> <output>
//	examples/       — runnable scenario programs
//
// Quick example:
//
//	scores, err := topsis.Score(m, []float64{1, 1, 1, 1}, topsis.MustParseImpacts("-,+,+,+"))
//
//	go get github.com/katalvlaran/lvtopsis
package lvtopsis
