// Package topsis ranks alternatives with TOPSIS (Technique for Order of
// Preference by Similarity to Ideal Solution).
//
// 🚀 What is TOPSIS?
//
//	Given n alternatives scored on m criteria, each criterion weighted and
//	tagged beneficial (+) or detrimental (−), TOPSIS picks an ideal-best and an
//	ideal-worst point from the data and scores every alternative by its
//	relative closeness to the best point:
//
//	  norm_j     = sqrt(Σ_i x_ij²)
//	  v_ij       = (x_ij / norm_j) · w_j
//	  best_j     = max_i v_ij  (+)   |  min_i v_ij  (−)
//	  worst_j    = min_i v_ij  (+)   |  max_i v_ij  (−)
//	  d⁺_i       = ‖v_i − best‖₂,  d⁻_i = ‖v_i − worst‖₂
//	  score_i    = d⁻_i / (d⁺_i + d⁻_i)   ∈ [0,1], higher is better
//
// ✨ Key features:
//   - pure, stateless scorer: no I/O, safe for concurrent callers
//   - inputs are never mutated; every stage allocates its own output
//   - explicit degeneracy policy: Strict (default) fails fast on an all-zero
//     column or a row equidistant-at-zero from both ideals; Permissive computes
//     through and surfaces NaN
//   - stable ranking (rank 1 = best, ties keep input order)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvtopsis/topsis"
//
//	impacts, _ := topsis.ParseImpacts("+,+,-")
//	scores, err := topsis.Score(m, []float64{0.5, 0.3, 0.2}, impacts)
//	ranks := topsis.Rank(scores)
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m) for the weighted matrix, O(n+m) for the vectors
//
// See examples in example_test.go.
package topsis
