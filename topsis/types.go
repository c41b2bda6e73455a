package topsis

import (
	"fmt"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// Impact is the direction of a criterion.
//
//   - Beneficial  — higher raw values are better ('+').
//   - Detrimental — lower raw values are better ('-').
//
// The zero value is invalid.
type Impact int8

const (
	// Beneficial marks a criterion where larger values are preferred.
	Beneficial Impact = iota + 1

	// Detrimental marks a criterion where smaller values are preferred.
	Detrimental
)

// Valid reports whether i is one of the two recognised directions.
func (i Impact) Valid() bool { return i == Beneficial || i == Detrimental }

// String renders the CLI symbol ('+' / '-').
func (i Impact) String() string {
	switch i {
	case Beneficial:
		return SymbolBeneficial
	case Detrimental:
		return SymbolDetrimental
	default:
		return fmt.Sprintf("Impact(%d)", int8(i))
	}
}

// Result bundles every intermediate of one Evaluate call.
//
// Fields:
//   - Weighted   — the n×m weighted normalised matrix v_ij.
//   - IdealBest  — best_j per criterion (length m).
//   - IdealWorst — worst_j per criterion (length m).
//   - DistBest   — d⁺_i per alternative (length n).
//   - DistWorst  — d⁻_i per alternative (length n).
//   - Scores     — closeness score per alternative (length n).
//   - Ranks      — 1-based rank per alternative (length n), see Rank.
type Result struct {
	Weighted   *matrix.Dense
	IdealBest  []float64
	IdealWorst []float64
	DistBest   []float64
	DistWorst  []float64
	Scores     []float64
	Ranks      []int
}

// Best returns the row index of the top-ranked alternative, or -1 for an empty result.
func (r *Result) Best() int {
	for i, rank := range r.Ranks {
		if rank == 1 {
			return i
		}
	}

	return -1
}
