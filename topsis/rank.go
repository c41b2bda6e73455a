package topsis

import (
	"math"
	"sort"
)

// Rank converts scores into 1-based ranks: the highest score gets rank 1.
//
// Behavior highlights:
//   - Stable: equal scores keep their input order (the earlier row ranks higher),
//     so ranks are always a permutation of 1..n.
//   - NaN scores rank after every comparable score, in input order.
//   - The scores slice is not modified.
//
// Complexity: O(n log n) time, O(n) space.
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := scores[order[a]], scores[order[b]]
		if math.IsNaN(sb) {
			return !math.IsNaN(sa)
		}

		return sa > sb
	})

	ranks := make([]int, len(scores))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}

	return ranks
}
