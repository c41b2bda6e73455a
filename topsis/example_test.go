package topsis_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopsis/matrix"
	"github.com/katalvlaran/lvtopsis/topsis"
)

// ExampleEvaluate ranks five phones on price (lower is better), storage,
// camera and looks.
func ExampleEvaluate() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{250, 16, 12, 5},
		{200, 16, 8, 3},
		{300, 32, 16, 4},
		{275, 32, 8, 4},
		{225, 16, 16, 2},
	})
	weights, _ := topsis.ParseWeights("1,1,1,1")
	impacts, _ := topsis.ParseImpacts("-,+,+,+")

	res, err := topsis.Evaluate(m, weights, impacts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, s := range res.Scores {
		fmt.Printf("phone %d: %.4f rank %d\n", i+1, s, res.Ranks[i])
	}
	// Output:
	// phone 1: 0.5343 rank 3
	// phone 2: 0.3084 rank 5
	// phone 3: 0.6916 rank 1
	// phone 4: 0.5347 rank 2
	// phone 5: 0.4010 rank 4
}

// ExampleRank shows stable tie handling.
func ExampleRank() {
	fmt.Println(topsis.Rank([]float64{0.4, 0.9, 0.4}))
	// Output: [2 1 3]
}
