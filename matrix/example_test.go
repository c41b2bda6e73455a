package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// ExampleNormalizeColumnsL2 shows vector normalisation followed by column weighting,
// the first two stages of a TOPSIS pipeline.
func ExampleNormalizeColumnsL2() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{3, 1},
		{4, 0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	y, norms, _ := matrix.NormalizeColumnsL2(m)
	w, _ := matrix.ScaleColumns(y, []float64{10, 1})
	fmt.Println("norms:", norms)
	fmt.Print(w)
	// Output:
	// norms: [5 1]
	// [6, 1]
	// [8, 0]
}

// ExampleColumnExtrema shows per-column minimum and maximum.
func ExampleColumnExtrema() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 9},
		{5, 2},
		{3, 4},
	})
	mins, maxs, _ := matrix.ColumnExtrema(m)
	fmt.Println(mins, maxs)
	// Output:
	// [1 2] [5 9]
}
