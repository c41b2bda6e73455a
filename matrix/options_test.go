// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvtopsis/matrix"
)

// 1) TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	if o.ValidatesNaNInf() != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidatesNaNInf(), matrix.DefaultValidateNaNInf)
	}
}

// 2) TestOptions_LastWins verifies setters apply in order and nil setters are ignored.
func TestOptions_LastWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	if !o.ValidatesNaNInf() {
		t.Fatalf("expected WithValidateNaNInf to win")
	}
	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	if o.ValidatesNaNInf() {
		t.Fatalf("expected WithNoValidateNaNInf to win")
	}
}

// 3) TestOptions_PolicyReachesDense verifies Set honours the per-instance policy.
func TestOptions_PolicyReachesDense(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err = strict.Set(0, 0, math.NaN()); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("strict Set(NaN): got %v, want ErrNaNInf", err)
	}

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if err = loose.Set(0, 0, math.Inf(-1)); err != nil {
		t.Fatalf("permissive Set(-Inf): unexpected error %v", err)
	}
	if loose.ValidatesNaNInf() {
		t.Fatalf("permissive Dense reports strict policy")
	}
}

// 4) TestOptions_PolicyInherited verifies kernels propagate the source policy.
func TestOptions_PolicyInherited(t *testing.T) {
	src, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithNoValidateNaNInf())
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}
	out, err := matrix.ScaleColumns(src, []float64{2, 2})
	if err != nil {
		t.Fatalf("ScaleColumns: %v", err)
	}
	if err = out.Set(0, 0, math.NaN()); err != nil {
		t.Fatalf("scaled output should inherit the permissive policy: %v", err)
	}
}
