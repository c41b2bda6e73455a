package topsis_test

import (
	"testing"

	"github.com/katalvlaran/lvtopsis/topsis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImpact(t *testing.T) {
	imp, err := topsis.ParseImpact("+")
	require.NoError(t, err)
	assert.Equal(t, topsis.Beneficial, imp)

	imp, err = topsis.ParseImpact(" - ")
	require.NoError(t, err)
	assert.Equal(t, topsis.Detrimental, imp)

	for _, bad := range []string{"0", "", "++", "plus", "*"} {
		_, err = topsis.ParseImpact(bad)
		assert.ErrorIs(t, err, topsis.ErrInvalidDirection, "symbol %q", bad)
	}
}

func TestParseImpacts(t *testing.T) {
	imps, err := topsis.ParseImpacts("+, -,+")
	require.NoError(t, err)
	assert.Equal(t, []topsis.Impact{topsis.Beneficial, topsis.Detrimental, topsis.Beneficial}, imps)

	imps, err = topsis.ParseImpacts("+,0,-")
	assert.ErrorIs(t, err, topsis.ErrInvalidDirection)
	assert.Contains(t, err.Error(), "impact 2")
	assert.Nil(t, imps)

	assert.Panics(t, func() { topsis.MustParseImpacts("+,,-") })
}

func TestParseWeights(t *testing.T) {
	w, err := topsis.ParseWeights("1, 0.5,2e0")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 2}, w)

	for _, bad := range []string{"1,a", "1,,2", "0,1", "-1", "NaN", "Inf,1"} {
		_, err = topsis.ParseWeights(bad)
		assert.ErrorIs(t, err, topsis.ErrInvalidWeight, "weights %q", bad)
	}
}

func TestImpact_String(t *testing.T) {
	assert.Equal(t, "+", topsis.Beneficial.String())
	assert.Equal(t, "-", topsis.Detrimental.String())
	assert.Equal(t, "Impact(0)", topsis.Impact(0).String())
	assert.False(t, topsis.Impact(0).Valid())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "strict", topsis.Strict.String())
	assert.Equal(t, "permissive", topsis.Permissive.String())
	assert.Equal(t, topsis.Strict, topsis.DefaultOptions().Policy)
}
