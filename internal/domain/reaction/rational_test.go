package reaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/pkg/errors"
)

func TestApproximateRational(t *testing.T) {
	cases := []struct {
		in       float64
		num, den int64
	}{
		{0.5, 1, 2},
		{1.5, 3, 2},
		{2, 2, 1},
		{1.0 / 3.0, 1, 3},
		{2.0 / 7.0, 2, 7},
		{-0.25, -1, 4},
	}
	for _, tc := range cases {
		num, den, err := approximateRational(tc.in, defaultMaxDenominator)
		require.NoError(t, err)
		assert.Equal(t, tc.num, num, "%g", tc.in)
		assert.Equal(t, tc.den, den, "%g", tc.in)
	}
}

func TestApproximateRational_DenominatorBound(t *testing.T) {
	// π has no small exact form; the best approximation with den ≤ 100 is the
	// semiconvergent 311/99, not the convergent 22/7.
	num, den, err := approximateRational(math.Pi, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(311), num)
	assert.Equal(t, int64(99), den)
	assert.InDelta(t, math.Pi, float64(num)/float64(den), 2e-4)

	// A bound below the semiconvergent range falls back to the convergent.
	num, den, err = approximateRational(math.Pi, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(22), num)
	assert.Equal(t, int64(7), den)

	_, _, err = approximateRational(math.NaN(), 100)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeRationalizationFailed))

	_, _, err = approximateRational(math.Inf(1), 100)
	require.Error(t, err)
}

func TestRationalizeToIntegers(t *testing.T) {
	ints, err := rationalizeToIntegers([]float64{1, 2, 1, 2}, defaultMaxDenominator)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 1, 2}, ints)

	// Fractions scale up to the least common denominator.
	ints, err = rationalizeToIntegers([]float64{0.5, 0.5, 1}, defaultMaxDenominator)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 2}, ints)

	// A common factor reduces away.
	ints, err = rationalizeToIntegers([]float64{4, 6, 2}, defaultMaxDenominator)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, ints)

	// Mixed denominators: 2, 3/2, 1 -> 4, 3, 2.
	ints, err = rationalizeToIntegers([]float64{2, 1.5, 1}, defaultMaxDenominator)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3, 2}, ints)
}

func TestRationalizeToIntegers_Errors(t *testing.T) {
	_, err := rationalizeToIntegers([]float64{1, 0}, defaultMaxDenominator)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeRationalizationFailed))

	_, err = rationalizeToIntegers([]float64{1, -2}, defaultMaxDenominator)
	require.Error(t, err)

	ints, err := rationalizeToIntegers(nil, defaultMaxDenominator)
	require.NoError(t, err)
	assert.Nil(t, ints)
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, int64(6), gcd(12, 18))
	assert.Equal(t, int64(5), gcd(0, 5))
	assert.Equal(t, int64(4), gcd(-4, 8))
	assert.Equal(t, int64(36), lcm(12, 18))
	assert.Equal(t, int64(0), lcm(0, 7))
}
