package reaction

import (
	"fmt"
	"math"

	"github.com/turtacn/ReactionIQ/pkg/errors"
)

// defaultMaxDenominator bounds the denominator used when reconstructing exact
// rationals from floating-point coefficients.  Real stoichiometries stay far
// below this bound; hitting it signals numerical garbage, not chemistry.
const defaultMaxDenominator = 10000

// approximateRational returns the best rational approximation num/den of x
// with den ≤ maxDen, via the continued-fraction expansion of x.
func approximateRational(x float64, maxDen int64) (num, den int64, err error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, 0, errors.New(errors.CodeRationalizationFailed, "coefficient is not finite").
			WithDetail(fmt.Sprintf("value=%g", x))
	}
	neg := x < 0
	if neg {
		x = -x
	}

	var h0, h1 int64 = 0, 1
	var k0, k1 int64 = 1, 0
	b := x
	truncated := false
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(b))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDen || h2 < 0 || k2 < 0 {
			truncated = true
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac := b - float64(a)
		if frac < 1e-12 {
			break
		}
		if math.Abs(x-float64(h1)/float64(k1)) < 1e-12 {
			break
		}
		b = 1 / frac
	}
	if k1 == 0 {
		return 0, 0, errors.New(errors.CodeRationalizationFailed, "no rational approximation within denominator bound").
			WithDetail(fmt.Sprintf("value=%g maxDenominator=%d", x, maxDen))
	}
	// When the expansion was cut off by the bound, the final semiconvergent
	// (the largest a with a*k1+k0 <= maxDen) can beat the last full
	// convergent.
	if truncated {
		if a := (maxDen - k0) / k1; a > 0 {
			sh, sk := a*h1+h0, a*k1+k0
			if math.Abs(x-float64(sh)/float64(sk)) < math.Abs(x-float64(h1)/float64(k1)) {
				h1, k1 = sh, sk
			}
		}
	}
	if neg {
		h1 = -h1
	}
	return h1, k1, nil
}

// rationalizeToIntegers converts a positive float vector into the smallest
// proportional positive integer vector: each entry is approximated by a
// bounded-denominator rational, all entries are scaled by the least common
// denominator, and the result is reduced by its collective GCD.
func rationalizeToIntegers(values []float64, maxDen int64) ([]int64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	nums := make([]int64, len(values))
	dens := make([]int64, len(values))
	for i, v := range values {
		if v <= 0 {
			return nil, errors.New(errors.CodeRationalizationFailed, "coefficient must be positive").
				WithDetail(fmt.Sprintf("index=%d value=%g", i, v))
		}
		n, d, err := approximateRational(v, maxDen)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, errors.New(errors.CodeRationalizationFailed, "coefficient rounds to zero").
				WithDetail(fmt.Sprintf("index=%d value=%g", i, v))
		}
		nums[i], dens[i] = n, d
	}

	lcd := int64(1)
	for _, d := range dens {
		lcd = lcm(lcd, d)
		if lcd <= 0 {
			return nil, errors.New(errors.CodeRationalizationFailed, "least common denominator overflow")
		}
	}

	ints := make([]int64, len(values))
	g := int64(0)
	for i := range values {
		ints[i] = nums[i] * (lcd / dens[i])
		g = gcd(g, ints[i])
	}
	if g > 1 {
		for i := range ints {
			ints[i] /= g
		}
	}
	return ints, nil
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
