package reaction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/turtacn/ReactionIQ/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Balancer
// ─────────────────────────────────────────────────────────────────────────────

// Balancer finds the smallest positive integer stoichiometric coefficients
// that conserve every element.  The coefficient vector is extracted from the
// numerical null space of the stoichiometric matrix via singular value
// decomposition, reconstructed as exact rationals with a bounded denominator,
// scaled to integers, and finally re-verified against the matrix.  The whole
// pipeline is formula-agnostic; robustness comes from the sign/scale
// normalisation and the verification step, not from per-reaction branching.
type Balancer struct {
	tolerance      float64
	maxDenominator int64
}

// BalancerOption configures a Balancer.
type BalancerOption func(*Balancer)

// WithTolerance sets the residual tolerance used during verification.
func WithTolerance(tol float64) BalancerOption {
	return func(b *Balancer) {
		if tol > 0 {
			b.tolerance = tol
		}
	}
}

// WithMaxDenominator bounds the denominators used during rational
// reconstruction.
func WithMaxDenominator(d int64) BalancerOption {
	return func(b *Balancer) {
		if d > 0 {
			b.maxDenominator = d
		}
	}
}

// NewBalancer returns a Balancer with the default tolerance (1e-6) and
// denominator bound (10000).
func NewBalancer(opts ...BalancerOption) *Balancer {
	b := &Balancer{
		tolerance:      DefaultTolerance,
		maxDenominator: defaultMaxDenominator,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Balance computes minimal integer coefficients for r and applies them in
// place, to the non-catalyst reactants first and then the products.  The
// applied coefficients are returned in that column order.  Catalyst
// coefficients are left untouched.
func (b *Balancer) Balance(r *Reaction) ([]int64, error) {
	m, err := NewMatrix(r)
	if err != nil {
		return nil, err
	}

	vec, err := b.nullVector(m)
	if err != nil {
		return nil, err
	}

	ints, err := rationalizeToIntegers(vec, b.maxDenominator)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeRationalizationFailed, "could not reduce null vector to integers")
	}

	coeffs := make([]float64, len(ints))
	for i, v := range ints {
		coeffs[i] = float64(v)
	}
	if err := b.verify(m, coeffs); err != nil {
		return nil, err
	}
	if err := r.setCoefficients(coeffs); err != nil {
		return nil, err
	}
	return ints, nil
}

// nullVector extracts the positive null-space direction of the matrix: the
// right singular vector of the smallest singular value, sign-flipped so the
// dominant entry is positive, scaled so the smallest positive entry is 1.
func (b *Balancer) nullVector(m *StoichiometricMatrix) ([]float64, error) {
	rows, cols := m.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(m.Dense(), mat.SVDFull); !ok {
		return nil, errors.New(errors.CodeDegenerateSystem, "singular value decomposition did not converge")
	}

	// A square or tall matrix only has a null space when its smallest
	// singular value collapses to zero.  A wide matrix always has one.
	if cols <= rows {
		values := svd.Values(nil)
		smallest := values[len(values)-1]
		largest := values[0]
		if largest > 0 && smallest > 1e-8*largest {
			return nil, errors.New(errors.CodeDegenerateSystem, "stoichiometric matrix has no null space; atoms cannot be conserved").
				WithDetail(fmt.Sprintf("smallest_singular_value=%g", smallest))
		}
	}

	var v mat.Dense
	svd.VTo(&v)
	vec := make([]float64, cols)
	for j := 0; j < cols; j++ {
		vec[j] = v.At(j, cols-1)
	}

	// Flip so the dominant entry is positive; a physical solution has one
	// consistent sign across all molecules.
	maxAbs, maxIdx := 0.0, 0
	for i, x := range vec {
		if a := math.Abs(x); a > maxAbs {
			maxAbs, maxIdx = a, i
		}
	}
	if maxAbs == 0 {
		return nil, errors.New(errors.CodeDegenerateSystem, "null vector is identically zero")
	}
	if vec[maxIdx] < 0 {
		for i := range vec {
			vec[i] = -vec[i]
		}
	}

	// Clamp numerical noise; a genuinely negative entry means the null
	// space requires consuming a product, i.e. the equation as written
	// cannot balance.
	const clamp = 1e-10
	minPos := math.Inf(1)
	for i, x := range vec {
		if x < -1e-8*maxAbs {
			return nil, errors.New(errors.CodeDegenerateSystem, "balancing would require a negative coefficient").
				WithDetail(fmt.Sprintf("molecule=%s", m.columns[i].Formula()))
		}
		if x < clamp {
			vec[i] = clamp
		}
		if vec[i] < minPos {
			minPos = vec[i]
		}
	}
	for i := range vec {
		vec[i] /= minPos
	}
	return vec, nil
}

// verify re-substitutes the integer coefficients into the matrix and checks
// every element's residual against the tolerance.
func (b *Balancer) verify(m *StoichiometricMatrix, coeffs []float64) error {
	for i, res := range m.residual(coeffs) {
		if math.Abs(res) > b.tolerance {
			return errors.New(errors.CodeVerificationFailed, "balanced coefficients do not conserve atoms").
				WithDetail(fmt.Sprintf("element=%s residual=%g", m.elements[i], res))
		}
	}
	return nil
}
