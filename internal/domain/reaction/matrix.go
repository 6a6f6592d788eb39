package reaction

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/turtacn/ReactionIQ/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Stoichiometric matrix
// ─────────────────────────────────────────────────────────────────────────────

// StoichiometricMatrix is the signed element×molecule count matrix of a
// reaction: rows are elements in sorted order, columns are the non-catalyst
// reactants followed by the products, entries are +count for reactant columns
// and −count for product columns.  Any coefficient vector in its null space
// conserves every element.
type StoichiometricMatrix struct {
	elements      []string
	columns       []*Component
	reactantCount int
	dense         *mat.Dense
}

// NewMatrix builds the stoichiometric matrix for r.  It fails when either
// side is empty or when the two sides do not use the same element set, since
// atom conservation is then impossible.
func NewMatrix(r *Reaction) (*StoichiometricMatrix, error) {
	reactants := r.NonCatalystReactants()
	products := r.Products()
	if len(reactants) == 0 {
		return nil, errors.New(errors.CodeMissingReactants, "reaction has no non-catalyst reactants")
	}
	if len(products) == 0 {
		return nil, errors.New(errors.CodeMissingProducts, "reaction has no products")
	}

	reactantSet := sideElements(reactants)
	productSet := sideElements(products)
	if extra := setDifference(productSet, reactantSet); len(extra) > 0 {
		return nil, errors.New(errors.CodeElementSetMismatch, "products introduce elements absent from reactants").
			WithDetail("elements=" + strings.Join(extra, ","))
	}
	if extra := setDifference(reactantSet, productSet); len(extra) > 0 {
		return nil, errors.New(errors.CodeElementSetMismatch, "reactant elements missing from products").
			WithDetail("elements=" + strings.Join(extra, ","))
	}

	elements := make([]string, 0, len(reactantSet))
	for sym := range reactantSet {
		elements = append(elements, sym)
	}
	sort.Strings(elements)

	columns := append(reactants, products...)
	dense := mat.NewDense(len(elements), len(columns), nil)
	for i, sym := range elements {
		for j, c := range columns {
			count := c.Composition().Count(sym)
			if j >= len(reactants) {
				count = -count
			}
			dense.Set(i, j, count)
		}
	}
	return &StoichiometricMatrix{
		elements:      elements,
		columns:       columns,
		reactantCount: len(reactants),
		dense:         dense,
	}, nil
}

// Elements returns the row labels in order.
func (m *StoichiometricMatrix) Elements() []string {
	out := make([]string, len(m.elements))
	copy(out, m.elements)
	return out
}

// Components returns the column components in order, reactants first.
func (m *StoichiometricMatrix) Components() []*Component {
	out := make([]*Component, len(m.columns))
	copy(out, m.columns)
	return out
}

// Dims returns the (elements, molecules) dimensions.
func (m *StoichiometricMatrix) Dims() (rows, cols int) { return m.dense.Dims() }

// Dense returns the underlying signed count matrix.  Callers must not mutate
// it.
func (m *StoichiometricMatrix) Dense() *mat.Dense { return m.dense }

// residual returns, for each element row, the signed atom imbalance produced
// by the given column coefficients.
func (m *StoichiometricMatrix) residual(coeffs []float64) []float64 {
	rows, cols := m.dense.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += m.dense.At(i, j) * coeffs[j]
		}
		out[i] = sum
	}
	return out
}

func sideElements(side []*Component) map[string]bool {
	set := make(map[string]bool)
	for _, c := range side {
		for _, sym := range c.Composition().Elements() {
			set[sym] = true
		}
	}
	return set
}

func setDifference(a, b map[string]bool) []string {
	var out []string
	for sym := range a {
		if !b[sym] {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}
