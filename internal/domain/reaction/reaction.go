// Package reaction holds the Reaction aggregate, the equation parser, and the
// stoichiometric balancer.  A Reaction owns ordered reactant and product
// components; every mutation bumps an internal version counter, which the
// classification cache uses for invalidation instead of hidden sentinels.
package reaction

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/turtacn/ReactionIQ/internal/domain/molecule"
	"github.com/turtacn/ReactionIQ/pkg/errors"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// DefaultTolerance is the residual tolerance used by IsBalanced when callers
// pass no explicit value.
const DefaultTolerance = 1e-6

// ─────────────────────────────────────────────────────────────────────────────
// Reaction
// ─────────────────────────────────────────────────────────────────────────────

// Reaction is the aggregate root of a chemical equation.  Not safe for
// concurrent mutation; callers serialise per-instance writes.
type Reaction struct {
	name        string
	reactants   []*Component
	products    []*Component
	temperature *float64 // Kelvin
	pressure    *float64 // atm
	conditions  map[string]string

	version      uint64
	classVersion uint64
	classResult  *chem.ClassificationResult
}

// New returns an empty reaction with the given display name.
func New(name string) *Reaction {
	return &Reaction{name: name}
}

// touch invalidates all derived caches.
func (r *Reaction) touch() { r.version++ }

// Version returns the mutation counter.  It increases on every structural or
// coefficient change and anchors external caches.
func (r *Reaction) Version() uint64 { return r.version }

// Name returns the display name.
func (r *Reaction) Name() string { return r.name }

// SetName sets the display name.  Naming does not affect derived state.
func (r *Reaction) SetName(name string) { r.name = name }

// ─────────────────────────────────────────────────────────────────────────────
// Population
// ─────────────────────────────────────────────────────────────────────────────

// AddReactant appends a reactant component.  Catalysts are kept on the
// reactant side for rendering but excluded from all balance computations.
func (r *Reaction) AddReactant(comp *molecule.Composition, coefficient float64, phase chem.Phase, isCatalyst bool) error {
	c, err := NewComponent(comp, coefficient, phase, isCatalyst)
	if err != nil {
		return err
	}
	r.reactants = append(r.reactants, c)
	r.touch()
	return nil
}

// AddProduct appends a product component.
func (r *Reaction) AddProduct(comp *molecule.Composition, coefficient float64, phase chem.Phase) error {
	c, err := NewComponent(comp, coefficient, phase, false)
	if err != nil {
		return err
	}
	r.products = append(r.products, c)
	r.touch()
	return nil
}

// AddReactantFormula parses formula and appends it as a reactant.
func (r *Reaction) AddReactantFormula(formula string, coefficient float64, isCatalyst bool) error {
	comp, err := molecule.Parse(formula)
	if err != nil {
		return err
	}
	return r.AddReactant(comp, coefficient, chem.PhaseNone, isCatalyst)
}

// AddProductFormula parses formula and appends it as a product.
func (r *Reaction) AddProductFormula(formula string, coefficient float64) error {
	comp, err := molecule.Parse(formula)
	if err != nil {
		return err
	}
	return r.AddProduct(comp, coefficient, chem.PhaseNone)
}

// Reactants returns the reactant components in insertion order, catalysts
// included.  The slice is a copy; the components are shared.
func (r *Reaction) Reactants() []*Component {
	out := make([]*Component, len(r.reactants))
	copy(out, r.reactants)
	return out
}

// Products returns the product components in insertion order.
func (r *Reaction) Products() []*Component {
	out := make([]*Component, len(r.products))
	copy(out, r.products)
	return out
}

// NonCatalystReactants returns the reactants that participate in the balance.
func (r *Reaction) NonCatalystReactants() []*Component {
	out := make([]*Component, 0, len(r.reactants))
	for _, c := range r.reactants {
		if !c.isCatalyst {
			out = append(out, c)
		}
	}
	return out
}

// Catalysts returns the flagged catalyst components.
func (r *Reaction) Catalysts() []*Component {
	out := make([]*Component, 0, 1)
	for _, c := range r.reactants {
		if c.isCatalyst {
			out = append(out, c)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditions
// ─────────────────────────────────────────────────────────────────────────────

// SetTemperature records the reaction temperature in Kelvin.
func (r *Reaction) SetTemperature(kelvin float64) { v := kelvin; r.temperature = &v }

// Temperature returns the temperature in Kelvin, if set.
func (r *Reaction) Temperature() (float64, bool) {
	if r.temperature == nil {
		return 0, false
	}
	return *r.temperature, true
}

// SetPressure records the reaction pressure in atmospheres.
func (r *Reaction) SetPressure(atm float64) { v := atm; r.pressure = &v }

// Pressure returns the pressure in atmospheres, if set.
func (r *Reaction) Pressure() (float64, bool) {
	if r.pressure == nil {
		return 0, false
	}
	return *r.pressure, true
}

// SetCondition records a free-form condition such as "solvent" → "H2O".
func (r *Reaction) SetCondition(key, value string) {
	if r.conditions == nil {
		r.conditions = make(map[string]string)
	}
	r.conditions[key] = value
}

// Conditions returns a copy of the free-form condition map.
func (r *Reaction) Conditions() map[string]string {
	out := make(map[string]string, len(r.conditions))
	for k, v := range r.conditions {
		out[k] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Balance state
// ─────────────────────────────────────────────────────────────────────────────

// ElementBalance returns the signed net atom count per element
// (products − reactants), coefficient-weighted and excluding catalysts.
func (r *Reaction) ElementBalance() map[string]float64 {
	balance := make(map[string]float64)
	for _, c := range r.NonCatalystReactants() {
		for sym, n := range c.composition.ElementCounts() {
			balance[sym] -= c.coefficient * n
		}
	}
	for _, c := range r.products {
		for sym, n := range c.composition.ElementCounts() {
			balance[sym] += c.coefficient * n
		}
	}
	return balance
}

// IsBalanced reports whether every element's net balance is within tolerance
// of zero.  A non-positive tolerance selects DefaultTolerance.  An empty
// reaction is trivially balanced.
func (r *Reaction) IsBalanced(tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	for _, delta := range r.ElementBalance() {
		if math.Abs(delta) > tolerance {
			return false
		}
	}
	return true
}

// UnbalancedElements returns the element symbols whose net balance exceeds
// tolerance, sorted for stable reporting.
func (r *Reaction) UnbalancedElements(tolerance float64) []string {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var out []string
	for sym, delta := range r.ElementBalance() {
		if math.Abs(delta) > tolerance {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}

// BalanceVerification summarises the mass and per-element balance state of a
// reaction at a given tolerance.
type BalanceVerification struct {
	IsBalanced         bool     `json:"is_balanced"`
	ReactantMass       float64  `json:"reactant_mass"`
	ProductMass        float64  `json:"product_mass"`
	MassDifference     float64  `json:"mass_difference"`
	BalancedElements   []string `json:"balanced_elements,omitempty"`
	UnbalancedElements []string `json:"unbalanced_elements,omitempty"`
}

// VerifyBalance reports the coefficient-weighted mass total of each side and
// splits the elements into balanced and unbalanced sets, both sorted.
// Catalysts are excluded throughout.
func (r *Reaction) VerifyBalance(tolerance float64) BalanceVerification {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	v := BalanceVerification{IsBalanced: true}
	for _, c := range r.NonCatalystReactants() {
		v.ReactantMass += c.WeightedWeight()
	}
	for _, c := range r.products {
		v.ProductMass += c.WeightedWeight()
	}
	v.MassDifference = v.ProductMass - v.ReactantMass
	for sym, delta := range r.ElementBalance() {
		if math.Abs(delta) > tolerance {
			v.UnbalancedElements = append(v.UnbalancedElements, sym)
			v.IsBalanced = false
		} else {
			v.BalancedElements = append(v.BalancedElements, sym)
		}
	}
	sort.Strings(v.BalancedElements)
	sort.Strings(v.UnbalancedElements)
	return v
}

// MolecularWeightBalance returns total product mass minus total reactant
// mass (g/mol, coefficient-weighted, catalysts excluded).  Near zero for a
// balanced reaction.
func (r *Reaction) MolecularWeightBalance() float64 {
	total := 0.0
	for _, c := range r.NonCatalystReactants() {
		total -= c.WeightedWeight()
	}
	for _, c := range r.products {
		total += c.WeightedWeight()
	}
	return total
}

// ─────────────────────────────────────────────────────────────────────────────
// Coefficient manipulation
// ─────────────────────────────────────────────────────────────────────────────

// Reverse swaps the reactant and product sides in place.  Catalyst flags
// travel with their components.
func (r *Reaction) Reverse() {
	r.reactants, r.products = r.products, r.reactants
	r.touch()
}

// ScaleCoefficients multiplies every coefficient, catalysts included, by the
// given positive factor.
func (r *Reaction) ScaleCoefficients(factor float64) error {
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return errors.New(errors.CodeInvalidScalingFactor, "scaling factor must be positive and finite").
			WithDetail(fmt.Sprintf("factor=%g", factor))
	}
	for _, c := range r.reactants {
		c.coefficient *= factor
	}
	for _, c := range r.products {
		c.coefficient *= factor
	}
	r.touch()
	return nil
}

// NormalizeCoefficients rewrites all coefficients as the smallest equivalent
// positive integers: each coefficient is rationalised with a bounded
// denominator, all are scaled by the least common denominator, and the result
// is divided by its collective GCD.
func (r *Reaction) NormalizeCoefficients() error {
	all := append(r.Reactants(), r.products...)
	if len(all) == 0 {
		return nil
	}
	coeffs := make([]float64, len(all))
	for i, c := range all {
		coeffs[i] = c.coefficient
	}
	ints, err := rationalizeToIntegers(coeffs, defaultMaxDenominator)
	if err != nil {
		return err
	}
	for i, c := range all {
		c.coefficient = float64(ints[i])
	}
	r.touch()
	return nil
}

// setCoefficients applies coefficients to the non-catalyst reactants followed
// by the products, in order.  Used by the balancer.
func (r *Reaction) setCoefficients(coeffs []float64) error {
	cols := append(r.NonCatalystReactants(), r.products...)
	if len(coeffs) != len(cols) {
		return errors.Internal("coefficient count does not match component count")
	}
	for i, c := range cols {
		if coeffs[i] <= 0 {
			return errors.New(errors.CodeInvalidCoefficient, "balancer produced a non-positive coefficient").
				WithDetail(fmt.Sprintf("formula=%s coefficient=%g", c.Formula(), coeffs[i]))
		}
		c.coefficient = coeffs[i]
	}
	r.touch()
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification cache
// ─────────────────────────────────────────────────────────────────────────────

// CachedClassification returns the stored classification result if it is still
// valid for the current version.
func (r *Reaction) CachedClassification() (chem.ClassificationResult, bool) {
	if r.classResult == nil || r.classVersion != r.version {
		return chem.ClassificationResult{}, false
	}
	return *r.classResult, true
}

// StoreClassification caches a classification result for the current version.
// Any subsequent mutation invalidates it.
func (r *Reaction) StoreClassification(res chem.ClassificationResult) {
	r.classResult = &res
	r.classVersion = r.version
}

// ─────────────────────────────────────────────────────────────────────────────
// Rendering and round trip
// ─────────────────────────────────────────────────────────────────────────────

// String renders the equation as
// "<reactants> → <products> [catalyst: …] [T=…K, P=…atm, key=value]".
func (r *Reaction) String() string {
	var b strings.Builder
	b.WriteString(joinSide(r.NonCatalystReactants()))
	b.WriteString(" → ")
	b.WriteString(joinSide(r.products))

	if cats := r.Catalysts(); len(cats) > 0 {
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = c.Formula()
		}
		fmt.Fprintf(&b, " [catalyst: %s]", strings.Join(names, ", "))
	}

	var conds []string
	if r.temperature != nil {
		conds = append(conds, fmt.Sprintf("T=%gK", *r.temperature))
	}
	if r.pressure != nil {
		conds = append(conds, fmt.Sprintf("P=%gatm", *r.pressure))
	}
	keys := make([]string, 0, len(r.conditions))
	for k := range r.conditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		conds = append(conds, fmt.Sprintf("%s=%s", k, r.conditions[k]))
	}
	if len(conds) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(conds, ", "))
	}
	return b.String()
}

func joinSide(side []*Component) string {
	if len(side) == 0 {
		return "∅"
	}
	parts := make([]string, len(side))
	for i, c := range side {
		parts[i] = c.String()
	}
	return strings.Join(parts, " + ")
}

// ToDTO converts the reaction to its serialised form.
func (r *Reaction) ToDTO() chem.ReactionDTO {
	dto := chem.ReactionDTO{
		Name:     r.name,
		Balanced: len(r.reactants) > 0 && len(r.products) > 0 && r.IsBalanced(DefaultTolerance),
	}
	for _, c := range r.reactants {
		dto.Reactants = append(dto.Reactants, c.toDTO())
	}
	for _, c := range r.products {
		dto.Products = append(dto.Products, c.toDTO())
	}
	if r.temperature != nil {
		v := *r.temperature
		dto.Temperature = &v
	}
	if r.pressure != nil {
		v := *r.pressure
		dto.Pressure = &v
	}
	if len(r.conditions) > 0 {
		dto.Conditions = r.Conditions()
	}
	return dto
}

// FromDTO reconstructs a reaction from its serialised form.
func FromDTO(dto chem.ReactionDTO) (*Reaction, error) {
	r := New(dto.Name)
	for _, cd := range dto.Reactants {
		c, err := componentFromDTO(cd)
		if err != nil {
			return nil, err
		}
		r.reactants = append(r.reactants, c)
	}
	for _, cd := range dto.Products {
		c, err := componentFromDTO(cd)
		if err != nil {
			return nil, err
		}
		r.products = append(r.products, c)
	}
	if dto.Temperature != nil {
		r.SetTemperature(*dto.Temperature)
	}
	if dto.Pressure != nil {
		r.SetPressure(*dto.Pressure)
	}
	for k, v := range dto.Conditions {
		r.SetCondition(k, v)
	}
	r.touch()
	return r, nil
}
