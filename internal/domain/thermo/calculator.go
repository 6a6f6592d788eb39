package thermo

import (
	"math"

	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/errors"
)

const (
	// GasConstant is R in J/(mol·K).
	GasConstant = 8.314

	// StandardTemperature is 25 °C in Kelvin, the reference temperature of
	// the property tables.
	StandardTemperature = 298.15
)

// ─────────────────────────────────────────────────────────────────────────────
// Results
// ─────────────────────────────────────────────────────────────────────────────

// EnthalpyResult is the enthalpy change of a reaction.
type EnthalpyResult struct {
	DeltaH      float64  `json:"delta_h"`     // kJ/mol
	Temperature float64  `json:"temperature"` // K
	Exothermic  bool     `json:"exothermic"`
	MissingData []string `json:"missing_data,omitempty"`
	Complete    bool     `json:"complete"`
}

// EntropyResult is the entropy change of a reaction.
type EntropyResult struct {
	DeltaS      float64  `json:"delta_s"` // J/(mol·K)
	Temperature float64  `json:"temperature"`
	MissingData []string `json:"missing_data,omitempty"`
	Complete    bool     `json:"complete"`
}

// GibbsResult is the Gibbs free-energy change of a reaction.  The equilibrium
// constant is only present when the underlying data is complete.
type GibbsResult struct {
	DeltaG              float64  `json:"delta_g"` // kJ/mol
	Temperature         float64  `json:"temperature"`
	Spontaneous         bool     `json:"spontaneous"`
	EquilibriumConstant *float64 `json:"equilibrium_constant,omitempty"`
	MissingData         []string `json:"missing_data,omitempty"`
	Complete            bool     `json:"complete"`
}

// EquilibriumResult interprets the equilibrium constant of a reaction.
type EquilibriumResult struct {
	Temperature         float64  `json:"temperature"`
	DeltaG              float64  `json:"delta_g"`
	EquilibriumConstant *float64 `json:"equilibrium_constant,omitempty"`
	Interpretation      string   `json:"interpretation"`
	Complete            bool     `json:"complete"`
}

// FeasibilityResult combines the three state functions into one verdict with
// a sign-based temperature profile.
type FeasibilityResult struct {
	Temperature         float64  `json:"temperature"`
	Feasible            bool     `json:"feasible"`
	DeltaH              float64  `json:"delta_h"` // kJ/mol
	DeltaS              float64  `json:"delta_s"` // J/(mol·K)
	DeltaG              float64  `json:"delta_g"` // kJ/mol
	EquilibriumConstant *float64 `json:"equilibrium_constant,omitempty"`
	TemperatureProfile  string   `json:"temperature_profile"`
	Complete            bool     `json:"complete"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Calculator
// ─────────────────────────────────────────────────────────────────────────────

// Calculator computes reaction thermodynamics against an injected property
// table.  All calculations require a balanced reaction and exclude catalysts.
type Calculator struct {
	table *Table
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithTable substitutes the standard-state property table.
func WithTable(tbl *Table) Option {
	return func(c *Calculator) {
		if tbl != nil {
			c.table = tbl
		}
	}
}

// NewCalculator returns a calculator over the built-in table.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{table: Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enthalpy computes ΔH of the reaction in kJ/mol at the given temperature in
// Kelvin (≤ 0 selects the standard temperature).  Away from the standard
// temperature a ΔCp correction is applied when heat-capacity data is
// complete.
func (c *Calculator) Enthalpy(r *reaction.Reaction, temperature float64) (EnthalpyResult, error) {
	if err := requireBalanced(r); err != nil {
		return EnthalpyResult{}, err
	}
	temp := normalizeTemperature(temperature)

	var missing []string
	products := c.sideSum(r.Products(), &missing, func(p StandardProperties) float64 { return p.FormationEnthalpy })
	reactants := c.sideSum(r.Reactants(), &missing, func(p StandardProperties) float64 { return p.FormationEnthalpy })
	deltaH := products - reactants

	if temp != StandardTemperature {
		if deltaCp, ok := c.heatCapacityChange(r); ok {
			deltaH += deltaCp * (temp - StandardTemperature) / 1000.0
		}
	}

	return EnthalpyResult{
		DeltaH:      deltaH,
		Temperature: temp,
		Exothermic:  deltaH < 0,
		MissingData: missing,
		Complete:    len(missing) == 0,
	}, nil
}

// Entropy computes ΔS of the reaction in J/(mol·K).
func (c *Calculator) Entropy(r *reaction.Reaction, temperature float64) (EntropyResult, error) {
	if err := requireBalanced(r); err != nil {
		return EntropyResult{}, err
	}
	temp := normalizeTemperature(temperature)

	var missing []string
	products := c.sideSum(r.Products(), &missing, func(p StandardProperties) float64 { return p.Entropy })
	reactants := c.sideSum(r.Reactants(), &missing, func(p StandardProperties) float64 { return p.Entropy })

	return EntropyResult{
		DeltaS:      products - reactants,
		Temperature: temp,
		MissingData: missing,
		Complete:    len(missing) == 0,
	}, nil
}

// Gibbs computes ΔG of the reaction in kJ/mol.  When direct formation data
// is incomplete it falls back to ΔH − TΔS if both are complete; with a
// complete ΔG the equilibrium constant K = exp(−ΔG/RT) is attached.
func (c *Calculator) Gibbs(r *reaction.Reaction, temperature float64) (GibbsResult, error) {
	if err := requireBalanced(r); err != nil {
		return GibbsResult{}, err
	}
	temp := normalizeTemperature(temperature)

	var missing []string
	products := c.sideSum(r.Products(), &missing, func(p StandardProperties) float64 { return p.FormationGibbs })
	reactants := c.sideSum(r.Reactants(), &missing, func(p StandardProperties) float64 { return p.FormationGibbs })
	deltaG := products - reactants

	if len(missing) > 0 {
		enthalpy, errH := c.Enthalpy(r, temp)
		entropy, errS := c.Entropy(r, temp)
		if errH == nil && errS == nil && enthalpy.Complete && entropy.Complete {
			deltaG = enthalpy.DeltaH - temp*entropy.DeltaS/1000.0
			missing = nil
		}
	}

	result := GibbsResult{
		DeltaG:      deltaG,
		Temperature: temp,
		Spontaneous: deltaG < 0,
		MissingData: missing,
		Complete:    len(missing) == 0,
	}
	if result.Complete {
		k := math.Exp(-deltaG * 1000.0 / (GasConstant * temp))
		result.EquilibriumConstant = &k
	}
	return result, nil
}

// EquilibriumConstant computes K and a coarse position-of-equilibrium
// reading.
func (c *Calculator) EquilibriumConstant(r *reaction.Reaction, temperature float64) (EquilibriumResult, error) {
	gibbs, err := c.Gibbs(r, temperature)
	if err != nil {
		return EquilibriumResult{}, err
	}

	result := EquilibriumResult{
		Temperature:         gibbs.Temperature,
		DeltaG:              gibbs.DeltaG,
		EquilibriumConstant: gibbs.EquilibriumConstant,
		Complete:            gibbs.Complete,
	}
	result.Interpretation = interpretEquilibrium(gibbs.EquilibriumConstant)
	return result, nil
}

// Feasibility combines enthalpy, entropy, and Gibbs energy into a single
// verdict with a sign-based temperature profile.
func (c *Calculator) Feasibility(r *reaction.Reaction, temperature float64) (FeasibilityResult, error) {
	enthalpy, err := c.Enthalpy(r, temperature)
	if err != nil {
		return FeasibilityResult{}, err
	}
	entropy, err := c.Entropy(r, temperature)
	if err != nil {
		return FeasibilityResult{}, err
	}
	gibbs, err := c.Gibbs(r, temperature)
	if err != nil {
		return FeasibilityResult{}, err
	}

	return FeasibilityResult{
		Temperature:         gibbs.Temperature,
		Feasible:            gibbs.Spontaneous,
		DeltaH:              enthalpy.DeltaH,
		DeltaS:              entropy.DeltaS,
		DeltaG:              gibbs.DeltaG,
		EquilibriumConstant: gibbs.EquilibriumConstant,
		TemperatureProfile:  temperatureProfile(enthalpy.DeltaH, entropy.DeltaS),
		Complete:            enthalpy.Complete && entropy.Complete && gibbs.Complete,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

// sideSum accumulates coefficient-weighted properties over one side,
// skipping catalysts and collecting species absent from the table.
func (c *Calculator) sideSum(side []*reaction.Component, missing *[]string, property func(StandardProperties) float64) float64 {
	total := 0.0
	for _, comp := range side {
		if comp.IsCatalyst() {
			continue
		}
		props, ok := c.table.Lookup(comp.Composition())
		if !ok {
			*missing = append(*missing, comp.Formula())
			continue
		}
		total += comp.Coefficient() * property(props)
	}
	return total
}

// heatCapacityChange returns ΔCp in J/(mol·K), or false when any species
// lacks heat-capacity data.
func (c *Calculator) heatCapacityChange(r *reaction.Reaction) (float64, bool) {
	var missing []string
	products := c.sideSum(r.Products(), &missing, func(p StandardProperties) float64 { return p.HeatCapacity })
	reactants := c.sideSum(r.Reactants(), &missing, func(p StandardProperties) float64 { return p.HeatCapacity })
	if len(missing) > 0 {
		return 0, false
	}
	return products - reactants, true
}

func requireBalanced(r *reaction.Reaction) error {
	if !r.IsBalanced(reaction.DefaultTolerance) {
		return errors.New(errors.CodeUnbalancedInput, "reaction must be balanced for thermodynamic calculations").
			WithDetail(r.String())
	}
	return nil
}

func normalizeTemperature(temperature float64) float64 {
	if temperature <= 0 {
		return StandardTemperature
	}
	return temperature
}

func interpretEquilibrium(k *float64) string {
	switch {
	case k == nil:
		return "cannot determine without complete thermodynamic data"
	case *k > 1000:
		return "reaction strongly favors products"
	case *k > 1:
		return "reaction favors products"
	case *k == 1:
		return "reaction is at equilibrium"
	case *k > 0.001:
		return "reaction favors reactants"
	default:
		return "reaction strongly favors reactants"
	}
}

func temperatureProfile(deltaH, deltaS float64) string {
	switch {
	case deltaH < 0 && deltaS > 0:
		return "spontaneous at all temperatures"
	case deltaH > 0 && deltaS < 0:
		return "non-spontaneous at all temperatures"
	case deltaH < 0 && deltaS < 0:
		return "spontaneous at low temperatures"
	case deltaH > 0 && deltaS > 0:
		return "spontaneous at high temperatures"
	default:
		return "indeterminate"
	}
}
