// Package thermo estimates thermodynamic properties of balanced reactions
// from tabulated standard-state data: reaction enthalpy, entropy, Gibbs free
// energy, equilibrium constants, and a sign-based feasibility profile.  It
// also carries the stoichiometric analysis helpers that build on the same
// surface: rate-order estimation, Arrhenius activation-energy fitting, atom
// economy, and theoretical yields.
package thermo

import "github.com/turtacn/ReactionIQ/internal/domain/molecule"

// StandardProperties holds standard-state data for one species at 298.15 K
// and 1 atm.
type StandardProperties struct {
	FormationEnthalpy float64 // kJ/mol
	FormationGibbs    float64 // kJ/mol
	Entropy           float64 // J/(mol·K)
	HeatCapacity      float64 // J/(mol·K)
}

// Table maps species to their standard properties.  Lookup accepts both the
// formula as entered and its Hill-canonical form, so "NaCl" data is found for
// a component whose canonical rendering is "ClNa".
type Table struct {
	bySource    map[string]StandardProperties
	byCanonical map[string]StandardProperties
}

// NewTable builds a lookup table from conventional-formula keys.
func NewTable(data map[string]StandardProperties) *Table {
	t := &Table{
		bySource:    make(map[string]StandardProperties, len(data)),
		byCanonical: make(map[string]StandardProperties, len(data)),
	}
	for formula, props := range data {
		t.bySource[formula] = props
		if comp, err := molecule.Parse(formula); err == nil {
			t.byCanonical[comp.Formula()] = props
		}
	}
	return t
}

// Lookup resolves the properties for a composition, trying the source
// formula first and the canonical form second.
func (t *Table) Lookup(c *molecule.Composition) (StandardProperties, bool) {
	if props, ok := t.bySource[c.Source()]; ok {
		return props, true
	}
	props, ok := t.byCanonical[c.Formula()]
	return props, ok
}

// Len returns the number of species in the table.
func (t *Table) Len() int { return len(t.bySource) }

// defaultTable covers the common small molecules of introductory
// stoichiometry.  Values are standard-state (298.15 K, 1 atm); elements in
// their reference form carry zero formation enthalpy and Gibbs energy.
var defaultTable = NewTable(map[string]StandardProperties{
	"H2O":  {FormationEnthalpy: -285.8, FormationGibbs: -237.1, Entropy: 69.9, HeatCapacity: 75.3},
	"CO2":  {FormationEnthalpy: -393.5, FormationGibbs: -394.4, Entropy: 213.8, HeatCapacity: 37.1},
	"H2":   {Entropy: 130.7, HeatCapacity: 28.8},
	"O2":   {Entropy: 205.2, HeatCapacity: 29.4},
	"CH4":  {FormationEnthalpy: -74.6, FormationGibbs: -50.5, Entropy: 186.3, HeatCapacity: 35.3},
	"NH3":  {FormationEnthalpy: -45.9, FormationGibbs: -16.4, Entropy: 192.8, HeatCapacity: 35.1},
	"N2":   {Entropy: 191.6, HeatCapacity: 29.1},
	"HCl":  {FormationEnthalpy: -92.3, FormationGibbs: -95.3, Entropy: 186.9, HeatCapacity: 29.1},
	"NaCl": {FormationEnthalpy: -411.2, FormationGibbs: -384.1, Entropy: 72.1, HeatCapacity: 50.5},
})

// Default returns the built-in standard-state table.
func Default() *Table { return defaultTable }
