// Package classify implements the reaction-type classification engine: the
// oxidation-state estimator, electron-transfer analysis, functional-group
// heuristics, the rule-based expert system, reaction fingerprinting, and the
// confidence aggregator that merges all signals.  Classification is total: no
// operation in this package returns an error to the caller; a reaction with no
// usable signal classifies as "unknown" at zero confidence.
package classify

import (
	"strings"

	"github.com/turtacn/ReactionIQ/internal/domain/element"
	"github.com/turtacn/ReactionIQ/internal/domain/molecule"
	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Oxidation-state estimation
// ─────────────────────────────────────────────────────────────────────────────

// OxidationEstimator assigns heuristic oxidation numbers to the elements of a
// molecule using an ordered rule cascade.  It works purely from the element
// composition and formula string; without bond-graph input the results are
// estimates, good enough for redox detection but not for formal bookkeeping.
type OxidationEstimator struct {
	table *element.Table
}

// NewOxidationEstimator returns an estimator backed by the given element
// table.
func NewOxidationEstimator(tbl *element.Table) *OxidationEstimator {
	if tbl == nil {
		tbl = element.Default()
	}
	return &OxidationEstimator{table: tbl}
}

// AssignStates estimates the oxidation number of each element in the
// composition.  Elements the cascade cannot resolve are simply absent from
// the returned map; when more than one element remains unassigned after the
// structural rules, no guess is made.
//
// The cascade, each rule only filling elements left unassigned so far:
//  0. a neutral single-element species (H2, O2, Zn) is 0 throughout;
//  1. fluorine is always −1;
//  2. oxygen is −2, or −1 when the formula suggests a peroxide ("O2"
//     appearing literally in the canonical formula);
//  3. hydrogen is +1, or −1 in a metal hydride (every other element in the
//     formula is metallic);
//  4. in an exactly-binary compound the more electronegative element takes
//     its most negative common oxidation state;
//  5. a monatomic ion is its charge divided by its atom count (this
//     overrides earlier rules); otherwise a single remaining element is
//     solved by charge balance.
func (e *OxidationEstimator) AssignStates(c *molecule.Composition) map[string]float64 {
	counts := c.ElementCounts()
	states := make(map[string]float64)

	if len(counts) == 1 && c.Charge() == 0 {
		for sym := range counts {
			states[sym] = 0
		}
		return states
	}

	if _, ok := counts["F"]; ok {
		states["F"] = -1
	}

	if _, ok := counts["O"]; ok {
		if strings.Contains(c.Formula(), "O2") {
			states["O"] = -1
		} else {
			states["O"] = -2
		}
	}

	if _, ok := counts["H"]; ok {
		// A hydride needs every partner element to be metallic; a mere
		// metal co-occurrence (NaOH) keeps hydrogen at +1.
		hydride := len(counts) > 1
		for sym := range counts {
			if sym != "H" && !e.table.IsMetal(sym) {
				hydride = false
				break
			}
		}
		if hydride {
			states["H"] = -1
		} else {
			states["H"] = 1
		}
	}

	if len(counts) == 2 {
		e.assignBinary(c, counts, states)
	}

	totalCharge := float64(c.Charge())
	assigned := 0.0
	for sym, n := range counts {
		assigned += states[sym] * n
	}
	var remaining []string
	for sym := range counts {
		if _, ok := states[sym]; !ok {
			remaining = append(remaining, sym)
		}
	}

	if sym, perAtom, ok := c.IsMonatomicIon(); ok {
		states[sym] = perAtom
	} else if len(remaining) == 1 {
		sym := remaining[0]
		states[sym] = (totalCharge - assigned) / counts[sym]
	}

	return states
}

// assignBinary applies the electronegativity rule for exactly-binary
// compounds: the more electronegative element, if still unassigned, takes its
// most negative common oxidation state.
func (e *OxidationEstimator) assignBinary(c *molecule.Composition, counts map[string]float64, states map[string]float64) {
	syms := c.Elements()
	enA, okA := e.table.Electronegativity(syms[0])
	enB, okB := e.table.Electronegativity(syms[1])
	if !okA || !okB {
		return
	}
	negative := syms[0]
	if enB > enA {
		negative = syms[1]
	}
	if _, already := states[negative]; already {
		return
	}
	el, ok := e.table.Lookup(negative)
	if !ok {
		return
	}
	if state, ok := el.MostNegativeOxidationState(); ok {
		states[negative] = float64(state)
	}
}

// SideAverages computes, for one side of a reaction, each element's oxidation
// state averaged over every occurrence, weighted by coefficient × atom count.
// Occurrences in molecules where the estimate could not resolve the element
// still contribute to the denominator, diluting the average.
func (e *OxidationEstimator) SideAverages(side []*reaction.Component) map[string]float64 {
	totalAtoms := make(map[string]float64)
	totalState := make(map[string]float64)

	for _, comp := range side {
		c := comp.Composition()
		states := e.AssignStates(c)
		for sym, n := range c.ElementCounts() {
			weight := n * comp.Coefficient()
			totalAtoms[sym] += weight
			if st, ok := states[sym]; ok {
				totalState[sym] += st * weight
			}
		}
	}

	out := make(map[string]float64, len(totalAtoms))
	for sym, atoms := range totalAtoms {
		if atoms > 0 {
			out[sym] = totalState[sym] / atoms
		}
	}
	return out
}
