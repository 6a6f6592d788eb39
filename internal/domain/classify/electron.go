package classify

import (
	"math"

	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// RedoxThreshold is the minimum change in a side-averaged oxidation state for
// an element to count as having changed.  The slack absorbs the numerical
// error introduced by weighted averaging.
const RedoxThreshold = 0.1

// ─────────────────────────────────────────────────────────────────────────────
// Electron-transfer analysis
// ─────────────────────────────────────────────────────────────────────────────

// TransferAnalyzer detects electron transfer between the two sides of a
// reaction.  Two detection paths run: the estimator path diffs side-averaged
// oxidation states, and the charge path diffs explicit monatomic ion charges.
// The charge path needs no heuristic assignment, so whenever it detects redox
// character its result wins outright.
type TransferAnalyzer struct {
	estimator *OxidationEstimator
	threshold float64
}

// NewTransferAnalyzer returns an analyzer using the given estimator and the
// default change threshold.
func NewTransferAnalyzer(est *OxidationEstimator) *TransferAnalyzer {
	if est == nil {
		est = NewOxidationEstimator(nil)
	}
	return &TransferAnalyzer{estimator: est, threshold: RedoxThreshold}
}

// Analyze computes the electron-transfer summary for r.
func (a *TransferAnalyzer) Analyze(r *reaction.Reaction) chem.ElectronTransfer {
	if fromCharges := a.analyzeCharges(r); fromCharges.IsRedox {
		return fromCharges
	}
	return a.analyzeStates(r)
}

// analyzeStates diffs side-averaged oxidation states per element.
func (a *TransferAnalyzer) analyzeStates(r *reaction.Reaction) chem.ElectronTransfer {
	reactantStates := a.estimator.SideAverages(r.Reactants())
	productStates := a.estimator.SideAverages(r.Products())

	changes := make(map[string]float64)
	for sym, before := range reactantStates {
		after, ok := productStates[sym]
		if !ok {
			continue
		}
		if delta := after - before; math.Abs(delta) > a.threshold {
			changes[sym] = delta
		}
	}

	result := chem.ElectronTransfer{
		OxidationChanges: changes,
		IsRedox:          len(changes) >= 2,
	}
	if result.IsRedox {
		result.OxidizingAgent, result.ReducingAgent = attributeAgents(r.Reactants(), changes, false)
	}
	return result
}

// analyzeCharges diffs explicit monatomic ion charges per element.  Only
// single-element charged species participate; any nonzero charge change
// counts.
func (a *TransferAnalyzer) analyzeCharges(r *reaction.Reaction) chem.ElectronTransfer {
	reactantCharges := monatomicCharges(r.Reactants())
	productCharges := monatomicCharges(r.Products())

	changes := make(map[string]float64)
	for sym, before := range reactantCharges {
		after, ok := productCharges[sym]
		if !ok {
			continue
		}
		if delta := after - before; delta != 0 {
			changes[sym] = delta
		}
	}

	result := chem.ElectronTransfer{
		OxidationChanges: changes,
		IsRedox:          len(changes) >= 2,
		FromCharges:      true,
	}
	if result.IsRedox {
		result.OxidizingAgent, result.ReducingAgent = attributeAgents(r.Reactants(), changes, true)
	}
	return result
}

// monatomicCharges maps element symbols to the net charge of single-element
// charged species on one side.
func monatomicCharges(side []*reaction.Component) map[string]float64 {
	out := make(map[string]float64)
	for _, comp := range side {
		c := comp.Composition()
		if c.Charge() == 0 {
			continue
		}
		elems := c.Elements()
		if len(elems) != 1 {
			continue
		}
		out[elems[0]] = float64(c.Charge())
	}
	return out
}

// attributeAgents identifies the oxidizing agent (the reactant holding a
// reduced element) and the reducing agent (the reactant holding an oxidized
// element).  With monatomicOnly set, only single-element reactants are
// considered, matching the charge path's scope.
func attributeAgents(reactants []*reaction.Component, changes map[string]float64, monatomicOnly bool) (oxidizing, reducing string) {
	oxidized := make(map[string]bool)
	reduced := make(map[string]bool)
	for sym, delta := range changes {
		if delta > 0 {
			oxidized[sym] = true
		} else if delta < 0 {
			reduced[sym] = true
		}
	}

	for _, comp := range reactants {
		elems := comp.Composition().Elements()
		if monatomicOnly && len(elems) != 1 {
			continue
		}
		for _, sym := range elems {
			if oxidized[sym] {
				reducing = comp.Formula()
			}
			if reduced[sym] {
				oxidizing = comp.Formula()
			}
		}
	}
	return oxidizing, reducing
}
