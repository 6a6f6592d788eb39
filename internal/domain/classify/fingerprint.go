package classify

import (
	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reaction fingerprinting
// ─────────────────────────────────────────────────────────────────────────────

// Fingerprinter produces an immutable snapshot of a reaction's element,
// phase, and charge deltas.  It makes no classification decisions; the
// snapshot exists for diagnostics, comparison, and tests.
type Fingerprinter struct {
	transfer *TransferAnalyzer
}

// NewFingerprinter returns a Fingerprinter delegating charge-transfer
// detection to the given analyzer.
func NewFingerprinter(transfer *TransferAnalyzer) *Fingerprinter {
	if transfer == nil {
		transfer = NewTransferAnalyzer(nil)
	}
	return &Fingerprinter{transfer: transfer}
}

// Fingerprint computes the snapshot for r.
func (f *Fingerprinter) Fingerprint(r *reaction.Reaction) chem.ReactionFingerprint {
	reactants, products := r.Reactants(), r.Products()

	reactantElements := countElements(reactants)
	productElements := countElements(products)

	balance := make(map[string]float64)
	for sym := range reactantElements {
		balance[sym] = productElements[sym] - reactantElements[sym]
	}
	for sym := range productElements {
		if _, seen := reactantElements[sym]; !seen {
			balance[sym] = productElements[sym]
		}
	}

	return chem.ReactionFingerprint{
		ReactantElements:  reactantElements,
		ProductElements:   productElements,
		ElementBalance:    balance,
		PhaseChanges:      phaseChanges(reactants, products),
		HasChargeTransfer: f.transfer.Analyze(r).IsRedox,
		ReactantCount:     len(reactants),
		ProductCount:      len(products),
	}
}

// countElements totals coefficient-weighted atom counts across one side.
func countElements(side []*reaction.Component) map[string]float64 {
	out := make(map[string]float64)
	for _, c := range side {
		for sym, n := range c.Composition().ElementCounts() {
			out[sym] += n * c.Coefficient()
		}
	}
	return out
}

// phaseChanges pairs the phases of formulas appearing on both sides with an
// annotation, keyed by source formula.
func phaseChanges(reactants, products []*reaction.Component) map[string]chem.PhaseChange {
	reactantPhases := make(map[string]chem.Phase)
	for _, c := range reactants {
		if c.Phase() != chem.PhaseNone {
			reactantPhases[c.Formula()] = c.Phase()
		}
	}
	changes := make(map[string]chem.PhaseChange)
	for _, c := range products {
		if c.Phase() == chem.PhaseNone {
			continue
		}
		if from, ok := reactantPhases[c.Formula()]; ok && from != c.Phase() {
			changes[c.Formula()] = chem.PhaseChange{From: from, To: c.Phase()}
		}
	}
	return changes
}
