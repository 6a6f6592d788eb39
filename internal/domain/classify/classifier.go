package classify

import (
	"github.com/turtacn/ReactionIQ/internal/domain/element"
	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// fallbackConfidence is the baseline blended in for the type the
// count-cascade heuristic derives when richer signals scored it lower.
const fallbackConfidence = 0.8

// redoxOverrideConfidence is the floor forced on the redox score when
// electron transfer is detected.
const redoxOverrideConfidence = 0.95

// ─────────────────────────────────────────────────────────────────────────────
// Classifier
// ─────────────────────────────────────────────────────────────────────────────

// Classifier merges every classification signal into one confidence map and
// picks the primary type.  Classification is total and read-only: it never
// returns an error and never mutates the reaction beyond its result cache.
type Classifier struct {
	transfer *TransferAnalyzer
	rules    *RuleEngine
	groups   GroupAnalyzer
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRuleEngine substitutes the rule engine.
func WithRuleEngine(e *RuleEngine) Option {
	return func(c *Classifier) {
		if e != nil {
			c.rules = e
		}
	}
}

// WithElementTable rebuilds the analysis chain on an alternate element table.
func WithElementTable(tbl *element.Table) Option {
	return func(c *Classifier) {
		threshold := c.transfer.threshold
		c.transfer = NewTransferAnalyzer(NewOxidationEstimator(tbl))
		c.transfer.threshold = threshold
	}
}

// WithRedoxThreshold overrides the minimum oxidation-state shift treated as
// electron transfer.
func WithRedoxThreshold(threshold float64) Option {
	return func(c *Classifier) {
		if threshold > 0 {
			c.transfer.threshold = threshold
		}
	}
}

// NewClassifier returns a classifier wired with the built-in tables and
// rules.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		transfer: NewTransferAnalyzer(NewOxidationEstimator(nil)),
		rules:    NewRuleEngine(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify determines the reaction type of r with per-type confidences.  The
// result is cached on the reaction and reused until the next mutation.
func (c *Classifier) Classify(r *reaction.Reaction) chem.ClassificationResult {
	if cached, ok := r.CachedClassification(); ok {
		return cached
	}

	scores := make(map[chem.ReactionType]float64)

	// Rule engine first: max confidence per type across matching rules.
	matches, _ := c.rules.Evaluate(r)
	for _, m := range matches {
		if m.Confidence > scores[m.Type] {
			scores[m.Type] = m.Confidence
		}
	}

	// Electron transfer explains away the coarse structural categories: a
	// detected redox halves synthesis/decomposition and floors its own
	// score.
	transfer := c.transfer.Analyze(r)
	if transfer.IsRedox {
		if scores[chem.TypeRedox] < redoxOverrideConfidence {
			scores[chem.TypeRedox] = redoxOverrideConfidence
		}
		if v, ok := scores[chem.TypeSynthesis]; ok {
			scores[chem.TypeSynthesis] = v * 0.5
		}
		if v, ok := scores[chem.TypeDecomposition]; ok {
			scores[chem.TypeDecomposition] = v * 0.5
		}
	}

	// Count-cascade fallback, blended at a fixed baseline.
	if fb := fallbackType(r); fb != chem.TypeUnknown {
		if scores[fb] < fallbackConfidence {
			scores[fb] = fallbackConfidence
		}
	}

	result := chem.ClassificationResult{
		ConfidenceScores: scores,
		PrimaryType:      selectPrimary(scores),
	}
	r.StoreClassification(result)
	return result
}

// ElectronTransfer exposes the transfer analysis for r.
func (c *Classifier) ElectronTransfer(r *reaction.Reaction) chem.ElectronTransfer {
	return c.transfer.Analyze(r)
}

// FunctionalGroups exposes the functional-group analysis for r.
func (c *Classifier) FunctionalGroups(r *reaction.Reaction) GroupAnalysis {
	return c.groups.Analyze(r)
}

// Fingerprint exposes the fingerprint snapshot for r.
func (c *Classifier) Fingerprint(r *reaction.Reaction) chem.ReactionFingerprint {
	return NewFingerprinter(c.transfer).Fingerprint(r)
}

// RuleMatches exposes the raw expert-rule evaluation for r.
func (c *Classifier) RuleMatches(r *reaction.Reaction) ([]RuleMatch, []RuleFailure) {
	return c.rules.Evaluate(r)
}

// selectPrimary returns the argmax of the confidence map.  Ties resolve by
// the fixed chem.TypePriority ordering so classification is deterministic.
func selectPrimary(scores map[chem.ReactionType]float64) chem.ReactionType {
	best := chem.TypeUnknown
	bestScore := 0.0
	for _, t := range chem.TypePriority {
		if score, ok := scores[t]; ok && score > bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

// fallbackType is the coarse reactant/product-count cascade used when richer
// signals are silent: 1→1 with the same formula is isomerization, 1→N is
// decomposition, N→1 is synthesis, and 2→2 resolves by element-set overlap.
func fallbackType(r *reaction.Reaction) chem.ReactionType {
	reactants, products := r.Reactants(), r.Products()
	nr, np := len(reactants), len(products)
	switch {
	case nr == 0 || np == 0:
		return chem.TypeUnknown
	case nr == 1 && np == 1:
		if reactants[0].Composition().Formula() == products[0].Composition().Formula() {
			return chem.TypeIsomerization
		}
		return chem.TypeUnknown
	case nr == 1 && np > 1:
		return chem.TypeDecomposition
	case nr > 1 && np == 1:
		return chem.TypeSynthesis
	case nr == 2 && np == 2:
		if isSingleReplacement(reactants, products) {
			return chem.TypeSingleReplacement
		}
		if isDoubleReplacement(reactants, products) {
			return chem.TypeDoubleReplacement
		}
	}
	return chem.TypeUnknown
}
