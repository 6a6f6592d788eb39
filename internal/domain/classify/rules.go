package classify

import (
	"fmt"

	"github.com/turtacn/ReactionIQ/internal/domain/molecule"
	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// Acid/base lookup tables
// ─────────────────────────────────────────────────────────────────────────────

// knownAcids and knownBases map source formulas to their strength.  Keys are
// source-form formulas so entries like "Ca(OH)2" and "CH3COOH" match how
// users write them.
var knownAcids = map[string]string{
	"HCl": "strong", "H2SO4": "strong", "HNO3": "strong",
	"HBr": "strong", "HI": "strong", "HClO4": "strong",
	"H3PO4": "weak", "CH3COOH": "weak", "HF": "weak",
	"H2CO3": "weak", "H2S": "weak", "HCN": "weak",
}

var knownBases = map[string]string{
	"NaOH": "strong", "KOH": "strong", "LiOH": "strong",
	"Ca(OH)2": "strong", "Ba(OH)2": "strong", "Sr(OH)2": "strong",
	"NH3": "weak", "CH3NH2": "weak", "C5H5N": "weak",
}

// ─────────────────────────────────────────────────────────────────────────────
// Expert rule engine
// ─────────────────────────────────────────────────────────────────────────────

// Rule is one classification predicate with a fixed confidence.  A predicate
// returning an error is treated as non-matching; the engine records the
// failure instead of propagating it.
type Rule struct {
	Type       chem.ReactionType
	Confidence float64
	Predicate  func(*reaction.Reaction) (bool, error)
}

// RuleMatch is a rule that fired.
type RuleMatch struct {
	Type       chem.ReactionType
	Confidence float64
}

// RuleFailure records a predicate that errored during evaluation.  Failures
// never influence the confidence map; they exist so callers can see why a
// rule was skipped.
type RuleFailure struct {
	Type chem.ReactionType
	Err  error
}

// RuleEngine evaluates an ordered rule list independently; a reaction may
// match several rules at once.
type RuleEngine struct {
	rules []Rule
}

// NewRuleEngine returns an engine loaded with the built-in rules.
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{rules: builtinRules()}
}

// NewRuleEngineWith returns an engine with a caller-supplied rule list, used
// by tests and by deployments with custom chemistry.
func NewRuleEngineWith(rules []Rule) *RuleEngine {
	return &RuleEngine{rules: rules}
}

// Evaluate runs every rule against r.  It never returns an error: erroring
// predicates become RuleFailure entries.
func (e *RuleEngine) Evaluate(r *reaction.Reaction) ([]RuleMatch, []RuleFailure) {
	var matches []RuleMatch
	var failures []RuleFailure
	for _, rule := range e.rules {
		ok, err := evaluateRule(rule, r)
		if err != nil {
			failures = append(failures, RuleFailure{Type: rule.Type, Err: err})
			continue
		}
		if ok {
			matches = append(matches, RuleMatch{Type: rule.Type, Confidence: rule.Confidence})
		}
	}
	return matches, failures
}

// evaluateRule shields the engine from panicking predicates as well as
// erroring ones.
func evaluateRule(rule Rule, r *reaction.Reaction) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = fmt.Errorf("rule predicate panicked: %v", rec)
		}
	}()
	return rule.Predicate(r)
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in rules
// ─────────────────────────────────────────────────────────────────────────────

func builtinRules() []Rule {
	return []Rule{
		{
			// Hydrocarbon + O2 → CO2 + H2O.
			Type:       chem.TypeCombustion,
			Confidence: 0.95,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				reactants, products := r.Reactants(), r.Products()
				hasHydrocarbon := false
				hasOxygen := false
				for _, c := range reactants {
					counts := c.Composition().ElementCounts()
					if counts["C"] > 0 && counts["H"] > 0 {
						hasHydrocarbon = true
					}
					if c.Composition().Formula() == "O2" {
						hasOxygen = true
					}
				}
				return hasHydrocarbon && hasOxygen &&
					containsFormula(products, "CO2") && containsFormula(products, "H2O"), nil
			},
		},
		{
			// Known acid + known base → … + H2O.
			Type:       chem.TypeAcidBase,
			Confidence: 0.9,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				reactants := r.Reactants()
				return containsAcid(reactants) && containsBase(reactants) &&
					containsFormula(r.Products(), "H2O"), nil
			},
		},
		{
			// Aqueous reactants yielding a solid product.
			Type:       chem.TypePrecipitation,
			Confidence: 0.85,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				return anyPhase(r.Reactants(), chem.PhaseAqueous) &&
					anyPhase(r.Products(), chem.PhaseSolid) &&
					len(r.Reactants()) >= 2, nil
			},
		},
		{
			Type:       chem.TypeSingleReplacement,
			Confidence: 0.8,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				return isSingleReplacement(r.Reactants(), r.Products()), nil
			},
		},
		{
			Type:       chem.TypeDoubleReplacement,
			Confidence: 0.8,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				return isDoubleReplacement(r.Reactants(), r.Products()), nil
			},
		},
		{
			Type:       chem.TypeSynthesis,
			Confidence: 0.9,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				return len(r.Reactants()) > 1 && len(r.Products()) == 1, nil
			},
		},
		{
			Type:       chem.TypeDecomposition,
			Confidence: 0.9,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				return len(r.Reactants()) == 1 && len(r.Products()) > 1, nil
			},
		},
		{
			// One reactant, one product, identical canonical formula.
			Type:       chem.TypeIsomerization,
			Confidence: 0.95,
			Predicate: func(r *reaction.Reaction) (bool, error) {
				reactants, products := r.Reactants(), r.Products()
				return len(reactants) == 1 && len(products) == 1 &&
					reactants[0].Composition().Formula() == products[0].Composition().Formula(), nil
			},
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate helpers
// ─────────────────────────────────────────────────────────────────────────────

func containsFormula(side []*reaction.Component, formula string) bool {
	for _, c := range side {
		if c.Composition().Formula() == formula {
			return true
		}
	}
	return false
}

func anyPhase(side []*reaction.Component, phase chem.Phase) bool {
	for _, c := range side {
		if c.Phase() == phase {
			return true
		}
	}
	return false
}

func containsAcid(side []*reaction.Component) bool {
	for _, c := range side {
		comp := c.Composition()
		if _, ok := knownAcids[comp.Source()]; ok {
			return true
		}
		// Bare hydronium proxy: an H+ ion.
		if sym, perAtom, ok := comp.IsMonatomicIon(); ok && sym == "H" && perAtom == 1 {
			return true
		}
	}
	return false
}

func containsBase(side []*reaction.Component) bool {
	for _, c := range side {
		comp := c.Composition()
		if _, ok := knownBases[comp.Source()]; ok {
			return true
		}
		// Hydroxide ion.  Source keeps the charge notation ("OH-", "OH⁻"),
		// so match on the parsed makeup instead of the string.
		if isHydroxideIon(comp) {
			return true
		}
	}
	return false
}

func isHydroxideIon(comp *molecule.Composition) bool {
	return comp.Charge() == -1 &&
		len(comp.Elements()) == 2 &&
		comp.Count("O") == 1 && comp.Count("H") == 1
}

// isSingleReplacement checks the A + BC → B + AC element-set pattern: one
// reactant is a single element that reappears in a product whose sibling
// shares elements with the compound reactant.
func isSingleReplacement(reactants, products []*reaction.Component) bool {
	if len(reactants) != 2 || len(products) != 2 {
		return false
	}
	rSets := [2]map[string]bool{elementSet(reactants[0]), elementSet(reactants[1])}
	pSets := [2]map[string]bool{elementSet(products[0]), elementSet(products[1])}

	var single string
	var compound map[string]bool
	switch {
	case len(rSets[0]) == 1:
		single, compound = soleElement(rSets[0]), rSets[1]
	case len(rSets[1]) == 1:
		single, compound = soleElement(rSets[1]), rSets[0]
	default:
		return false
	}

	for i, pSet := range pSets {
		if pSet[single] && intersects(pSets[1-i], compound) {
			return true
		}
	}
	return false
}

// isDoubleReplacement checks the AB + CD → AD + CB pattern: each reactant
// shares elements with both products.
func isDoubleReplacement(reactants, products []*reaction.Component) bool {
	if len(reactants) != 2 || len(products) != 2 {
		return false
	}
	rSets := [2]map[string]bool{elementSet(reactants[0]), elementSet(reactants[1])}
	pSets := [2]map[string]bool{elementSet(products[0]), elementSet(products[1])}

	return intersects(rSets[0], pSets[0]) && intersects(rSets[0], pSets[1]) &&
		intersects(rSets[1], pSets[0]) && intersects(rSets[1], pSets[1])
}

func elementSet(c *reaction.Component) map[string]bool {
	set := make(map[string]bool)
	for _, sym := range c.Composition().Elements() {
		set[sym] = true
	}
	return set
}

func soleElement(set map[string]bool) string {
	for sym := range set {
		return sym
	}
	return ""
}

func intersects(a, b map[string]bool) bool {
	for sym := range a {
		if b[sym] {
			return true
		}
	}
	return false
}
