package classify

import (
	"sort"
	"strings"

	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Functional-group analysis
// ─────────────────────────────────────────────────────────────────────────────

// Functional group names produced by GroupAnalyzer.
const (
	GroupAlcohol        = "alcohol"
	GroupAldehyde       = "aldehyde"
	GroupKetone         = "ketone"
	GroupCarboxylicAcid = "carboxylic_acid"
	GroupEster          = "ester"
	GroupAmine          = "amine"
	GroupNitrile        = "nitrile"
	GroupNitro          = "nitro"
	GroupHalide         = "halide"
)

// Named mechanisms derived from group transformations.
const (
	MechanismOxidation    = "oxidation"
	MechanismReduction    = "reduction"
	MechanismSubstitution = "nucleophilic_substitution"
	MechanismEsterify     = "esterification"
	MechanismHydrolysis   = "hydrolysis"
	MechanismUnknown      = "unknown"
)

// Transformation is a reactant-side group paired with a product-side group it
// plausibly turned into.
type Transformation struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GroupAnalysis is the outcome of functional-group pattern matching over one
// reaction.
type GroupAnalysis struct {
	ReactantGroups  map[string]float64 `json:"reactant_groups"`
	ProductGroups   map[string]float64 `json:"product_groups"`
	Transformations []Transformation   `json:"transformations,omitempty"`
	Mechanism       string             `json:"mechanism"`
}

// GroupAnalyzer detects functional groups by substring matching of canonical
// group tokens against each component's source formula.  Matching runs on the
// formula as entered because Hill canonicalisation destroys tokens like
// "COOH".  This is a string heuristic, not a structural analysis; it exists to
// give the classifier a coarse organic-mechanism signal.
type GroupAnalyzer struct{}

// Analyze produces the group counts per side, the derived transformations,
// and the named mechanism, if any pair of transformations matches a known
// pattern.
func (GroupAnalyzer) Analyze(r *reaction.Reaction) GroupAnalysis {
	reactantGroups := identifyGroups(r.Reactants())
	productGroups := identifyGroups(r.Products())

	// A group diminished on the reactant side paired with a group grown on
	// the product side is a candidate transformation.
	var transformations []Transformation
	for _, from := range sortedKeys(reactantGroups) {
		if reactantGroups[from] <= productGroups[from] {
			continue
		}
		for _, to := range sortedKeys(productGroups) {
			if productGroups[to] > reactantGroups[to] {
				transformations = append(transformations, Transformation{From: from, To: to})
			}
		}
	}

	return GroupAnalysis{
		ReactantGroups:  reactantGroups,
		ProductGroups:   productGroups,
		Transformations: transformations,
		Mechanism:       deriveMechanism(transformations),
	}
}

func deriveMechanism(transformations []Transformation) string {
	has := func(from, to string) bool {
		for _, tr := range transformations {
			if tr.From == from && tr.To == to {
				return true
			}
		}
		return false
	}

	switch {
	case has(GroupAlcohol, GroupKetone) || has(GroupAlcohol, GroupAldehyde):
		return MechanismOxidation
	case has(GroupKetone, GroupAlcohol) || has(GroupAldehyde, GroupAlcohol):
		return MechanismReduction
	case has(GroupHalide, GroupAlcohol):
		return MechanismSubstitution
	case has(GroupAlcohol, GroupEster) && has(GroupCarboxylicAcid, GroupEster):
		return MechanismEsterify
	case has(GroupEster, GroupAlcohol) && has(GroupEster, GroupCarboxylicAcid):
		return MechanismHydrolysis
	}
	return MechanismUnknown
}

// identifyGroups counts group occurrences on one side, weighted by
// coefficient.
func identifyGroups(side []*reaction.Component) map[string]float64 {
	counts := make(map[string]float64)
	for _, comp := range side {
		formula := comp.Formula()
		coeff := comp.Coefficient()

		if strings.Contains(formula, "OH") && !strings.HasPrefix(formula, "HO") {
			counts[GroupAlcohol] += coeff
		}
		if strings.Contains(formula, "CHO") ||
			(strings.HasSuffix(formula, "O") && strings.Contains(formula, "C")) {
			counts[GroupAldehyde] += coeff
		}
		if strings.Contains(formula, "CO") &&
			!strings.Contains(formula, "CHO") && !strings.Contains(formula, "COOH") {
			counts[GroupKetone] += coeff
		}
		if strings.Contains(formula, "COOH") {
			counts[GroupCarboxylicAcid] += coeff
		}
		if strings.Contains(formula, "COO") && !strings.Contains(formula, "COOH") {
			counts[GroupEster] += coeff
		}
		if strings.Contains(formula, "NH2") {
			counts[GroupAmine] += coeff
		}
		if strings.Contains(formula, "CN") {
			counts[GroupNitrile] += coeff
		}
		if strings.Contains(formula, "NO2") {
			counts[GroupNitro] += coeff
		}
		for _, halogen := range []string{"F", "Cl", "Br", "I"} {
			if strings.Contains(formula, halogen) {
				counts[GroupHalide] += coeff
				break
			}
		}
	}
	return counts
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
