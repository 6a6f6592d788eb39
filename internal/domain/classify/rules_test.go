package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

func matchedTypes(matches []RuleMatch) map[chem.ReactionType]float64 {
	out := make(map[chem.ReactionType]float64, len(matches))
	for _, m := range matches {
		out[m.Type] = m.Confidence
	}
	return out
}

func TestRules_Combustion(t *testing.T) {
	engine := NewRuleEngine()
	matches, failures := engine.Evaluate(parseReaction(t, "CH4 + 2O2 -> CO2 + 2H2O"))
	assert.Empty(t, failures)

	types := matchedTypes(matches)
	assert.InDelta(t, 0.95, types[chem.TypeCombustion], 1e-9)
}

func TestRules_AcidBase(t *testing.T) {
	engine := NewRuleEngine()
	types := matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "HCl + NaOH -> NaCl + H2O"))))
	assert.InDelta(t, 0.9, types[chem.TypeAcidBase], 1e-9)

	// Weak acid and weak base still match; source-form keys survive Hill
	// canonicalisation.
	types = matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "CH3COOH + NH3 -> CH3COONH4 + H2O"))))
	assert.InDelta(t, 0.9, types[chem.TypeAcidBase], 1e-9)

	// Bare ions, in both charge notations.
	types = matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "H+ + OH- -> H2O"))))
	assert.InDelta(t, 0.9, types[chem.TypeAcidBase], 1e-9)

	types = matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "H⁺ + OH⁻ -> H2O"))))
	assert.InDelta(t, 0.9, types[chem.TypeAcidBase], 1e-9)
}

func TestIsHydroxideIon(t *testing.T) {
	for _, tc := range []struct {
		formula string
		want    bool
	}{
		{"OH-", true},
		{"OH⁻", true},
		{"OH", false},
		{"Cl-", false},
		{"O2H-", false},
	} {
		comp := parseReaction(t, tc.formula+" -> "+tc.formula).Reactants()[0].Composition()
		assert.Equal(t, tc.want, isHydroxideIon(comp), tc.formula)
	}
}

func TestRules_Precipitation(t *testing.T) {
	engine := NewRuleEngine()
	eq := "AgNO3(aq) + NaCl(aq) -> AgCl(s) + NaNO3(aq)"
	types := matchedTypes(firstOf(engine.Evaluate(parseReaction(t, eq))))
	assert.InDelta(t, 0.85, types[chem.TypePrecipitation], 1e-9)
	// The same equation also fits the double-replacement pattern.
	assert.InDelta(t, 0.8, types[chem.TypeDoubleReplacement], 1e-9)
}

func TestRules_SingleReplacement(t *testing.T) {
	engine := NewRuleEngine()
	types := matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "Zn + CuSO4 -> ZnSO4 + Cu"))))
	assert.InDelta(t, 0.8, types[chem.TypeSingleReplacement], 1e-9)
	_, double := types[chem.TypeDoubleReplacement]
	assert.False(t, double)
}

func TestRules_SynthesisAndDecomposition(t *testing.T) {
	engine := NewRuleEngine()

	types := matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "N2 + 3H2 -> 2NH3"))))
	assert.InDelta(t, 0.9, types[chem.TypeSynthesis], 1e-9)

	types = matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "2H2O2 -> 2H2O + O2"))))
	assert.InDelta(t, 0.9, types[chem.TypeDecomposition], 1e-9)
}

func TestRules_Isomerization(t *testing.T) {
	engine := NewRuleEngine()
	// Cyclobutane to butene: same canonical formula on both sides.
	types := matchedTypes(firstOf(engine.Evaluate(parseReaction(t, "C4H8 -> C4H8"))))
	assert.InDelta(t, 0.95, types[chem.TypeIsomerization], 1e-9)
}

func TestRules_FailuresAreTypedNotFatal(t *testing.T) {
	engine := NewRuleEngineWith([]Rule{
		{
			Type:       chem.TypeCombustion,
			Confidence: 0.9,
			Predicate: func(*reaction.Reaction) (bool, error) {
				return false, fmt.Errorf("lookup table unavailable")
			},
		},
		{
			Type:       chem.TypeRedox,
			Confidence: 0.9,
			Predicate: func(*reaction.Reaction) (bool, error) {
				panic("boom")
			},
		},
		{
			Type:       chem.TypeSynthesis,
			Confidence: 0.9,
			Predicate: func(*reaction.Reaction) (bool, error) {
				return true, nil
			},
		},
	})

	matches, failures := engine.Evaluate(parseReaction(t, "H2 + O2 -> H2O"))
	require.Len(t, matches, 1)
	assert.Equal(t, chem.TypeSynthesis, matches[0].Type)

	require.Len(t, failures, 2)
	assert.Equal(t, chem.TypeCombustion, failures[0].Type)
	assert.Equal(t, chem.TypeRedox, failures[1].Type)
	assert.Error(t, failures[1].Err)
}

func firstOf(matches []RuleMatch, _ []RuleFailure) []RuleMatch { return matches }
