package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

func TestClassify_Combustion(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(parseReaction(t, "CH4 + 2O2 -> CO2 + 2H2O"))

	assert.Equal(t, chem.TypeCombustion, result.PrimaryType)
	assert.InDelta(t, 0.95, result.ConfidenceScores[chem.TypeCombustion], 1e-9)
}

func TestClassify_RedoxOverridesSynthesis(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(parseReaction(t, "H2 + F2 -> 2HF"))

	assert.Equal(t, chem.TypeRedox, result.PrimaryType)
	assert.InDelta(t, 0.95, result.ConfidenceScores[chem.TypeRedox], 1e-9)
	// The synthesis signal is explained away by electron transfer, then the
	// count-cascade fallback restores its baseline.
	assert.Less(t, result.ConfidenceScores[chem.TypeSynthesis], result.ConfidenceScores[chem.TypeRedox])
}

func TestClassify_SingleReplacement(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(parseReaction(t, "Zn + CuSO4 -> ZnSO4 + Cu"))
	assert.Equal(t, chem.TypeSingleReplacement, result.PrimaryType)
}

func TestClassify_AcidBase(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(parseReaction(t, "HCl + NaOH -> NaCl + H2O"))

	assert.Equal(t, chem.TypeAcidBase, result.PrimaryType)
	assert.InDelta(t, 0.9, result.ConfidenceScores[chem.TypeAcidBase], 1e-9)
	// Neutralisation must not read as electron transfer.
	_, hasRedox := result.ConfidenceScores[chem.TypeRedox]
	assert.False(t, hasRedox)
}

func TestClassify_Decomposition(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(parseReaction(t, "2H2O2 -> 2H2O + O2"))
	assert.Equal(t, chem.TypeDecomposition, result.PrimaryType)
}

func TestClassify_IonicRedox(t *testing.T) {
	c := NewClassifier()
	r := parseReaction(t, "Ce⁴⁺ + Fe²⁺ -> Fe³⁺ + Ce³⁺")
	result := c.Classify(r)

	assert.Equal(t, chem.TypeRedox, result.PrimaryType)

	transfer := c.ElectronTransfer(r)
	assert.True(t, transfer.IsRedox)
	assert.True(t, transfer.FromCharges)
	assert.Equal(t, "Ce⁴⁺", transfer.OxidizingAgent)
	assert.Equal(t, "Fe²⁺", transfer.ReducingAgent)
}

func TestClassify_Isomerization(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(parseReaction(t, "C4H8 -> C4H8"))
	assert.Equal(t, chem.TypeIsomerization, result.PrimaryType)
}

func TestClassify_UnknownWhenNoSignal(t *testing.T) {
	c := NewClassifier()
	// 1→1 with differing formulas: no rule fires and the count cascade has
	// nothing to say, so classification degrades to unknown.
	result := c.Classify(parseReaction(t, "H2O -> H2O2"))
	assert.Equal(t, chem.TypeUnknown, result.PrimaryType)
	assert.Empty(t, result.ConfidenceScores)
}

func TestClassify_ConfidenceBoundsAndArgmax(t *testing.T) {
	c := NewClassifier()
	for _, eq := range []string{
		"CH4 + 2O2 -> CO2 + 2H2O",
		"H2 + F2 -> 2HF",
		"Zn + CuSO4 -> ZnSO4 + Cu",
		"HCl + NaOH -> NaCl + H2O",
		"2H2O2 -> 2H2O + O2",
		"N2 + 3H2 -> 2NH3",
		"Ce⁴⁺ + Fe²⁺ -> Fe³⁺ + Ce³⁺",
	} {
		result := c.Classify(parseReaction(t, eq))

		best := chem.TypeUnknown
		bestScore := 0.0
		for _, score := range result.ConfidenceScores {
			require.GreaterOrEqual(t, score, 0.0, eq)
			require.LessOrEqual(t, score, 1.0, eq)
		}
		for _, rt := range chem.TypePriority {
			if score, ok := result.ConfidenceScores[rt]; ok && score > bestScore {
				best, bestScore = rt, score
			}
		}
		assert.Equal(t, best, result.PrimaryType, eq)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier()
	first := c.Classify(parseReaction(t, "CH4 + 2O2 -> CO2 + 2H2O"))
	for i := 0; i < 20; i++ {
		again := c.Classify(parseReaction(t, "CH4 + 2O2 -> CO2 + 2H2O"))
		assert.Equal(t, first.PrimaryType, again.PrimaryType)
	}
}

func TestClassify_CachedUntilMutation(t *testing.T) {
	c := NewClassifier()
	r := parseReaction(t, "N2 + 3H2 -> 2NH3")

	first := c.Classify(r)
	cached, ok := r.CachedClassification()
	require.True(t, ok)
	assert.Equal(t, first, cached)

	// Mutation invalidates; reclassification still reaches the same verdict
	// for a scale-invariant signal set.
	require.NoError(t, r.ScaleCoefficients(2))
	_, ok = r.CachedClassification()
	assert.False(t, ok)
	again := c.Classify(r)
	assert.Equal(t, first.PrimaryType, again.PrimaryType)
}

func TestClassify_RedoxThresholdOverride(t *testing.T) {
	// A threshold above the ±1 shift of H and F suppresses the redox signal;
	// the synthesis fallback takes over.
	c := NewClassifier(WithRedoxThreshold(2))
	r := parseReaction(t, "H2 + F2 -> 2HF")

	assert.False(t, c.ElectronTransfer(r).IsRedox)
	result := c.Classify(r)
	assert.Equal(t, chem.TypeSynthesis, result.PrimaryType)
}

func TestFallbackType(t *testing.T) {
	assert.Equal(t, chem.TypeSynthesis, fallbackType(parseReaction(t, "N2 + 3H2 -> 2NH3")))
	assert.Equal(t, chem.TypeDecomposition, fallbackType(parseReaction(t, "CaCO3 -> CaO + CO2")))
	assert.Equal(t, chem.TypeIsomerization, fallbackType(parseReaction(t, "C4H8 -> C4H8")))
	assert.Equal(t, chem.TypeUnknown, fallbackType(parseReaction(t, "H2O -> H2O2")))
}
