package thermo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/internal/domain/reaction"
	"github.com/turtacn/ReactionIQ/pkg/errors"
)

func TestEstimateRateOrder(t *testing.T) {
	est := EstimateRateOrder(parseReaction(t, "2H2O2 -> 2H2O + O2"))
	assert.Equal(t, 1.0, est.OverallOrder)
	assert.Equal(t, map[string]float64{"H2O2": 1}, est.IndividualOrders)

	est = EstimateRateOrder(parseReaction(t, "N2 + 3H2 -> 2NH3"))
	assert.Equal(t, 2.0, est.OverallOrder)
	assert.Equal(t, map[string]float64{"N2": 1, "H2": 1}, est.IndividualOrders)

	// Three or more reactants fall back to the coefficients.
	est = EstimateRateOrder(parseReaction(t, "Fe + 2S + 3O2 -> FeS2O6"))
	assert.Equal(t, 6.0, est.OverallOrder)
	assert.Equal(t, 3.0, est.IndividualOrders["O2"])
}

func TestEstimateRateOrder_IgnoresCatalysts(t *testing.T) {
	r := parseReaction(t, "2H2O2 -> 2H2O + O2")
	require.NoError(t, r.AddReactantFormula("KI", 1, true))

	est := EstimateRateOrder(r)
	assert.Equal(t, 1.0, est.OverallOrder)
}

func TestActivationEnergy_RecoversArrheniusParameters(t *testing.T) {
	const (
		ea = 50.0 // kJ/mol
		a  = 1e10
	)
	rates := make(map[float64]float64)
	for _, temp := range []float64{300, 350, 400, 450} {
		rates[temp] = a * math.Exp(-ea*1000/(GasConstant*temp))
	}

	result, err := ActivationEnergy(rates)
	require.NoError(t, err)
	assert.InDelta(t, ea, result.ActivationEnergy, 1e-6)
	assert.InEpsilon(t, a, result.PreExponentialFactor, 1e-6)
	assert.Greater(t, result.RSquared, 0.9999)
	assert.Equal(t, 4, result.DataPoints)
}

func TestActivationEnergy_InsufficientData(t *testing.T) {
	_, err := ActivationEnergy(map[float64]float64{300: 1.5})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInsufficientData))

	// Non-positive rates are discarded before the pair count check.
	_, err = ActivationEnergy(map[float64]float64{300: 1.5, 350: 0})
	require.Error(t, err)
}

func TestAtomEconomy(t *testing.T) {
	// CO2 (44.01) out of 80.04 g/mol of product mass.
	economy := AtomEconomy(parseReaction(t, "CH4 + 2O2 -> CO2 + 2H2O"))
	assert.InDelta(t, 55.0, economy, 0.1)

	assert.Zero(t, AtomEconomy(reaction.New("empty")))
}

func TestTheoreticalYield(t *testing.T) {
	r := parseReaction(t, "CH4 + 2O2 -> CO2 + 2H2O")

	yields, err := TheoreticalYield(r, "O2", 4)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, yields["CO2"], 1e-9)
	assert.InDelta(t, 4.0, yields["H2O"], 1e-9)

	_, err = TheoreticalYield(r, "N2", 1)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeThermodynamics))

	_, err = TheoreticalYield(parseReaction(t, "H2 + O2 -> H2O"), "H2", 1)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnbalancedInput))
}
