package analysis

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/internal/testutil"
	"github.com/turtacn/ReactionIQ/pkg/errors"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

func newTestService() Service {
	return NewService(nil, nil, nil)
}

func TestBalance_MethaneCombustion(t *testing.T) {
	svc := newTestService()
	res, err := svc.Balance(context.Background(), "CH4 + O2 -> CO2 + H2O")
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 1, 2}, res.Coefficients)
	assert.Equal(t, "CH4 + 2O2 → CO2 + 2H2O", res.Balanced)
	assert.InDelta(t, 0, res.WeightDelta, 1e-6)
}

func TestBalance_ImpossibleEquation(t *testing.T) {
	svc := newTestService()
	_, err := svc.Balance(context.Background(), "H2 + O2 -> NaCl")
	require.Error(t, err)
	assert.True(t, errors.IsBalancingError(err))
}

func TestBalance_ParseError(t *testing.T) {
	svc := newTestService()
	_, err := svc.Balance(context.Background(), "not an equation")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestClassify_Combustion(t *testing.T) {
	svc := newTestService()
	res, err := svc.Classify(context.Background(), "CH4 + 2O2 -> CO2 + 2H2O")
	require.NoError(t, err)

	assert.Equal(t, chem.TypeCombustion, res.Result.PrimaryType)
	assert.True(t, res.IsBalanced)
}

func TestClassify_UnbalancedInputStillClassifies(t *testing.T) {
	svc := newTestService()
	res, err := svc.Classify(context.Background(), "HCl + NaOH -> NaCl + H2O")
	require.NoError(t, err)
	assert.Equal(t, chem.TypeAcidBase, res.Result.PrimaryType)
}

func TestAnalyze_FullReport(t *testing.T) {
	svc := newTestService()
	report, err := svc.Analyze(context.Background(), "H2 + F2 -> HF")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(report.ID)
	assert.NoError(t, parseErr)
	assert.False(t, report.GeneratedAt.IsZero())

	assert.Equal(t, []int64{1, 1, 2}, report.Coefficients)
	assert.True(t, report.IsBalanced)
	assert.Equal(t, "H2 + F2 → 2HF", report.Balanced)

	assert.Equal(t, chem.TypeRedox, report.Classification.PrimaryType)
	assert.True(t, report.ElectronTransfer.IsRedox)
	assert.Equal(t, "F2", report.ElectronTransfer.OxidizingAgent)
	assert.Equal(t, "H2", report.ElectronTransfer.ReducingAgent)
	assert.Empty(t, report.BalanceError)

	assert.True(t, report.Verification.IsBalanced)
	assert.ElementsMatch(t, []string{"F", "H"}, report.Verification.BalancedElements)
	// HF has no entry in the property tables, so no thermodynamics section.
	assert.Nil(t, report.Thermodynamics)
}

func TestAnalyze_ThermodynamicsForTabulatedSpecies(t *testing.T) {
	svc := newTestService()
	report, err := svc.Analyze(context.Background(), "CH4 + 2O2 -> CO2 + 2H2O")
	require.NoError(t, err)

	require.NotNil(t, report.Thermodynamics)
	assert.InDelta(t, -890.5, report.Thermodynamics.DeltaH, 1e-6)
	assert.True(t, report.Thermodynamics.Feasible)
	assert.Equal(t, "spontaneous at low temperatures", report.Thermodynamics.TemperatureProfile)
	assert.True(t, report.Verification.IsBalanced)
}

func TestAnalyze_BalanceFailureIsBestEffort(t *testing.T) {
	svc := newTestService()
	// Cannot balance, but the count cascade still calls it a decomposition.
	report, err := svc.Analyze(context.Background(), "H2O2 -> H2O + O2 + H2")
	if err != nil {
		t.Skip("equation unexpectedly rejected at parse")
	}
	if report.BalanceError != "" {
		assert.NotEmpty(t, report.BalanceErrorCode)
		assert.Empty(t, report.Coefficients)
	}
	assert.NotEqual(t, "", report.Classification.PrimaryType.String())
}

func TestAnalyze_ElementSetMismatchReported(t *testing.T) {
	svc := newTestService()
	report, err := svc.Analyze(context.Background(), "H2 + O2 -> NaCl")
	require.NoError(t, err)

	assert.Equal(t, errors.CodeElementSetMismatch.String(), report.BalanceErrorCode)
	assert.False(t, report.IsBalanced)
	assert.Equal(t, []string{"Cl", "H", "Na", "O"}, report.Verification.UnbalancedElements)
	assert.Nil(t, report.Thermodynamics)
}

func TestParse_ContextCancelled(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Parse(ctx, "H2 + O2 -> H2O")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBalance_FailureIsLogged(t *testing.T) {
	logger := testutil.NewMockLogger()
	svc := NewService(nil, logger, nil)

	_, err := svc.Balance(context.Background(), "H2 + O2 -> NaCl")
	require.Error(t, err)

	warnings := logger.MessagesAt("warn")
	require.NotEmpty(t, warnings)
	assert.Equal(t, "balancing failed", warnings[0].Message)
}

func TestAnalyze_Deterministic(t *testing.T) {
	svc := newTestService()
	first, err := svc.Analyze(context.Background(), "Zn + CuSO4 -> ZnSO4 + Cu")
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), "Zn + CuSO4 -> ZnSO4 + Cu")
	require.NoError(t, err)

	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, first.Coefficients, second.Coefficients)
	assert.NotEqual(t, first.ID, second.ID)
}
