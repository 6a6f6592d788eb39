package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/pkg/errors"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

func TestParseEquation_Arrows(t *testing.T) {
	for _, eq := range []string{
		"CH4 + 2O2 -> CO2 + 2H2O",
		"CH4 + 2O2 → CO2 + 2H2O",
		"CH4 + 2O2 = CO2 + 2H2O",
	} {
		r, err := ParseEquation(eq)
		require.NoError(t, err, eq)
		require.Len(t, r.Reactants(), 2, eq)
		require.Len(t, r.Products(), 2, eq)
		assert.InDelta(t, 2, r.Reactants()[1].Coefficient(), 1e-12, eq)
		assert.True(t, r.IsBalanced(0), eq)
	}
}

func TestParseEquation_CoefficientForms(t *testing.T) {
	r, err := ParseEquation("2 H2 + O2 -> 2H2O")
	require.NoError(t, err)
	assert.InDelta(t, 2, r.Reactants()[0].Coefficient(), 1e-12)
	assert.Equal(t, "H2", r.Reactants()[0].Formula())
	assert.InDelta(t, 1, r.Reactants()[1].Coefficient(), 1e-12)

	r, err = ParseEquation("H2 + 0.5O2 -> H2O")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.Reactants()[1].Coefficient(), 1e-12)
}

func TestParseEquation_IonsAndPhases(t *testing.T) {
	r, err := ParseEquation("Ce^4+ + Fe^2+ -> Fe^3+ + Ce^3+")
	require.NoError(t, err)
	require.Len(t, r.Reactants(), 2)
	assert.Equal(t, 4, r.Reactants()[0].Composition().Charge())
	assert.Equal(t, 2, r.Reactants()[1].Composition().Charge())

	r, err = ParseEquation("Zn(s) + CuSO4(aq) -> ZnSO4(aq) + Cu(s)")
	require.NoError(t, err)
	assert.Equal(t, chem.PhaseSolid, r.Reactants()[0].Phase())
	assert.Equal(t, chem.PhaseAqueous, r.Products()[0].Phase())
}

func TestParseEquation_Errors(t *testing.T) {
	for _, eq := range []string{"", "   ", "H2 + O2", "-> H2O", "H2 + O2 ->"} {
		_, err := ParseEquation(eq)
		require.Error(t, err, "%q", eq)
		assert.True(t, errors.IsCode(err, errors.CodeInvalidEquation), "%q", eq)
	}

	_, err := ParseEquation("H2 + Xx -> H2Xx")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnknownElement))
}
