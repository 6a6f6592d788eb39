package molecule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/pkg/errors"
	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

func TestParse_SimpleFormulas(t *testing.T) {
	c, err := Parse("H2O")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"H": 2, "O": 1}, c.ElementCounts())
	assert.Equal(t, "H2O", c.Formula())
	assert.Equal(t, "H2O", c.Source())
	assert.Equal(t, 0, c.Charge())
	assert.InDelta(t, 18.015, c.MolecularWeight(), 0.01)

	c, err = Parse("CH4")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"C": 1, "H": 4}, c.ElementCounts())

	c, err = Parse("O2")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"O": 2}, c.ElementCounts())
}

func TestParse_NestedGroups(t *testing.T) {
	c, err := Parse("Ca(OH)2")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Ca": 1, "O": 2, "H": 2}, c.ElementCounts())

	c, err = Parse("Al2(SO4)3")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Al": 2, "S": 3, "O": 12}, c.ElementCounts())

	c, err = Parse("K4[Fe(CN)6]")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"K": 4, "Fe": 1, "C": 6, "N": 6}, c.ElementCounts())
}

func TestParse_Hydrates(t *testing.T) {
	for _, in := range []string{"CuSO4·5H2O", "CuSO4.5H2O", "CuSO4*5H2O"} {
		c, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, map[string]float64{"Cu": 1, "S": 1, "O": 9, "H": 10}, c.ElementCounts(), in)
	}
}

func TestParse_Charges(t *testing.T) {
	cases := []struct {
		in     string
		charge int
	}{
		{"Fe^2+", 2},
		{"Fe²⁺", 2},
		{"Ce^4+", 4},
		{"Ce⁴⁺", 4},
		{"SO4^2-", -2},
		{"Na+", 1},
		{"Cl-", -1},
		{"OH-", -1},
		{"Ca++", 2},
	}
	for _, tc := range cases {
		c, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.charge, c.Charge(), tc.in)
	}
}

func TestParse_MonatomicIon(t *testing.T) {
	c, err := Parse("Fe²⁺")
	require.NoError(t, err)
	sym, perAtom, ok := c.IsMonatomicIon()
	require.True(t, ok)
	assert.Equal(t, "Fe", sym)
	assert.InDelta(t, 2.0, perAtom, 1e-12)

	c, err = Parse("SO4^2-")
	require.NoError(t, err)
	_, _, ok = c.IsMonatomicIon()
	assert.False(t, ok)

	c, err = Parse("Fe")
	require.NoError(t, err)
	_, _, ok = c.IsMonatomicIon()
	assert.False(t, ok)
}

func TestParse_Phases(t *testing.T) {
	c, err := Parse("NaCl(aq)")
	require.NoError(t, err)
	assert.Equal(t, chem.PhaseAqueous, c.Phase())
	assert.Equal(t, "NaCl", c.Source())
	assert.Equal(t, "NaCl(aq)", c.String())

	c, err = Parse("H2O(l)")
	require.NoError(t, err)
	assert.Equal(t, chem.PhaseLiquid, c.Phase())

	c, err = Parse("Fe^2+(aq)")
	require.NoError(t, err)
	assert.Equal(t, chem.PhaseAqueous, c.Phase())
	assert.Equal(t, 2, c.Charge())
}

func TestParse_HillOrdering(t *testing.T) {
	c, err := Parse("C2H5OH")
	require.NoError(t, err)
	assert.Equal(t, "C2H6O", c.Formula())
	// Source form keeps the functional-group token intact.
	assert.Equal(t, "C2H5OH", c.Source())

	// No carbon: strictly alphabetical.
	c, err = Parse("NaCl")
	require.NoError(t, err)
	assert.Equal(t, "ClNa", c.Formula())

	c, err = Parse("CH3COOH")
	require.NoError(t, err)
	assert.Equal(t, "C2H4O2", c.Formula())
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "(aq)"} {
		_, err := Parse(in)
		require.Error(t, err, "%q", in)
		assert.True(t, errors.IsCode(err, errors.CodeInvalidFormula), "%q", in)
	}

	_, err := Parse("Xx2O")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeUnknownElement))

	for _, in := range []string{"Ca(OH", "CaOH)2", "2H2O", "H2O!"} {
		_, err := Parse(in)
		require.Error(t, err, "%q", in)
		assert.True(t, errors.IsCode(err, errors.CodeInvalidFormula), "%q", in)
	}
}
