package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/ReactionIQ/internal/application/analysis"
)

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBalanceCommand_Text(t *testing.T) {
	out, err := runCommand(t, "balance", "CH4 + O2 -> CO2 + H2O")
	require.NoError(t, err)
	assert.Contains(t, out, "CH4 + 2O2 → CO2 + 2H2O")
}

func TestBalanceCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "balance", "H2 + F2 -> HF", "-o", "json")
	require.NoError(t, err)

	var res analysis.BalanceResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []int64{1, 1, 2}, res.Coefficients)
	assert.Equal(t, "H2 + F2 → 2HF", res.Balanced)
}

func TestBalanceCommand_Verbose(t *testing.T) {
	out, err := runCommand(t, "balance", "H2 + O2 -> H2O", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "coefficients: [2 1 2]")
}

func TestBalanceCommand_ImpossibleEquation(t *testing.T) {
	_, err := runCommand(t, "balance", "H2 + O2 -> NaCl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BAL_")
}

func TestClassifyCommand_Text(t *testing.T) {
	out, err := runCommand(t, "classify", "HCl + NaOH -> NaCl + H2O")
	require.NoError(t, err)
	assert.Contains(t, out, "acid_base")
	assert.Contains(t, out, "0.90")
}

func TestClassifyCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "classify", "CH4 + 2O2 -> CO2 + 2H2O", "-o", "json")
	require.NoError(t, err)

	var res analysis.ClassifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "combustion", res.Result.PrimaryType.String())
	assert.True(t, res.IsBalanced)
}

func TestAnalyzeCommand_Text(t *testing.T) {
	out, err := runCommand(t, "analyze", "H2 + F2 -> HF")
	require.NoError(t, err)
	assert.Contains(t, out, "type:      redox")
	assert.Contains(t, out, "oxidizer F2")
	assert.Contains(t, out, "reducer H2")
	assert.Contains(t, out, "mass:      reactants")
}

func TestAnalyzeCommand_TextThermodynamics(t *testing.T) {
	out, err := runCommand(t, "analyze", "CH4 + 2O2 -> CO2 + 2H2O")
	require.NoError(t, err)
	assert.Contains(t, out, "thermo:    ΔH=-890.5 kJ/mol")
	assert.Contains(t, out, "spontaneous at low temperatures")
}

func TestAnalyzeCommand_TextUnbalancedElements(t *testing.T) {
	out, err := runCommand(t, "analyze", "H2 + O2 -> NaCl")
	require.NoError(t, err)
	assert.Contains(t, out, "balance:   failed")
	assert.Contains(t, out, "unbalanced: Cl, H, Na, O")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "analyze", "2H2O2 -> 2H2O + O2", "-o", "json")
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "decomposition", report.Classification.PrimaryType.String())
	assert.True(t, report.IsBalanced)
	assert.True(t, report.Verification.IsBalanced)
	assert.NotEmpty(t, report.ID)
}

func TestCommands_RequireEquationArg(t *testing.T) {
	for _, sub := range []string{"balance", "classify", "analyze"} {
		_, err := runCommand(t, sub)
		assert.Error(t, err, sub)
	}
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	_, err := runCommand(t, "transmute", "Pb -> Au")
	assert.Error(t, err)
}
