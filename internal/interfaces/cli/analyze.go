package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/ReactionIQ/internal/application/analysis"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <equation>",
		Short: "Produce a full analysis report",
		Long:  "Analyze balances the equation (best effort), classifies the reaction, and\nreports electron transfer, functional groups, and the element fingerprint.",
		Example: `  reactioniq analyze "H2 + F2 -> HF"
  reactioniq analyze "Ce⁴⁺ + Fe²⁺ -> Fe³⁺ + Ce³⁺" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			report, err := cliCtx.Service.Analyze(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if strings.EqualFold(cliCtx.OutputFormat, "json") {
				return printJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
			return nil
		},
	}
}

// renderReport formats the text view of a report.
func renderReport(r *analysis.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "report:    %s\n", r.ID)
	fmt.Fprintf(&sb, "equation:  %s\n", r.Balanced)
	if r.BalanceError != "" {
		fmt.Fprintf(&sb, "balance:   failed (%s)\n", r.BalanceError)
	} else {
		fmt.Fprintf(&sb, "balance:   ok, coefficients %v\n", r.Coefficients)
	}
	fmt.Fprintf(&sb, "mass:      reactants %.3f g/mol, products %.3f g/mol\n",
		r.Verification.ReactantMass, r.Verification.ProductMass)
	if len(r.Verification.UnbalancedElements) > 0 {
		fmt.Fprintf(&sb, "unbalanced: %s\n", strings.Join(r.Verification.UnbalancedElements, ", "))
	}
	fmt.Fprintf(&sb, "type:      %s\n", r.Classification.PrimaryType)
	for _, line := range confidenceLines(r.Classification.ConfidenceScores) {
		fmt.Fprintf(&sb, "  %s\n", line)
	}

	if r.ElectronTransfer.IsRedox {
		fmt.Fprintf(&sb, "redox:     oxidizer %s, reducer %s\n",
			orDash(r.ElectronTransfer.OxidizingAgent), orDash(r.ElectronTransfer.ReducingAgent))
	}
	if len(r.FunctionalGroups.Transformations) > 0 {
		fmt.Fprintf(&sb, "mechanism: %s\n", r.FunctionalGroups.Mechanism)
		for _, tr := range r.FunctionalGroups.Transformations {
			fmt.Fprintf(&sb, "  %s -> %s\n", tr.From, tr.To)
		}
	}
	if th := r.Thermodynamics; th != nil {
		fmt.Fprintf(&sb, "thermo:    ΔH=%.1f kJ/mol, ΔS=%.1f J/(mol·K), ΔG=%.1f kJ/mol\n",
			th.DeltaH, th.DeltaS, th.DeltaG)
		fmt.Fprintf(&sb, "           %s\n", th.TemperatureProfile)
	}
	for _, f := range r.RuleFailures {
		fmt.Fprintf(&sb, "rule skipped: %s (%s)\n", f.Type, f.Reason)
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
