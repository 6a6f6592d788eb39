package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/ReactionIQ/pkg/types/chem"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <equation>",
		Short: "Classify a reaction's mechanism",
		Long:  "Classify determines the reaction type (combustion, redox, acid_base, ...)\nwith a confidence score per candidate type.",
		Example: `  reactioniq classify "Zn + CuSO4 -> ZnSO4 + Cu"
  reactioniq classify "HCl + NaOH -> NaCl + H2O" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			res, err := cliCtx.Service.Classify(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if strings.EqualFold(cliCtx.OutputFormat, "json") {
				return printJSON(cmd, res)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", res.Result.PrimaryType)
			for _, line := range confidenceLines(res.Result.ConfidenceScores) {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
}

// confidenceLines renders the score map sorted by descending confidence, with
// ties in priority order.
func confidenceLines(scores map[chem.ReactionType]float64) []string {
	ordered := make([]chem.ReactionType, 0, len(scores))
	for _, t := range chem.TypePriority {
		if _, ok := scores[t]; ok {
			ordered = append(ordered, t)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})

	lines := make([]string, 0, len(ordered))
	for _, t := range ordered {
		lines = append(lines, fmt.Sprintf("%-20s %.2f", t, scores[t]))
	}
	return lines
}
