package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <equation>",
		Short: "Balance a chemical equation",
		Long:  "Balance parses an equation (arrows: ->, →, =) and solves for the\nsmallest whole-number coefficients that conserve every element.",
		Example: `  reactioniq balance "CH4 + O2 -> CO2 + H2O"
  reactioniq balance "Fe + O2 = Fe2O3" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			res, err := cliCtx.Service.Balance(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if strings.EqualFold(cliCtx.OutputFormat, "json") {
				return printJSON(cmd, res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Balanced)
			if cliCtx.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "coefficients: %v\n", res.Coefficients)
				fmt.Fprintf(cmd.OutOrStdout(), "weight delta: %+.6f g/mol\n", res.WeightDelta)
			}
			return nil
		},
	}
}
