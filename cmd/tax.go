package cmd

import (
	"fmt"

	"github.com/finpercent/finpercent/internal/cli"
	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/pkg/tax"
	"github.com/spf13/cobra"
)

func newTaxCommand(opts *rootOptions) *cobra.Command {
	var regime string
	var compare bool
	command := &cobra.Command{
		Use:   "tax <income>",
		Short: "Estimate income tax on an annual income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := money.ParseAmount(args[0])
			if err != nil {
				return fmt.Errorf("income: %w", err)
			}
			preferred, err := opts.preferredCurrency(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if compare {
				comparison, err := tax.Compare(income)
				if err != nil {
					return err
				}
				fmt.Fprint(out, cli.RenderTable(cli.TaxTable(comparison.Old, preferred)))
				fmt.Fprintln(out)
				fmt.Fprint(out, cli.RenderTable(cli.TaxTable(comparison.New, preferred)))
				fmt.Fprintln(out, cli.RenderNote("The %s regime saves %s.", comparison.Recommended, preferred.Format(comparison.Savings)))
				return nil
			}

			parsed, err := tax.ParseRegime(regime)
			if err != nil {
				return err
			}
			result, err := tax.Calculate(income, parsed)
			if err != nil {
				return err
			}
			fmt.Fprint(out, cli.RenderTable(cli.TaxTable(result, preferred)))
			return nil
		},
	}
	command.Flags().StringVarP(&regime, "regime", "r", string(tax.RegimeNew), "Tax regime, old or new")
	command.Flags().BoolVar(&compare, "compare", false, "Show both regimes")
	return command
}
