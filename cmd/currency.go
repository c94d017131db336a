package cmd

import (
	"fmt"

	"github.com/finpercent/finpercent/internal/cli"
	"github.com/finpercent/finpercent/pkg/currency"
	"github.com/spf13/cobra"
)

func newCurrencyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or set the preferred currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := opts.currencyService()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				updated, err := service.Update(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Preferred currency set to %s (%s)\n", updated.Code, updated.Name)
				return nil
			}
			preferred, err := service.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(out, cli.RenderTable(cli.CurrencyTable(currency.Catalog(), preferred)))
			return nil
		},
	}
}
