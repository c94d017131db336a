package cmd

import (
	"fmt"

	"github.com/finpercent/finpercent/internal/cli"
	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/spf13/cobra"
)

func newAllocateCommand(opts *rootOptions) *cobra.Command {
	var detailed, csv bool
	command := &cobra.Command{
		Use:   "allocate <method> <amount>",
		Short: "Split an amount with a budgeting method",
		Long:  "Methods: nws, kakeibo, stop, tax-old, tax-new.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := allocation.ParseMethod(args[0])
			if err != nil {
				return err
			}
			amount, err := money.ParseAmount(args[1])
			if err != nil {
				return err
			}
			breakdown, err := allocation.Calculate(allocation.Input{Amount: amount, Method: method, Detailed: detailed})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if csv {
				rendered, err := allocation.NewCsvRenderer().Render(breakdown)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, rendered)
				return err
			}
			preferred, err := opts.preferredCurrency(cmd.Context())
			if err != nil {
				return err
			}
			info, _ := allocation.Describe(method)
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderTitle(info.Description))
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderTable(cli.AllocationTable(breakdown, preferred)))
			if !detailed && method != allocation.STOP {
				fmt.Fprintln(out, cli.RenderNote("Use --detailed to show subcategories."))
			}
			return nil
		},
	}
	command.Flags().BoolVar(&detailed, "detailed", false, "Include subcategories")
	command.Flags().BoolVar(&csv, "csv", false, "Print CSV instead of a table")
	return command
}
