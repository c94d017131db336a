package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/finpercent/finpercent/internal/cli"
	"github.com/finpercent/finpercent/pkg/debt"
	"github.com/spf13/cobra"
)

func newDebtCommand(opts *rootOptions) *cobra.Command {
	var strategyName string
	var specs []string
	var payment float64
	command := &cobra.Command{
		Use:     "debt",
		Short:   "Plan the next debt payment",
		Example: `  finpercent debt --strategy avalanche --debt "Card:45000:36" --debt "Car loan:300000:9.5"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy, err := debt.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			debts, err := parseDebts(specs)
			if err != nil {
				return err
			}
			if err := debt.Validate(debts); err != nil {
				return err
			}
			if !cmd.Flags().Changed("payment") {
				payment = debt.DefaultPayment(strategy)
			}
			preferred, err := opts.preferredCurrency(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			ordered, err := debt.Order(debts, strategy)
			if err != nil {
				return err
			}
			fmt.Fprint(out, cli.RenderTable(cli.DebtTable(fmt.Sprintf("Repayment order (%s)", strategy), ordered, preferred)))

			after, target, err := debt.ApplyPayment(debts, strategy, payment)
			if errors.Is(err, debt.ErrNothingToPay) {
				fmt.Fprintln(out, cli.RenderNote("All debts are paid off."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, cli.RenderNote("Pay %s towards %s.", preferred.Format(payment), debts[target].Name))
			fmt.Fprint(out, cli.RenderTable(cli.DebtTable("After payment", after, preferred)))
			return nil
		},
	}
	command.Flags().StringVarP(&strategyName, "strategy", "s", string(debt.Snowball), "Repayment strategy, snowball or avalanche")
	command.Flags().StringArrayVarP(&specs, "debt", "d", nil, "Debt as name:balance:rate, repeatable")
	command.Flags().Float64VarP(&payment, "payment", "p", 0, "Payment amount, defaults to the strategy's chunk")
	return command
}

// parseDebts reads name:balance:rate specs. The name may itself contain colons.
func parseDebts(entries []string) ([]debt.Debt, error) {
	if len(entries) == 0 {
		return nil, errors.New("at least one --debt is required")
	}
	debts := make([]debt.Debt, 0, len(entries))
	for _, raw := range entries {
		parts := strings.Split(raw, ":")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid debt %q, expected name:balance:rate", raw)
		}
		n := len(parts)
		balance, err := strconv.ParseFloat(strings.TrimSpace(parts[n-2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid balance in %q: %w", raw, err)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(parts[n-1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate in %q: %w", raw, err)
		}
		debts = append(debts, debt.Debt{
			Name:    strings.TrimSpace(strings.Join(parts[:n-2], ":")),
			Balance: balance,
			Rate:    rate,
		})
	}
	return debts, nil
}
