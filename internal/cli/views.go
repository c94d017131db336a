package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/currency"
	"github.com/finpercent/finpercent/pkg/debt"
	"github.com/finpercent/finpercent/pkg/tax"
)

const barWidth = 20

func AllocationTable(breakdown allocation.Breakdown, c currency.Currency) Table {
	rows := make([][]string, 0)
	for _, row := range allocation.Flatten(breakdown) {
		rows = append(rows, []string{
			strings.Repeat("  ", row.Depth) + row.Name(),
			percent(row.Percentage),
			percent(row.ShareOfTotal),
			c.Format(row.Amount),
			RenderShareBar(row.ShareOfTotal, barWidth),
		})
	}
	rows = append(rows, []string{Separator})
	rows = append(rows, []string{"Total", percent(100), percent(100), c.Format(breakdown.Amount), ""})

	info, _ := allocation.Describe(breakdown.Method)
	return Table{
		Title:   fmt.Sprintf("%s allocation of %s", info.Name, c.Format(breakdown.Amount)),
		Headers: []string{"Category", "Of parent", "Of total", "Amount", "Share"},
		Rows:    rows,
	}
}

func TaxTable(result tax.Result, c currency.Currency) Table {
	rows := make([][]string, 0, len(result.SlabTaxes)+6)
	for _, slab := range result.SlabTaxes {
		rows = append(rows, []string{slabLabel(slab.Slab, c), percent(slab.Rate), c.Format(slab.TaxableAmount), c.Format(slab.Tax)})
	}
	rows = append(rows, []string{Separator})
	rows = append(rows, []string{"Gross tax", "", "", c.Format(result.GrossTax)})
	if result.Deduction > 0 {
		rows = append(rows, []string{"Standard deduction", "", "", "-" + c.Format(result.Deduction)})
	}
	rows = append(rows, []string{"Tax", percent(result.EffectiveRate), "", c.Format(result.Tax)})
	rows = append(rows, []string{"After tax", "", "", c.Format(result.AfterTaxIncome)})
	return Table{
		Title:   fmt.Sprintf("Income tax on %s, %s regime", c.Format(result.Income), result.Regime),
		Headers: []string{"Slab", "Rate", "Taxable", "Tax"},
		Rows:    rows,
	}
}

func DebtTable(title string, debts []debt.Debt, c currency.Currency) Table {
	rows := make([][]string, 0, len(debts)+2)
	for i, d := range debts {
		rows = append(rows, []string{fmt.Sprintf("%d. %s", i+1, d.Name), percent(d.Rate), c.Format(d.Balance)})
	}
	rows = append(rows, []string{Separator})
	rows = append(rows, []string{"Total", "", c.Format(debt.TotalBalance(debts))})
	return Table{
		Title:   title,
		Headers: []string{"Debt", "Rate", "Balance"},
		Rows:    rows,
	}
}

func CurrencyTable(catalog []currency.Currency, preferred currency.Currency) Table {
	rows := make([][]string, 0, len(catalog))
	for _, c := range catalog {
		marker := ""
		if c.Code == preferred.Code {
			marker = "*"
		}
		rows = append(rows, []string{c.Code + marker, c.Name, c.Locale, c.Format(1234567.891)})
	}
	return Table{
		Title:   "Currencies (* preferred)",
		Headers: []string{"Code", "Name", "Locale", "Example"},
		Rows:    rows,
	}
}

func slabLabel(slab tax.Slab, c currency.Currency) string {
	if math.IsInf(slab.Upper, 1) {
		return "above " + c.Format(slab.Lower)
	}
	return c.Format(slab.Lower) + " - " + c.Format(slab.Upper)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
