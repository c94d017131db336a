package cli

import (
	"strings"
	"testing"

	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/currency"
	"github.com/finpercent/finpercent/pkg/debt"
	"github.com/finpercent/finpercent/pkg/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T) currency.Currency {
	c, err := currency.Lookup("USD")
	require.NoError(t, err)
	return c
}

func TestAllocationTable(t *testing.T) {
	breakdown, err := allocation.Calculate(allocation.Input{Amount: 200000, Method: allocation.STOP})
	require.NoError(t, err)

	table := AllocationTable(breakdown, usd(t))

	assert.Equal(t, "STOP allocation of $200,000.00", table.Title)
	require.Len(t, table.Rows, 6)
	assert.Equal(t, []string{"Savings", "20.00%", "20.00%", "$40,000.00"}, table.Rows[0][:4])
	assert.Equal(t, "Operations", table.Rows[2][0])
	assert.Equal(t, Separator, table.Rows[4][0])
	assert.Equal(t, "$200,000.00", table.Rows[5][3])
}

func TestAllocationTable_IndentsChildren(t *testing.T) {
	breakdown, err := allocation.Calculate(allocation.Input{Amount: 100000, Method: allocation.NWS, Detailed: true})
	require.NoError(t, err)

	table := AllocationTable(breakdown, usd(t))

	assert.Equal(t, "Necessities", table.Rows[0][0])
	assert.Equal(t, "  Housing", table.Rows[1][0])
	assert.Equal(t, "30.00%", table.Rows[1][1])
	assert.Equal(t, "15.00%", table.Rows[1][2])
	assert.True(t, strings.HasPrefix(table.Rows[2][0], "    "))
}

func TestTaxTable(t *testing.T) {
	result, err := tax.Calculate(1200000, tax.RegimeOld)
	require.NoError(t, err)

	table := TaxTable(result, usd(t))

	assert.Equal(t, "Income tax on $1,200,000.00, old regime", table.Title)
	assert.Equal(t, "$0.00 - $250,000.00", table.Rows[0][0])
	assert.Equal(t, "above $1,000,000.00", table.Rows[3][0])
	last := table.Rows[len(table.Rows)-1]
	assert.Equal(t, []string{"After tax", "", "", "$1,177,500.00"}, last)
	assert.Contains(t, RenderTable(table), "Standard deduction")
}

func TestDebtTable(t *testing.T) {
	debts := []debt.Debt{{Name: "Card", Balance: 1500, Rate: 36}, {Name: "Loan", Balance: 8500, Rate: 11}}

	table := DebtTable("Snowball", debts, usd(t))

	assert.Equal(t, "1. Card", table.Rows[0][0])
	assert.Equal(t, "$10,000.00", table.Rows[3][2])
}

func TestCurrencyTable(t *testing.T) {
	table := CurrencyTable(currency.Catalog(), usd(t))

	require.Len(t, table.Rows, len(currency.Catalog()))
	var marked []string
	for _, row := range table.Rows {
		if strings.HasSuffix(row[0], "*") {
			marked = append(marked, row[0])
		}
	}
	assert.Equal(t, []string{"USD*"}, marked)
}
