package allocation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvRenderer_Render(t *testing.T) {
	renderer := NewCsvRenderer()

	t.Run("top level", func(t *testing.T) {
		// given
		breakdown, err := Calculate(Input{Amount: 100000, Method: NWS})
		require.NoError(t, err)

		// when
		csv, err := renderer.Render(breakdown)

		// then
		require.NoError(t, err)
		expected := "Category,Percentage,Share of total,Amount\n" +
			"Necessities,50.00,50.00,50000.00\n" +
			"Wants,30.00,30.00,30000.00\n" +
			"Savings,20.00,20.00,20000.00\n" +
			"Total,100.00,100.00,100000.00\n"
		assert.Equal(t, expected, csv)
	})

	t.Run("detailed rows carry the full path", func(t *testing.T) {
		breakdown, err := Calculate(Input{Amount: 100000, Method: NWS, Detailed: true})
		require.NoError(t, err)

		csv, err := renderer.Render(breakdown)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(csv), "\n")
		// header, 3 top categories, 12 subcategories, 24 details, total
		assert.Len(t, lines, 1+3+12+24+1)
		assert.Equal(t, "Necessities / Housing,30.00,15.00,15000.00", lines[2])
		assert.Equal(t, "Necessities / Housing / Rent/Mortgage,70.00,10.50,10500.00", lines[3])
	})
}

func TestFlatten(t *testing.T) {
	breakdown, err := Calculate(Input{Amount: 80000, Method: Kakeibo, Detailed: true})
	require.NoError(t, err)

	rows := Flatten(breakdown)

	require.Len(t, rows, 4+12)
	assert.Equal(t, "Needs", rows[0].Name())
	assert.Equal(t, 0, rows[0].Depth)
	assert.Equal(t, []string{"Needs", "Housing"}, rows[1].Path)
	assert.Equal(t, 1, rows[1].Depth)
	assert.InDelta(t, 20000, rows[1].Amount, 1e-9)
}
