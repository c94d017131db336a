package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Budget",
		Headers: []string{"Name", "Amount"},
		Rows: [][]string{
			{"Rent", "₹25,000.00"},
			{Separator},
			{"Total", "₹1,00,000.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "Budget")
	assert.Contains(t, lines[2], "Name")
	assert.Contains(t, lines[4], "Rent")
	assert.Contains(t, lines[6], "Total")
	width := lipgloss.Width(lines[1])
	for _, line := range lines[1:] {
		assert.Equal(t, width, lipgloss.Width(line), line)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderShareBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
		{-5, 0},
	}
	for _, tt := range tests {
		bar := RenderShareBar(tt.percent, 10)

		assert.Equal(t, 10, lipgloss.Width(bar))
		assert.Equal(t, tt.filled, strings.Count(bar, "█"))
	}
}
