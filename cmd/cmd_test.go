package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FINPERCENT_CLI_PREFERENCESFILE", filepath.Join(dir, "preferences.toml"))
	return runIn(dir, args...)
}

func runIn(dir string, args ...string) (string, error) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env-file", filepath.Join(dir, "missing.env"),
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestAllocateCommand(t *testing.T) {
	t.Run("should print table in default currency", func(t *testing.T) {
		out, err := run(t, "allocate", "nws", "100000")

		require.NoError(t, err)
		assert.Contains(t, out, "Necessities")
		assert.Contains(t, out, "₹")
		assert.Contains(t, out, "--detailed")
	})

	t.Run("should print csv", func(t *testing.T) {
		out, err := run(t, "allocate", "stop", "200000", "--csv")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, "Category,Percentage,Share of total,Amount", lines[0])
		assert.Equal(t, "Savings,20.00,20.00,40000.00", lines[1])
	})

	t.Run("should handle the largest finite amounts", func(t *testing.T) {
		for _, amount := range []string{"1e308", "1.7976931348623157e308"} {
			out, err := run(t, "allocate", "kakeibo", amount, "--detailed")

			require.NoError(t, err, amount)
			assert.Contains(t, out, "Unexpected")
		}
	})

	t.Run("should reject non-finite amounts", func(t *testing.T) {
		for _, amount := range []string{"Inf", "-Inf", "NaN", "1e309"} {
			_, err := run(t, "allocate", "nws", amount, "--csv")

			assert.Error(t, err, amount)
		}
	})

	t.Run("should reject unknown method", func(t *testing.T) {
		_, err := run(t, "allocate", "envelope", "100")

		assert.Error(t, err)
	})

	t.Run("should reject invalid amount", func(t *testing.T) {
		_, err := run(t, "allocate", "nws", "lots")

		assert.Error(t, err)
	})
}

func TestTaxCommand(t *testing.T) {
	t.Run("should default to new regime", func(t *testing.T) {
		out, err := run(t, "tax", "1200000")

		require.NoError(t, err)
		assert.Contains(t, out, "new regime")
	})

	t.Run("should compare regimes", func(t *testing.T) {
		out, err := run(t, "tax", "1200000", "--compare")

		require.NoError(t, err)
		assert.Contains(t, out, "old regime")
		assert.Contains(t, out, "new regime")
		assert.Contains(t, out, "The old regime saves")
	})

	t.Run("should handle the largest finite income", func(t *testing.T) {
		out, err := run(t, "tax", "1e308", "--compare")

		require.NoError(t, err)
		assert.Contains(t, out, "After tax")
	})

	t.Run("should reject non-finite income", func(t *testing.T) {
		_, err := run(t, "tax", "Inf")

		assert.Error(t, err)
	})

	t.Run("should reject unknown regime", func(t *testing.T) {
		_, err := run(t, "tax", "1200000", "--regime", "flat")

		assert.Error(t, err)
	})
}

func TestCurrencyCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FINPERCENT_CLI_PREFERENCESFILE", filepath.Join(dir, "preferences.toml"))

	out, err := runIn(dir, "currency", "usd")
	require.NoError(t, err)
	assert.Contains(t, out, "Preferred currency set to USD")

	out, err = runIn(dir, "currency")
	require.NoError(t, err)
	assert.Contains(t, out, "USD*")

	out, err = runIn(dir, "allocate", "nws", "100000")
	require.NoError(t, err)
	assert.Contains(t, out, "$50,000.00")

	_, err = runIn(dir, "currency", "XYZ")
	assert.Error(t, err)
}

func TestDebtCommand(t *testing.T) {
	t.Run("should plan snowball payment", func(t *testing.T) {
		out, err := run(t, "debt", "--debt", "Card:45000:36", "--debt", "Personal loan:8000:14")

		require.NoError(t, err)
		assert.Contains(t, out, "Repayment order (snowball)")
		assert.Contains(t, out, "towards Personal loan")
	})

	t.Run("should require debts", func(t *testing.T) {
		_, err := run(t, "debt", "--strategy", "avalanche")

		assert.Error(t, err)
	})

	t.Run("should report paid off debts", func(t *testing.T) {
		out, err := run(t, "debt", "--debt", "Card:0:36")

		require.NoError(t, err)
		assert.Contains(t, out, "All debts are paid off.")
	})
}

func TestParseDebts(t *testing.T) {
	debts, err := parseDebts([]string{"Loan: 2024:1000:9.5"})

	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, "Loan: 2024", debts[0].Name)
	assert.Equal(t, 1000.0, debts[0].Balance)
	assert.Equal(t, 9.5, debts[0].Rate)

	_, err = parseDebts([]string{"Loan:abc:9"})
	assert.Error(t, err)
}
