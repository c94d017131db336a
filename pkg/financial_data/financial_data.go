package financial_data

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// Stored figures are money: zero or between one cent and MaxAmount. The bounds
// keep ratios and the dashboard's yearly projection finite.
const (
	MinAmount = 0.01
	MaxAmount = 1e15
)

var (
	ErrFinancialDataNotFound = errors.New("financial data not found")
	ErrInvalidFinancialData  = errors.New("invalid financial data")
)

// FinancialData is a monthly snapshot of a user's finances. Each user has at
// most one current snapshot.
type FinancialData struct {
	Income      float64
	Expenses    map[string]float64
	Savings     float64
	Investments map[string]float64
	CreatedAt   time.Time
}

func (f FinancialData) TotalExpenses() float64 {
	return sumValues(f.Expenses)
}

func (f FinancialData) TotalInvestments() float64 {
	return sumValues(f.Investments)
}

// SavingsRate is savings as a percentage of income, 0 without income.
func (f FinancialData) SavingsRate() float64 {
	if f.Income <= 0 {
		return 0
	}
	return f.Savings / f.Income * 100
}

func (f FinancialData) validate() error {
	if err := checkAmount("income", f.Income); err != nil {
		return err
	}
	if err := checkAmount("savings", f.Savings); err != nil {
		return err
	}
	for _, name := range sortedKeys(f.Expenses) {
		if name == "" {
			return fmt.Errorf("%w: expense category must have a name", ErrInvalidFinancialData)
		}
		if err := checkAmount("expense "+name, f.Expenses[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(f.Investments) {
		if name == "" {
			return fmt.Errorf("%w: investment must have a name", ErrInvalidFinancialData)
		}
		if err := checkAmount("investment "+name, f.Investments[name]); err != nil {
			return err
		}
	}
	return nil
}

func checkAmount(field string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidFinancialData, field)
	}
	if amount > MaxAmount {
		return fmt.Errorf("%w: %s exceeds %g", ErrInvalidFinancialData, field, MaxAmount)
	}
	if amount > 0 && amount < MinAmount {
		return fmt.Errorf("%w: %s is below one cent", ErrInvalidFinancialData, field)
	}
	return nil
}

func sumValues(values map[string]float64) float64 {
	total := 0.0
	for _, key := range sortedKeys(values) {
		total += values[key]
	}
	return total
}

// sortedKeys gives a stable iteration order so sums are deterministic.
func sortedKeys(values map[string]float64) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
