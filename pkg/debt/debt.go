package debt

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

type Strategy string

const (
	// Snowball pays the smallest balance first.
	Snowball Strategy = "snowball"
	// Avalanche pays the highest interest rate first.
	Avalanche Strategy = "avalanche"
)

var (
	ErrUnsupportedStrategy = errors.New("unsupported repayment strategy")
	ErrInvalidDebt         = errors.New("invalid debt")
	ErrInvalidPayment      = errors.New("payment must be a non-negative number")
	ErrNothingToPay        = errors.New("all debts are paid off")
)

type Debt struct {
	Name    string
	Balance float64
	// Rate is the annual interest rate in percent.
	Rate float64
}

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case Snowball:
		return Snowball, nil
	case Avalanche:
		return Avalanche, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStrategy, s)
}

// DefaultPayment is the chunk applied when the caller gives no payment.
func DefaultPayment(strategy Strategy) float64 {
	if strategy == Avalanche {
		return 3000
	}
	return 2500
}

func Validate(debts []Debt) error {
	for i, d := range debts {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: debt %d has no name", ErrInvalidDebt, i)
		}
		if math.IsNaN(d.Balance) || math.IsInf(d.Balance, 0) || d.Balance < 0 {
			return fmt.Errorf("%w: %s balance must be a non-negative number", ErrInvalidDebt, d.Name)
		}
		if math.IsNaN(d.Rate) || math.IsInf(d.Rate, 0) || d.Rate < 0 {
			return fmt.Errorf("%w: %s rate must be a non-negative number", ErrInvalidDebt, d.Name)
		}
	}
	return nil
}

// Order returns a new slice in repayment order. Paid off debts go last and
// ties keep the input order.
func Order(debts []Debt, strategy Strategy) ([]Debt, error) {
	less, err := comparator(strategy)
	if err != nil {
		return nil, err
	}
	ordered := append([]Debt(nil), debts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if (a.Balance > 0) != (b.Balance > 0) {
			return a.Balance > 0
		}
		return less(a, b)
	})
	return ordered, nil
}

func comparator(strategy Strategy) (func(a, b Debt) bool, error) {
	switch strategy {
	case Snowball:
		return func(a, b Debt) bool { return a.Balance < b.Balance }, nil
	case Avalanche:
		return func(a, b Debt) bool { return a.Rate > b.Rate }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, strategy)
}

// Target is the index in debts of the next debt the strategy pays.
func Target(debts []Debt, strategy Strategy) (int, error) {
	less, err := comparator(strategy)
	if err != nil {
		return -1, err
	}
	target := -1
	for i, d := range debts {
		if d.Balance <= 0 {
			continue
		}
		if target == -1 || less(d, debts[target]) {
			target = i
		}
	}
	if target == -1 {
		return -1, ErrNothingToPay
	}
	return target, nil
}

// ApplyPayment reduces the strategy's target by payment, never below zero.
// The input slice is left untouched.
func ApplyPayment(debts []Debt, strategy Strategy, payment float64) ([]Debt, int, error) {
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment < 0 {
		return nil, -1, ErrInvalidPayment
	}
	target, err := Target(debts, strategy)
	if err != nil {
		return nil, -1, err
	}
	updated := append([]Debt(nil), debts...)
	updated[target].Balance = math.Max(0, updated[target].Balance-payment)
	return updated, target, nil
}

func TotalBalance(debts []Debt) float64 {
	total := 0.0
	for _, d := range debts {
		total += d.Balance
	}
	return total
}
