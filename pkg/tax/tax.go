package tax

import (
	"fmt"
	"math"
	"strings"

	"github.com/finpercent/finpercent/internal/money"
)

type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

const OldRegimeStandardDeduction = 150000.0

type InvalidRegimeError struct {
	Regime string
}

func (e *InvalidRegimeError) Error() string {
	return fmt.Sprintf("invalid tax regime %q, expected old or new", e.Regime)
}

func ParseRegime(s string) (Regime, error) {
	switch Regime(strings.ToLower(strings.TrimSpace(s))) {
	case RegimeOld:
		return RegimeOld, nil
	case RegimeNew:
		return RegimeNew, nil
	}
	return "", &InvalidRegimeError{Regime: s}
}

// Slab is a marginal bracket. Rate is in percent. The last slab of a regime
// has an infinite Upper bound.
type Slab struct {
	Lower float64
	Upper float64
	Rate  float64
}

var newRegimeSlabs = []Slab{
	{Lower: 0, Upper: 300000, Rate: 0},
	{Lower: 300000, Upper: 600000, Rate: 5},
	{Lower: 600000, Upper: 900000, Rate: 10},
	{Lower: 900000, Upper: 1200000, Rate: 15},
	{Lower: 1200000, Upper: 1500000, Rate: 20},
	{Lower: 1500000, Upper: math.Inf(1), Rate: 30},
}

var oldRegimeSlabs = []Slab{
	{Lower: 0, Upper: 250000, Rate: 0},
	{Lower: 250000, Upper: 500000, Rate: 5},
	{Lower: 500000, Upper: 1000000, Rate: 20},
	{Lower: 1000000, Upper: math.Inf(1), Rate: 30},
}

// Slabs returns a copy of the bracket table for the regime.
func Slabs(regime Regime) ([]Slab, error) {
	switch regime {
	case RegimeOld:
		return append([]Slab(nil), oldRegimeSlabs...), nil
	case RegimeNew:
		return append([]Slab(nil), newRegimeSlabs...), nil
	}
	return nil, &InvalidRegimeError{Regime: string(regime)}
}

type SlabTax struct {
	Slab
	TaxableAmount float64
	Tax           float64
}

type Result struct {
	Regime    Regime
	Income    float64
	SlabTaxes []SlabTax
	// GrossTax is the sum of slab taxes before the deduction.
	GrossTax float64
	// Deduction is the part of the regime deduction actually applied, never more than GrossTax.
	Deduction      float64
	Tax            float64
	EffectiveRate  float64
	AfterTaxIncome float64
}

// Calculate computes the progressive tax for an annual income. Negative
// income is treated as zero, non-finite income fails with money.ErrNonFiniteAmount.
func Calculate(income float64, regime Regime) (Result, error) {
	slabs, err := Slabs(regime)
	if err != nil {
		return Result{}, err
	}
	income, err = money.NonNegative(income)
	if err != nil {
		return Result{}, fmt.Errorf("taxable income: %w", err)
	}

	result := Result{
		Regime:    regime,
		Income:    income,
		SlabTaxes: make([]SlabTax, 0, len(slabs)),
	}
	for _, slab := range slabs {
		taxable := 0.0
		if income > slab.Lower {
			taxable = math.Min(income, slab.Upper) - slab.Lower
		}
		slabTax := taxable * (slab.Rate / 100)
		result.SlabTaxes = append(result.SlabTaxes, SlabTax{Slab: slab, TaxableAmount: taxable, Tax: slabTax})
		result.GrossTax += slabTax
	}

	result.Tax = result.GrossTax
	if regime == RegimeOld {
		result.Deduction = math.Min(OldRegimeStandardDeduction, result.GrossTax)
		result.Tax = result.GrossTax - result.Deduction
	}
	if income > 0 {
		result.EffectiveRate = result.Tax / income * 100
	}
	result.AfterTaxIncome = income - result.Tax
	return result, nil
}

type Comparison struct {
	Old Result
	New Result
	// Recommended is the regime with the lower tax; new wins ties.
	Recommended Regime
	Savings     float64
}

func Compare(income float64) (Comparison, error) {
	oldResult, err := Calculate(income, RegimeOld)
	if err != nil {
		return Comparison{}, err
	}
	newResult, err := Calculate(income, RegimeNew)
	if err != nil {
		return Comparison{}, err
	}
	comparison := Comparison{Old: oldResult, New: newResult, Recommended: RegimeNew}
	if oldResult.Tax < newResult.Tax {
		comparison.Recommended = RegimeOld
	}
	comparison.Savings = math.Abs(oldResult.Tax - newResult.Tax)
	return comparison, nil
}
