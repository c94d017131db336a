// Package money holds presentation helpers for monetary amounts.
//
// Calculations across the service stay in float64 and are never rounded. These
// helpers are used only at the edges (JSON DTOs, CSV, terminal output and
// currency formatting) where a value is shown to a person, plus the input
// checks shared by the calculators.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimals used when amounts are presented.
const DisplayPlaces = 2

var ErrNonFiniteAmount = errors.New("amount must be a finite number")

// NonNegative is the input rule of every calculator: negative amounts clamp to
// zero, NaN and infinities are rejected with ErrNonFiniteAmount.
func NonNegative(amount float64) (float64, error) {
	if !isFinite(amount) {
		return 0, fmt.Errorf("%w, got %v", ErrNonFiniteAmount, amount)
	}
	if amount < 0 {
		return 0, nil
	}
	return amount, nil
}

// ParseAmount reads a user supplied amount. Unlike strconv.ParseFloat it
// refuses "Inf", "NaN" and values outside the float64 range.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !isFinite(amount) {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrNonFiniteAmount)
	}
	return amount, nil
}

// Round rounds amount half away from zero to the given number of decimal places.
// NaN and infinities are returned unchanged.
//
// Examples:
//
//	Round(1234.565, 2) -> 1234.57
//	Round(-0.125, 2)   -> -0.13
func Round(amount float64, places int32) float64 {
	if !isFinite(amount) {
		return amount
	}
	return decimal.NewFromFloat(amount).Round(places).InexactFloat64()
}

// Display rounds amount to DisplayPlaces.
func Display(amount float64) float64 {
	return Round(amount, DisplayPlaces)
}

// Fixed renders amount with exactly places decimals, e.g. Fixed(50000, 2) -> "50000.00".
// Non-finite values render as "NaN", "+Inf" or "-Inf".
func Fixed(amount float64, places int32) string {
	if !isFinite(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(places)
}

func isFinite(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0)
}
