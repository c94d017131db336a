package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/finpercent/finpercent/internal/money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PreferenceKey is the single key the preferred currency is stored under.
const PreferenceKey = "preferred_currency"

const DefaultCode = "INR"

var ErrUnsupportedCurrency = errors.New("unsupported currency")

type Currency struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	// Decimals is not persisted, it is always taken from the catalog.
	Decimals int32 `json:"-"`
}

var catalog = []Currency{
	{Code: "INR", Locale: "en-IN", Symbol: "₹", Name: "Indian Rupee", Decimals: 2},
	{Code: "USD", Locale: "en-US", Symbol: "$", Name: "US Dollar", Decimals: 2},
	{Code: "EUR", Locale: "de-DE", Symbol: "€", Name: "Euro", Decimals: 2},
	{Code: "GBP", Locale: "en-GB", Symbol: "£", Name: "British Pound", Decimals: 2},
	{Code: "JPY", Locale: "ja-JP", Symbol: "¥", Name: "Japanese Yen", Decimals: 0},
	{Code: "AUD", Locale: "en-AU", Symbol: "A$", Name: "Australian Dollar", Decimals: 2},
	{Code: "CAD", Locale: "en-CA", Symbol: "CA$", Name: "Canadian Dollar", Decimals: 2},
	{Code: "SGD", Locale: "en-SG", Symbol: "S$", Name: "Singapore Dollar", Decimals: 2},
	{Code: "AED", Locale: "ar-AE", Symbol: "AED ", Name: "UAE Dirham", Decimals: 2},
}

func Catalog() []Currency {
	return append([]Currency(nil), catalog...)
}

// Lookup finds a currency by its ISO code, ignoring case.
func Lookup(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range catalog {
		if c.Code == normalized {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
}

func Default() Currency {
	c, _ := Lookup(DefaultCode)
	return c
}

// Format renders the amount with the currency symbol and the locale's digit
// grouping. The amount is rounded to the currency's decimals first.
func (c Currency) Format(amount float64) string {
	rounded := money.Round(amount, c.Decimals)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	printer := message.NewPrinter(language.Make(c.Locale))
	return sign + c.Symbol + printer.Sprintf("%v", number.Decimal(rounded, number.Scale(int(c.Decimals))))
}
