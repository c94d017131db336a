package allocation

import (
	"fmt"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/pkg/tax"
)

// Calculate builds the breakdown tree for the input. It is pure: the same
// input always yields an identical tree. Negative amounts count as zero and
// non-finite amounts fail with money.ErrNonFiniteAmount.
func Calculate(input Input) (Breakdown, error) {
	amount, err := money.NonNegative(input.Amount)
	if err != nil {
		return Breakdown{}, fmt.Errorf("allocation amount: %w", err)
	}

	var templates []category
	switch input.Method {
	case NWS:
		templates = nwsCategories
	case Kakeibo:
		templates = kakeiboCategories
	case STOP:
		templates = stopCategories
	case TaxRegimeOld:
		templates = taxCategories(amount, tax.RegimeOld)
	case TaxRegimeNew:
		templates = taxCategories(amount, tax.RegimeNew)
	default:
		return Breakdown{}, &UnsupportedMethodError{Method: string(input.Method)}
	}

	return Breakdown{
		Method:     input.Method,
		Amount:     amount,
		Detailed:   input.Detailed,
		Categories: allocate(templates, amount, amount, input.Detailed),
	}, nil
}

func allocate(templates []category, parentAmount float64, total float64, detailed bool) []CategoryAllocation {
	allocations := make([]CategoryAllocation, 0, len(templates))
	for _, c := range templates {
		// Scaling by the fraction keeps every child within its parent's range.
		amount := parentAmount * (c.percentage / 100)
		allocation := CategoryAllocation{
			Name:         c.name,
			Description:  c.description,
			Percentage:   c.percentage,
			ShareOfTotal: shareOf(amount, total),
			Amount:       amount,
		}
		if detailed && len(c.children) > 0 {
			allocation.Children = allocate(c.children, amount, total, detailed)
		}
		allocations = append(allocations, allocation)
	}
	return allocations
}

func shareOf(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}

func taxCategories(amount float64, regime tax.Regime) []category {
	// The regime is a known constant here, Calculate cannot fail.
	result, _ := tax.Calculate(amount, regime)
	return []category{
		{name: "Tax", description: "Income tax under the " + string(regime) + " regime", percentage: result.EffectiveRate},
		{name: "Take-home", description: "Income left after tax", percentage: 100 - result.EffectiveRate},
	}
}

// Describe returns catalog information for a method.
func Describe(method Method) (MethodInfo, error) {
	info, ok := methodInfos[method]
	if !ok {
		return MethodInfo{}, &UnsupportedMethodError{Method: string(method)}
	}
	return info, nil
}

func ListMethods() []MethodInfo {
	infos := make([]MethodInfo, 0, len(Methods))
	for _, m := range Methods {
		infos = append(infos, methodInfos[m])
	}
	return infos
}
