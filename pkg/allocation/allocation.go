package allocation

import (
	"fmt"
	"strings"
)

// Method identifies an allocation method. The set of methods is closed; use
// ParseMethod to turn user input into a Method.
type Method string

const (
	NWS          Method = "nws"
	Kakeibo      Method = "kakeibo"
	STOP         Method = "stop"
	TaxRegimeOld Method = "tax-old"
	TaxRegimeNew Method = "tax-new"
)

// Methods lists every supported method in display order.
var Methods = []Method{NWS, Kakeibo, STOP, TaxRegimeOld, TaxRegimeNew}

// UnsupportedMethodError is returned for a method identifier outside the
// supported set.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported allocation method %q", e.Method)
}

// ParseMethod is case-insensitive and accepts a few spellings used by clients
// ("NWS", "Kakeibo", "taxregime:old").
func ParseMethod(s string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "nws":
		return NWS, nil
	case "kakeibo":
		return Kakeibo, nil
	case "stop":
		return STOP, nil
	case "tax-old", "taxregime:old", "tax_old":
		return TaxRegimeOld, nil
	case "tax-new", "taxregime:new", "tax_new":
		return TaxRegimeNew, nil
	}
	return "", &UnsupportedMethodError{Method: s}
}

// Input is a single allocation request. Negative amounts are treated as zero.
type Input struct {
	Amount float64
	Method Method
	// Detailed asks for the full multi-level tree instead of the top level only.
	Detailed bool
}

// CategoryAllocation is one node of a breakdown tree.
type CategoryAllocation struct {
	Name        string
	Description string
	// Percentage is relative to the parent node's amount, never to the grand total.
	Percentage float64
	// ShareOfTotal is the node's percentage of the root amount.
	ShareOfTotal float64
	Amount       float64
	Children     []CategoryAllocation
}

// Breakdown is the result of an allocation. Categories are the direct children
// of the root amount.
type Breakdown struct {
	Method     Method
	Amount     float64
	Detailed   bool
	Categories []CategoryAllocation
}

// MethodInfo describes a method for catalog listings.
type MethodInfo struct {
	Id          Method
	Name        string
	Description string
	// Basis names what the amount represents for this method.
	Basis string
}
