package tax

// Strategy is a deduction that lowers taxable income under the old regime.
type Strategy struct {
	Id           string
	Name         string
	Section      string
	Description  string
	MaxDeduction float64
}

var strategies = []Strategy{
	{
		Id:           "section-80c",
		Name:         "Section 80C Investments",
		Section:      "80C",
		Description:  "ELSS, PPF, life insurance premiums and similar instruments",
		MaxDeduction: 150000,
	},
	{
		Id:           "section-80d",
		Name:         "Health Insurance Premium",
		Section:      "80D",
		Description:  "Medical insurance for self, family and parents",
		MaxDeduction: 75000,
	},
	{
		Id:           "hra",
		Name:         "House Rent Allowance",
		Section:      "10(13A)",
		Description:  "Rent paid for accommodation",
		MaxDeduction: 200000,
	},
	{
		Id:           "section-24b",
		Name:         "Home Loan Interest",
		Section:      "24B",
		Description:  "Interest on a loan for a self-occupied property",
		MaxDeduction: 200000,
	},
}

func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}
