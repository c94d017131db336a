package feature

import "errors"

var ErrFeatureNotFound = errors.New("feature not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusBeta      Status = "beta"
	StatusAvailable Status = "available"
)

type Feature struct {
	Id          string
	Name        string
	Description string
	Status      Status
}

var features = []Feature{
	{
		Id:          "investment-pooling",
		Name:        "Investment pooling",
		Description: "Pool surplus cash across accounts into a shared investment fund",
		Status:      StatusActive,
	},
	{
		Id:          "automated-banking",
		Name:        "Automated banking",
		Description: "Schedule transfers that follow the active allocation method",
		Status:      StatusBeta,
	},
	{
		Id:          "debt-repayment",
		Name:        "Debt repayment",
		Description: "Plan repayments with the snowball or avalanche strategy",
		Status:      StatusAvailable,
	},
}

func List() []Feature {
	return append([]Feature(nil), features...)
}

func Get(id string) (Feature, error) {
	for _, f := range features {
		if f.Id == id {
			return f, nil
		}
	}
	return Feature{}, ErrFeatureNotFound
}
