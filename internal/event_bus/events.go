package event_bus

import "time"

const (
	CurrencyPreferenceUpdatedType EventType = "currency.preference.updated"
	FinancialDataStoredType       EventType = "financial_data.stored"
	UserSettingsUpdatedType       EventType = "user.settings.updated"
)

type CurrencyPreferenceUpdated struct {
	UserId       int
	PreviousCode string
	Code         string
}

type FinancialDataStored struct {
	UserId    int
	Income    float64
	Expenses  float64
	Savings   float64
	CreatedAt time.Time
}

type UserSettingsUpdated struct {
	UserId       int
	ActiveMethod string
	TaxRegime    string
}
