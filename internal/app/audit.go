package app

import (
	"github.com/finpercent/finpercent/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// SubscribeAuditLog writes one structured log line per domain event.
func SubscribeAuditLog(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped[event_bus.CurrencyPreferenceUpdated](bus, event_bus.CurrencyPreferenceUpdatedType,
		func(e event_bus.EventT[event_bus.CurrencyPreferenceUpdated]) error {
			log.WithFields(log.Fields{
				"event":    e.Type,
				"user":     e.Data.UserId,
				"previous": e.Data.PreviousCode,
				"code":     e.Data.Code,
			}).Info("currency preference updated")
			return nil
		})
	event_bus.SubscribeTyped[event_bus.FinancialDataStored](bus, event_bus.FinancialDataStoredType,
		func(e event_bus.EventT[event_bus.FinancialDataStored]) error {
			log.WithFields(log.Fields{
				"event":    e.Type,
				"user":     e.Data.UserId,
				"income":   e.Data.Income,
				"expenses": e.Data.Expenses,
				"savings":  e.Data.Savings,
			}).Info("financial data stored")
			return nil
		})
	event_bus.SubscribeTyped[event_bus.UserSettingsUpdated](bus, event_bus.UserSettingsUpdatedType,
		func(e event_bus.EventT[event_bus.UserSettingsUpdated]) error {
			log.WithFields(log.Fields{
				"event":  e.Type,
				"user":   e.Data.UserId,
				"method": e.Data.ActiveMethod,
				"regime": e.Data.TaxRegime,
			}).Info("user settings updated")
			return nil
		})
}
