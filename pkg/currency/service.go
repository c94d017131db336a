package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/finpercent/finpercent/internal/event_bus"
	"github.com/finpercent/finpercent/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Store persists string values under keys. Implementations decide the scope
// of a key, e.g. per user or per machine.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type Service interface {
	Current(ctx context.Context) (Currency, error)
	Update(ctx context.Context, code string) (Currency, error)
	FormatAmount(ctx context.Context, amount float64) (string, error)
}

type ServiceImpl struct {
	store    Store
	eventBus *event_bus.EventBus
}

// NewService creates the preference service. eventBus may be nil when no one
// listens for preference changes.
func NewService(store Store, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{store: store, eventBus: eventBus}
}

// Current reads the stored preference. Missing, undecodable or unknown values
// fall back to the default currency.
func (s *ServiceImpl) Current(ctx context.Context) (Currency, error) {
	value, found, err := s.store.Get(ctx, PreferenceKey)
	if err != nil {
		return Currency{}, fmt.Errorf("failed to read currency preference: %w", err)
	}
	if !found {
		return Default(), nil
	}
	var stored Currency
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		log.Warnf("Stored currency preference is not valid JSON, using %s: %v", DefaultCode, err)
		return Default(), nil
	}
	c, err := Lookup(stored.Code)
	if err != nil {
		log.Warnf("Stored currency %q is not supported, using %s", stored.Code, DefaultCode)
		return Default(), nil
	}
	return c, nil
}

func (s *ServiceImpl) Update(ctx context.Context, code string) (Currency, error) {
	c, err := Lookup(code)
	if err != nil {
		return Currency{}, err
	}
	previous, err := s.Current(ctx)
	if err != nil {
		return Currency{}, err
	}
	encoded, err := json.Marshal(c)
	if err != nil {
		return Currency{}, err
	}
	if err := s.store.Set(ctx, PreferenceKey, string(encoded)); err != nil {
		return Currency{}, fmt.Errorf("failed to store currency preference: %w", err)
	}

	if s.eventBus != nil {
		userId, _ := user.CurrentId(ctx)
		err = s.eventBus.Publish(event_bus.NewEvent(
			ctx,
			event_bus.CurrencyPreferenceUpdatedType,
			event_bus.CurrencyPreferenceUpdated{UserId: userId, PreviousCode: previous.Code, Code: c.Code},
		))
		if err != nil {
			log.Errorf("failed to publish currency preference update: %v", err)
		}
	}
	return c, nil
}

func (s *ServiceImpl) FormatAmount(ctx context.Context, amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("cannot format non-finite amount %v", amount)
	}
	c, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	return c.Format(amount), nil
}
