package financial_data

import (
	"context"
	"fmt"

	"github.com/finpercent/finpercent/internal/event_bus"
	"github.com/finpercent/finpercent/internal/utils"
	"github.com/finpercent/finpercent/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Store(ctx context.Context, data FinancialData) (FinancialData, error)
	Get(ctx context.Context) (FinancialData, error)
	Delete(ctx context.Context) (bool, error)
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewService(repo Repository, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus, clock: clock}
}

// Store replaces the current user's snapshot.
func (s *ServiceImpl) Store(ctx context.Context, data FinancialData) (FinancialData, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return FinancialData{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := data.validate(); err != nil {
		return FinancialData{}, err
	}
	data.Expenses = nonNil(data.Expenses)
	data.Investments = nonNil(data.Investments)
	data.CreatedAt = s.clock.Now().UTC()

	stored, err := s.repo.Store(ctx, userId, data)
	if err != nil {
		return FinancialData{}, err
	}

	if s.eventBus != nil {
		err = s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.FinancialDataStoredType, event_bus.FinancialDataStored{
			UserId:    userId,
			Income:    stored.Income,
			Expenses:  stored.TotalExpenses(),
			Savings:   stored.Savings,
			CreatedAt: stored.CreatedAt,
		}))
		if err != nil {
			log.Errorf("failed to publish financial data event: %v", err)
		}
	}
	return stored, nil
}

func (s *ServiceImpl) Get(ctx context.Context) (FinancialData, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return FinancialData{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Get(ctx, userId)
}

func (s *ServiceImpl) Delete(ctx context.Context) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Delete(ctx, userId)
}
