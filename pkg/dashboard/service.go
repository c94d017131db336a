package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/currency"
	"github.com/finpercent/finpercent/pkg/financial_data"
	"github.com/finpercent/finpercent/pkg/tax"
	"github.com/finpercent/finpercent/pkg/user"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MonthsPerYear annualises the monthly snapshot income for the tax estimate.
const MonthsPerYear = 12

type Summary struct {
	User     user.User
	Currency currency.Currency
	// FinancialData is nil until the user stores a snapshot. The remaining
	// figures are only computed when it is present.
	FinancialData *financial_data.FinancialData
	SavingsRate   float64
	Allocation    *allocation.Breakdown
	Tax           *tax.Result
}

type Service interface {
	Get(ctx context.Context) (Summary, error)
}

type ServiceImpl struct {
	users         user.Provider
	financialData financial_data.Service
	currencies    currency.Service
}

func NewService(users user.Provider, financialData financial_data.Service, currencies currency.Service) *ServiceImpl {
	return &ServiceImpl{users: users, financialData: financialData, currencies: currencies}
}

func (s *ServiceImpl) Get(ctx context.Context) (Summary, error) {
	currentUser, err := s.users.GetCurrentUser(ctx)
	if err != nil {
		return Summary{}, err
	}
	var (
		preferred currency.Currency
		data      financial_data.FinancialData
		hasData   bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if preferred, err = s.currencies.Current(gctx); err != nil {
			return fmt.Errorf("failed to read currency preference: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		data, err = s.financialData.Get(gctx)
		if errors.Is(err, financial_data.ErrFinancialDataNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		hasData = true
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{User: currentUser, Currency: preferred}
	if !hasData {
		log.Debugf("no financial data for user %d", currentUser.Id)
		return summary, nil
	}
	summary.FinancialData = &data
	summary.SavingsRate = data.SavingsRate()

	breakdown, err := allocation.Calculate(allocation.Input{
		Amount:   data.Income,
		Method:   currentUser.Settings.ActiveMethod,
		Detailed: true,
	})
	if err != nil {
		return Summary{}, err
	}
	summary.Allocation = &breakdown

	taxResult, err := tax.Calculate(data.Income*MonthsPerYear, currentUser.Settings.TaxRegime)
	if err != nil {
		return Summary{}, err
	}
	summary.Tax = &taxResult
	return summary, nil
}
