package financial_data

import (
	"context"
	"maps"
)

type StubRepository struct {
	data map[int]FinancialData
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]FinancialData{}}
}

func (s *StubRepository) Store(_ context.Context, userId int, data FinancialData) (FinancialData, error) {
	stored := data
	stored.Expenses = maps.Clone(nonNil(data.Expenses))
	stored.Investments = maps.Clone(nonNil(data.Investments))
	s.data[userId] = stored
	return data, nil
}

func (s *StubRepository) Get(_ context.Context, userId int) (FinancialData, error) {
	data, ok := s.data[userId]
	if !ok {
		return FinancialData{}, ErrFinancialDataNotFound
	}
	return data, nil
}

func (s *StubRepository) Delete(_ context.Context, userId int) (bool, error) {
	_, ok := s.data[userId]
	delete(s.data, userId)
	return ok, nil
}
