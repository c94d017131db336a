package financial_data

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, data FinancialData) (FinancialData, error)
	Get(ctx context.Context, userId int) (FinancialData, error)
	Delete(ctx context.Context, userId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, data FinancialData) (FinancialData, error) {
	query := `INSERT INTO financial_data (user_id, income, expenses, savings, investments, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (user_id) DO UPDATE SET income = EXCLUDED.income, expenses = EXCLUDED.expenses,
					savings = EXCLUDED.savings, investments = EXCLUDED.investments, created_at = EXCLUDED.created_at`
	_, err := r.db.Exec(ctx, query,
		userId,
		data.Income,
		nonNil(data.Expenses),
		data.Savings,
		nonNil(data.Investments),
		data.CreatedAt,
	)
	if err != nil {
		log.Errorf("failed to store financial data: %v", err)
		return FinancialData{}, err
	}
	return data, nil
}

func (r *RepositoryImpl) Get(ctx context.Context, userId int) (FinancialData, error) {
	query := `SELECT income, expenses, savings, investments, created_at FROM financial_data WHERE user_id = $1`
	var data FinancialData
	err := r.db.QueryRow(ctx, query, userId).Scan(
		&data.Income,
		&data.Expenses,
		&data.Savings,
		&data.Investments,
		&data.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return FinancialData{}, ErrFinancialDataNotFound
	} else if err != nil {
		log.Errorf("failed to get financial data: %v", err)
		return FinancialData{}, err
	}
	return data, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM financial_data WHERE user_id = $1`, userId)
	if err != nil {
		log.Errorf("failed to delete financial data: %v", err)
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func nonNil(values map[string]float64) map[string]float64 {
	if values == nil {
		return map[string]float64{}
	}
	return values
}
