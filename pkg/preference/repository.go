package preference

import (
	"context"
	"errors"

	"github.com/finpercent/finpercent/pkg/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// UserStore keeps preferences in the user_preference table of the current user.
type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return "", false, err
	}
	query := `SELECT value FROM user_preference WHERE user_id = $1 AND key = $2`
	var value string
	err = s.db.QueryRow(ctx, query, userId, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	} else if err != nil {
		log.Errorf("failed to get preference %s: %v", key, err)
		return "", false, err
	}
	return value, true, nil
}

func (s *UserStore) Set(ctx context.Context, key string, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return err
	}
	query := `INSERT INTO user_preference (user_id, key, value, updated_at) VALUES ($1, $2, $3, now())
				ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err = s.db.Exec(ctx, query, userId, key, value)
	if err != nil {
		log.Errorf("failed to set preference %s: %v", key, err)
		return err
	}
	return nil
}
