package google

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type TokenRepository interface {
	// StartAuthorization forgets any stored token of the user and remembers
	// the nonce of a new authorization attempt.
	StartAuthorization(ctx context.Context, userId int, nonce string) error
	// CompleteAuthorization stores the token for the attempt identified by nonce.
	CompleteAuthorization(ctx context.Context, nonce string, token *oauth2.Token) error
	// GetToken returns nil when the user has not authorized yet.
	GetToken(ctx context.Context, userId int) (*oauth2.Token, error)
	Delete(ctx context.Context, userId int) error
}

type TokenRepositoryImpl struct {
	db *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) *TokenRepositoryImpl {
	return &TokenRepositoryImpl{db: db}
}

func (r *TokenRepositoryImpl) StartAuthorization(ctx context.Context, userId int, nonce string) error {
	query := `INSERT INTO google_auth (user_id, nonce, access_token, refresh_token, token_type, expiry, updated_at)
				VALUES ($1, $2, '', '', '', NULL, now())
				ON CONFLICT (user_id) DO UPDATE SET nonce = EXCLUDED.nonce, access_token = '', refresh_token = '',
				token_type = '', expiry = NULL, updated_at = now()`
	_, err := r.db.Exec(ctx, query, userId, nonce)
	if err != nil {
		log.Errorf("failed to start Google authorization for user %d: %v", userId, err)
		return err
	}
	return nil
}

func (r *TokenRepositoryImpl) CompleteAuthorization(ctx context.Context, nonce string, token *oauth2.Token) error {
	query := `UPDATE google_auth SET access_token = $1, refresh_token = $2, token_type = $3, expiry = $4, nonce = '',
				updated_at = now() WHERE nonce = $5 AND nonce <> ''`
	var expiry *time.Time
	if !token.Expiry.IsZero() {
		expiry = &token.Expiry
	}
	tag, err := r.db.Exec(ctx, query, token.AccessToken, token.RefreshToken, token.TokenType, expiry, nonce)
	if err != nil {
		log.Errorf("failed to store Google token: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownState
	}
	return nil
}

func (r *TokenRepositoryImpl) GetToken(ctx context.Context, userId int) (*oauth2.Token, error) {
	query := `SELECT access_token, refresh_token, token_type, expiry FROM google_auth WHERE user_id = $1`
	var token oauth2.Token
	var expiry *time.Time
	err := r.db.QueryRow(ctx, query, userId).Scan(&token.AccessToken, &token.RefreshToken, &token.TokenType, &expiry)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		log.Errorf("failed to get Google token for user %d: %v", userId, err)
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, nil
	}
	if expiry != nil {
		token.Expiry = *expiry
	}
	return &token, nil
}

func (r *TokenRepositoryImpl) Delete(ctx context.Context, userId int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM google_auth WHERE user_id = $1`, userId)
	if err != nil {
		log.Errorf("failed to delete Google token for user %d: %v", userId, err)
		return err
	}
	return nil
}
