package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type UserRepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

const selectUser = `SELECT id, uid, username, email, display_name, password_hash, active_method, tax_regime FROM users`

func scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.Id,
		&user.Uid,
		&user.Username,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Settings.ActiveMethod,
		&user.Settings.TaxRegime,
	)
	return user, err
}

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	settings := user.Settings.withDefaults()
	query := `INSERT INTO users (uid, username, email, display_name, password_hash, active_method, tax_regime)
				VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	err := u.db.QueryRow(ctx, query,
		user.Uid,
		user.Username,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		settings.ActiveMethod,
		settings.TaxRegime,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrUsernameTaken
		}
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (u *UserRepoImpl) getOne(ctx context.Context, where string, arg any) (User, error) {
	user, err := scanUser(u.db.QueryRow(ctx, selectUser+" WHERE "+where+" = $1", arg))
	if errors.Is(err, pgx.ErrNoRows) {
		log.Debugf("user with %s %v not found", where, arg)
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (u *UserRepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	return u.getOne(ctx, "id", id)
}

func (u *UserRepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return u.getOne(ctx, "uid", uid)
}

func (u *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return u.getOne(ctx, "username", username)
}

func (u *UserRepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	settings := user.Settings.withDefaults()
	query := `UPDATE users SET display_name = $1, email = $2, active_method = $3, tax_regime = $4 WHERE id = $5`
	result, err := u.db.Exec(ctx, query,
		user.DisplayName,
		user.Email,
		settings.ActiveMethod,
		settings.TaxRegime,
		userId,
	)
	if err != nil {
		log.Errorf("failed to update user: %v", err)
		return User{}, err
	}
	if result.RowsAffected() == 0 {
		log.Info("no rows affected of updating user")
		return User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, userId)
	}
	return u.GetUser(ctx, userId)
}

func (u *UserRepoImpl) DeleteUser(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := u.db.Exec(ctx, query, id)
	if err != nil {
		log.Errorf("failed to delete user: %v", err)
		return err
	}
	if result.RowsAffected() == 0 {
		log.Info("no rows affected of deleting user")
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return nil
}

func (u *UserRepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	rows, err := u.db.Query(ctx, selectUser+" ORDER BY id")
	if err != nil {
		log.Errorf("failed to get users: %v", err)
		return nil, err
	}
	defer rows.Close()
	users := make([]User, 0, 10)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("error iterating over rows: %v", err)
		return nil, err
	}
	return users, nil
}

func (u *UserRepoImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE username = $1`
	var count int
	err := u.db.QueryRow(ctx, query, username).Scan(&count)
	if err != nil {
		log.Errorf("failed to check username availability: %v", err)
		return false, err
	}
	return count == 0, nil
}
