package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finpercent/finpercent/internal/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	CreateUser(ctx context.Context, user User, password string) (User, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Authenticate(ctx context.Context, token string) (User, error)
}

type Provider interface {
	GetCurrentUser(ctx context.Context) (User, error)
}

type LoginResult struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

type UserServiceImpl struct {
	repo     Repo
	tokens   *TokenIssuer
	eventBus *event_bus.EventBus
}

func NewUserService(repo Repo, tokens *TokenIssuer, eventBus *event_bus.EventBus) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, tokens: tokens, eventBus: eventBus}
}

func (u *UserServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.GetUser(ctx, userId)
}

// CreateUser registers a user. The password is optional; a user without one
// can only be selected through the X-User-Id header and cannot log in.
func (u *UserServiceImpl) CreateUser(ctx context.Context, user User, password string) (User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return User{}, fmt.Errorf("%w: username is required", ErrUserDataInvalid)
	}
	settings, err := user.Settings.normalize()
	if err != nil {
		return User{}, err
	}
	user.Settings = settings
	if user.Uid == "" {
		user.Uid = uuid.NewString()
	}
	if password != "" {
		hash, err := hashPassword(password)
		if err != nil {
			return User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	userId, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = userId
	return user, nil
}

func (u *UserServiceImpl) GetUser(ctx context.Context, id int) (User, error) {
	return u.repo.GetUser(ctx, id)
}

func (u *UserServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return u.repo.GetUserByUid(ctx, uid)
}

func (u *UserServiceImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	settings, err := user.Settings.normalize()
	if err != nil {
		return User{}, err
	}
	user.Settings = settings
	updated, err := u.repo.UpdateUser(ctx, userId, user)
	if err != nil {
		return User{}, err
	}

	if u.eventBus != nil {
		err = u.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.UserSettingsUpdatedType, event_bus.UserSettingsUpdated{
			UserId:       updated.Id,
			ActiveMethod: string(updated.Settings.ActiveMethod),
			TaxRegime:    string(updated.Settings.TaxRegime),
		}))
		if err != nil {
			log.Errorf("failed to publish user settings update: %v", err)
		}
	}
	return updated, nil
}

func (u *UserServiceImpl) DeleteUser(ctx context.Context, id int) error {
	return u.repo.DeleteUser(ctx, id)
}

func (u *UserServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return u.repo.GetAllUsers(ctx)
}

func (u *UserServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return u.repo.IsUsernameAvailable(ctx, strings.TrimSpace(username))
}

func (u *UserServiceImpl) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := u.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrUserNotFound) {
		log.Debugf("login attempt for unknown user %s", username)
		return LoginResult{}, ErrInvalidCredentials
	} else if err != nil {
		return LoginResult{}, err
	}
	if !checkPassword(user.PasswordHash, password) {
		log.Debugf("invalid password for user %s", username)
		return LoginResult{}, ErrInvalidCredentials
	}
	token, expiresAt, err := u.tokens.Issue(user.Uid)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate resolves the user a bearer token was issued for.
func (u *UserServiceImpl) Authenticate(ctx context.Context, token string) (User, error) {
	uid, err := u.tokens.Parse(token)
	if err != nil {
		return User{}, err
	}
	user, err := u.repo.GetUserByUid(ctx, uid)
	if errors.Is(err, ErrUserNotFound) {
		return User{}, fmt.Errorf("%w: user no longer exists", ErrInvalidToken)
	}
	return user, err
}
