package user

import (
	"errors"

	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/tax"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDataInvalid    = errors.New("invalid user data")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

const (
	DefaultActiveMethod = allocation.NWS
	DefaultTaxRegime    = tax.RegimeNew
)

type User struct {
	Id           int
	Uid          string
	Username     string
	Email        string
	DisplayName  string
	PasswordHash string
	Settings     Settings
}

type Settings struct {
	// ActiveMethod is the budgeting method the dashboard allocates income with.
	ActiveMethod allocation.Method
	TaxRegime    tax.Regime
}

// withDefaults fills in unset settings.
func (s Settings) withDefaults() Settings {
	if s.ActiveMethod == "" {
		s.ActiveMethod = DefaultActiveMethod
	}
	if s.TaxRegime == "" {
		s.TaxRegime = DefaultTaxRegime
	}
	return s
}

// normalize applies defaults and canonicalizes the method and regime.
func (s Settings) normalize() (Settings, error) {
	s = s.withDefaults()
	method, err := allocation.ParseMethod(string(s.ActiveMethod))
	if err != nil {
		return Settings{}, errors.Join(ErrUserDataInvalid, err)
	}
	regime, err := tax.ParseRegime(string(s.TaxRegime))
	if err != nil {
		return Settings{}, errors.Join(ErrUserDataInvalid, err)
	}
	s.ActiveMethod = method
	s.TaxRegime = regime
	return s, nil
}
