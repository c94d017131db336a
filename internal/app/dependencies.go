package app

import (
	"github.com/finpercent/finpercent/internal/config"
	"github.com/finpercent/finpercent/internal/event_bus"
	"github.com/finpercent/finpercent/internal/utils"
	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/currency"
	"github.com/finpercent/finpercent/pkg/dashboard"
	"github.com/finpercent/finpercent/pkg/debt"
	"github.com/finpercent/finpercent/pkg/feature"
	"github.com/finpercent/finpercent/pkg/financial_data"
	"github.com/finpercent/finpercent/pkg/google"
	"github.com/finpercent/finpercent/pkg/preference"
	"github.com/finpercent/finpercent/pkg/tax"
	"github.com/finpercent/finpercent/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	CurrencyService currency.Service
	CurrencyHandler *currency.Handler

	AllocationHandler *allocation.Handler
	TaxHandler        *tax.Handler
	DebtHandler       *debt.Handler
	FeatureHandler    *feature.Handler

	FinancialDataService financial_data.Service
	FinancialDataHandler *financial_data.Handler

	DashboardService dashboard.Service
	DashboardHandler *dashboard.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	HealthHandler *HealthHandler
}

// Repositories are the storage dependencies of the services.
type Repositories struct {
	Users         user.Repo
	Preferences   currency.Store
	FinancialData financial_data.Repository
	GoogleTokens  google.TokenRepository
}

func PostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Users:         user.NewUserRepo(db),
		Preferences:   preference.NewUserStore(db),
		FinancialData: financial_data.NewRepository(db),
		GoogleTokens:  google.NewTokenRepository(db),
	}
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	return NewDependencies(PostgresRepositories(db), cfg, &utils.SystemClock{})
}

func NewDependencies(repos Repositories, cfg config.Application, clock utils.Clock) *Dependencies {
	deps := &Dependencies{Clock: clock}

	deps.EventBus = event_bus.NewEventBus()
	SubscribeAuditLog(deps.EventBus)

	tokens := user.NewTokenIssuer(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)
	deps.UserService = user.NewUserService(repos.Users, tokens, deps.EventBus)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.CurrencyService = currency.NewService(repos.Preferences, deps.EventBus)
	deps.CurrencyHandler = currency.NewHandler(deps.CurrencyService)

	deps.AllocationHandler = allocation.NewHandler(allocation.NewCsvRenderer())
	deps.TaxHandler = tax.NewHandler()
	deps.DebtHandler = debt.NewHandler()
	deps.FeatureHandler = feature.NewHandler()

	deps.FinancialDataService = financial_data.NewService(repos.FinancialData, deps.EventBus, clock)
	deps.FinancialDataHandler = financial_data.NewHandler(deps.FinancialDataService)

	deps.DashboardService = dashboard.NewService(deps.UserService, deps.FinancialDataService, deps.CurrencyService)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	deps.GoogleAuth = google.NewGoogleAuth(repos.GoogleTokens, deps.UserService, google.NewOAuthConfig(cfg))
	deps.GoogleService = google.NewService(deps.GoogleAuth)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.HealthHandler = NewHealthHandler(clock)

	return deps
}
