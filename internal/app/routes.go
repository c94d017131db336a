package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	r.HandleFunc("/api/health", deps.HealthHandler.Health).Methods("GET")

	// Allocation methods
	r.HandleFunc("/api/methods", deps.AllocationHandler.ListMethods).Methods("GET")
	r.HandleFunc("/api/methods/{methodId}", deps.AllocationHandler.GetMethod).Methods("GET")
	r.HandleFunc("/api/methods/{methodId}/allocation", deps.AllocationHandler.Allocate).Methods("GET")

	// Tax
	r.HandleFunc("/api/tax", deps.TaxHandler.Calculate).Methods("GET")
	r.HandleFunc("/api/tax/compare", deps.TaxHandler.Compare).Methods("GET")
	r.HandleFunc("/api/tax/strategies", deps.TaxHandler.ListStrategies).Methods("GET")

	// Debt
	r.HandleFunc("/api/debt/plan", deps.DebtHandler.Plan).Methods("POST")

	// Features
	r.HandleFunc("/api/features", deps.FeatureHandler.ListFeatures).Methods("GET")
	r.HandleFunc("/api/features/{featureId}", deps.FeatureHandler.GetFeature).Methods("GET")

	// Currency
	r.HandleFunc("/api/currency", deps.CurrencyHandler.ListCurrencies).Methods("GET")
	r.HandleFunc("/api/user/current/currency", deps.CurrencyHandler.GetPreferred).Methods("GET")
	r.HandleFunc("/api/user/current/currency", deps.CurrencyHandler.UpdatePreferred).Methods("PUT")

	// Financial data
	r.HandleFunc("/api/user/current/financial-data", deps.FinancialDataHandler.Get).Methods("GET")
	r.HandleFunc("/api/user/current/financial-data", deps.FinancialDataHandler.Store).Methods("PUT")
	r.HandleFunc("/api/user/current/financial-data", deps.FinancialDataHandler.Delete).Methods("DELETE")

	// Dashboard
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.GetDashboard).Methods("GET")

	// User management
	r.HandleFunc("/api/login", deps.UserHandler.Login).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/sheets/export", deps.GoogleHandler.ExportAllocation).Methods("POST")
}
