package dashboard

import (
	"errors"
	"net/http"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/internal/rest"
	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/currency"
	"github.com/finpercent/finpercent/pkg/financial_data"
	"github.com/finpercent/finpercent/pkg/tax"
	"github.com/finpercent/finpercent/pkg/user"
	log "github.com/sirupsen/logrus"
)

type DashboardDTO struct {
	User          user.UserDTO                     `json:"user"`
	Currency      currency.CurrencyDTO             `json:"currency"`
	FinancialData *financial_data.FinancialDataDTO `json:"financialData,omitempty"`
	SavingsRate   float64                          `json:"savingsRate"`
	Allocation    *allocation.BreakdownDTO         `json:"allocation,omitempty"`
	Tax           *tax.ResultDTO                   `json:"tax,omitempty"`
	Formatted     map[string]string                `json:"formatted,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetDashboard godoc
// @Summary Get the current user's dashboard
// @Description Snapshot, savings rate, allocation by the active method and a yearly tax estimate
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardDTO
// @Failure 403 {object} rest.ErrorResponse "No current user"
// @Router /api/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting dashboard")
	summary, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) || errors.Is(err, user.ErrUserNotFound) {
			rest.WriteError(w, http.StatusForbidden, "No current user", err.Error())
			return
		}
		log.Errorf("failed to build dashboard: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SummaryToDTO(summary))
}

func SummaryToDTO(summary Summary) DashboardDTO {
	dto := DashboardDTO{
		User:        user.UserToDTO(&summary.User),
		Currency:    currency.ToDTO(summary.Currency),
		SavingsRate: money.Display(summary.SavingsRate),
	}
	if summary.FinancialData != nil {
		data := financial_data.FinancialDataToDTO(*summary.FinancialData)
		dto.FinancialData = &data
		dto.Formatted = map[string]string{
			"income":        summary.Currency.Format(summary.FinancialData.Income),
			"totalExpenses": summary.Currency.Format(summary.FinancialData.TotalExpenses()),
			"savings":       summary.Currency.Format(summary.FinancialData.Savings),
		}
	}
	if summary.Allocation != nil {
		breakdown := allocation.BreakdownToDTO(*summary.Allocation)
		dto.Allocation = &breakdown
		for _, c := range summary.Allocation.Categories {
			dto.Formatted["allocation."+c.Name] = summary.Currency.Format(c.Amount)
		}
	}
	if summary.Tax != nil {
		result := tax.ResultToDTO(*summary.Tax)
		dto.Tax = &result
		dto.Formatted["yearlyTax"] = summary.Currency.Format(summary.Tax.Tax)
		dto.Formatted["afterTaxIncome"] = summary.Currency.Format(summary.Tax.AfterTaxIncome)
	}
	return dto
}
