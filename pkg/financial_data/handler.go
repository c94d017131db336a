package financial_data

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/internal/rest"
	log "github.com/sirupsen/logrus"
)

type FinancialDataDTO struct {
	Income      float64            `json:"income"`
	Expenses    map[string]float64 `json:"expenses"`
	Savings     float64            `json:"savings"`
	Investments map[string]float64 `json:"investments"`
	CreatedAt   *time.Time         `json:"createdAt,omitempty"`
	// Derived values, ignored on input.
	TotalExpenses float64 `json:"totalExpenses"`
	SavingsRate   float64 `json:"savingsRate"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// Store godoc
// @Summary Store financial data
// @Description Replace the financial snapshot of the current user
// @Tags FinancialData
// @Accept json
// @Produce json
// @Param data body FinancialDataDTO true "Financial data"
// @Success 200 {object} FinancialDataDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid financial data"
// @Failure 403 {string} string "User not found"
// @Router /api/user/current/financial-data [put]
// @Security XUserId
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	log.Debug("Storing financial data")
	var dto FinancialDataDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}
	stored, err := h.service.Store(r.Context(), DTOToFinancialData(dto))
	if err != nil {
		if errors.Is(err, ErrInvalidFinancialData) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid financial data", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, FinancialDataToDTO(stored))
}

// Get godoc
// @Summary Get financial data
// @Tags FinancialData
// @Produce json
// @Success 200 {object} FinancialDataDTO
// @Failure 403 {string} string "User not found"
// @Failure 404 {object} rest.ErrorResponse "No financial data"
// @Router /api/user/current/financial-data [get]
// @Security XUserId
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting financial data")
	data, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, ErrFinancialDataNotFound) {
			rest.WriteError(w, http.StatusNotFound, "No financial data", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, FinancialDataToDTO(data))
}

// Delete godoc
// @Summary Delete financial data
// @Tags FinancialData
// @Success 204 "No Content"
// @Failure 404 {object} rest.ErrorResponse "No financial data"
// @Router /api/user/current/financial-data [delete]
// @Security XUserId
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting financial data")
	deleted, err := h.service.Delete(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		rest.WriteError(w, http.StatusNotFound, "No financial data", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func FinancialDataToDTO(data FinancialData) FinancialDataDTO {
	dto := FinancialDataDTO{
		Income:        data.Income,
		Expenses:      nonNil(data.Expenses),
		Savings:       data.Savings,
		Investments:   nonNil(data.Investments),
		TotalExpenses: money.Display(data.TotalExpenses()),
		SavingsRate:   money.Display(data.SavingsRate()),
	}
	if !data.CreatedAt.IsZero() {
		createdAt := data.CreatedAt
		dto.CreatedAt = &createdAt
	}
	return dto
}

func DTOToFinancialData(dto FinancialDataDTO) FinancialData {
	return FinancialData{
		Income:      dto.Income,
		Expenses:    dto.Expenses,
		Savings:     dto.Savings,
		Investments: dto.Investments,
	}
}
