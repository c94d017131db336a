package google

import (
	"errors"
	"net/http"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/internal/rest"
	"github.com/finpercent/finpercent/pkg/allocation"
	log "github.com/sirupsen/logrus"
)

type SpreadsheetDTO struct {
	Id  string `json:"id"`
	Url string `json:"url"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s}
}

// ExportAllocation godoc
// @Summary Export an allocation to Google Sheets
// @Description Creates a spreadsheet with the detailed allocation of the amount
// @Tags Google
// @Produce json
// @Param method query string true "Allocation method"
// @Param amount query number true "Amount to allocate"
// @Success 201 {object} SpreadsheetDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid amount"
// @Failure 403 {object} rest.ErrorResponse "Google authorization required"
// @Failure 404 {object} rest.ErrorResponse "Unsupported method"
// @Router /api/integrations/google/sheets/export [post]
func (h *Handler) ExportAllocation(w http.ResponseWriter, r *http.Request) {
	log.Debug("Exporting allocation to Google Sheets")
	method, err := allocation.ParseMethod(r.URL.Query().Get("method"))
	if err != nil {
		rest.WriteError(w, http.StatusNotFound, "Unsupported method", err.Error())
		return
	}
	amount, err := money.ParseAmount(r.URL.Query().Get("amount"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid amount", "amount must be a finite number")
		return
	}
	breakdown, err := allocation.Calculate(allocation.Input{Amount: amount, Method: method, Detailed: true})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	spreadsheet, err := h.service.ExportAllocation(r.Context(), breakdown)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			rest.WriteError(w, http.StatusForbidden, "Google authorization required", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, SpreadsheetDTO{Id: spreadsheet.Id, Url: spreadsheet.Url})
}
