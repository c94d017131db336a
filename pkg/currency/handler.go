package currency

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finpercent/finpercent/internal/rest"
	log "github.com/sirupsen/logrus"
)

type CurrencyDTO struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type UpdateRequestDTO struct {
	Code string `json:"code"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// ListCurrencies godoc
// @Summary List supported currencies
// @Tags Currency
// @Produce json
// @Success 200 {array} CurrencyDTO
// @Router /api/currency [get]
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	log.Trace("Listing currencies")
	currencies := Catalog()
	dtos := make([]CurrencyDTO, 0, len(currencies))
	for _, c := range currencies {
		dtos = append(dtos, ToDTO(c))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// GetPreferred godoc
// @Summary Get preferred currency
// @Description Currency of the current user, INR when none was chosen
// @Tags Currency
// @Produce json
// @Success 200 {object} CurrencyDTO
// @Failure 403 {string} string "User not found"
// @Router /api/user/current/currency [get]
// @Security XUserId
func (h *Handler) GetPreferred(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting preferred currency")
	c, err := h.service.Current(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(c))
}

// UpdatePreferred godoc
// @Summary Set preferred currency
// @Tags Currency
// @Accept json
// @Produce json
// @Param currency body UpdateRequestDTO true "Currency code"
// @Success 200 {object} CurrencyDTO
// @Failure 400 {object} rest.ErrorResponse "Unsupported currency"
// @Failure 403 {string} string "User not found"
// @Router /api/user/current/currency [put]
// @Security XUserId
func (h *Handler) UpdatePreferred(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating preferred currency")
	var request UpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	c, err := h.service.Update(r.Context(), request.Code)
	if err != nil {
		if errors.Is(err, ErrUnsupportedCurrency) {
			rest.WriteError(w, http.StatusBadRequest, "Unsupported currency", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(c))
}

func ToDTO(c Currency) CurrencyDTO {
	return CurrencyDTO{
		Code:   c.Code,
		Locale: c.Locale,
		Symbol: c.Symbol,
		Name:   c.Name,
	}
}
