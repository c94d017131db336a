package debt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/internal/rest"
	log "github.com/sirupsen/logrus"
)

type DebtDTO struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Rate    float64 `json:"rate"`
}

type PlanRequestDTO struct {
	Debts    []DebtDTO `json:"debts"`
	Strategy string    `json:"strategy"`
	// Payment defaults to the strategy's default chunk when omitted.
	Payment *float64 `json:"payment,omitempty"`
}

type PlanResponseDTO struct {
	Strategy    string    `json:"strategy"`
	Order       []DebtDTO `json:"order"`
	Target      string    `json:"target,omitempty"`
	Payment     float64   `json:"payment"`
	After       []DebtDTO `json:"after"`
	TotalBefore float64   `json:"totalBefore"`
	TotalAfter  float64   `json:"totalAfter"`
	AllPaidOff  bool      `json:"allPaidOff"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Plan godoc
// @Summary Plan a debt repayment
// @Description Order debts by strategy and apply one payment to the strategy's target
// @Tags Debt
// @Accept json
// @Produce json
// @Param plan body PlanRequestDTO true "Debts and strategy"
// @Success 200 {object} PlanResponseDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/debt/plan [post]
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	log.Debug("Planning debt repayment")
	var request PlanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}
	strategy, err := ParseStrategy(request.Strategy)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Unsupported strategy", err.Error())
		return
	}
	debts := make([]Debt, 0, len(request.Debts))
	for _, d := range request.Debts {
		debts = append(debts, Debt{Name: d.Name, Balance: d.Balance, Rate: d.Rate})
	}
	if err := Validate(debts); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid debts", err.Error())
		return
	}
	payment := DefaultPayment(strategy)
	if request.Payment != nil {
		payment = *request.Payment
	}

	ordered, err := Order(debts, strategy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	response := PlanResponseDTO{
		Strategy:    string(strategy),
		Order:       toDTOs(ordered),
		Payment:     money.Display(payment),
		After:       toDTOs(debts),
		TotalBefore: money.Display(TotalBalance(debts)),
	}
	after, target, err := ApplyPayment(debts, strategy, payment)
	switch {
	case errors.Is(err, ErrNothingToPay):
		response.AllPaidOff = true
		response.Payment = 0
		response.TotalAfter = response.TotalBefore
	case errors.Is(err, ErrInvalidPayment):
		rest.WriteError(w, http.StatusBadRequest, "Invalid payment", err.Error())
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		response.Target = after[target].Name
		response.After = toDTOs(after)
		response.TotalAfter = money.Display(TotalBalance(after))
		_, err = Target(after, strategy)
		response.AllPaidOff = errors.Is(err, ErrNothingToPay)
	}
	rest.WriteJSON(w, http.StatusOK, response)
}

func toDTOs(debts []Debt) []DebtDTO {
	dtos := make([]DebtDTO, 0, len(debts))
	for _, d := range debts {
		dtos = append(dtos, DebtDTO{Name: d.Name, Balance: money.Display(d.Balance), Rate: d.Rate})
	}
	return dtos
}
