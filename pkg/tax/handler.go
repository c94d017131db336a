package tax

import (
	"errors"
	"math"
	"net/http"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/internal/rest"
	log "github.com/sirupsen/logrus"
)

type SlabDTO struct {
	Lower float64 `json:"lower"`
	// Upper is omitted for the open-ended top slab.
	Upper         *float64 `json:"upper,omitempty"`
	Rate          float64  `json:"rate"`
	TaxableAmount float64  `json:"taxableAmount"`
	Tax           float64  `json:"tax"`
}

type ResultDTO struct {
	Regime         string    `json:"regime"`
	Income         float64   `json:"income"`
	Slabs          []SlabDTO `json:"slabs"`
	GrossTax       float64   `json:"grossTax"`
	Deduction      float64   `json:"deduction"`
	Tax            float64   `json:"tax"`
	EffectiveRate  float64   `json:"effectiveRate"`
	AfterTaxIncome float64   `json:"afterTaxIncome"`
}

type ComparisonDTO struct {
	Old         ResultDTO `json:"old"`
	New         ResultDTO `json:"new"`
	Recommended string    `json:"recommended"`
	Savings     float64   `json:"savings"`
}

type StrategyDTO struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Section      string  `json:"section"`
	Description  string  `json:"description"`
	MaxDeduction float64 `json:"maxDeduction"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Calculate godoc
// @Summary Calculate income tax
// @Description Calculate the progressive income tax for an annual income under the given regime
// @Tags Tax
// @Produce json
// @Param income query number true "Annual income"
// @Param regime query string false "Tax regime (old or new), defaults to new"
// @Success 200 {object} ResultDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid income or regime"
// @Router /api/tax [get]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Calculating tax")
	income, ok := parseIncome(w, r)
	if !ok {
		return
	}
	regimeParam := r.URL.Query().Get("regime")
	if regimeParam == "" {
		regimeParam = string(RegimeNew)
	}
	regime, err := ParseRegime(regimeParam)
	if err != nil {
		var invalidRegime *InvalidRegimeError
		if errors.As(err, &invalidRegime) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid regime", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	result, err := Calculate(income, regime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ResultToDTO(result))
}

// Compare godoc
// @Summary Compare tax regimes
// @Description Calculate the tax under both regimes and recommend the cheaper one
// @Tags Tax
// @Produce json
// @Param income query number true "Annual income"
// @Success 200 {object} ComparisonDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid income"
// @Router /api/tax/compare [get]
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	log.Debug("Comparing tax regimes")
	income, ok := parseIncome(w, r)
	if !ok {
		return
	}
	comparison, err := Compare(income)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid income", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, ComparisonDTO{
		Old:         ResultToDTO(comparison.Old),
		New:         ResultToDTO(comparison.New),
		Recommended: string(comparison.Recommended),
		Savings:     money.Display(comparison.Savings),
	})
}

// ListStrategies godoc
// @Summary List tax saving strategies
// @Tags Tax
// @Produce json
// @Success 200 {array} StrategyDTO
// @Router /api/tax/strategies [get]
func (h *Handler) ListStrategies(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing tax strategies")
	strategies := Strategies()
	dtos := make([]StrategyDTO, 0, len(strategies))
	for _, s := range strategies {
		dtos = append(dtos, StrategyDTO{
			Id:           s.Id,
			Name:         s.Name,
			Section:      s.Section,
			Description:  s.Description,
			MaxDeduction: s.MaxDeduction,
		})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func parseIncome(w http.ResponseWriter, r *http.Request) (float64, bool) {
	income, err := money.ParseAmount(r.URL.Query().Get("income"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid income", "income must be a finite number")
		return 0, false
	}
	return income, true
}

func ResultToDTO(result Result) ResultDTO {
	slabs := make([]SlabDTO, 0, len(result.SlabTaxes))
	for _, s := range result.SlabTaxes {
		dto := SlabDTO{
			Lower:         s.Lower,
			Rate:          s.Rate,
			TaxableAmount: money.Display(s.TaxableAmount),
			Tax:           money.Display(s.Tax),
		}
		if !math.IsInf(s.Upper, 1) {
			upper := s.Upper
			dto.Upper = &upper
		}
		slabs = append(slabs, dto)
	}
	return ResultDTO{
		Regime:         string(result.Regime),
		Income:         money.Display(result.Income),
		Slabs:          slabs,
		GrossTax:       money.Display(result.GrossTax),
		Deduction:      money.Display(result.Deduction),
		Tax:            money.Display(result.Tax),
		EffectiveRate:  money.Display(result.EffectiveRate),
		AfterTaxIncome: money.Display(result.AfterTaxIncome),
	}
}
