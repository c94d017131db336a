package allocation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/finpercent/finpercent/internal/money"
	"github.com/finpercent/finpercent/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type MethodDTO struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Basis       string `json:"basis"`
}

type CategoryAllocationDTO struct {
	Name         string                  `json:"name"`
	Description  string                  `json:"description,omitempty"`
	Percentage   float64                 `json:"percentage"`
	ShareOfTotal float64                 `json:"shareOfTotal"`
	Amount       float64                 `json:"amount"`
	Children     []CategoryAllocationDTO `json:"children,omitempty"`
}

type BreakdownDTO struct {
	Method     string                  `json:"method"`
	Amount     float64                 `json:"amount"`
	Detailed   bool                    `json:"detailed"`
	Categories []CategoryAllocationDTO `json:"categories"`
}

type Handler struct {
	csvRenderer Renderer
}

func NewHandler(csvRenderer Renderer) *Handler {
	return &Handler{csvRenderer}
}

// ListMethods godoc
// @Summary List allocation methods
// @Tags Allocation
// @Produce json
// @Success 200 {array} MethodDTO
// @Router /api/methods [get]
func (h *Handler) ListMethods(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing allocation methods")
	methods := ListMethods()
	dtos := make([]MethodDTO, 0, len(methods))
	for _, m := range methods {
		dtos = append(dtos, MethodToDTO(m))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// GetMethod godoc
// @Summary Get an allocation method
// @Tags Allocation
// @Produce json
// @Param methodId path string true "Method ID"
// @Success 200 {object} MethodDTO
// @Failure 404 {object} rest.ErrorResponse "Unsupported method"
// @Router /api/methods/{methodId} [get]
func (h *Handler) GetMethod(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting allocation method")
	method, ok := methodFromPath(w, r)
	if !ok {
		return
	}
	info, err := Describe(method)
	if err != nil {
		rest.WriteError(w, http.StatusNotFound, "Unsupported method", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, MethodToDTO(info))
}

// Allocate godoc
// @Summary Allocate an amount with a method
// @Description Compute the breakdown of an amount. Percentages are relative to the parent category.
// @Tags Allocation
// @Produce json
// @Produce text/csv
// @Param methodId path string true "Method ID"
// @Param amount query number true "Amount to allocate"
// @Param detailed query bool false "Include subcategories"
// @Param format query string false "json (default) or csv"
// @Success 200 {object} BreakdownDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid amount"
// @Failure 404 {object} rest.ErrorResponse "Unsupported method"
// @Router /api/methods/{methodId}/allocation [get]
func (h *Handler) Allocate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Allocating amount")
	method, ok := methodFromPath(w, r)
	if !ok {
		return
	}
	amount, err := money.ParseAmount(r.URL.Query().Get("amount"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid amount", "amount must be a finite number")
		return
	}
	detailed := false
	if detailedParam := r.URL.Query().Get("detailed"); detailedParam != "" {
		detailed, err = strconv.ParseBool(detailedParam)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid detailed flag", "detailed must be true or false")
			return
		}
	}

	breakdown, err := Calculate(Input{Amount: amount, Method: method, Detailed: detailed})
	if err != nil {
		var unsupported *UnsupportedMethodError
		if errors.As(err, &unsupported) {
			rest.WriteError(w, http.StatusNotFound, "Unsupported method", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" || r.Header.Get("Accept") == "text/csv" {
		csv, err := h.csvRenderer.Render(breakdown)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("Error writing csv response: %v", err)
		}
		return
	}
	rest.WriteJSON(w, http.StatusOK, BreakdownToDTO(breakdown))
}

func methodFromPath(w http.ResponseWriter, r *http.Request) (Method, bool) {
	method, err := ParseMethod(mux.Vars(r)["methodId"])
	if err != nil {
		rest.WriteError(w, http.StatusNotFound, "Unsupported method", err.Error())
		return "", false
	}
	return method, true
}

func MethodToDTO(info MethodInfo) MethodDTO {
	return MethodDTO{
		Id:          string(info.Id),
		Name:        info.Name,
		Description: info.Description,
		Basis:       info.Basis,
	}
}

// BreakdownToDTO rounds amounts and percentages for presentation.
func BreakdownToDTO(breakdown Breakdown) BreakdownDTO {
	return BreakdownDTO{
		Method:     string(breakdown.Method),
		Amount:     money.Display(breakdown.Amount),
		Detailed:   breakdown.Detailed,
		Categories: categoriesToDTO(breakdown.Categories),
	}
}

func categoriesToDTO(categories []CategoryAllocation) []CategoryAllocationDTO {
	if len(categories) == 0 {
		return nil
	}
	dtos := make([]CategoryAllocationDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, CategoryAllocationDTO{
			Name:         c.Name,
			Description:  c.Description,
			Percentage:   money.Display(c.Percentage),
			ShareOfTotal: money.Display(c.ShareOfTotal),
			Amount:       money.Display(c.Amount),
			Children:     categoriesToDTO(c.Children),
		})
	}
	return dtos
}
