package app

import (
	"net/http"
	"time"

	"github.com/finpercent/finpercent/internal/rest"
	"github.com/finpercent/finpercent/internal/utils"
)

type HealthDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	clock utils.Clock
}

func NewHealthHandler(clock utils.Clock) *HealthHandler {
	return &HealthHandler{clock: clock}
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthDTO
// @Router /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusOK, HealthDTO{Status: "healthy", Timestamp: h.clock.Now().UTC()})
}
