package feature

import (
	"net/http"

	"github.com/finpercent/finpercent/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type FeatureDTO struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListFeatures godoc
// @Summary List product features
// @Tags Features
// @Produce json
// @Success 200 {array} FeatureDTO
// @Router /api/features [get]
func (h *Handler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	log.Trace("Listing features")
	all := List()
	dtos := make([]FeatureDTO, 0, len(all))
	for _, f := range all {
		dtos = append(dtos, ToDTO(f))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// GetFeature godoc
// @Summary Get a product feature
// @Tags Features
// @Produce json
// @Param featureId path string true "Feature ID"
// @Success 200 {object} FeatureDTO
// @Failure 404 {object} rest.ErrorResponse "Feature not found"
// @Router /api/features/{featureId} [get]
func (h *Handler) GetFeature(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["featureId"]
	f, err := Get(id)
	if err != nil {
		rest.WriteError(w, http.StatusNotFound, "Feature not found", id)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(f))
}

func ToDTO(f Feature) FeatureDTO {
	return FeatureDTO{
		Id:          f.Id,
		Name:        f.Name,
		Description: f.Description,
		Status:      string(f.Status),
	}
}
