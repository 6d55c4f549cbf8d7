package http

import (
	"encoding/json"
	"net/http"

	"metric-engine/internal/ingestors"

	"github.com/go-chi/chi/v5"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type observationHandler struct {
	observationService ingestors.ObservationService
}

func NewObservationHandler(observationService ingestors.ObservationService) AppHttpHandler {
	return &observationHandler{
		observationService: observationService,
	}
}

// Handle processes POST /metrics/{metricID}/observations requests.
func (h *observationHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	metricID := chi.URLParam(r, "metricID")

	result, err := h.observationService.IngestObservations(r.Context(), metricID, contentType(r), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(map[string]int{"accepted": result.Accepted})
}
