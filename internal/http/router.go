package http

import (
	"net/http"

	"metric-engine/internal/aggregators"
	"metric-engine/internal/ingestors"
	"metric-engine/internal/shared/loggers"
	"metric-engine/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(observationService ingestors.ObservationService, aggregationService aggregators.AggregationService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger, aggregationService)

	// Initialize handlers
	observationHandler := NewObservationHandler(observationService)

	// Routes
	router.Post("/metrics/{metricID}/observations", errorHandlingAdapter(observationHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
