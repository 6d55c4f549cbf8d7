package filters

import (
	"metric-engine/internal/shared/metrics"
)

var (
	metricFiltersRegisteredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilters,
			Name:      "registered_total",
		},
		[]string{"metric_id"},
	)

	metricFilterRegistrationErrorsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilters,
			Name:      "registration_errors_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
