package aggregators

import (
	"metric-engine/internal/shared/metrics"
)

const (
	dropReasonNegativeIncrement = "negative_increment"
	dropReasonInvalidMask       = "invalid_mask"
	dropReasonTableMiss         = "table_miss"
)

var (
	metricObservationsAppliedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "observations_applied_total",
		},
		[]string{"metric_id", "filter_name"},
	)

	metricObservationsDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "observations_dropped_total",
		},
		[]string{"metric_id", "reason"},
	)
)
