package streams

import (
	"metric-engine/internal/shared/metrics"
)

var (
	streamObservations              = "observations"
	metricObservationPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "observation_published_total",
		},
		[]string{"stream_id"},
	)

	metricObservationConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "observation_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
