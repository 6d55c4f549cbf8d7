package ingestors

import (
	"metric-engine/internal/shared/metrics"
)

var (
	metricObservationBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "observation_batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
