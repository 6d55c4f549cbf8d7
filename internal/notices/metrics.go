package notices

import (
	"metric-engine/internal/shared/metrics"
)

var (
	metricNoticesRaisedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubNotices,
			Name:      "raised_total",
		},
		[]string{"metric_id", "filter_name"},
	)
)
