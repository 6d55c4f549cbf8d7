package breaks

import (
	"metric-engine/internal/shared/metrics"
)

var (
	metricBreakFlushesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBreaks,
			Name:      "flushes_total",
		},
		[]string{"metric_id", "filter_name"},
	)

	metricBreakEntriesFlushedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBreaks,
			Name:      "entries_flushed_total",
		},
		[]string{"metric_id", "filter_name"},
	)
)
