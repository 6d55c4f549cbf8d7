package breaks

import (
	"time"

	"metric-engine/internal/models"
	"metric-engine/internal/sinks"
	"metric-engine/internal/stores"
)

//go:generate mockgen -source=scheduler.go -destination=./mocks/scheduler_mock.go -package=mocks
type Scheduler interface {
	// Flush drains the filter's counter store and, when the filter has logging
	// enabled, writes one break record per drained index to the logging sink.
	// Drain and reset are one step: a value reported here can never be
	// reported again by a later flush.
	Flush(filter *models.Filter, store *stores.CounterStore)
}

type scheduler struct {
	loggingSink sinks.LoggingSink
	now         func() time.Time
}

func NewScheduler(loggingSink sinks.LoggingSink) Scheduler {
	return &scheduler{loggingSink: loggingSink, now: time.Now}
}

func (s *scheduler) Flush(filter *models.Filter, store *stores.CounterStore) {
	// The store is drained even when logging is disabled, so every filter
	// starts each break period from zero.
	drained := store.Drain()

	metricBreakFlushesTotal.WithLabelValues(filter.MetricID, filter.Name).Inc()
	if len(drained) == 0 {
		return
	}

	if filter.Log {
		timestamp := s.now().UTC()
		streamID := filter.MetricID + "/" + filter.Name
		for index, value := range drained {
			s.loggingSink.Write(streamID, models.BreakRecord{
				Timestamp:  timestamp,
				MetricID:   filter.MetricID,
				FilterName: filter.Name,
				Index:      index,
				Value:      value,
			})
		}
	}

	metricBreakEntriesFlushedTotal.WithLabelValues(filter.MetricID, filter.Name).Add(float64(len(drained)))
}
