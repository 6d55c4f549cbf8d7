package aggregators

import (
	"context"

	"metric-engine/internal/filters"
	"metric-engine/internal/models"
	"metric-engine/internal/notices"
	"metric-engine/internal/shared/loggers"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// AddData reports one observation: add increment to metricID's counters
	// at index. Each filter registered on the metric sees the observation
	// independently; a metric with no filters makes this a no-op. Negative
	// increments are dropped.
	AddData(ctx context.Context, metricID string, index models.Index, increment int64)
}

type aggregationService struct {
	registry filters.Registry
	monitor  notices.ThresholdMonitor
}

func NewAggregationService(registry filters.Registry, monitor notices.ThresholdMonitor) AggregationService {
	return &aggregationService{registry: registry, monitor: monitor}
}

func (s *aggregationService) AddData(ctx context.Context, metricID string, index models.Index, increment int64) {
	if increment < 0 {
		loggers.Ctx(ctx).Warn().
			Str(loggers.FieldMetricID, metricID).
			Str(loggers.FieldIndex, index.String()).
			Int64("increment", increment).
			Msg("negative increment dropped")
		metricObservationsDroppedTotal.WithLabelValues(metricID, dropReasonNegativeIncrement).Inc()
		return
	}

	registered := s.registry.FiltersFor(metricID)
	if len(registered) == 0 {
		return
	}

	for _, filter := range registered {
		if filter.Predicate != nil && !filter.Predicate(index) {
			continue
		}

		aggregated, ok := s.aggregate(ctx, filter, index)
		if !ok {
			continue
		}

		store, ok := s.registry.StoreFor(metricID, filter.Name)
		if !ok {
			continue
		}

		value := store.Add(aggregated, increment)
		metricObservationsAppliedTotal.WithLabelValues(metricID, filter.Name).Inc()

		s.monitor.OnUpdate(ctx, filter, aggregated, value)
	}
}

// aggregate applies the filter's aggregation policy to index. A host-keyed
// index collapses to its covering subnet; the resulting index is network-only,
// so raw hosts and their collapsed form never coexist in one store. A lookup
// miss in an aggregation table drops the observation for this filter.
func (s *aggregationService) aggregate(ctx context.Context, filter *models.Filter, index models.Index) (models.Index, bool) {
	if !index.Host.IsValid() {
		return index, true
	}

	switch {
	case filter.AggregateMask > 0:
		prefix, err := index.Host.Prefix(filter.AggregateMask)
		if err != nil {
			loggers.Ctx(ctx).Warn().
				Str(loggers.FieldMetricID, filter.MetricID).
				Str(loggers.FieldFilterName, filter.Name).
				Str(loggers.FieldIndex, index.String()).
				Int("mask", filter.AggregateMask).
				Msg("aggregation mask does not fit host address, observation dropped")
			metricObservationsDroppedTotal.WithLabelValues(filter.MetricID, dropReasonInvalidMask).Inc()
			return models.Index{}, false
		}
		return models.IndexForNetwork(prefix), true

	case len(filter.AggregateTable) > 0:
		prefix, ok := filter.AggregateTable[index.Host]
		if !ok {
			loggers.Ctx(ctx).Debug().
				Str(loggers.FieldMetricID, filter.MetricID).
				Str(loggers.FieldFilterName, filter.Name).
				Str(loggers.FieldIndex, index.String()).
				Msg("host absent from aggregation table, observation dropped")
			metricObservationsDroppedTotal.WithLabelValues(filter.MetricID, dropReasonTableMiss).Inc()
			return models.Index{}, false
		}
		return models.IndexForNetwork(prefix), true
	}

	return index, true
}
