package filters

import (
	"sync"

	"metric-engine/internal/breaks"
	"metric-engine/internal/models"
	"metric-engine/internal/shared/loggers"
	"metric-engine/internal/shared/svcerrors"
	"metric-engine/internal/stores"
	"metric-engine/internal/timers"
)

type filterKey struct {
	metricID   string
	filterName string
}

//go:generate mockgen -source=registry.go -destination=./mocks/registry_mock.go -package=mocks
type Registry interface {
	// Register validates and installs one filter under metricID. A rejected
	// filter leaves no trace: no store is created and no break cycle is
	// armed. Failures are configuration errors, never fatal.
	Register(metricID string, filter *models.Filter) *svcerrors.ServiceError

	// FiltersFor returns the filters registered under metricID in
	// registration order.
	FiltersFor(metricID string) []*models.Filter

	// StoreFor returns the counter store owned by (metricID, filterName).
	StoreFor(metricID string, filterName string) (*stores.CounterStore, bool)
}

type registry struct {
	mu              sync.RWMutex
	filtersByMetric map[string][]*models.Filter
	storesByFilter  map[filterKey]*stores.CounterStore

	timerService timers.TimerService
	scheduler    breaks.Scheduler
	logger       loggers.Logger
}

func NewRegistry(timerService timers.TimerService, scheduler breaks.Scheduler, logger loggers.Logger) Registry {
	return &registry{
		filtersByMetric: make(map[string][]*models.Filter),
		storesByFilter:  make(map[filterKey]*stores.CounterStore),
		timerService:    timerService,
		scheduler:       scheduler,
		logger:          logger,
	}
}

func (r *registry) Register(metricID string, filter *models.Filter) *svcerrors.ServiceError {
	if filter.AggregateMask > 0 && len(filter.AggregateTable) > 0 {
		return r.reject(metricID, filter, errDuplicateAggregationPolicy(metricID, filter.Name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := filterKey{metricID: metricID, filterName: filter.Name}
	if _, exists := r.storesByFilter[key]; exists {
		return r.reject(metricID, filter, errDuplicateName(metricID, filter.Name))
	}

	if filter.NoticeThreshold > 0 && len(filter.NoticeThresholds) > 0 {
		return r.reject(metricID, filter, errDuplicateThresholdPolicy(metricID, filter.Name))
	}

	if filter.MetricID == "" {
		filter.MetricID = metricID
	}

	store := stores.NewCounterStore()
	r.filtersByMetric[metricID] = append(r.filtersByMetric[metricID], filter)
	r.storesByFilter[key] = store

	// Arm the recurring break cycle; it runs for the process lifetime.
	r.timerService.Every(filter.EffectiveBreakInterval(), func() {
		r.scheduler.Flush(filter, store)
	})

	r.logger.Info().
		Str(loggers.FieldMetricID, metricID).
		Str(loggers.FieldFilterName, filter.Name).
		Dur("break_interval", filter.EffectiveBreakInterval()).
		Msg("filter registered")
	metricFiltersRegisteredTotal.WithLabelValues(metricID).Inc()

	return nil
}

func (r *registry) FiltersFor(metricID string) []*models.Filter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filtersByMetric[metricID]
}

func (r *registry) StoreFor(metricID string, filterName string) (*stores.CounterStore, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.storesByFilter[filterKey{metricID: metricID, filterName: filterName}]
	return store, ok
}

func (r *registry) reject(metricID string, filter *models.Filter, svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	r.logger.Warn().
		Str(loggers.FieldMetricID, metricID).
		Str(loggers.FieldFilterName, filter.Name).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Msg("filter registration rejected")
	metricFilterRegistrationErrorsTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}
