package notices

import (
	"context"
	"time"

	"metric-engine/internal/models"
	"metric-engine/internal/shared/loggers"
	"metric-engine/internal/shared/ulid"
	"metric-engine/internal/sinks"
	"metric-engine/internal/stores"
)

//go:generate mockgen -source=threshold_monitor.go -destination=./mocks/threshold_monitor_mock.go -package=mocks
type ThresholdMonitor interface {
	// OnUpdate inspects one counter update and raises a notice when it
	// crosses the filter's threshold policy. Crossings are idempotent per
	// cooldown window: once fired, the same ordinal stays silent until its
	// state entry expires. Safe for concurrent use; concurrent updates for
	// one key raise at most one notice per ordinal.
	OnUpdate(ctx context.Context, filter *models.Filter, index models.Index, value int64)
}

type thresholdMonitor struct {
	state     *stores.ThresholdState
	alertSink sinks.AlertSink
	node      sinks.NodeIdentity
	now       func() time.Time
}

func NewThresholdMonitor(state *stores.ThresholdState, alertSink sinks.AlertSink, node sinks.NodeIdentity) ThresholdMonitor {
	return &thresholdMonitor{
		state:     state,
		alertSink: alertSink,
		node:      node,
		now:       time.Now,
	}
}

func (m *thresholdMonitor) OnUpdate(ctx context.Context, filter *models.Filter, index models.Index, value int64) {
	if !filter.HasNoticePolicy() {
		return
	}

	key := stores.NoticeKey{
		MetricID:   filter.MetricID,
		FilterName: filter.Name,
		Index:      index,
	}
	ordinal := m.state.Ordinal(key)

	crossed, ok := m.crossedThreshold(filter, ordinal, value)
	if !ok {
		return
	}

	// Concurrent updates for the same key all see the same ordinal and all
	// pass the crossing check; only the one that wins the ordinal advance may
	// raise. Advancing also suppresses an immediate re-fire and, for
	// sequences, moves on to the next threshold. The entry expires a cooldown
	// after this write.
	if !m.state.AdvanceIfOrdinal(key, ordinal, filter.EffectiveNoticeCooldown()) {
		return
	}

	notice := models.NoticeEvent{
		NoticeID:   ulid.NewULID(),
		Note:       filter.Note,
		MetricID:   filter.MetricID,
		FilterName: filter.Name,
		Index:      index.String(),
		Value:      value,
		Threshold:  crossed,
		Node:       m.node.Describe(),
		RaisedAt:   m.now().UTC(),
	}
	m.alertSink.Raise(notice)

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldMetricID, filter.MetricID).
		Str(loggers.FieldFilterName, filter.Name).
		Str(loggers.FieldIndex, notice.Index).
		Int64("value", value).
		Int64("threshold", crossed).
		Msg("threshold notice raised")
	metricNoticesRaisedTotal.WithLabelValues(filter.MetricID, filter.Name).Inc()
}

// crossedThreshold returns the threshold crossed by value given the stored
// ordinal, or false when no notice is due.
func (m *thresholdMonitor) crossedThreshold(filter *models.Filter, ordinal int, value int64) (int64, bool) {
	if len(filter.NoticeThresholds) > 0 {
		if ordinal < len(filter.NoticeThresholds) && value >= filter.NoticeThresholds[ordinal] {
			return filter.NoticeThresholds[ordinal], true
		}
		return 0, false
	}

	if ordinal == 0 && value >= filter.NoticeThreshold {
		return filter.NoticeThreshold, true
	}
	return 0, false
}
