package models

import (
	"net/netip"
	"time"
)

const (
	// DefaultBreakInterval is the flush period used by filters that do not set
	// their own BreakInterval.
	DefaultBreakInterval = time.Minute

	// DefaultNoticeCooldown is how long a threshold crossing suppresses the
	// next notice for the same (metric, filter, index) when the filter does
	// not set its own NoticeCooldown.
	DefaultNoticeCooldown = time.Hour
)

// Filter describes one aggregation/reporting/alerting view over a metric. A
// metric may carry any number of filters; each owns its own counter store and
// break cycle. Filters are immutable once registered.
type Filter struct {
	// MetricID is the owning metric. Filled from the registration metric id
	// when left empty.
	MetricID string

	// Name is unique within the owning metric.
	Name string

	// Predicate, when set, decides per observation whether this filter sees
	// it at all.
	Predicate func(Index) bool

	// AggregateMask collapses host-keyed indices into their covering subnet
	// of this many prefix bits. Zero means no mask. Mutually exclusive with
	// AggregateTable.
	AggregateMask int

	// AggregateTable collapses host-keyed indices via an explicit
	// host-to-subnet lookup. Mutually exclusive with AggregateMask.
	AggregateTable map[netip.Addr]netip.Prefix

	// BreakInterval is the period between flush-and-reset cycles. Defaults to
	// DefaultBreakInterval when zero.
	BreakInterval time.Duration

	// Log enables emitting drained counter values to the logging sink at each
	// break.
	Log bool

	// Note is the notice type carried by alerts raised for this filter.
	Note string

	// NoticeThreshold raises a notice the first time a counter reaches this
	// value. Zero means no single threshold. Mutually exclusive with
	// NoticeThresholds.
	NoticeThreshold int64

	// NoticeThresholds is an ascending sequence of values; each is crossed at
	// most once per cooldown window, in order.
	NoticeThresholds []int64

	// NoticeCooldown is how long a crossing stays armed against re-firing.
	// Defaults to DefaultNoticeCooldown when zero.
	NoticeCooldown time.Duration
}

// EffectiveBreakInterval returns BreakInterval or the default when unset.
func (f *Filter) EffectiveBreakInterval() time.Duration {
	if f.BreakInterval > 0 {
		return f.BreakInterval
	}
	return DefaultBreakInterval
}

// EffectiveNoticeCooldown returns NoticeCooldown or the default when unset.
func (f *Filter) EffectiveNoticeCooldown() time.Duration {
	if f.NoticeCooldown > 0 {
		return f.NoticeCooldown
	}
	return DefaultNoticeCooldown
}

// HasNoticePolicy reports whether the filter defines any threshold at all.
func (f *Filter) HasNoticePolicy() bool {
	return f.NoticeThreshold > 0 || len(f.NoticeThresholds) > 0
}
