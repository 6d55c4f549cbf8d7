package streams

import (
	"metric-engine/internal/models"
)

// ObservationEvent is one observation in flight between the ingest surface and
// the aggregation workers: "add Increment to MetricID's counters at Index".
type ObservationEvent struct {
	MetricID  string
	Index     models.Index
	Increment int64
}
