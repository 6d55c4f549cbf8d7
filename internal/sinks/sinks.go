package sinks

import (
	"metric-engine/internal/models"
)

// LoggingSink durably records one structured break entry. The engine calls it
// once per drained index per break interval for filters with logging enabled.
//
//go:generate mockgen -source=sinks.go -destination=./mocks/sinks_mock.go -package=mocks
type LoggingSink interface {
	Write(streamID string, record models.BreakRecord)
}

// AlertSink delivers one threshold-crossing notice. Fire-and-forget: the
// engine never consumes a result.
type AlertSink interface {
	Raise(notice models.NoticeEvent)
}

// NodeIdentity labels the current processing node for traceability of notices
// in multi-node deployments.
type NodeIdentity interface {
	Describe() string
}
