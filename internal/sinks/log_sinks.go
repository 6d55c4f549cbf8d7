package sinks

import (
	"metric-engine/internal/models"
	"metric-engine/internal/shared/loggers"
)

// breakLogSink writes break records as structured log lines. This is the host
// integration used by the standalone server; an embedding host may plug in its
// own LoggingSink instead.
type breakLogSink struct {
	logger loggers.Logger
}

func NewBreakLogSink(logger loggers.Logger) LoggingSink {
	return &breakLogSink{logger: logger}
}

func (s *breakLogSink) Write(streamID string, record models.BreakRecord) {
	s.logger.Info().
		Str(loggers.FieldStreamId, streamID).
		Str(loggers.FieldMetricID, record.MetricID).
		Str(loggers.FieldFilterName, record.FilterName).
		Str(loggers.FieldIndex, record.Index.String()).
		Int64("value", record.Value).
		Time("flushed_at", record.Timestamp).
		Msg("break flush")
}

// alertLogSink raises notices as warning-level log lines.
type alertLogSink struct {
	logger loggers.Logger
}

func NewAlertLogSink(logger loggers.Logger) AlertSink {
	return &alertLogSink{logger: logger}
}

func (s *alertLogSink) Raise(notice models.NoticeEvent) {
	s.logger.Warn().
		Str("notice_id", notice.NoticeID).
		Str("note", notice.Note).
		Str(loggers.FieldMetricID, notice.MetricID).
		Str(loggers.FieldFilterName, notice.FilterName).
		Str(loggers.FieldIndex, notice.Index).
		Int64("value", notice.Value).
		Int64("threshold", notice.Threshold).
		Str("node", notice.Node).
		Time("raised_at", notice.RaisedAt).
		Msg("threshold notice")
}
