package ingestors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/netip"
	"strings"

	"metric-engine/internal/models"
	"metric-engine/internal/shared/loggers"
	"metric-engine/internal/shared/metrics"
	"metric-engine/internal/streams"
)

const (
	maxBatchBytes = 1 * 1024 * 1024
	maxStrLen     = 1024

	FormatJSON = "json"
)

// observationEntry is one observation as submitted over the wire.
type observationEntry struct {
	Host      string `json:"host,omitempty"`
	Network   string `json:"network,omitempty"`
	Str       string `json:"str,omitempty"`
	Increment int64  `json:"increment"`
}

// IngestResult represents the result of an observation batch ingestion.
type IngestResult struct {
	Accepted int
}

//go:generate mockgen -source=observation_service.go -destination=./mocks/observation_service_mock.go -package=mocks
type ObservationService interface {
	// IngestObservations validates a JSON batch of observations for metricID
	// and hands them to the aggregation workers. The whole batch is rejected
	// on the first invalid entry; a valid batch is accepted atomically.
	IngestObservations(ctx context.Context, metricID string, format string, r io.Reader) (*IngestResult, error)
}

type observationService struct {
	producer streams.ObservationProducer
}

func NewObservationService(producer streams.ObservationProducer) ObservationService {
	return &observationService{producer: producer}
}

func (s *observationService) IngestObservations(ctx context.Context, metricID string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting observations for metric ID: %s, format: %s", metricID, format)

	events, err := s.validateBatch(metricID, format, r)
	if err != nil {
		metricObservationBatchIngestedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	if err := s.producer.Produce(ctx, events); err != nil {
		svcErr := errInternalObservationPublishFailed(err)
		metricObservationBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricObservationBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &IngestResult{Accepted: len(events)}, nil
}

func (s *observationService) validateBatch(metricID string, format string, r io.Reader) ([]streams.ObservationEvent, error) {
	if metricID == "" {
		return nil, errValidationFailed("metricID is required", nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, errValidationFailed("batch too large: must be <= 1MB", nil)
	}

	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	var entries []observationEntry
	if err := json.Unmarshal(buf, &entries); err != nil {
		return nil, errValidationFailed("invalid JSON observation batch", err)
	}
	if len(entries) == 0 {
		return nil, errValidationFailed("observation batch is empty", nil)
	}

	events := make([]streams.ObservationEvent, 0, len(entries))
	for i, entry := range entries {
		index, err := s.validateEntry(entry)
		if err != nil {
			return nil, errValidationFailed(fmt.Sprintf("observation %d: %v", i, err), nil)
		}
		events = append(events, streams.ObservationEvent{
			MetricID:  metricID,
			Index:     index,
			Increment: entry.Increment,
		})
	}
	return events, nil
}

func (s *observationService) validateEntry(entry observationEntry) (models.Index, error) {
	if entry.Increment < 0 {
		return models.Index{}, fmt.Errorf("increment must be non-negative, got %d", entry.Increment)
	}
	if len(entry.Str) > maxStrLen {
		return models.Index{}, fmt.Errorf("str exceeds %d bytes", maxStrLen)
	}

	var index models.Index
	if entry.Host != "" {
		host, err := netip.ParseAddr(entry.Host)
		if err != nil {
			return models.Index{}, fmt.Errorf("invalid host address %q", entry.Host)
		}
		index.Host = host
	}
	if entry.Network != "" {
		network, err := netip.ParsePrefix(entry.Network)
		if err != nil {
			return models.Index{}, fmt.Errorf("invalid network prefix %q", entry.Network)
		}
		index.Network = network
	}
	index.Str = entry.Str

	if index.IsZero() {
		return models.Index{}, fmt.Errorf("observation needs at least one of host, network, str")
	}
	return index, nil
}

func readWithLimit(r io.Reader, limit int64) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(buf)) > limit {
		return nil, fmt.Errorf("batch exceeds %d bytes", limit)
	}
	return buf, nil
}
