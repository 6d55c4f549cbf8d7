package streams

import (
	"context"
)

// ObservationProducer publishes observation events to the partitioned queue.
//
// Events are partitioned by metric id: every observation for one metric is
// consumed by the same worker, so all adds against one metric's counter
// stores arrive in publish order. Parallelism comes from spreading distinct
// metrics across partitions; break flushes run off timers and synchronize
// with the workers through the counter store locks.
//
//go:generate mockgen -source=observation_producer.go -destination=./mocks/observation_producer_mock.go -package=mocks
type ObservationProducer interface {
	Produce(ctx context.Context, events []ObservationEvent) error
}

type observationProducer struct {
	queue *PartitionedQueue[ObservationEvent]
}

func NewObservationProducer(queue *PartitionedQueue[ObservationEvent]) ObservationProducer {
	return &observationProducer{queue: queue}
}

func (producer *observationProducer) Produce(ctx context.Context, events []ObservationEvent) error {
	for _, event := range events {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		producer.queue.Publish(event.MetricID, event)
		metricObservationPublishedTotal.WithLabelValues(streamObservations).Inc()
	}
	return nil
}
