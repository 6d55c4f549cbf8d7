package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"metric-engine/internal/aggregators"
	"metric-engine/internal/shared/loggers"
	"metric-engine/internal/shared/metrics"
	"metric-engine/internal/shared/svcerrors"
	"metric-engine/internal/shared/ulid"
)

//go:generate mockgen -source=observation_consumer.go -destination=./mocks/observation_consumer_mock.go -package=mocks
type ObservationConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type observationConsumer struct {
	queue              *PartitionedQueue[ObservationEvent]
	aggregationService aggregators.AggregationService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewObservationConsumer(queue *PartitionedQueue[ObservationEvent], aggregationService aggregators.AggregationService, logger loggers.Logger) ObservationConsumer {
	return &observationConsumer{
		queue:              queue,
		aggregationService: aggregationService,
		stopCh:             make(chan struct{}),
		logger:             logger,
	}
}

// Start spawns one worker goroutine per partition. Each partition is a
// single-consumer lane, so observations for one metric are applied in the
// order they were published.
func (consumer *observationConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.Partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *observationConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *observationConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan ObservationEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event := <-ch:
			consumer.consumeOne(ctx, partitionIndex, event)
		}
	}
}

func (consumer *observationConsumer) consumeOne(ctx context.Context, partitionIndex int, event ObservationEvent) {
	// Panic recovery keeps one bad observation from taking the worker down.
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("observation worker panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricObservationConsumedTotal.WithLabelValues(streamObservations, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	consumer.aggregationService.AddData(ctx, event.MetricID, event.Index, event.Increment)
	metricObservationConsumedTotal.WithLabelValues(streamObservations, metrics.ValueNoError).Inc()
}
