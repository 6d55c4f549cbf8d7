package streams

import (
	"encoding/binary"
	"hash/fnv"
)

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024
)

// PartitionedQueue routes messages to a fixed set of buffered channels by
// partition key. Messages sharing a key always land on the same partition, so
// a single consumer per partition sees them in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return newPartitionedQueue[T](defaultNumPartitions, defaultBuffer)
}

func newPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	partitions := make([]chan T, numPartitions)
	for i := range partitions {
		partitions[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: partitions}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

func (queue *PartitionedQueue[T]) Partition(i int) <-chan T { return queue.partitions[i] }

func (queue *PartitionedQueue[T]) Publish(partitionKey string, msg T) {
	queue.partitions[partitionIndex(partitionKey, len(queue.partitions))] <- msg
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	v := binary.LittleEndian.Uint32(hash.Sum(nil))
	return int(v % uint32(n))
}
