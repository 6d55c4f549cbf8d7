package stores

import (
	"sync"

	"metric-engine/internal/models"
)

// CounterStore accumulates per-index counts for one (metric, filter) pair. It
// is created empty at filter registration, incremented by the aggregator, and
// drained by the break scheduler; the same instance lives for the process
// lifetime.
//
// Drain swaps the whole map under the lock, so an increment is either counted
// in the drained snapshot or in the next period, never both and never neither.
type CounterStore struct {
	mu     sync.Mutex
	counts map[models.Index]int64
}

func NewCounterStore() *CounterStore {
	return &CounterStore{counts: make(map[models.Index]int64)}
}

// Add increments the count at index by delta and returns the new value.
func (s *CounterStore) Add(index models.Index, delta int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[index] += delta
	return s.counts[index]
}

// Get returns the count at index, or zero when the index has never been
// incremented since the last drain.
func (s *CounterStore) Get(index models.Index) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[index]
}

// Len returns the number of indices holding a count in the current period.
func (s *CounterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counts)
}

// Drain atomically replaces the backing map with a fresh empty one and returns
// the previous contents. The caller owns the returned map exclusively.
func (s *CounterStore) Drain() map[models.Index]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.counts
	s.counts = make(map[models.Index]int64)
	return drained
}
