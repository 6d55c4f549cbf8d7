package stores

import (
	"sync"
	"time"

	"metric-engine/internal/models"
)

// NoticeKey identifies the threshold-crossing state for one index under one
// filter.
type NoticeKey struct {
	MetricID   string
	FilterName string
	Index      models.Index
}

type thresholdEntry struct {
	ordinal  int
	deadline time.Time
}

// ThresholdState tracks, per notice key, how many thresholds have been crossed
// so far. An entry expires a cooldown after its last advance; expiry removes
// it, which re-arms the same threshold ordinal for future updates.
//
// Expired entries are dropped lazily on access; Sweep exists for callers that
// want to bound memory on keys that stop receiving updates.
type ThresholdState struct {
	mu      sync.Mutex
	entries map[NoticeKey]thresholdEntry
	now     func() time.Time
}

func NewThresholdState() *ThresholdState {
	return newThresholdState(time.Now)
}

func newThresholdState(now func() time.Time) *ThresholdState {
	return &ThresholdState{
		entries: make(map[NoticeKey]thresholdEntry),
		now:     now,
	}
}

// Ordinal returns the next-threshold ordinal for key: zero when nothing has
// been crossed yet or the previous crossing has expired.
func (s *ThresholdState) Ordinal(key NoticeKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return 0
	}
	if !s.now().Before(entry.deadline) {
		delete(s.entries, key)
		return 0
	}
	return entry.ordinal
}

// AdvanceIfOrdinal advances the ordinal for key only when its current ordinal
// (zero for absent or expired entries) still equals expected, pushing the
// expiry to ttl from now. Check and advance happen under one lock acquisition,
// so of any concurrent callers sharing the same expected ordinal exactly one
// succeeds.
func (s *ThresholdState) AdvanceIfOrdinal(key NoticeKey, expected int, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	current := 0
	if entry, ok := s.entries[key]; ok && now.Before(entry.deadline) {
		current = entry.ordinal
	}
	if current != expected {
		return false
	}
	s.entries[key] = thresholdEntry{ordinal: current + 1, deadline: now.Add(ttl)}
	return true
}

// Sweep removes every expired entry and returns how many were removed.
func (s *ThresholdState) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, entry := range s.entries {
		if !now.Before(entry.deadline) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of live entries, expired ones included until swept.
func (s *ThresholdState) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
