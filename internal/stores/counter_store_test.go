package stores

import (
	"net/netip"
	"sync"
	"testing"

	"metric-engine/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCounterStore_AddAccumulatesPerIndex(t *testing.T) {
	t.Parallel()

	store := NewCounterStore()
	hostIdx := models.IndexForHost(netip.MustParseAddr("10.0.0.1"))
	strIdx := models.IndexForStr("GET /")

	assert.Equal(t, int64(3), store.Add(hostIdx, 3))
	assert.Equal(t, int64(8), store.Add(hostIdx, 5))
	assert.Equal(t, int64(1), store.Add(strIdx, 1))

	assert.Equal(t, int64(8), store.Get(hostIdx))
	assert.Equal(t, int64(1), store.Get(strIdx))
	assert.Equal(t, 2, store.Len())
}

func TestCounterStore_GetReturnsZeroForAbsentIndex(t *testing.T) {
	t.Parallel()

	store := NewCounterStore()
	assert.Equal(t, int64(0), store.Get(models.IndexForStr("never-seen")))
	// Get must not materialize the key.
	assert.Equal(t, 0, store.Len())
}

func TestCounterStore_DrainReturnsSnapshotAndResets(t *testing.T) {
	t.Parallel()

	store := NewCounterStore()
	idx := models.IndexForHost(netip.MustParseAddr("10.0.0.1"))
	store.Add(idx, 4)
	store.Add(idx, 2)

	drained := store.Drain()
	assert.Equal(t, map[models.Index]int64{idx: 6}, drained)

	// The store starts the next period from zero.
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, int64(0), store.Get(idx))

	// A second drain with no intervening adds yields nothing.
	assert.Empty(t, store.Drain())
}

func TestCounterStore_DrainIsolatesSnapshotFromLaterAdds(t *testing.T) {
	t.Parallel()

	store := NewCounterStore()
	idx := models.IndexForStr("curl")
	store.Add(idx, 1)

	drained := store.Drain()
	store.Add(idx, 10)

	assert.Equal(t, int64(1), drained[idx], "drained snapshot must not see post-drain adds")
	assert.Equal(t, int64(10), store.Get(idx))
}

func TestCounterStore_ConcurrentAddAndDrainLosesNothing(t *testing.T) {
	t.Parallel()

	store := NewCounterStore()
	idx := models.IndexForStr("load")

	const writers = 8
	const addsPerWriter = 1000

	var wg sync.WaitGroup
	drainedTotal := make(chan int64, writers)

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsPerWriter; i++ {
				store.Add(idx, 1)
			}
		}()
	}

	// Drain concurrently with the writers; every increment must land either in
	// a drained snapshot or in the final store contents.
	wg.Add(1)
	go func() {
		defer wg.Done()
		var sum int64
		for i := 0; i < 100; i++ {
			sum += store.Drain()[idx]
		}
		drainedTotal <- sum
	}()

	wg.Wait()
	total := <-drainedTotal + store.Get(idx)
	assert.Equal(t, int64(writers*addsPerWriter), total)
}
