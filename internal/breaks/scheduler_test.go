package breaks_test

import (
	"net/netip"
	"testing"

	"metric-engine/internal/breaks"
	"metric-engine/internal/models"
	sinkmocks "metric-engine/internal/sinks/mocks"
	"metric-engine/internal/stores"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestScheduler_Flush_WritesOneRecordPerIndex(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loggingSink := sinkmocks.NewMockLoggingSink(ctrl)
	scheduler := breaks.NewScheduler(loggingSink)

	filter := &models.Filter{MetricID: "http_requests", Name: "by_host", Log: true}
	store := stores.NewCounterStore()

	hostA := models.IndexForHost(netip.MustParseAddr("10.0.0.1"))
	hostB := models.IndexForHost(netip.MustParseAddr("10.0.0.2"))
	store.Add(hostA, 7)
	store.Add(hostB, 3)

	written := map[models.Index]int64{}
	loggingSink.EXPECT().
		Write("http_requests/by_host", gomock.Any()).
		Do(func(_ string, record models.BreakRecord) {
			assert.Equal(t, "http_requests", record.MetricID)
			assert.Equal(t, "by_host", record.FilterName)
			assert.False(t, record.Timestamp.IsZero())
			written[record.Index] = record.Value
		}).
		Times(2)

	scheduler.Flush(filter, store)

	assert.Equal(t, map[models.Index]int64{hostA: 7, hostB: 3}, written)
}

func TestScheduler_Flush_ResetsStoreToEmpty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loggingSink := sinkmocks.NewMockLoggingSink(ctrl)
	scheduler := breaks.NewScheduler(loggingSink)

	filter := &models.Filter{MetricID: "http_requests", Name: "by_host", Log: true}
	store := stores.NewCounterStore()
	store.Add(models.IndexForStr("curl"), 5)

	loggingSink.EXPECT().Write(gomock.Any(), gomock.Any()).Times(1)
	scheduler.Flush(filter, store)
	assert.Equal(t, 0, store.Len())

	// An immediate second flush with no intervening adds writes nothing.
	scheduler.Flush(filter, store)
}

func TestScheduler_Flush_LogDisabledStillResets(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loggingSink := sinkmocks.NewMockLoggingSink(ctrl)
	scheduler := breaks.NewScheduler(loggingSink)

	filter := &models.Filter{MetricID: "http_requests", Name: "silent"}
	store := stores.NewCounterStore()
	store.Add(models.IndexForStr("curl"), 5)

	// No Write expectations: nothing may reach the sink.
	scheduler.Flush(filter, store)
	assert.Equal(t, 0, store.Len())
}
