package notices_test

import (
	"context"
	"net/netip"
	"sync"
	"testing"
	"time"

	"metric-engine/internal/models"
	"metric-engine/internal/notices"
	sinkmocks "metric-engine/internal/sinks/mocks"
	"metric-engine/internal/stores"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newMonitorForTest(t *testing.T) (notices.ThresholdMonitor, *sinkmocks.MockAlertSink) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	alertSink := sinkmocks.NewMockAlertSink(ctrl)
	node := sinkmocks.NewMockNodeIdentity(ctrl)
	node.EXPECT().Describe().Return("edge-nyc-04").AnyTimes()

	return notices.NewThresholdMonitor(stores.NewThresholdState(), alertSink, node), alertSink
}

func TestThresholdMonitor_NoPolicyIsNoOp(t *testing.T) {
	t.Parallel()

	monitor, _ := newMonitorForTest(t)
	filter := &models.Filter{MetricID: "http_requests", Name: "plain"}

	// No Raise expectations: nothing may reach the alert sink.
	monitor.OnUpdate(context.Background(), filter, models.IndexForStr("curl"), 1_000_000)
}

func TestThresholdMonitor_SingleThreshold_FiresOncePerCooldown(t *testing.T) {
	t.Parallel()

	monitor, alertSink := newMonitorForTest(t)
	filter := &models.Filter{
		MetricID:        "http_requests",
		Name:            "flood",
		Note:            "http request flood",
		NoticeThreshold: 10,
	}
	index := models.IndexForHost(netip.MustParseAddr("10.0.0.1"))
	ctx := context.Background()

	var raised []models.NoticeEvent
	alertSink.EXPECT().
		Raise(gomock.Any()).
		Do(func(notice models.NoticeEvent) { raised = append(raised, notice) }).
		Times(1)

	// Below the threshold: silent.
	monitor.OnUpdate(ctx, filter, index, 5)
	// First crossing fires.
	monitor.OnUpdate(ctx, filter, index, 12)
	// Still above within the cooldown: suppressed.
	monitor.OnUpdate(ctx, filter, index, 15)

	assert.Len(t, raised, 1)
	notice := raised[0]
	assert.Equal(t, "http request flood", notice.Note)
	assert.Equal(t, "http_requests", notice.MetricID)
	assert.Equal(t, "flood", notice.FilterName)
	assert.Equal(t, "metric_index(host=10.0.0.1)", notice.Index)
	assert.Equal(t, int64(12), notice.Value)
	assert.Equal(t, int64(10), notice.Threshold)
	assert.Equal(t, "edge-nyc-04", notice.Node)
	assert.NotEmpty(t, notice.NoticeID)
	assert.False(t, notice.RaisedAt.IsZero())
}

func TestThresholdMonitor_SingleThreshold_RefiresAfterCooldown(t *testing.T) {
	t.Parallel()

	monitor, alertSink := newMonitorForTest(t)
	filter := &models.Filter{
		MetricID:        "http_requests",
		Name:            "flood",
		NoticeThreshold: 10,
		NoticeCooldown:  10 * time.Millisecond,
	}
	index := models.IndexForHost(netip.MustParseAddr("10.0.0.1"))
	ctx := context.Background()

	alertSink.EXPECT().Raise(gomock.Any()).Times(2)

	monitor.OnUpdate(ctx, filter, index, 12)
	monitor.OnUpdate(ctx, filter, index, 15)

	// After the cooldown the crossing state has expired and a qualifying
	// update fires again.
	time.Sleep(20 * time.Millisecond)
	monitor.OnUpdate(ctx, filter, index, 20)
}

func TestThresholdMonitor_SingleThreshold_ConcurrentUpdatesFireOnce(t *testing.T) {
	t.Parallel()

	monitor, alertSink := newMonitorForTest(t)
	filter := &models.Filter{
		MetricID:        "http_requests",
		Name:            "flood",
		NoticeThreshold: 10,
	}
	index := models.IndexForStr("curl")

	// All crossers see ordinal zero; exactly one may win the advance and
	// raise. The slow sink keeps the winner busy while the losers run their
	// full detection path.
	alertSink.EXPECT().
		Raise(gomock.Any()).
		Do(func(models.NoticeEvent) { time.Sleep(time.Millisecond) }).
		Times(1)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			monitor.OnUpdate(context.Background(), filter, index, 12)
		}()
	}
	close(start)
	wg.Wait()
}

func TestThresholdMonitor_SingleThreshold_IndexesAreIndependent(t *testing.T) {
	t.Parallel()

	monitor, alertSink := newMonitorForTest(t)
	filter := &models.Filter{MetricID: "http_requests", Name: "flood", NoticeThreshold: 10}
	ctx := context.Background()

	alertSink.EXPECT().Raise(gomock.Any()).Times(2)

	monitor.OnUpdate(ctx, filter, models.IndexForHost(netip.MustParseAddr("10.0.0.1")), 12)
	monitor.OnUpdate(ctx, filter, models.IndexForHost(netip.MustParseAddr("10.0.0.2")), 30)
}

func TestThresholdMonitor_Sequence_FiresInOrder(t *testing.T) {
	t.Parallel()

	monitor, alertSink := newMonitorForTest(t)
	filter := &models.Filter{
		MetricID:         "http_requests",
		Name:             "staged",
		NoticeThresholds: []int64{5, 10, 20},
	}
	index := models.IndexForStr("curl")
	ctx := context.Background()

	var thresholds []int64
	alertSink.EXPECT().
		Raise(gomock.Any()).
		Do(func(notice models.NoticeEvent) { thresholds = append(thresholds, notice.Threshold) }).
		Times(3)

	for _, value := range []int64{3, 6, 11, 25} {
		monitor.OnUpdate(ctx, filter, index, value)
	}

	assert.Equal(t, []int64{5, 10, 20}, thresholds)
}

func TestThresholdMonitor_Sequence_ExhaustedStaysSilent(t *testing.T) {
	t.Parallel()

	monitor, alertSink := newMonitorForTest(t)
	filter := &models.Filter{
		MetricID:         "http_requests",
		Name:             "staged",
		NoticeThresholds: []int64{5, 10},
	}
	index := models.IndexForStr("curl")
	ctx := context.Background()

	alertSink.EXPECT().Raise(gomock.Any()).Times(2)

	monitor.OnUpdate(ctx, filter, index, 6)
	monitor.OnUpdate(ctx, filter, index, 11)
	// Both ordinals consumed: further updates stay silent within the cooldown.
	monitor.OnUpdate(ctx, filter, index, 1000)
}

func TestThresholdMonitor_Sequence_SkipsAheadOnBigJump(t *testing.T) {
	t.Parallel()

	monitor, alertSink := newMonitorForTest(t)
	filter := &models.Filter{
		MetricID:         "http_requests",
		Name:             "staged",
		NoticeThresholds: []int64{5, 10, 20},
	}
	index := models.IndexForStr("curl")
	ctx := context.Background()

	var thresholds []int64
	alertSink.EXPECT().
		Raise(gomock.Any()).
		Do(func(notice models.NoticeEvent) { thresholds = append(thresholds, notice.Threshold) }).
		Times(2)

	// One update per dispatch crosses one ordinal at a time, even when the
	// value exceeds later thresholds too.
	monitor.OnUpdate(ctx, filter, index, 25)
	monitor.OnUpdate(ctx, filter, index, 26)

	assert.Equal(t, []int64{5, 10}, thresholds)
}
