package dashboard

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestRefresher_PublishesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	snapshot := &models.Dashboard{CutoffDate: "2025-01-01"}

	svc.EXPECT().BuildDashboard(gomock.Any()).Return(snapshot, nil).MinTimes(1)

	r := NewRefresher(svc, newTestLogger(), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	require.Eventually(t, func() bool { return r.Latest() != nil }, time.Second, 5*time.Millisecond)
	assert.Same(t, snapshot, r.Latest())

	cancel()
	<-r.Done()
}

func TestRefresher_FailedCycleKeepsPreviousSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	first := &models.Dashboard{CutoffDate: "2025-01-01"}

	gomock.InOrder(
		svc.EXPECT().BuildDashboard(gomock.Any()).Return(first, nil),
		svc.EXPECT().BuildDashboard(gomock.Any()).Return(nil, errors.New("database is down")).AnyTimes(),
	)

	r := NewRefresher(svc, newTestLogger(), 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	require.Eventually(t, func() bool { return r.Latest() != nil }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Same(t, first, r.Latest())

	cancel()
	<-r.Done()
}

// slowDashboard считает одновременные вызовы BuildDashboard
type slowDashboard struct {
	running  atomic.Int32
	maxSeen  atomic.Int32
	calls    atomic.Int32
	duration time.Duration
}

func (s *slowDashboard) BuildDashboard(ctx context.Context) (*models.Dashboard, error) {
	n := s.running.Add(1)
	defer s.running.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if n <= seen || s.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	s.calls.Add(1)

	select {
	case <-time.After(s.duration):
	case <-ctx.Done():
	}
	return &models.Dashboard{}, nil
}

func TestRefresher_CyclesDoNotOverlap(t *testing.T) {
	svc := &slowDashboard{duration: 20 * time.Millisecond}

	// Интервал намного короче цикла
	r := NewRefresher(svc, newTestLogger(), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	require.Eventually(t, func() bool { return svc.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-r.Done()

	assert.Equal(t, int32(1), svc.maxSeen.Load())
}

func TestRefresher_CurrentBeforeFirstCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	snapshot := &models.Dashboard{CutoffDate: "2025-01-01"}
	ctx := context.Background()

	svc.EXPECT().BuildDashboard(ctx).Return(snapshot, nil)

	// Refresher не запущен: дашборд строится по запросу
	r := NewRefresher(svc, newTestLogger(), time.Minute)
	current, err := r.Current(ctx)

	require.NoError(t, err)
	assert.Same(t, snapshot, current)
	assert.Nil(t, r.Latest())
}

func TestRefresher_ConcurrentReaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)
	svc.EXPECT().BuildDashboard(gomock.Any()).Return(&models.Dashboard{}, nil).AnyTimes()

	r := NewRefresher(svc, newTestLogger(), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := r.Current(ctx)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	cancel()
	<-r.Done()
}

func TestRefresher_StartTwiceRunsOneLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardService(ctrl)

	svc.EXPECT().BuildDashboard(gomock.Any()).Return(&models.Dashboard{}, nil).AnyTimes()

	r := NewRefresher(svc, newTestLogger(), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	r.Start(ctx)

	cancel()
	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop")
	}
}

func TestRefresher_DoneWithoutStart(t *testing.T) {
	r := NewRefresher(nil, newTestLogger(), time.Minute)

	select {
	case <-r.Done():
	default:
		t.Fatal("Done must be closed when the refresher was never started")
	}
}
