package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Refresher периодически пересчитывает дашборд и хранит последний снимок.
// Следующий цикл планируется только после завершения текущего, поэтому циклы не перекрываются.
type Refresher struct {
	service  service.DashboardService
	logger   *logrus.Logger
	interval time.Duration

	mu     sync.RWMutex
	latest *models.Dashboard

	startOnce sync.Once
	started   atomic.Bool
	done      chan struct{}
}

func NewRefresher(svc service.DashboardService, logger *logrus.Logger, interval time.Duration) *Refresher {
	return &Refresher{
		service:  svc,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start запускает горутину обновления; она завершается при отмене ctx.
// Повторные вызовы ничего не делают.
func (r *Refresher) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.started.Store(true)
		r.run(ctx)
	})
}

func (r *Refresher) run(ctx context.Context) {
	r.logger.WithField("interval", r.interval).Info("Starting dashboard refresher...")
	go func() {
		defer close(r.done)

		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping dashboard refresher.")
				return
			case <-timer.C:
				r.refresh(ctx)
				timer.Reset(r.interval)
			}
		}
	}()
}

// Done закрывается после остановки горутины обновления. Если Start не вызывался, канал уже закрыт.
func (r *Refresher) Done() <-chan struct{} {
	if !r.started.Load() {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return r.done
}

func (r *Refresher) refresh(ctx context.Context) {
	snapshot, err := r.service.BuildDashboard(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.WithError(err).Error("Dashboard refresh failed, keeping previous snapshot")
		}
		return
	}
	r.mu.Lock()
	r.latest = snapshot
	r.mu.Unlock()
}

// Latest возвращает последний снимок или nil, если ни один цикл еще не завершился
func (r *Refresher) Latest() *models.Dashboard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}

// Current возвращает последний снимок, а до первого цикла строит дашборд на месте
func (r *Refresher) Current(ctx context.Context) (*models.Dashboard, error) {
	if latest := r.Latest(); latest != nil {
		return latest, nil
	}
	return r.service.BuildDashboard(ctx)
}
