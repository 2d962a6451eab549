// Package scheduler runs the periodic campaign maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"adreach/config"
	"adreach/internal/delivery"
	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Job is one periodic task. Run reports how many items it touched.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int64, error)
}

type scheduler struct {
	logger  *slog.Logger
	enabled bool
	timeout time.Duration
	jobs    []Job

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

// Params holds dependencies for the scheduler, injected by Fx
type Params struct {
	fx.In

	Lc            fx.Lifecycle
	Config        *config.Config
	Logger        *slog.Logger
	MaintenanceUC usecase.MaintenanceUsecase
}

// New builds the scheduler delivery from the configured intervals.
func New(params Params) delivery.Delivery {
	cfg := params.Config.Scheduler
	uc := params.MaintenanceUC

	s := newScheduler(params.Logger, cfg.Enabled, cfg.JobTimeout, []Job{
		{Name: "campaign_status_check", Interval: cfg.StatusCheckInterval, Run: asCount(uc.CheckAllRunning)},
		{Name: "ctr_recompute", Interval: cfg.CTRRecomputeInterval, Run: uc.RecomputeAllCTR},
		{Name: "daily_performance_summary", Interval: cfg.PerformanceSummaryInterval, Run: asCount(uc.SendDailyPerformanceSummaries)},
		{Name: "ending_soon_reminder", Interval: cfg.EndingSoonInterval, Run: asCount(uc.NotifyEndingSoon)},
	})
	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: s.stop,
		})
	}

	return s
}

func newScheduler(logger *slog.Logger, enabled bool, timeout time.Duration, jobs []Job) *scheduler {
	return &scheduler{
		logger:  logger.With(slog.String("component", "scheduler")),
		enabled: enabled,
		timeout: timeout,
		jobs:    jobs,
		stopped: make(chan struct{}),
	}
}

func asCount(run func(context.Context) (int, error)) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		n, err := run(ctx)

		return int64(n), err
	}
}

// Serve blocks until ctx is cancelled. Job failures are logged and never stop the loop.
func (s *scheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Scheduler disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer close(s.stopped)

	group, ctx := errgroup.WithContext(ctx)
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.logger.Warn("Skipping job without interval", slog.String("job", job.Name))

			continue
		}
		group.Go(func() error {
			s.loop(ctx, job)

			return nil
		})
	}
	s.logger.Info("Scheduler started", slog.Int("jobs", len(s.jobs)))

	return group.Wait()
}

// stop cancels the job loops and waits for a running job to return.
func (s *scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-s.stopped:
		s.logger.Info("Scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out")
	}

	return nil
}

func (s *scheduler) loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, job)
		}
	}
}

func (s *scheduler) runOnce(ctx context.Context, job Job) {
	runID := uuid.New().String()
	logger := s.logger.With(slog.String("job", job.Name), slog.String("request_id", runID))
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := job.Run(ctx)
	if err != nil {
		logger.Error("Scheduled job failed", slog.Duration("duration", time.Since(start)), slog.Any("error", err))

		return
	}
	logger.Info("Scheduled job finished", slog.Int64("affected", n), slog.Duration("duration", time.Since(start)))
}
