package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"adreach/config"
	mockusecase "adreach/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Disabled(t *testing.T) {
	var calls atomic.Int32
	s := newScheduler(slog.New(slog.DiscardHandler), false, time.Second, []Job{{
		Name:     "never",
		Interval: time.Millisecond,
		Run: func(context.Context) (int64, error) {
			calls.Add(1)

			return 0, nil
		},
	}})

	require.NoError(t, s.Serve(t.Context()))
	assert.Zero(t, calls.Load())
}

func TestScheduler_RunsJobsUntilCancelled(t *testing.T) {
	var ok, failing atomic.Int32
	s := newScheduler(slog.New(slog.DiscardHandler), true, time.Second, []Job{
		{
			Name:     "ok",
			Interval: 5 * time.Millisecond,
			Run: func(context.Context) (int64, error) {
				ok.Add(1)

				return 1, nil
			},
		},
		{
			Name:     "failing",
			Interval: 5 * time.Millisecond,
			Run: func(context.Context) (int64, error) {
				failing.Add(1)

				return 0, errors.New("database is down")
			},
		},
		{Name: "no interval", Run: func(context.Context) (int64, error) { panic("must not run") }},
	})

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	assert.Eventually(t, func() bool { return ok.Load() >= 2 && failing.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_AppliesJobTimeout(t *testing.T) {
	deadlines := make(chan bool, 1)
	s := newScheduler(slog.New(slog.DiscardHandler), true, 50*time.Millisecond, nil)

	s.runOnce(t.Context(), Job{Name: "tick", Run: func(ctx context.Context) (int64, error) {
		_, ok := ctx.Deadline()
		deadlines <- ok

		return 0, nil
	}})

	assert.True(t, <-deadlines)
}

func TestNew_WiresMaintenanceJobs(t *testing.T) {
	uc := mockusecase.NewMockMaintenanceUsecase(t)
	uc.EXPECT().CheckAllRunning(mock.Anything).Return(3, nil)
	uc.EXPECT().RecomputeAllCTR(mock.Anything).Return(int64(7), nil)
	uc.EXPECT().SendDailyPerformanceSummaries(mock.Anything).Return(2, nil)
	uc.EXPECT().NotifyEndingSoon(mock.Anything).Return(1, nil)

	cfg := config.Defaults()
	s, ok := New(Params{Config: cfg, Logger: slog.New(slog.DiscardHandler), MaintenanceUC: uc}).(*scheduler)
	require.True(t, ok)
	require.Len(t, s.jobs, 4)

	want := map[string]int64{
		"campaign_status_check":     3,
		"ctr_recompute":             7,
		"daily_performance_summary": 2,
		"ending_soon_reminder":      1,
	}
	for _, job := range s.jobs {
		n, err := job.Run(t.Context())
		require.NoError(t, err)
		assert.Equal(t, want[job.Name], n, job.Name)
	}
}

func TestScheduler_StopWaitsForLoops(t *testing.T) {
	s := newScheduler(slog.New(slog.DiscardHandler), true, time.Second, []Job{{
		Name:     "tick",
		Interval: time.Millisecond,
		Run:      func(context.Context) (int64, error) { return 0, nil },
	}})

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()

		return s.cancel != nil
	}, time.Second, time.Millisecond)

	require.NoError(t, s.stop(t.Context()))
	require.NoError(t, <-done)
}
