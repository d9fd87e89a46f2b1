package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agroportal/internal/utils/logger"
)

func TestCalculateBackoff(t *testing.T) {
	base := 5 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 5 * time.Second},
		{"negative failures", -1, 5 * time.Second},
		{"one failure", 1, 10 * time.Second},
		{"two failures", 2, 20 * time.Second},
		{"capped", 7, maxBackoff},
		{"many failures capped", 100, maxBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateBackoff(tt.failures, base))
		})
	}
}

func TestCalculateBackoff_LongIntervalNotShortened(t *testing.T) {
	interval := 30 * time.Minute
	assert.Equal(t, interval, calculateBackoff(0, interval))
	assert.Equal(t, interval, calculateBackoff(3, interval))
}

func TestScheduler_RunsAtInterval(t *testing.T) {
	s := NewScheduler(logger.Discard())
	var calls atomic.Int32

	s.Start(context.Background(), "wallet", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, s.Running("wallet"))

	s.StopAll()
	assert.False(t, s.Running("wallet"))

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "после остановки опрос продолжается")
}

func TestScheduler_FailureDoesNotStopTask(t *testing.T) {
	s := NewScheduler(logger.Discard())
	defer s.StopAll()

	var calls atomic.Int32
	s.Start(context.Background(), "notifications", time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("offline")
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	assert.True(t, s.Running("notifications"))
}

func TestScheduler_RestartReplacesTask(t *testing.T) {
	s := NewScheduler(logger.Discard())
	defer s.StopAll()

	var first, second atomic.Int32
	s.Start(context.Background(), "k", 5*time.Millisecond, func(context.Context) error {
		first.Add(1)
		return nil
	})
	s.Start(context.Background(), "k", 5*time.Millisecond, func(context.Context) error {
		second.Add(1)
		return nil
	})

	frozen := first.Load()
	assert.Eventually(t, func() bool { return second.Load() >= 2 }, time.Second, time.Millisecond)
	assert.Equal(t, frozen, first.Load())
	assert.Equal(t, []string{"k"}, s.Keys())
}

func TestScheduler_StopUnknownKeyIsNoop(t *testing.T) {
	s := NewScheduler(logger.Discard())
	s.Stop("missing")
	assert.Empty(t, s.Keys())
}

func TestScheduler_ParentContextCancels(t *testing.T) {
	s := NewScheduler(logger.Discard())
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	s.Start(ctx, "weather", time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)

	cancel()
	s.StopAll()
	n := calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, calls.Load())
}
