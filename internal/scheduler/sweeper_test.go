//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kirinyoku/adslot-go/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpirer struct {
	mu      sync.Mutex
	batches []int
	err     error
	calls   int
	limits  []int
}

func (f *fakeExpirer) ExpireStale(_ context.Context, limit int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.limits = append(f.limits, limit)

	if len(f.batches) == 0 {
		return 0, f.err
	}

	n := f.batches[0]
	f.batches = f.batches[1:]

	return n, nil
}

func (f *fakeExpirer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSweeper_SweepOnce(t *testing.T) {
	t.Run("drains full batches", func(t *testing.T) {
		f := &fakeExpirer{batches: []int{5, 5, 2}}
		s := scheduler.NewSweeper(f, time.Minute, 5, nil)

		n, err := s.SweepOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 12, n)
		assert.Equal(t, []int{5, 5, 5}, f.limits)
	})

	t.Run("stops after a bounded number of batches", func(t *testing.T) {
		batches := make([]int, 50)
		for i := range batches {
			batches[i] = 1
		}
		f := &fakeExpirer{batches: batches}
		s := scheduler.NewSweeper(f, time.Minute, 1, nil)

		n, err := s.SweepOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("error is returned with partial count", func(t *testing.T) {
		f := &fakeExpirer{err: errors.New("db down")}
		s := scheduler.NewSweeper(f, time.Minute, 5, nil)

		n, err := s.SweepOnce(context.Background())
		require.Error(t, err)
		assert.Zero(t, n)
	})
}

func TestSweeper_Run(t *testing.T) {
	f := &fakeExpirer{}
	s := scheduler.NewSweeper(f, 10*time.Millisecond, 5, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return f.Calls() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
