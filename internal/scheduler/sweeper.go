// Package scheduler runs the periodic expiry of unpaid checkouts.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultInterval  = time.Minute
	DefaultBatchSize = 100

	maxBatchesPerTick = 10
)

type Expirer interface {
	ExpireStale(ctx context.Context, limit int) (int, error)
}

// Sweeper expires overdue checkouts on a fixed interval.
type Sweeper struct {
	expirer   Expirer
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewSweeper(expirer Expirer, interval time.Duration, batchSize int, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Sweeper{
		expirer:   expirer,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Run sweeps immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.logger.Info("expiry sweeper started", slog.Duration("interval", s.interval))

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")
			return ctx.Err()
		case <-t.C:
			s.tick(ctx)
		}
	}
}

// SweepOnce drains overdue checkouts batch by batch, up to a bounded number of batches.
//
// Returns:
//   - int: how many checkouts were expired.
//   - error: the first store failure; checkouts expired before it are still counted.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	total := 0

	for range maxBatchesPerTick {
		n, err := s.expirer.ExpireStale(ctx, s.batchSize)
		total += n
		if err != nil {
			return total, err
		}

		if n < s.batchSize {
			break
		}
	}

	return total, nil
}

func (s *Sweeper) tick(ctx context.Context) {
	start := time.Now()

	n, err := s.SweepOnce(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("expiry sweep failed", slog.Int("expired", n), slog.Any("error", err))
		return
	}

	if n > 0 {
		s.logger.Info("expired unpaid checkouts",
			slog.Int("expired", n),
			slog.Duration("took", time.Since(start)),
		)
	}
}
