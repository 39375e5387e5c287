package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/errs"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
)

const (
	DefaultMaxRetries  = 3
	DefaultBackoffBase = 100 * time.Millisecond
)

// AfterCommit is a function that runs after a successful transaction commit.
type AfterCommit func(ctx context.Context)

// TxFunc is the body of a unit of work. Hooks registered through after run only once the commit succeeds.
type TxFunc func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error

// Runner is what services depend on.
type Runner interface {
	Do(ctx context.Context, fn TxFunc) error
}

// Transactor opens one transaction per call. *postgres.Store satisfies it.
type Transactor interface {
	RunTx(ctx context.Context, opts *pgx.TxOptions, fn func(ctx context.Context, tx postgres.DB) error) error
}

// UoW represents a unit of work.
type UoW struct {
	store      Transactor
	logger     *slog.Logger
	maxRetries int
	base       time.Duration
	txOpts     *pgx.TxOptions
}

type Option func(*UoW)

func WithLogger(l *slog.Logger) Option {
	return func(u *UoW) {
		if l != nil {
			u.logger = l
		}
	}
}

// WithRetry overrides how many times a serialization failure is retried and the first backoff step.
func WithRetry(maxRetries int, base time.Duration) Option {
	return func(u *UoW) {
		if maxRetries >= 0 {
			u.maxRetries = maxRetries
		}
		if base > 0 {
			u.base = base
		}
	}
}

// WithIsolation sets the isolation level Do opens its transactions at. The store default is SERIALIZABLE.
func WithIsolation(level pgx.TxIsoLevel) Option {
	return func(u *UoW) {
		u.txOpts = &pgx.TxOptions{IsoLevel: level, AccessMode: pgx.ReadWrite}
	}
}

func NewUoW(store Transactor, opts ...Option) *UoW {
	u := &UoW{
		store:      store,
		logger:     slog.Default(),
		maxRetries: DefaultMaxRetries,
		base:       DefaultBackoffBase,
	}

	for _, o := range opts {
		o(u)
	}

	return u
}

// Do runs fn inside a transaction at the configured isolation level. After a successful commit,
// it executes all after-commit hooks.
func (u *UoW) Do(ctx context.Context, fn TxFunc) error {
	return u.DoWithOpts(ctx, u.txOpts, fn)
}

// DoWithOpts runs fn inside the transaction with the given options, retrying the whole
// body on serialization failures and deadlocks. Hooks from failed attempts are discarded.
//
// Returns:
//   - error: fn's error unchanged when it is not retryable.
//   - error: marked with domain.ErrTransientConflict once the retries are used up.
func (u *UoW) DoWithOpts(ctx context.Context, opts *pgx.TxOptions, fn TxFunc) error {
	for attempt := 0; ; attempt++ {
		var hooks []AfterCommit

		err := u.store.RunTx(ctx, opts, func(ctx context.Context, tx postgres.DB) error {
			return fn(ctx, tx, func(h AfterCommit) {
				hooks = append(hooks, h)
			})
		})
		if err == nil {
			for _, h := range hooks {
				h(ctx)
			}
			return nil
		}

		if !postgres.IsRetryable(err) {
			return err
		}

		if attempt >= u.maxRetries {
			u.logger.Error("transaction failed after max retries",
				slog.Int("attempts", attempt+1),
				slog.String("error", err.Error()),
			)
			return errs.Mark(err, domain.ErrTransientConflict)
		}

		wait := backoff(attempt, u.base)

		u.logger.Warn("retrying transaction due to retryable error",
			slog.Int("attempt", attempt+1),
			slog.Int64("wait_ms", wait.Milliseconds()),
			slog.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	return wait + time.Duration(randInt63n(int64(wait/5)))
}

func randInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}

	v := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(v) % n
}
