// Package uowtest provides a unit of work that needs no database.
package uowtest

import (
	"context"

	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
	"github.com/kirinyoku/adslot-go/internal/uow"
)

// Runner runs each body inline against Tx, which may be nil. After-commit hooks run only
// when the body succeeds, the same way a committed transaction behaves.
type Runner struct {
	Tx    postgres.DB
	Calls int
}

func (r *Runner) Do(ctx context.Context, fn uow.TxFunc) error {
	r.Calls++

	var hooks []uow.AfterCommit

	if err := fn(ctx, r.Tx, func(h uow.AfterCommit) { hooks = append(hooks, h) }); err != nil {
		return err
	}

	for _, h := range hooks {
		h(ctx)
	}

	return nil
}
