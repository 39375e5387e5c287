package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/repository"
)

const (
	IntentCreated   = "created"
	IntentSucceeded = "succeeded"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

// InsertIntent stores a new payment intent. metadata must be a JSON document.
func (r *PaymentRepo) InsertIntent(ctx context.Context, db DB, handle string, amountCents int64, metadata []byte) error {
	const op = "postgres.PaymentRepo.InsertIntent"

	if _, err := conn(r.pool, db).Exec(ctx,
		`INSERT INTO payment_intents(handle, amount_cents, metadata, status)
		 VALUES ($1, $2, $3, $4)`,
		handle, amountCents, metadata, IntentCreated,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// MarkIntent sets the intent status. Setting the current status again is a no-op.
func (r *PaymentRepo) MarkIntent(ctx context.Context, db DB, handle, status string) error {
	const op = "postgres.PaymentRepo.MarkIntent"

	tag, err := conn(r.pool, db).Exec(ctx,
		`UPDATE payment_intents SET status = $2, updated_at = now() WHERE handle = $1`,
		handle, status,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
