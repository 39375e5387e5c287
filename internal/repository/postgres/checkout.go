package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/repository"
)

type CheckoutRepo struct {
	pool *pgxpool.Pool
}

const checkoutColumns = `id, ad_id, zone, dates, reservation_id, status,
	subtotal_cents, discount_cents, tax_cents, total_cents, promo_code,
	payment_handle, payment_url, expires_at, created_at, updated_at`

// Insert stores a new checkout. CreatedAt and UpdatedAt are filled from the database.
func (r *CheckoutRepo) Insert(ctx context.Context, db DB, c *domain.Checkout) error {
	const op = "postgres.CheckoutRepo.Insert"

	if err := conn(r.pool, db).QueryRow(ctx,
		`INSERT INTO checkouts(id, ad_id, zone, dates, reservation_id, status,
		                       subtotal_cents, discount_cents, tax_cents, total_cents, promo_code,
		                       payment_handle, payment_url, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), $14)
		 RETURNING created_at, updated_at`,
		c.ID, c.AdID, c.Zone, c.Dates, c.ReservationID, c.Status,
		c.Quote.SubtotalCents, c.Quote.DiscountCents, c.Quote.TaxCents, c.Quote.TotalCents, c.Quote.PromoCode,
		c.PaymentHandle, c.PaymentURL, c.ExpiresAt,
	).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Get loads a checkout by id.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//   - db: handle to read through; nil means the pool.
//   - id: checkout id.
//   - forUpdate: lock the row until the surrounding transaction ends.
//
// Returns:
//   - domain.Checkout: the checkout when found.
//   - error: repository.ErrNotFound if there is no such checkout.
func (r *CheckoutRepo) Get(ctx context.Context, db DB, id uuid.UUID, forUpdate bool) (domain.Checkout, error) {
	const op = "postgres.CheckoutRepo.Get"

	q := `SELECT ` + checkoutColumns + ` FROM checkouts WHERE id = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}

	c, err := scanCheckout(conn(r.pool, db).QueryRow(ctx, q, id))
	if err != nil {
		return domain.Checkout{}, wrapDBErr(op, err)
	}

	return c, nil
}

func (r *CheckoutRepo) GetByPaymentHandle(ctx context.Context, db DB, handle string, forUpdate bool) (domain.Checkout, error) {
	const op = "postgres.CheckoutRepo.GetByPaymentHandle"

	q := `SELECT ` + checkoutColumns + ` FROM checkouts WHERE payment_handle = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}

	c, err := scanCheckout(conn(r.pool, db).QueryRow(ctx, q, handle))
	if err != nil {
		return domain.Checkout{}, wrapDBErr(op, err)
	}

	return c, nil
}

// GetByReservation returns the checkout that created a reservation.
func (r *CheckoutRepo) GetByReservation(ctx context.Context, db DB, reservationID uuid.UUID) (domain.Checkout, error) {
	const op = "postgres.CheckoutRepo.GetByReservation"

	c, err := scanCheckout(conn(r.pool, db).QueryRow(ctx,
		`SELECT `+checkoutColumns+` FROM checkouts
		 WHERE reservation_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		reservationID,
	))
	if err != nil {
		return domain.Checkout{}, wrapDBErr(op, err)
	}

	return c, nil
}

// UpdateStatus moves a checkout from one status to another.
// It fails with repository.ErrStatusChanged if the checkout is no longer in from.
func (r *CheckoutRepo) UpdateStatus(
	ctx context.Context,
	db DB,
	id uuid.UUID,
	from, to domain.CheckoutStatus,
) error {
	const op = "postgres.CheckoutRepo.UpdateStatus"

	tag, err := conn(r.pool, db).Exec(ctx,
		`UPDATE checkouts SET status = $3, updated_at = now()
		 WHERE id = $1 AND status = $2`,
		id, from, to,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrStatusChanged)
	}

	return nil
}

// SetPayment attaches the payment intent to an awaiting checkout.
func (r *CheckoutRepo) SetPayment(ctx context.Context, db DB, id uuid.UUID, intent domain.PaymentIntent) error {
	const op = "postgres.CheckoutRepo.SetPayment"

	tag, err := conn(r.pool, db).Exec(ctx,
		`UPDATE checkouts SET payment_handle = $2, payment_url = $3, updated_at = now()
		 WHERE id = $1 AND status = 'awaiting_payment'`,
		id, intent.Handle, intent.URL,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrStatusChanged)
	}

	return nil
}

// ListOverdue returns ids of awaiting checkouts whose deadline is at or before now, oldest first.
func (r *CheckoutRepo) ListOverdue(ctx context.Context, db DB, now time.Time, limit int) ([]uuid.UUID, error) {
	const op = "postgres.CheckoutRepo.ListOverdue"

	rows, err := conn(r.pool, db).Query(ctx,
		`SELECT id FROM checkouts
		 WHERE status = 'awaiting_payment' AND expires_at <= $1
		 ORDER BY expires_at
		 LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return ids, nil
}

func scanCheckout(row pgx.Row) (domain.Checkout, error) {
	var (
		c                     domain.Checkout
		promo, handle, payURL *string
	)

	if err := row.Scan(
		&c.ID, &c.AdID, &c.Zone, &c.Dates, &c.ReservationID, &c.Status,
		&c.Quote.SubtotalCents, &c.Quote.DiscountCents, &c.Quote.TaxCents, &c.Quote.TotalCents, &promo,
		&handle, &payURL, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return domain.Checkout{}, err
	}

	c.Quote.PromoCode = deref(promo)
	c.PaymentHandle = deref(handle)
	c.PaymentURL = deref(payURL)

	return c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
