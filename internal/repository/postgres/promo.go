package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/domain"
)

type PromoRepo struct {
	pool *pgxpool.Pool
}

// Get loads a promo code by its normalized form.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//   - db: handle to read through; nil means the pool.
//   - code: upper-cased code.
//   - forUpdate: lock the row until the surrounding transaction ends.
//
// Returns:
//   - domain.PromoCode: the code when found.
//   - error: repository.ErrNotFound if there is no such code.
func (r *PromoRepo) Get(ctx context.Context, db DB, code string, forUpdate bool) (domain.PromoCode, error) {
	const op = "postgres.PromoRepo.Get"

	q := `SELECT code, kind, amount_cents, percent_off, service, max_redemptions,
		         uses, enabled, starts_at, expires_at
		  FROM promo_codes WHERE code = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}

	var p domain.PromoCode
	if err := conn(r.pool, db).QueryRow(ctx, q, code).Scan(
		&p.Code, &p.Kind, &p.AmountCents, &p.PercentOff, &p.Service, &p.MaxRedemptions,
		&p.Uses, &p.Enabled, &p.StartsAt, &p.ExpiresAt,
	); err != nil {
		return domain.PromoCode{}, wrapDBErr(op, err)
	}

	return p, nil
}

// PendingCount counts unpaid, unexpired checkouts carrying code.
func (r *PromoRepo) PendingCount(ctx context.Context, db DB, code string, now time.Time) (int, error) {
	const op = "postgres.PromoRepo.PendingCount"

	var n int
	if err := conn(r.pool, db).QueryRow(ctx,
		`SELECT count(*) FROM checkouts
		 WHERE promo_code = $1 AND status = 'awaiting_payment' AND expires_at > $2`,
		code, now,
	).Scan(&n); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}

// Redeem records one redemption for checkoutID and bumps the usage counter under the ceiling.
//
// Returns:
//   - bool: false when the checkout had already redeemed the code (nothing changed).
//   - error: domain.PromoInvalidError{limit_reached} if the ceiling is already reached; nothing is recorded then.
func (r *PromoRepo) Redeem(
	ctx context.Context,
	db DB,
	code string,
	checkoutID uuid.UUID,
	adID string,
	discountCents int64,
) (bool, error) {
	const op = "postgres.PromoRepo.Redeem"

	h := conn(r.pool, db)

	tag, err := h.Exec(ctx,
		`INSERT INTO promo_redemptions(id, code, checkout_id, ad_id, discount_cents)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (checkout_id) DO NOTHING`,
		uuid.New(), code, checkoutID, adID, discountCents,
	)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return false, nil
	}

	tag, err = h.Exec(ctx,
		`UPDATE promo_codes
		 SET uses = uses + 1
		 WHERE code = $1 AND (max_redemptions IS NULL OR uses < max_redemptions)`,
		code,
	)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		// keep the redemption log in step with the counter
		if _, err := h.Exec(ctx, `DELETE FROM promo_redemptions WHERE checkout_id = $1`, checkoutID); err != nil {
			return false, wrapDBErr(op, err)
		}
		return false, fmt.Errorf("%s:%w", op, domain.PromoInvalidError{Reason: domain.PromoLimitReached})
	}

	return true, nil
}

// Put creates or replaces a promo code definition, keeping its usage counter.
func (r *PromoRepo) Put(ctx context.Context, db DB, p domain.PromoCode) error {
	const op = "postgres.PromoRepo.Put"

	if _, err := conn(r.pool, db).Exec(ctx,
		`INSERT INTO promo_codes(code, kind, amount_cents, percent_off, service,
		                         max_redemptions, enabled, starts_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (code) DO UPDATE SET
		   kind = EXCLUDED.kind,
		   amount_cents = EXCLUDED.amount_cents,
		   percent_off = EXCLUDED.percent_off,
		   service = EXCLUDED.service,
		   max_redemptions = EXCLUDED.max_redemptions,
		   enabled = EXCLUDED.enabled,
		   starts_at = EXCLUDED.starts_at,
		   expires_at = EXCLUDED.expires_at`,
		p.Code, p.Kind, p.AmountCents, p.PercentOff, p.Service,
		p.MaxRedemptions, p.Enabled, p.StartsAt, p.ExpiresAt,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
