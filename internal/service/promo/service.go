package promo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	"github.com/kirinyoku/adslot-go/internal/repository"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
)

type Store interface {
	Get(ctx context.Context, db postgres.DB, code string, forUpdate bool) (domain.PromoCode, error)
	PendingCount(ctx context.Context, db postgres.DB, code string, now time.Time) (int, error)
	Redeem(ctx context.Context, db postgres.DB, code string, checkoutID uuid.UUID, adID string, discountCents int64) (bool, error)
}

type Service struct {
	store Store
	clock clock.Clock
}

func New(store Store, c clock.Clock) *Service {
	if c == nil {
		c = clock.NewRealClock()
	}

	return &Service{store: store, clock: c}
}

// Normalize is the lookup form of a code as typed by a user.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Evaluate validates a code for preview. Usage is compared against completed redemptions only
// and nothing is consumed.
//
// Parameters:
//   - ctx: request-scoped context.
//   - code: code as entered.
//   - subtotalCents: subtotal the discount applies to.
//   - service: service the code must be valid for.
//
// Returns:
//   - domain.PromoResult: Valid with a discount, or a rejection reason.
//   - error: only for storage failures.
func (s *Service) Evaluate(ctx context.Context, code string, subtotalCents int64, service string) (domain.PromoResult, error) {
	const op = "service.promo.Evaluate"

	code = Normalize(code)

	p, found, err := s.lookup(ctx, nil, code, false)
	if err != nil {
		return domain.PromoResult{}, fmt.Errorf("%s:%w", op, err)
	}

	return Check(p, found, service, s.clock.Now(), 0, subtotalCents), nil
}

// ClaimIn validates a code inside the checkout transaction. The promo row stays locked until
// the transaction ends, and unpaid checkouts holding the code count against the ceiling.
func (s *Service) ClaimIn(
	ctx context.Context,
	tx postgres.DB,
	code string,
	subtotalCents int64,
	service string,
) (domain.PromoResult, error) {
	const op = "service.promo.ClaimIn"

	code = Normalize(code)
	now := s.clock.Now()

	p, found, err := s.lookup(ctx, tx, code, true)
	if err != nil {
		return domain.PromoResult{}, fmt.Errorf("%s:%w", op, err)
	}

	pending := 0
	if found && p.MaxRedemptions != nil {
		pending, err = s.store.PendingCount(ctx, tx, code, now)
		if err != nil {
			return domain.PromoResult{}, fmt.Errorf("%s:%w", op, err)
		}
	}

	return Check(p, found, service, now, pending, subtotalCents), nil
}

// RedeemIn consumes one use of code for a completed checkout. Redeeming the same checkout twice is a no-op.
func (s *Service) RedeemIn(
	ctx context.Context,
	tx postgres.DB,
	code string,
	checkoutID uuid.UUID,
	adID string,
	discountCents int64,
) error {
	const op = "service.promo.RedeemIn"

	if _, err := s.store.Redeem(ctx, tx, Normalize(code), checkoutID, adID, discountCents); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

func (s *Service) lookup(ctx context.Context, db postgres.DB, code string, forUpdate bool) (domain.PromoCode, bool, error) {
	if code == "" {
		return domain.PromoCode{}, false, nil
	}

	p, err := s.store.Get(ctx, db, code, forUpdate)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.PromoCode{}, false, nil
	}
	if err != nil {
		return domain.PromoCode{}, false, err
	}

	return p, true, nil
}

// Check applies the validation order not_found, wrong_service, limit_reached and computes the discount.
// pending is added to completed uses when comparing against the ceiling.
func Check(
	p domain.PromoCode,
	found bool,
	service string,
	now time.Time,
	pending int,
	subtotalCents int64,
) domain.PromoResult {
	switch {
	case !found || !p.Enabled:
		return rejected(domain.PromoNotFound)
	case p.StartsAt != nil && now.Before(*p.StartsAt):
		return rejected(domain.PromoNotFound)
	case p.ExpiresAt != nil && !now.Before(*p.ExpiresAt):
		return rejected(domain.PromoNotFound)
	case p.Service != "" && !strings.EqualFold(p.Service, service):
		return rejected(domain.PromoWrongService)
	case p.MaxRedemptions != nil && p.Uses+pending >= *p.MaxRedemptions:
		return rejected(domain.PromoLimitReached)
	}

	return domain.PromoResult{
		Valid:         true,
		Code:          p.Code,
		Kind:          p.Kind,
		DiscountCents: Discount(p, subtotalCents),
	}
}

// Discount never exceeds the subtotal and is never negative.
func Discount(p domain.PromoCode, subtotalCents int64) int64 {
	if subtotalCents <= 0 {
		return 0
	}

	var d int64
	switch p.Kind {
	case domain.PromoFixed:
		d = p.AmountCents
	case domain.PromoPercent:
		pct := min(max(p.PercentOff, 0), 100)
		d = int64(math.Round(float64(subtotalCents) * float64(pct) / 100))
	case domain.PromoComplimentary:
		d = subtotalCents
	}

	return min(max(d, 0), subtotalCents)
}

func rejected(reason domain.PromoReason) domain.PromoResult {
	return domain.PromoResult{Valid: false, Reason: reason}
}
