package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	"github.com/kirinyoku/adslot-go/internal/repository"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
	"github.com/kirinyoku/adslot-go/internal/service/reservation"
	"github.com/kirinyoku/adslot-go/internal/uow"
)

const (
	DefaultService       = "booking"
	DefaultPaymentWindow = 30 * time.Minute
)

type AdDirectory interface {
	TargetZone(ctx context.Context, db postgres.DB, adID string) (domain.Zone, error)
	SetPaymentStatus(ctx context.Context, db postgres.DB, adID string, status domain.PaymentStatus) error
	ClearPending(ctx context.Context, db postgres.DB, adID string) error
}

type Pricer interface {
	Lines(dates []time.Time) []domain.PriceLine
	Subtotal(dates []time.Time) int64
	Quote(ctx context.Context, zone domain.Zone, dates []time.Time, discountCents int64, promoCode string) domain.PriceQuote
}

type Promos interface {
	Evaluate(ctx context.Context, code string, subtotalCents int64, service string) (domain.PromoResult, error)
	ClaimIn(ctx context.Context, tx postgres.DB, code string, subtotalCents int64, service string) (domain.PromoResult, error)
	RedeemIn(ctx context.Context, tx postgres.DB, code string, checkoutID uuid.UUID, adID string, discountCents int64) error
}

type Reservations interface {
	Prepare(adID string, zone domain.Zone, dates []time.Time) (domain.ClaimRequest, error)
	ClaimIn(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit), req domain.ClaimRequest) (domain.Reservation, bool, error)
	ActivateIn(ctx context.Context, tx postgres.DB, id uuid.UUID) error
	ReleaseIn(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit), id uuid.UUID, dates []time.Time) (domain.Reservation, []time.Time, error)
}

type Alternates interface {
	Find(ctx context.Context, origin domain.Zone, dates []time.Time) ([]domain.Alternative, error)
}

type Store interface {
	Insert(ctx context.Context, db postgres.DB, c *domain.Checkout) error
	Get(ctx context.Context, db postgres.DB, id uuid.UUID, forUpdate bool) (domain.Checkout, error)
	GetByReservation(ctx context.Context, db postgres.DB, reservationID uuid.UUID) (domain.Checkout, error)
	GetByPaymentHandle(ctx context.Context, db postgres.DB, handle string, forUpdate bool) (domain.Checkout, error)
	UpdateStatus(ctx context.Context, db postgres.DB, id uuid.UUID, from, to domain.CheckoutStatus) error
	SetPayment(ctx context.Context, db postgres.DB, id uuid.UUID, intent domain.PaymentIntent) error
	ListOverdue(ctx context.Context, db postgres.DB, now time.Time, limit int) ([]uuid.UUID, error)
}

type Payments interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, metadata map[string]string) (domain.PaymentIntent, error)
	MarkSucceeded(ctx context.Context, db postgres.DB, handle string) error
}

type Deps struct {
	UoW          uow.Runner
	Ads          AdDirectory
	Pricer       Pricer
	Promos       Promos
	Reservations Reservations
	Alternates   Alternates
	Checkouts    Store
	Payments     Payments
	Clock        clock.Clock
	Logger       *slog.Logger
}

type Config struct {
	Service       string
	PaymentWindow time.Duration
}

// Request is what a client submits. Totals are never taken from the client.
type Request struct {
	AdID      string
	Dates     []time.Time
	PromoCode string
}

// Service drives a checkout from quote to payment.
type Service struct {
	deps Deps
	cfg  Config
}

func New(d Deps, cfg Config) *Service {
	if cfg.Service == "" {
		cfg.Service = DefaultService
	}

	if cfg.PaymentWindow <= 0 {
		cfg.PaymentWindow = DefaultPaymentWindow
	}

	if d.Clock == nil {
		d.Clock = clock.NewRealClock()
	}

	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	return &Service{deps: d, cfg: cfg}
}

// Quote prices a request the way Checkout would, without reserving or consuming anything.
//
// Returns:
//   - domain.PriceQuote: the server-side quote.
//   - error: checkout.ErrAdNotFound, domain.ErrInvalidDates, domain.WindowExceededError or domain.PromoInvalidError.
func (s *Service) Quote(ctx context.Context, req Request) (domain.PriceQuote, error) {
	const op = "service.checkout.Quote"

	zone, err := s.targetZone(ctx, req.AdID)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("%s:%w", op, err)
	}

	claim, err := s.deps.Reservations.Prepare(req.AdID, zone, req.Dates)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("%s:%w", op, err)
	}

	var (
		discount int64
		code     string
	)

	if req.PromoCode != "" {
		pr, err := s.deps.Promos.Evaluate(ctx, req.PromoCode, s.deps.Pricer.Subtotal(claim.Dates), s.cfg.Service)
		if err != nil {
			return domain.PriceQuote{}, fmt.Errorf("%s:%w", op, err)
		}
		if !pr.Valid {
			return domain.PriceQuote{}, fmt.Errorf("%s:%w", op, domain.PromoInvalidError{Reason: pr.Reason})
		}
		discount, code = pr.DiscountCents, pr.Code
	}

	return s.deps.Pricer.Quote(ctx, zone, claim.Dates, discount, code), nil
}

// Checkout prices, reserves and either completes a free order or opens a payment.
//
// Parameters:
//   - ctx: request-scoped context.
//   - req: ad, dates and optional promo code.
//
// Returns:
//   - domain.CheckoutResult: Free with the reservation, or the payment handle and amount due.
//     Repeating a request that already succeeded returns the same result.
//   - error: checkout.ErrAdNotFound, domain.ErrInvalidDates or domain.WindowExceededError before any mutation.
//   - error: domain.SlotFullError with every full date and the alternatives found for them.
//   - error: domain.PromoInvalidError with the rejection reason.
//   - error: checkout.ErrPaymentUnavailable if no payment could be opened; the slots are given back.
func (s *Service) Checkout(ctx context.Context, req Request) (domain.CheckoutResult, error) {
	const op = "service.checkout.Checkout"

	zone, err := s.targetZone(ctx, req.AdID)
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("%s:%w", op, err)
	}

	claim, err := s.deps.Reservations.Prepare(req.AdID, zone, req.Dates)
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("%s:%w", op, err)
	}

	subtotal := s.deps.Pricer.Subtotal(claim.Dates)

	var (
		c      domain.Checkout
		replay bool
	)

	err = s.deps.UoW.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		replay = false

		res, existing, err := s.deps.Reservations.ClaimIn(ctx, tx, after, claim)
		if err != nil {
			return err
		}

		// a repeated request answers with its first result, whatever the promo allows now
		if existing {
			prev, err := s.deps.Checkouts.GetByReservation(ctx, tx, res.ID)
			if errors.Is(err, repository.ErrNotFound) {
				return reservation.ErrDatesAlreadyHeld
			}
			if err != nil {
				return err
			}
			c, replay = prev, true
			return nil
		}

		var (
			discount int64
			code     string
		)

		if req.PromoCode != "" {
			pr, err := s.deps.Promos.ClaimIn(ctx, tx, req.PromoCode, subtotal, s.cfg.Service)
			if err != nil {
				return err
			}
			if !pr.Valid {
				return domain.PromoInvalidError{Reason: pr.Reason}
			}
			discount, code = pr.DiscountCents, pr.Code
		}

		quote := s.deps.Pricer.Quote(ctx, zone, res.Dates, discount, code)

		c = domain.Checkout{
			ID:            uuid.New(),
			AdID:          req.AdID,
			Zone:          zone,
			Dates:         res.Dates,
			ReservationID: res.ID,
			Quote:         quote,
		}

		if quote.TotalCents == 0 {
			return s.completeFreeIn(ctx, tx, &c)
		}

		return s.openPaymentIn(ctx, tx, &c)
	})
	if err != nil {
		var full domain.SlotFullError
		if errors.As(err, &full) {
			full.Alternatives = s.alternatives(ctx, zone, full.Dates)
			return domain.CheckoutResult{}, fmt.Errorf("%s:%w", op, full)
		}
		return domain.CheckoutResult{}, fmt.Errorf("%s:%w", op, err)
	}

	if replay {
		s.deps.Logger.Info("checkout replayed",
			slog.String("checkout_id", c.ID.String()),
			slog.String("ad_id", c.AdID),
		)
		return s.resultOf(c), nil
	}

	if c.Status == domain.CheckoutFreeComplete {
		s.deps.Logger.Info("free checkout completed",
			slog.String("checkout_id", c.ID.String()),
			slog.String("promo", c.Quote.PromoCode),
		)
		return s.resultOf(c), nil
	}

	intent, err := s.deps.Payments.CreatePaymentIntent(ctx, c.Quote.TotalCents, map[string]string{
		"checkout_id":    c.ID.String(),
		"ad_id":          c.AdID,
		"reservation_id": c.ReservationID.String(),
	})
	if err != nil {
		s.abandon(ctx, c, err)
		return domain.CheckoutResult{}, fmt.Errorf("%s:%w", op, errors.Join(ErrPaymentUnavailable, err))
	}

	err = s.deps.UoW.Do(ctx, func(ctx context.Context, tx postgres.DB, _ func(uow.AfterCommit)) error {
		return s.deps.Checkouts.SetPayment(ctx, tx, c.ID, intent)
	})
	if err != nil {
		s.abandon(ctx, c, err)
		return domain.CheckoutResult{}, fmt.Errorf("%s:%w", op, err)
	}

	c.PaymentHandle = intent.Handle
	c.PaymentURL = intent.URL

	return s.resultOf(c), nil
}

// ConfirmPayment finalizes the checkout behind a payment handle once the provider reports success.
// Confirming a paid checkout again returns it unchanged.
//
// Returns:
//   - domain.Checkout: the paid checkout.
//   - error: checkout.ErrCheckoutNotFound for an unknown handle.
//   - error: domain.ErrPaymentExpired when the deadline passed; the slots are released.
//   - error: checkout.ErrCheckoutClosed if the checkout was cancelled.
func (s *Service) ConfirmPayment(ctx context.Context, handle string) (domain.Checkout, error) {
	const op = "service.checkout.ConfirmPayment"

	var (
		out     domain.Checkout
		expired bool
	)

	err := s.deps.UoW.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		expired = false

		c, err := s.deps.Checkouts.GetByPaymentHandle(ctx, tx, handle, true)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCheckoutNotFound
			}
			return err
		}

		switch c.Status {
		case domain.CheckoutPaid:
			out = c
			return nil
		case domain.CheckoutExpired:
			return domain.ErrPaymentExpired
		case domain.CheckoutAwaitingPayment:
		default:
			return ErrCheckoutClosed
		}

		if c.Overdue(s.deps.Clock.Now()) {
			if err := s.closeIn(ctx, tx, after, c, domain.CheckoutExpired); err != nil {
				return err
			}
			c.Status = domain.CheckoutExpired
			out, expired = c, true
			return nil
		}

		if err := s.deps.Payments.MarkSucceeded(ctx, tx, handle); err != nil {
			return err
		}

		if err := s.deps.Checkouts.UpdateStatus(ctx, tx, c.ID, domain.CheckoutAwaitingPayment, domain.CheckoutPaid); err != nil {
			return err
		}

		if err := s.deps.Reservations.ActivateIn(ctx, tx, c.ReservationID); err != nil {
			return err
		}

		if err := s.deps.Ads.SetPaymentStatus(ctx, tx, c.AdID, domain.PaymentPaid); err != nil {
			return s.adErr(err)
		}

		if c.Quote.PromoCode != "" {
			err := s.deps.Promos.RedeemIn(ctx, tx, c.Quote.PromoCode, c.ID, c.AdID, c.Quote.DiscountCents)
			switch {
			case errors.Is(err, domain.ErrPromoInvalid):
				s.deps.Logger.Warn("promo ceiling passed at payment",
					slog.String("checkout_id", c.ID.String()),
					slog.String("promo", c.Quote.PromoCode),
				)
			case err != nil:
				return err
			}
		}

		c.Status = domain.CheckoutPaid
		out = c

		return nil
	})
	if err != nil {
		return domain.Checkout{}, fmt.Errorf("%s:%w", op, err)
	}

	if expired {
		return out, fmt.Errorf("%s:%w", op, domain.ErrPaymentExpired)
	}

	return out, nil
}

// Get returns a checkout, expiring it first if its payment deadline passed.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Checkout, error) {
	const op = "service.checkout.Get"

	c, err := s.deps.Checkouts.Get(ctx, nil, id, false)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Checkout{}, fmt.Errorf("%s:%w", op, ErrCheckoutNotFound)
		}
		return domain.Checkout{}, fmt.Errorf("%s:%w", op, err)
	}

	if c.Overdue(s.deps.Clock.Now()) {
		c, _, err = s.expire(ctx, id)
		if err != nil {
			return domain.Checkout{}, fmt.Errorf("%s:%w", op, err)
		}
	}

	c.Quote.Lines = s.deps.Pricer.Lines(c.Dates)

	return c, nil
}

// Cancel abandons an unpaid checkout and gives its slots back. Cancelling twice is a no-op.
//
// Returns:
//   - domain.Checkout: the cancelled checkout.
//   - error: checkout.ErrCheckoutNotFound, or checkout.ErrCheckoutClosed if it is paid, free or expired.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (domain.Checkout, error) {
	const op = "service.checkout.Cancel"

	var out domain.Checkout

	err := s.deps.UoW.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		c, err := s.deps.Checkouts.Get(ctx, tx, id, true)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCheckoutNotFound
			}
			return err
		}

		switch c.Status {
		case domain.CheckoutCancelled:
			out = c
			return nil
		case domain.CheckoutAwaitingPayment:
		default:
			return ErrCheckoutClosed
		}

		if err := s.closeIn(ctx, tx, after, c, domain.CheckoutCancelled); err != nil {
			return err
		}

		c.Status = domain.CheckoutCancelled
		out = c

		return nil
	})
	if err != nil {
		return domain.Checkout{}, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ExpireStale expires up to limit overdue checkouts and reports how many it expired.
// A checkout that fails to expire is logged and left for the next pass.
func (s *Service) ExpireStale(ctx context.Context, limit int) (int, error) {
	const op = "service.checkout.ExpireStale"

	ids, err := s.deps.Checkouts.ListOverdue(ctx, nil, s.deps.Clock.Now(), limit)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	expired := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return expired, fmt.Errorf("%s:%w", op, err)
		}

		_, changed, err := s.expire(ctx, id)
		if err != nil {
			s.deps.Logger.Error("expire checkout",
				slog.String("checkout_id", id.String()),
				slog.Any("error", err),
			)
			continue
		}

		if changed {
			expired++
		}
	}

	return expired, nil
}

func (s *Service) expire(ctx context.Context, id uuid.UUID) (domain.Checkout, bool, error) {
	var (
		out     domain.Checkout
		changed bool
	)

	err := s.deps.UoW.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		changed = false

		c, err := s.deps.Checkouts.Get(ctx, tx, id, true)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCheckoutNotFound
			}
			return err
		}

		out = c
		if !c.Overdue(s.deps.Clock.Now()) {
			return nil
		}

		if err := s.closeIn(ctx, tx, after, c, domain.CheckoutExpired); err != nil {
			return err
		}

		out.Status = domain.CheckoutExpired
		changed = true

		return nil
	})
	if err != nil {
		return domain.Checkout{}, false, err
	}

	if changed {
		s.deps.Logger.Info("checkout expired",
			slog.String("checkout_id", id.String()),
			slog.String("zone", string(out.Zone)),
		)
	}

	return out, changed, nil
}

func (s *Service) completeFreeIn(ctx context.Context, tx postgres.DB, c *domain.Checkout) error {
	c.Status = domain.CheckoutFreeComplete

	if err := s.deps.Reservations.ActivateIn(ctx, tx, c.ReservationID); err != nil {
		return err
	}

	if err := s.deps.Checkouts.Insert(ctx, tx, c); err != nil {
		return err
	}

	if c.Quote.PromoCode != "" {
		if err := s.deps.Promos.RedeemIn(ctx, tx, c.Quote.PromoCode, c.ID, c.AdID, c.Quote.DiscountCents); err != nil {
			return err
		}
	}

	if err := s.deps.Ads.SetPaymentStatus(ctx, tx, c.AdID, domain.PaymentPaid); err != nil {
		return s.adErr(err)
	}

	return nil
}

func (s *Service) openPaymentIn(ctx context.Context, tx postgres.DB, c *domain.Checkout) error {
	expiresAt := s.deps.Clock.Now().Add(s.cfg.PaymentWindow)

	c.Status = domain.CheckoutAwaitingPayment
	c.ExpiresAt = &expiresAt

	if err := s.deps.Checkouts.Insert(ctx, tx, c); err != nil {
		return err
	}

	if err := s.deps.Ads.SetPaymentStatus(ctx, tx, c.AdID, domain.PaymentPending); err != nil {
		return s.adErr(err)
	}

	return nil
}

// closeIn moves an awaiting checkout to a final status and gives its slots back.
func (s *Service) closeIn(
	ctx context.Context,
	tx postgres.DB,
	after func(uow.AfterCommit),
	c domain.Checkout,
	to domain.CheckoutStatus,
) error {
	if err := s.deps.Checkouts.UpdateStatus(ctx, tx, c.ID, domain.CheckoutAwaitingPayment, to); err != nil {
		return err
	}

	if _, _, err := s.deps.Reservations.ReleaseIn(ctx, tx, after, c.ReservationID, nil); err != nil &&
		!errors.Is(err, reservation.ErrAlreadyReleased) {
		return err
	}

	return s.deps.Ads.ClearPending(ctx, tx, c.AdID)
}

// abandon undoes a checkout whose payment could not be opened. It runs even if the request was cancelled.
func (s *Service) abandon(ctx context.Context, c domain.Checkout, cause error) {
	ctx = context.WithoutCancel(ctx)

	s.deps.Logger.Error("payment intent failed, releasing slots",
		slog.String("checkout_id", c.ID.String()),
		slog.Any("error", cause),
	)

	err := s.deps.UoW.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		return s.closeIn(ctx, tx, after, c, domain.CheckoutCancelled)
	})
	if err != nil {
		s.deps.Logger.Error("release abandoned checkout",
			slog.String("checkout_id", c.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *Service) alternatives(ctx context.Context, zone domain.Zone, dates []time.Time) []domain.Alternative {
	if s.deps.Alternates == nil {
		return []domain.Alternative{}
	}

	alts, err := s.deps.Alternates.Find(ctx, zone, dates)
	if err != nil {
		s.deps.Logger.Warn("find alternate zones",
			slog.String("zone", string(zone)),
			slog.Any("error", err),
		)
		return []domain.Alternative{}
	}

	return alts
}

func (s *Service) targetZone(ctx context.Context, adID string) (domain.Zone, error) {
	if adID == "" {
		return "", ErrAdNotFound
	}

	zone, err := s.deps.Ads.TargetZone(ctx, nil, adID)
	if err != nil {
		return "", s.adErr(err)
	}

	return zone, nil
}

func (s *Service) adErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAdNotFound
	}
	return err
}

func (s *Service) resultOf(c domain.Checkout) domain.CheckoutResult {
	if c.Quote.Lines == nil {
		c.Quote.Lines = s.deps.Pricer.Lines(c.Dates)
	}

	r := domain.CheckoutResult{
		Free:          c.Status == domain.CheckoutFreeComplete,
		CheckoutID:    c.ID,
		ReservationID: c.ReservationID,
		PaymentHandle: c.PaymentHandle,
		PaymentURL:    c.PaymentURL,
		Quote:         c.Quote,
	}

	if !r.Free {
		r.AmountDueCents = c.Quote.TotalCents
	}

	return r
}
