package httpgin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/payment"
	redisrepo "github.com/kirinyoku/adslot-go/internal/repository/redis"
	"github.com/kirinyoku/adslot-go/internal/service/checkout"
)

type AvailabilityService interface {
	QueryRange(ctx context.Context, zone domain.Zone, from, to time.Time) (domain.AvailabilityRange, error)
}

type PromoService interface {
	Evaluate(ctx context.Context, code string, subtotalCents int64, service string) (domain.PromoResult, error)
}

type AlternatesService interface {
	Find(ctx context.Context, origin domain.Zone, dates []time.Time) ([]domain.Alternative, error)
}

type CheckoutService interface {
	Quote(ctx context.Context, req checkout.Request) (domain.PriceQuote, error)
	Checkout(ctx context.Context, req checkout.Request) (domain.CheckoutResult, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Checkout, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.Checkout, error)
	ConfirmPayment(ctx context.Context, handle string) (domain.Checkout, error)
}

type ReservationService interface {
	Release(ctx context.Context, id uuid.UUID, dates []time.Time) (domain.Reservation, []time.Time, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	ReservedDates(ctx context.Context, adID string, from, to time.Time) ([]time.Time, error)
}

type PaymentEvents interface {
	ParseEvent(body []byte, signature string) (payment.Event, error)
}

type IdempotencyStore interface {
	Begin(ctx context.Context, idemKey string) (*redisrepo.StoredResponse, bool, error)
	Save(ctx context.Context, idemKey string, status int, body []byte) error
	Abort(ctx context.Context, idemKey string) error
}

type RateLimiter interface {
	Allow(ctx context.Context, client string) (bool, int64, time.Duration, error)
}

type ZoneSubscriber interface {
	Subscribe(ctx context.Context, handler func(ctx context.Context, change domain.ZoneChange)) error
}

// Deps is everything the router serves. Idempotency, the limiters and Zones are optional.
type Deps struct {
	Availability AvailabilityService
	Promos       PromoService
	Alternates   AlternatesService
	Checkout     CheckoutService
	Reservations ReservationService
	Payments     PaymentEvents

	Idempotency     IdempotencyStore
	CheckoutLimiter RateLimiter
	PromoLimiter    RateLimiter
	Zones           ZoneSubscriber

	// Service is the promo service filter used when a preview names none.
	Service      string
	AllowOrigins []string
	AdminToken   string
}
