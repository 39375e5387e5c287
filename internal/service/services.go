package service

import (
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kirinyoku/adslot-go/internal/calendar"
	"github.com/kirinyoku/adslot-go/internal/config"
	"github.com/kirinyoku/adslot-go/internal/geo"
	"github.com/kirinyoku/adslot-go/internal/payment"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	postgres "github.com/kirinyoku/adslot-go/internal/repository/postgres"
	redis "github.com/kirinyoku/adslot-go/internal/repository/redis"
	"github.com/kirinyoku/adslot-go/internal/service/alternates"
	"github.com/kirinyoku/adslot-go/internal/service/availability"
	"github.com/kirinyoku/adslot-go/internal/service/checkout"
	"github.com/kirinyoku/adslot-go/internal/service/pricing"
	"github.com/kirinyoku/adslot-go/internal/service/promo"
	"github.com/kirinyoku/adslot-go/internal/service/reservation"
	"github.com/kirinyoku/adslot-go/internal/tax"
	"github.com/kirinyoku/adslot-go/internal/uow"
)

type Services struct {
	Window       calendar.Window
	Pricing      *pricing.Calculator
	Availability *availability.Service
	Promo        *promo.Service
	Reservation  *reservation.Service
	Geo          *geo.Directory
	Alternates   *alternates.Service
	Gateway      *payment.HostedGateway
	Checkout     *checkout.Service
}

type Config struct {
	Location      *time.Location
	HorizonDays   int
	RadiusMiles   float64
	PaymentURL    string
	WebhookSecret string

	Pricing      pricing.Config
	Availability availability.Config
	Reservation  reservation.Config
	Alternates   alternates.Config
	Checkout     checkout.Config
}

// ConfigFrom picks the service settings out of the process configuration.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Location:      cfg.Booking.Location(),
		HorizonDays:   cfg.Booking.HorizonDays,
		RadiusMiles:   cfg.Alternates.RadiusMiles,
		PaymentURL:    cfg.Payment.BaseURL,
		WebhookSecret: cfg.Payment.WebhookSecret,
		Pricing: pricing.Config{
			WeekdayRateCents: cfg.Booking.WeekdayRateCents,
			WeekendRateCents: cfg.Booking.WeekendRateCents,
			FlatTaxRate:      cfg.Booking.FlatTaxRate,
		},
		Availability: availability.Config{
			Capacity: cfg.Booking.MaxSlotsPerDate,
			CacheTTL: cfg.Cache.AvailabilityTTL,
		},
		Reservation: reservation.Config{Capacity: cfg.Booking.MaxSlotsPerDate},
		Alternates:  alternates.Config{MaxResults: cfg.Alternates.MaxResults},
		Checkout: checkout.Config{
			Service:       cfg.Booking.Service,
			PaymentWindow: cfg.Booking.PaymentWindow,
		},
	}
}

// NewServices wires the booking engine. cache and pubsub may be nil, in which case
// availability is read straight from Postgres and no change events are published.
func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.ZonesPubSub,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Services {
	if clk == nil {
		clk = clock.NewRealClock()
	}

	if logger == nil {
		logger = slog.Default()
	}

	var (
		rangeCache  availability.RangeCache
		invalidator reservation.Invalidator
		publisher   reservation.Publisher
	)
	if cache != nil {
		rangeCache, invalidator = cache, cache
	}
	if pubsub != nil {
		publisher = pubsub
	}

	window := calendar.NewWindow(clk, cfg.Location, cfg.HorizonDays)
	// every write locks its rows FOR UPDATE and guards counters in the UPDATE itself,
	// so waiters re-read committed rows instead of failing serialization
	u := uow.NewUoW(store, uow.WithLogger(logger), uow.WithIsolation(pgx.ReadCommitted))

	pricer := pricing.New(tax.NewStateTable(), cfg.Pricing, logger)
	avail := availability.New(store.Slots(), rangeCache, window, cfg.Availability, logger)
	promos := promo.New(store.Promos(), clk)
	res := reservation.New(u, store.Slots(), invalidator, publisher, window, cfg.Reservation, logger)
	dir := geo.NewDirectory(store.Zones(), cfg.RadiusMiles)
	alts := alternates.New(dir, avail, window, cfg.Alternates, logger)
	gateway := payment.NewHostedGateway(store.Payments(), cfg.PaymentURL, cfg.WebhookSecret)

	co := checkout.New(checkout.Deps{
		UoW:          u,
		Ads:          store.Ads(),
		Pricer:       pricer,
		Promos:       promos,
		Reservations: res,
		Alternates:   alts,
		Checkouts:    store.Checkouts(),
		Payments:     gateway,
		Clock:        clk,
		Logger:       logger,
	}, cfg.Checkout)

	return &Services{
		Window:       window,
		Pricing:      pricer,
		Availability: avail,
		Promo:        promos,
		Reservation:  res,
		Geo:          dir,
		Alternates:   alts,
		Gateway:      gateway,
		Checkout:     co,
	}
}
