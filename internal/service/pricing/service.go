package pricing

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/kirinyoku/adslot-go/internal/domain"
)

const (
	DefaultWeekdayRateCents = 800
	DefaultWeekendRateCents = 1000
	DefaultFlatTaxRate      = 0.065
)

// TaxEstimator is the authoritative tax collaborator keyed by zone.
type TaxEstimator interface {
	EstimateTax(ctx context.Context, zone domain.Zone, amountCents int64) (int64, error)
}

type Config struct {
	WeekdayRateCents int64
	WeekendRateCents int64
	FlatTaxRate      float64
}

// Calculator turns a date set into a quote. It holds no state besides its rate table.
type Calculator struct {
	tax    TaxEstimator
	cfg    Config
	logger *slog.Logger
}

func New(tax TaxEstimator, cfg Config, logger *slog.Logger) *Calculator {
	if cfg.WeekdayRateCents <= 0 {
		cfg.WeekdayRateCents = DefaultWeekdayRateCents
	}

	if cfg.WeekendRateCents <= 0 {
		cfg.WeekendRateCents = DefaultWeekendRateCents
	}

	if cfg.FlatTaxRate <= 0 {
		cfg.FlatTaxRate = DefaultFlatTaxRate
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Calculator{tax: tax, cfg: cfg, logger: logger}
}

func (c *Calculator) Rate(kind domain.RateKind) int64 {
	if kind == domain.RateWeekend {
		return c.cfg.WeekendRateCents
	}
	return c.cfg.WeekdayRateCents
}

// Lines prices each date in ascending date order.
func (c *Calculator) Lines(dates []time.Time) []domain.PriceLine {
	sorted := domain.SortDates(dates)

	lines := make([]domain.PriceLine, len(sorted))
	for i, d := range sorted {
		kind := domain.RateKindOf(d)
		lines[i] = domain.PriceLine{Date: d, Kind: kind, Cents: c.Rate(kind)}
	}

	return lines
}

func (c *Calculator) Subtotal(dates []time.Time) int64 {
	var sum int64
	for _, d := range dates {
		sum += c.Rate(domain.RateKindOf(d))
	}
	return sum
}

// FlatTax is the display estimate round(amount * flat rate).
func (c *Calculator) FlatTax(amountCents int64) int64 {
	if amountCents <= 0 {
		return 0
	}
	return int64(math.Round(float64(amountCents) * c.cfg.FlatTaxRate))
}

// Quote prices dates for zone with discountCents already decided by the promo evaluator.
// Tax is taken on the discounted amount. A failing tax collaborator falls back to the flat estimate.
//
// Parameters:
//   - ctx: request-scoped context.
//   - zone: zone the dates are in, used for tax.
//   - dates: distinct slot dates.
//   - discountCents: promo discount, clamped to [0, subtotal].
//   - promoCode: normalized code the discount came from, empty for none.
//
// Returns:
//   - domain.PriceQuote: the authoritative quote.
func (c *Calculator) Quote(
	ctx context.Context,
	zone domain.Zone,
	dates []time.Time,
	discountCents int64,
	promoCode string,
) domain.PriceQuote {
	lines := c.Lines(dates)

	var subtotal int64
	for _, l := range lines {
		subtotal += l.Cents
	}

	discountCents = min(max(discountCents, 0), subtotal)
	taxable := subtotal - discountCents

	q := domain.PriceQuote{
		Lines:         lines,
		SubtotalCents: subtotal,
		DiscountCents: discountCents,
		TaxCents:      c.estimateTax(ctx, zone, taxable),
	}
	if discountCents > 0 {
		q.PromoCode = promoCode
	}

	q.TotalCents = taxable + q.TaxCents

	return q
}

func (c *Calculator) estimateTax(ctx context.Context, zone domain.Zone, amountCents int64) int64 {
	if amountCents <= 0 {
		return 0
	}

	if c.tax == nil {
		return c.FlatTax(amountCents)
	}

	t, err := c.tax.EstimateTax(ctx, zone, amountCents)
	if err != nil {
		c.logger.Warn("tax estimate unavailable, using flat rate",
			slog.String("zone", string(zone)),
			slog.String("error", err.Error()),
		)
		return c.FlatTax(amountCents)
	}
	if t < 0 {
		c.logger.Warn("negative tax estimate, using flat rate",
			slog.String("zone", string(zone)),
			slog.Int64("tax_cents", t),
		)
		return c.FlatTax(amountCents)
	}

	return t
}
