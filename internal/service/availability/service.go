package availability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirinyoku/adslot-go/internal/calendar"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
)

const DefaultCapacity = 3

type SlotReader interface {
	UsedInRange(ctx context.Context, db postgres.DB, zone domain.Zone, from, to time.Time) (map[time.Time]int, error)
	UsedOnDates(ctx context.Context, db postgres.DB, zones []domain.Zone, dates []time.Time) (map[domain.Zone]map[time.Time]int, error)
}

// RangeCache serves ranges keyed by the zone's current version.
type RangeCache interface {
	ZoneRange(
		ctx context.Context,
		zone domain.Zone,
		from, to time.Time,
		ttl time.Duration,
		loader func(ctx context.Context) (domain.AvailabilityRange, error),
	) (domain.AvailabilityRange, error)
}

type Config struct {
	Capacity int
	CacheTTL time.Duration
}

type Service struct {
	slots  SlotReader
	cache  RangeCache
	window calendar.Window
	cfg    Config
	logger *slog.Logger
}

// New builds the availability index. cache may be nil.
func New(slots SlotReader, cache RangeCache, window calendar.Window, cfg Config, logger *slog.Logger) *Service {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		slots:  slots,
		cache:  cache,
		window: window,
		cfg:    cfg,
		logger: logger,
	}
}

// QueryRange returns per-date occupancy for zone on [from, to], clamped to the booking window.
//
// Parameters:
//   - ctx: request-scoped context.
//   - zone: zone to read.
//   - from, to: requested inclusive bounds; out-of-window parts are dropped.
//
// Returns:
//   - domain.AvailabilityRange: one entry per date, empty when nothing is left after clamping.
//   - error: if the store fails.
func (s *Service) QueryRange(ctx context.Context, zone domain.Zone, from, to time.Time) (domain.AvailabilityRange, error) {
	const op = "service.availability.QueryRange"

	from, to, ok := s.window.Clamp(from, to)
	if !ok {
		return domain.AvailabilityRange{
			Zone:     zone,
			From:     from,
			To:       to,
			Capacity: s.cfg.Capacity,
			Days:     []domain.DayAvailability{},
		}, nil
	}

	load := func(ctx context.Context) (domain.AvailabilityRange, error) {
		return s.load(ctx, zone, from, to)
	}

	if s.cache == nil {
		r, err := load(ctx)
		if err != nil {
			return domain.AvailabilityRange{}, fmt.Errorf("%s:%w", op, err)
		}
		return r, nil
	}

	r, err := s.cache.ZoneRange(ctx, zone, from, to, s.cfg.CacheTTL, load)
	if err == nil {
		return r, nil
	}

	s.logger.Warn("availability cache failed, reading store",
		slog.String("zone", string(zone)),
		slog.Any("error", err),
	)

	r, err = load(ctx)
	if err != nil {
		return domain.AvailabilityRange{}, fmt.Errorf("%s:%w", op, err)
	}

	return r, nil
}

// FullDates lists the dates in [from, to] that have no remaining slot.
func (s *Service) FullDates(ctx context.Context, zone domain.Zone, from, to time.Time) ([]time.Time, error) {
	r, err := s.QueryRange(ctx, zone, from, to)
	if err != nil {
		return nil, err
	}

	var full []time.Time
	for _, d := range r.Days {
		if !d.Available() {
			full = append(full, d.Date)
		}
	}

	return full, nil
}

func (s *Service) IsFull(ctx context.Context, zone domain.Zone, date time.Time) (bool, error) {
	full, err := s.FullDates(ctx, zone, date, date)
	if err != nil {
		return false, err
	}
	return len(full) > 0, nil
}

// AvailableOnAny reports, per zone, whether at least one of dates has a free slot.
// It reads the store directly so alternatives are never offered from a stale cache.
func (s *Service) AvailableOnAny(ctx context.Context, zones []domain.Zone, dates []time.Time) (map[domain.Zone]bool, error) {
	const op = "service.availability.AvailableOnAny"

	out := make(map[domain.Zone]bool, len(zones))
	if len(zones) == 0 || len(dates) == 0 {
		return out, nil
	}

	used, err := s.slots.UsedOnDates(ctx, nil, zones, dates)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	for _, z := range zones {
		for _, d := range dates {
			if used[z][d] < s.cfg.Capacity {
				out[z] = true
				break
			}
		}
	}

	return out, nil
}

func (s *Service) load(ctx context.Context, zone domain.Zone, from, to time.Time) (domain.AvailabilityRange, error) {
	used, err := s.slots.UsedInRange(ctx, nil, zone, from, to)
	if err != nil {
		return domain.AvailabilityRange{}, err
	}

	days := calendar.Days(from, to)

	r := domain.AvailabilityRange{
		Zone:     zone,
		From:     from,
		To:       to,
		Capacity: s.cfg.Capacity,
		Days:     make([]domain.DayAvailability, len(days)),
	}

	for i, d := range days {
		u := used[d]
		r.Days[i] = domain.DayAvailability{
			Date:      d,
			Used:      u,
			Remaining: max(s.cfg.Capacity-u, 0),
		}
	}

	return r, nil
}
