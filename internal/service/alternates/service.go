package alternates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirinyoku/adslot-go/internal/calendar"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/geo"
)

const (
	DefaultMaxResults      = 5
	DefaultCandidateFactor = 4
)

type Geo interface {
	NearbyZones(ctx context.Context, zone domain.Zone, maxResults int) ([]domain.NearbyZone, error)
}

type Availability interface {
	AvailableOnAny(ctx context.Context, zones []domain.Zone, dates []time.Time) (map[domain.Zone]bool, error)
}

type Config struct {
	MaxResults      int
	CandidateFactor int
}

// Service suggests nearby zones that still have room on the dates a user could not get.
type Service struct {
	geo    Geo
	avail  Availability
	window calendar.Window
	cfg    Config
	logger *slog.Logger
}

func New(g Geo, avail Availability, window calendar.Window, cfg Config, logger *slog.Logger) *Service {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}

	if cfg.CandidateFactor <= 0 {
		cfg.CandidateFactor = DefaultCandidateFactor
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{geo: g, avail: avail, window: window, cfg: cfg, logger: logger}
}

// Find ranks nearby zones with a free slot on at least one of dates.
//
// Parameters:
//   - ctx: request-scoped context.
//   - origin: the zone that was full.
//   - dates: the unavailable dates; dates outside the booking window are ignored.
//
// Returns:
//   - []domain.Alternative: nearest first, at most MaxResults entries, never nil.
//   - error: if the geo collaborator or the store fails.
func (s *Service) Find(ctx context.Context, origin domain.Zone, dates []time.Time) ([]domain.Alternative, error) {
	const op = "service.alternates.Find"

	out := []domain.Alternative{}

	bookable := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = domain.DateOf(d, nil)
		if s.window.Contains(d) {
			bookable = append(bookable, d)
		}
	}
	if len(bookable) == 0 {
		return out, nil
	}

	nearby, err := s.geo.NearbyZones(ctx, origin, s.cfg.MaxResults*s.cfg.CandidateFactor)
	if err != nil {
		if errors.Is(err, geo.ErrUnknownZone) {
			s.logger.Debug("no location for zone", slog.String("zone", string(origin)))
			return out, nil
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	if len(nearby) == 0 {
		return out, nil
	}

	zones := make([]domain.Zone, len(nearby))
	for i, n := range nearby {
		zones[i] = n.Zone
	}

	open, err := s.avail.AvailableOnAny(ctx, zones, bookable)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	for _, n := range nearby {
		if !open[n.Zone] {
			continue
		}

		out = append(out, n)
		if len(out) == s.cfg.MaxResults {
			break
		}
	}

	return out, nil
}
