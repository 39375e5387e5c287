package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/calendar"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/repository"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
	"github.com/kirinyoku/adslot-go/internal/uow"
)

const DefaultCapacity = 3

type SlotStore interface {
	Claim(ctx context.Context, db postgres.DB, req domain.ClaimRequest) (domain.Reservation, bool, error)
	Release(ctx context.Context, db postgres.DB, id uuid.UUID, dates []time.Time) (domain.Reservation, []time.Time, error)
	SetStatus(ctx context.Context, db postgres.DB, id uuid.UUID, status domain.ReservationStatus) error
	Get(ctx context.Context, db postgres.DB, id uuid.UUID) (domain.Reservation, error)
	ReservedDates(ctx context.Context, db postgres.DB, adID string, from, to time.Time) ([]time.Time, error)
}

type Invalidator interface {
	InvalidateZone(ctx context.Context, zone domain.Zone) error
}

type Publisher interface {
	PublishZoneChanged(ctx context.Context, change domain.ZoneChange) error
}

type Config struct {
	Capacity int
}

// Service is the slot reservation manager. All occupancy changes go through a unit of work.
type Service struct {
	uow    uow.Runner
	slots  SlotStore
	cache  Invalidator
	pubsub Publisher
	window calendar.Window
	cfg    Config
	logger *slog.Logger
}

// New builds the reservation manager. cache and pubsub may be nil.
func New(
	u uow.Runner,
	slots SlotStore,
	cache Invalidator,
	pubsub Publisher,
	window calendar.Window,
	cfg Config,
	logger *slog.Logger,
) *Service {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		uow:    u,
		slots:  slots,
		cache:  cache,
		pubsub: pubsub,
		window: window,
		cfg:    cfg,
		logger: logger,
	}
}

// Prepare validates a request before any transaction starts.
//
// Returns:
//   - domain.ClaimRequest: dates sorted and deduplicated against the window, status held.
//   - error: domain.ErrInvalidDates for empty or duplicate dates.
//   - error: domain.WindowExceededError listing every date outside the booking window.
func (s *Service) Prepare(adID string, zone domain.Zone, dates []time.Time) (domain.ClaimRequest, error) {
	const op = "service.reservation.Prepare"

	if adID == "" || zone == "" {
		return domain.ClaimRequest{}, fmt.Errorf("%s: ad and zone are required", op)
	}

	valid, err := s.window.Validate(dates)
	if err != nil {
		return domain.ClaimRequest{}, fmt.Errorf("%s:%w", op, err)
	}

	return domain.ClaimRequest{
		AdID:     adID,
		Zone:     zone,
		Dates:    valid,
		Capacity: s.cfg.Capacity,
		Status:   domain.ReservationHeld,
	}, nil
}

// Reserve claims every requested date for adID or none of them.
//
// Parameters:
//   - ctx: request-scoped context.
//   - adID: ad the dates are for.
//   - zone: the ad's target zone.
//   - dates: requested dates.
//
// Returns:
//   - domain.Reservation: the new reservation, or the existing identical one.
//   - error: domain.WindowExceededError or domain.ErrInvalidDates before any mutation.
//   - error: domain.SlotFullError with every full date.
//   - error: reservation.ErrDatesAlreadyHeld if another reservation of the ad overlaps.
//   - error: domain.ErrTransientConflict when retries are exhausted.
func (s *Service) Reserve(ctx context.Context, adID string, zone domain.Zone, dates []time.Time) (domain.Reservation, error) {
	const op = "service.reservation.Reserve"

	req, err := s.Prepare(adID, zone, dates)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s:%w", op, err)
	}

	var res domain.Reservation

	err = s.uow.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		var err error
		res, _, err = s.ClaimIn(ctx, tx, after, req)
		return err
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s:%w", op, err)
	}

	return res, nil
}

// ClaimIn runs the claim inside the caller's transaction and schedules the change
// notification for after its commit.
func (s *Service) ClaimIn(
	ctx context.Context,
	tx postgres.DB,
	after func(uow.AfterCommit),
	req domain.ClaimRequest,
) (domain.Reservation, bool, error) {
	const op = "service.reservation.ClaimIn"

	if req.Capacity <= 0 {
		req.Capacity = s.cfg.Capacity
	}

	res, existing, err := s.slots.Claim(ctx, tx, req)
	if err != nil {
		if errors.Is(err, repository.ErrDatesAlreadyHeld) {
			return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, errors.Join(ErrDatesAlreadyHeld, err))
		}
		return domain.Reservation{}, false, fmt.Errorf("%s:%w", op, err)
	}

	if !existing {
		s.notifyAfter(after, res.Zone, res.Dates)
	}

	return res, existing, nil
}

func (s *Service) ActivateIn(ctx context.Context, tx postgres.DB, id uuid.UUID) error {
	const op = "service.reservation.ActivateIn"

	if err := s.slots.SetStatus(ctx, tx, id, domain.ReservationActive); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ReservationNotFoundError{ReservationID: id})
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// ReleaseIn gives back dates of a reservation inside the caller's transaction. Empty dates releases all.
func (s *Service) ReleaseIn(
	ctx context.Context,
	tx postgres.DB,
	after func(uow.AfterCommit),
	id uuid.UUID,
	dates []time.Time,
) (domain.Reservation, []time.Time, error) {
	const op = "service.reservation.ReleaseIn"

	norm := make([]time.Time, len(dates))
	for i, d := range dates {
		norm[i] = domain.DateOf(d, nil)
	}

	res, released, err := s.slots.Release(ctx, tx, id, norm)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, ReservationNotFoundError{ReservationID: id})
		case errors.Is(err, repository.ErrReservationReleased):
			return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, ErrAlreadyReleased)
		}
		return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, err)
	}

	if len(released) > 0 {
		s.notifyAfter(after, res.Zone, released)
	}

	return res, released, nil
}

// Release gives back dates of a reservation in a transaction of its own.
//
// Returns:
//   - domain.Reservation: the reservation after the release, status released once no date is left.
//   - []time.Time: the dates actually released.
//   - error: reservation.ErrReservationNotFound or reservation.ErrAlreadyReleased.
func (s *Service) Release(ctx context.Context, id uuid.UUID, dates []time.Time) (domain.Reservation, []time.Time, error) {
	const op = "service.reservation.Release"

	var (
		res      domain.Reservation
		released []time.Time
	)

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		var err error
		res, released, err = s.ReleaseIn(ctx, tx, after, id, dates)
		return err
	})
	if err != nil {
		return domain.Reservation{}, nil, fmt.Errorf("%s:%w", op, err)
	}

	return res, released, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	const op = "service.reservation.Get"

	res, err := s.slots.Get(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Reservation{}, fmt.Errorf("%s:%w", op, ReservationNotFoundError{ReservationID: id})
		}
		return domain.Reservation{}, fmt.Errorf("%s:%w", op, err)
	}

	return res, nil
}

// ReservedDates lists the dates held by live reservations, for one ad when adID is set.
// Zero bounds leave the range open on that side.
func (s *Service) ReservedDates(ctx context.Context, adID string, from, to time.Time) ([]time.Time, error) {
	const op = "service.reservation.ReservedDates"

	dates, err := s.slots.ReservedDates(ctx, nil, adID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if dates == nil {
		dates = []time.Time{}
	}

	return dates, nil
}

func (s *Service) notifyAfter(after func(uow.AfterCommit), zone domain.Zone, dates []time.Time) {
	if after == nil {
		return
	}

	change := domain.ZoneChange{Zone: zone, Dates: dates}

	after(func(ctx context.Context) {
		if s.cache != nil {
			if err := s.cache.InvalidateZone(ctx, zone); err != nil {
				s.logger.Warn("invalidate zone cache", slog.String("zone", string(zone)), slog.Any("error", err))
			}
		}

		if s.pubsub != nil {
			if err := s.pubsub.PublishZoneChanged(ctx, change); err != nil {
				s.logger.Warn("publish zone change", slog.String("zone", string(zone)), slog.Any("error", err))
			}
		}
	})
}
