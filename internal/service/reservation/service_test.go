//go:build unit

package reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/calendar"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	"github.com/kirinyoku/adslot-go/internal/repository"
	"github.com/kirinyoku/adslot-go/internal/service/reservation"
	"github.com/kirinyoku/adslot-go/internal/service/reservation/mocks"
	"github.com/kirinyoku/adslot-go/internal/uow/uowtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

type ReservationServiceTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	slots  *mocks.MockSlotStore
	cache  *mocks.MockInvalidator
	pubsub *mocks.MockPublisher
	runner *uowtest.Runner
	svc    *reservation.Service
}

func (s *ReservationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.slots = mocks.NewMockSlotStore(s.ctrl)
	s.cache = mocks.NewMockInvalidator(s.ctrl)
	s.pubsub = mocks.NewMockPublisher(s.ctrl)
	s.runner = &uowtest.Runner{}

	window := calendar.NewWindow(clock.NewMockClock(today.Add(8*time.Hour)), time.UTC, 56)
	s.svc = reservation.New(s.runner, s.slots, s.cache, s.pubsub, window, reservation.Config{Capacity: 3}, nil)
}

func TestReservationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}

func (s *ReservationServiceTestSuite) TestReserve_Success() {
	ctx := context.Background()
	res := domain.Reservation{
		ID: uuid.New(), AdID: "ad-1", Zone: "10001",
		Dates: []time.Time{day(1), day(3)}, Status: domain.ReservationHeld,
	}

	s.slots.EXPECT().Claim(gomock.Any(), nil, domain.ClaimRequest{
		AdID: "ad-1", Zone: "10001", Dates: []time.Time{day(1), day(3)},
		Capacity: 3, Status: domain.ReservationHeld,
	}).Return(res, false, nil)
	s.cache.EXPECT().InvalidateZone(gomock.Any(), domain.Zone("10001")).Return(nil)
	s.pubsub.EXPECT().PublishZoneChanged(gomock.Any(), domain.ZoneChange{Zone: "10001", Dates: res.Dates}).Return(nil)

	got, err := s.svc.Reserve(ctx, "ad-1", "10001", []time.Time{day(3), day(1)})
	s.Require().NoError(err)
	s.Equal(res, got)
	s.Equal(1, s.runner.Calls)
}

func (s *ReservationServiceTestSuite) TestReserve_IdempotentDoesNotNotify() {
	res := domain.Reservation{ID: uuid.New(), AdID: "ad-1", Zone: "10001", Dates: []time.Time{day(1)}}
	s.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, true, nil)

	got, err := s.svc.Reserve(context.Background(), "ad-1", "10001", []time.Time{day(1)})
	s.Require().NoError(err)
	s.Equal(res.ID, got.ID)
}

func (s *ReservationServiceTestSuite) TestReserve_WindowCheckedBeforeTransaction() {
	_, err := s.svc.Reserve(context.Background(), "ad-1", "10001", []time.Time{day(1), day(57)})

	s.Require().ErrorIs(err, domain.ErrWindowExceeded)
	s.Zero(s.runner.Calls)
}

func (s *ReservationServiceTestSuite) TestReserve_InvalidDates() {
	_, err := s.svc.Reserve(context.Background(), "ad-1", "10001", []time.Time{day(1), day(1)})
	s.Require().ErrorIs(err, domain.ErrInvalidDates)

	_, err = s.svc.Reserve(context.Background(), "ad-1", "10001", nil)
	s.Require().ErrorIs(err, domain.ErrInvalidDates)
	s.Zero(s.runner.Calls)
}

func (s *ReservationServiceTestSuite) TestReserve_SlotFullCarriesEveryDate() {
	full := domain.SlotFullError{Dates: []time.Time{day(1), day(2)}}
	s.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Reservation{}, false, full)

	_, err := s.svc.Reserve(context.Background(), "ad-1", "10001", []time.Time{day(1), day(2), day(3)})

	s.Require().ErrorIs(err, domain.ErrSlotFull)
	var sf domain.SlotFullError
	s.Require().True(errors.As(err, &sf))
	s.Equal(full.Dates, sf.Dates)
}

func (s *ReservationServiceTestSuite) TestReserve_OverlappingReservation() {
	s.slots.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Reservation{}, false, repository.ErrDatesAlreadyHeld)

	_, err := s.svc.Reserve(context.Background(), "ad-1", "10001", []time.Time{day(1)})
	s.Require().ErrorIs(err, reservation.ErrDatesAlreadyHeld)
}

func (s *ReservationServiceTestSuite) TestRelease_Partial() {
	id := uuid.New()
	after := domain.Reservation{ID: id, Zone: "10001", Dates: []time.Time{day(2)}, Status: domain.ReservationHeld}

	s.slots.EXPECT().Release(gomock.Any(), nil, id, []time.Time{day(1)}).Return(after, []time.Time{day(1)}, nil)
	s.cache.EXPECT().InvalidateZone(gomock.Any(), domain.Zone("10001")).Return(nil)
	s.pubsub.EXPECT().PublishZoneChanged(gomock.Any(), domain.ZoneChange{Zone: "10001", Dates: []time.Time{day(1)}}).Return(nil)

	res, released, err := s.svc.Release(context.Background(), id, []time.Time{day(1).Add(5 * time.Hour)})
	s.Require().NoError(err)
	s.Equal([]time.Time{day(1)}, released)
	s.Equal(after, res)
}

func (s *ReservationServiceTestSuite) TestRelease_NotificationFailuresAreSwallowed() {
	id := uuid.New()
	after := domain.Reservation{ID: id, Zone: "10001", Status: domain.ReservationReleased}

	s.slots.EXPECT().Release(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(after, []time.Time{day(1)}, nil)
	s.cache.EXPECT().InvalidateZone(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.pubsub.EXPECT().PublishZoneChanged(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, _, err := s.svc.Release(context.Background(), id, nil)
	s.Require().NoError(err)
}

func (s *ReservationServiceTestSuite) TestRelease_Errors() {
	id := uuid.New()

	s.slots.EXPECT().Release(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(domain.Reservation{}, nil, repository.ErrNotFound)
	_, _, err := s.svc.Release(context.Background(), id, nil)
	s.Require().ErrorIs(err, reservation.ErrReservationNotFound)

	s.slots.EXPECT().Release(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(domain.Reservation{}, nil, repository.ErrReservationReleased)
	_, _, err = s.svc.Release(context.Background(), id, nil)
	s.Require().ErrorIs(err, reservation.ErrAlreadyReleased)
}

func (s *ReservationServiceTestSuite) TestActivateIn() {
	id := uuid.New()

	s.slots.EXPECT().SetStatus(gomock.Any(), nil, id, domain.ReservationActive).Return(nil)
	s.Require().NoError(s.svc.ActivateIn(context.Background(), nil, id))

	s.slots.EXPECT().SetStatus(gomock.Any(), nil, id, domain.ReservationActive).Return(repository.ErrNotFound)
	err := s.svc.ActivateIn(context.Background(), nil, id)
	s.Require().ErrorIs(err, reservation.ErrReservationNotFound)
}

func (s *ReservationServiceTestSuite) TestGet() {
	id := uuid.New()
	res := domain.Reservation{ID: id, AdID: "ad-1", Zone: "10001", Dates: []time.Time{day(2)}, Status: domain.ReservationActive}

	s.slots.EXPECT().Get(gomock.Any(), nil, id).Return(res, nil)
	got, err := s.svc.Get(context.Background(), id)
	s.Require().NoError(err)
	s.Equal(res, got)

	s.slots.EXPECT().Get(gomock.Any(), nil, id).Return(domain.Reservation{}, repository.ErrNotFound)
	_, err = s.svc.Get(context.Background(), id)
	s.Require().ErrorIs(err, reservation.ErrReservationNotFound)
	s.Zero(s.runner.Calls)
}

func (s *ReservationServiceTestSuite) TestReservedDates() {
	s.slots.EXPECT().ReservedDates(gomock.Any(), nil, "ad-1", day(1), day(7)).Return([]time.Time{day(1), day(4)}, nil)
	got, err := s.svc.ReservedDates(context.Background(), "ad-1", day(1), day(7))
	s.Require().NoError(err)
	s.Equal([]time.Time{day(1), day(4)}, got)

	s.slots.EXPECT().ReservedDates(gomock.Any(), nil, "", time.Time{}, time.Time{}).Return(nil, nil)
	got, err = s.svc.ReservedDates(context.Background(), "", time.Time{}, time.Time{})
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)

	boom := errors.New("db down")
	s.slots.EXPECT().ReservedDates(gomock.Any(), nil, "ad-1", gomock.Any(), gomock.Any()).Return(nil, boom)
	_, err = s.svc.ReservedDates(context.Background(), "ad-1", time.Time{}, time.Time{})
	s.Require().ErrorIs(err, boom)
}

func TestPrepare_RequiresAdAndZone(t *testing.T) {
	window := calendar.NewWindow(clock.NewMockClock(today), time.UTC, 56)
	svc := reservation.New(&uowtest.Runner{}, nil, nil, nil, window, reservation.Config{}, nil)

	_, err := svc.Prepare("", "10001", []time.Time{day(1)})
	assert.Error(t, err)

	req, err := svc.Prepare("ad-1", "10001", []time.Time{day(2), day(0)})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(0), day(2)}, req.Dates)
	assert.Equal(t, reservation.DefaultCapacity, req.Capacity)
}
