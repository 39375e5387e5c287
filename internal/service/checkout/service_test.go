//go:build unit

package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/pkg/clock"
	"github.com/kirinyoku/adslot-go/internal/repository"
	"github.com/kirinyoku/adslot-go/internal/service/checkout"
	"github.com/kirinyoku/adslot-go/internal/service/checkout/mocks"
	"github.com/kirinyoku/adslot-go/internal/service/pricing"
	"github.com/kirinyoku/adslot-go/internal/service/promo"
	promomocks "github.com/kirinyoku/adslot-go/internal/service/promo/mocks"
	"github.com/kirinyoku/adslot-go/internal/service/reservation"
	"github.com/kirinyoku/adslot-go/internal/uow/uowtest"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	today  = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	monday = today.AddDate(0, 0, 7)
	friday = today.AddDate(0, 0, 11)
)

const (
	adID = "ad-1"
	zone = domain.Zone("10001")
)

type CheckoutServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	clock      *clock.MockClock
	runner     *uowtest.Runner
	ads        *mocks.MockAdDirectory
	promos     *mocks.MockPromos
	res        *mocks.MockReservations
	alternates *mocks.MockAlternates
	checkouts  *mocks.MockStore
	payments   *mocks.MockPayments
	svc        *checkout.Service
}

func (s *CheckoutServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(today.Add(10 * time.Hour))
	s.runner = &uowtest.Runner{}
	s.ads = mocks.NewMockAdDirectory(s.ctrl)
	s.promos = mocks.NewMockPromos(s.ctrl)
	s.res = mocks.NewMockReservations(s.ctrl)
	s.alternates = mocks.NewMockAlternates(s.ctrl)
	s.checkouts = mocks.NewMockStore(s.ctrl)
	s.payments = mocks.NewMockPayments(s.ctrl)

	s.svc = checkout.New(checkout.Deps{
		UoW:          s.runner,
		Ads:          s.ads,
		Pricer:       pricing.New(nil, pricing.Config{}, nil),
		Promos:       s.promos,
		Reservations: s.res,
		Alternates:   s.alternates,
		Checkouts:    s.checkouts,
		Payments:     s.payments,
		Clock:        s.clock,
	}, checkout.Config{Service: "booking", PaymentWindow: 30 * time.Minute})
}

func TestCheckoutServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}

func (s *CheckoutServiceTestSuite) expectPrepared(dates ...time.Time) domain.ClaimRequest {
	claim := domain.ClaimRequest{AdID: adID, Zone: zone, Dates: dates, Capacity: 3, Status: domain.ReservationHeld}

	s.ads.EXPECT().TargetZone(gomock.Any(), nil, adID).Return(zone, nil)
	s.res.EXPECT().Prepare(adID, zone, dates).Return(claim, nil)

	return claim
}

func (s *CheckoutServiceTestSuite) heldReservation(dates ...time.Time) domain.Reservation {
	return domain.Reservation{ID: uuid.New(), AdID: adID, Zone: zone, Dates: dates, Status: domain.ReservationHeld}
}

func (s *CheckoutServiceTestSuite) awaiting(expiresIn time.Duration) domain.Checkout {
	exp := s.clock.Now().Add(expiresIn)
	return domain.Checkout{
		ID:            uuid.New(),
		AdID:          adID,
		Zone:          zone,
		Dates:         []time.Time{monday},
		ReservationID: uuid.New(),
		Status:        domain.CheckoutAwaitingPayment,
		Quote:         domain.PriceQuote{SubtotalCents: 800, TaxCents: 52, TotalCents: 852},
		PaymentHandle: "pi_1",
		ExpiresAt:     &exp,
	}
}

func (s *CheckoutServiceTestSuite) expectClosed(c domain.Checkout, to domain.CheckoutStatus) {
	gomock.InOrder(
		s.checkouts.EXPECT().UpdateStatus(gomock.Any(), nil, c.ID, domain.CheckoutAwaitingPayment, to).Return(nil),
		s.res.EXPECT().ReleaseIn(gomock.Any(), nil, gomock.Any(), c.ReservationID, nil).
			Return(domain.Reservation{ID: c.ReservationID, Status: domain.ReservationReleased}, c.Dates, nil),
		s.ads.EXPECT().ClearPending(gomock.Any(), nil, c.AdID).Return(nil),
	)
}

func (s *CheckoutServiceTestSuite) TestCheckout_FreeSkipsPayment() {
	ctx := context.Background()
	claim := s.expectPrepared(monday)
	held := s.heldReservation(monday)

	s.promos.EXPECT().ClaimIn(gomock.Any(), nil, "free800", int64(800), "booking").
		Return(domain.PromoResult{Valid: true, Code: "FREE800", Kind: domain.PromoFixed, DiscountCents: 800}, nil)
	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(held, false, nil)
	s.res.EXPECT().ActivateIn(gomock.Any(), nil, held.ID).Return(nil)
	s.checkouts.EXPECT().Insert(gomock.Any(), nil, gomock.Any()).DoAndReturn(func(_ context.Context, _ any, c *domain.Checkout) error {
		s.Equal(domain.CheckoutFreeComplete, c.Status)
		s.Nil(c.ExpiresAt)
		s.Equal(held.ID, c.ReservationID)
		return nil
	})
	s.promos.EXPECT().RedeemIn(gomock.Any(), nil, "FREE800", gomock.Any(), adID, int64(800)).Return(nil)
	s.ads.EXPECT().SetPaymentStatus(gomock.Any(), nil, adID, domain.PaymentPaid).Return(nil)

	got, err := s.svc.Checkout(ctx, checkout.Request{AdID: adID, Dates: []time.Time{monday}, PromoCode: "free800"})
	s.Require().NoError(err)

	s.True(got.Free)
	s.Equal(held.ID, got.ReservationID)
	s.Zero(got.AmountDueCents)
	s.Zero(got.Quote.TotalCents)
	s.Zero(got.Quote.TaxCents)
	s.Empty(got.PaymentHandle)
}

func (s *CheckoutServiceTestSuite) TestCheckout_PaidOpensPayment() {
	ctx := context.Background()
	claim := s.expectPrepared(monday, friday)
	held := s.heldReservation(monday, friday)
	intent := domain.PaymentIntent{Handle: "pi_abc", URL: "http://pay/pi_abc"}

	var inserted domain.Checkout

	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(held, false, nil)
	s.checkouts.EXPECT().Insert(gomock.Any(), nil, gomock.Any()).DoAndReturn(func(_ context.Context, _ any, c *domain.Checkout) error {
		inserted = *c
		return nil
	})
	s.ads.EXPECT().SetPaymentStatus(gomock.Any(), nil, adID, domain.PaymentPending).Return(nil)
	s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), int64(1917), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, meta map[string]string) (domain.PaymentIntent, error) {
			s.Equal(adID, meta["ad_id"])
			s.Equal(held.ID.String(), meta["reservation_id"])
			return intent, nil
		})
	s.checkouts.EXPECT().SetPayment(gomock.Any(), nil, gomock.Any(), intent).Return(nil)

	got, err := s.svc.Checkout(ctx, checkout.Request{AdID: adID, Dates: []time.Time{monday, friday}})
	s.Require().NoError(err)

	s.False(got.Free)
	s.Equal(int64(1917), got.AmountDueCents)
	s.Equal(int64(1800), got.Quote.SubtotalCents)
	s.Equal("pi_abc", got.PaymentHandle)
	s.Equal(intent.URL, got.PaymentURL)
	s.Equal(inserted.ID, got.CheckoutID)

	s.Equal(domain.CheckoutAwaitingPayment, inserted.Status)
	s.Require().NotNil(inserted.ExpiresAt)
	s.Equal(s.clock.Now().Add(30*time.Minute), *inserted.ExpiresAt)
	s.Equal(2, s.runner.Calls)
}

func (s *CheckoutServiceTestSuite) TestCheckout_SlotFullOffersAlternatives() {
	ctx := context.Background()
	claim := s.expectPrepared(monday, friday)
	full := domain.SlotFullError{Dates: []time.Time{monday, friday}}
	alts := []domain.Alternative{{Zone: "07030", DistanceMiles: 1.9}}

	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(domain.Reservation{}, false, full)
	s.alternates.EXPECT().Find(gomock.Any(), zone, full.Dates).Return(alts, nil)

	_, err := s.svc.Checkout(ctx, checkout.Request{AdID: adID, Dates: []time.Time{monday, friday}})
	s.Require().ErrorIs(err, domain.ErrSlotFull)

	var got domain.SlotFullError
	s.Require().ErrorAs(err, &got)
	s.Equal(full.Dates, got.Dates)
	s.Equal(alts, got.Alternatives)
}

func (s *CheckoutServiceTestSuite) TestCheckout_SlotFullWhenAlternatesFail() {
	claim := s.expectPrepared(monday)

	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).
		Return(domain.Reservation{}, false, domain.SlotFullError{Dates: []time.Time{monday}})
	s.alternates.EXPECT().Find(gomock.Any(), zone, gomock.Any()).Return(nil, errors.New("geo down"))

	_, err := s.svc.Checkout(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday}})

	var got domain.SlotFullError
	s.Require().ErrorAs(err, &got)
	s.NotNil(got.Alternatives)
	s.Empty(got.Alternatives)
}

func (s *CheckoutServiceTestSuite) TestCheckout_PromoRejectedAfterClaim() {
	claim := s.expectPrepared(monday)
	held := s.heldReservation(monday)

	gomock.InOrder(
		s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(held, false, nil),
		s.promos.EXPECT().ClaimIn(gomock.Any(), nil, "FIRST2", int64(800), "booking").
			Return(domain.PromoResult{Reason: domain.PromoLimitReached}, nil),
	)

	_, err := s.svc.Checkout(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday}, PromoCode: "FIRST2"})
	s.Require().ErrorIs(err, domain.ErrPromoInvalid)

	var pe domain.PromoInvalidError
	s.Require().ErrorAs(err, &pe)
	s.Equal(domain.PromoLimitReached, pe.Reason)
}

func (s *CheckoutServiceTestSuite) TestCheckout_ReplayReturnsExistingCheckout() {
	claim := s.expectPrepared(monday)
	held := s.heldReservation(monday)
	prev := s.awaiting(20 * time.Minute)
	prev.ReservationID = held.ID

	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(held, true, nil)
	s.checkouts.EXPECT().GetByReservation(gomock.Any(), nil, held.ID).Return(prev, nil)

	got, err := s.svc.Checkout(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday}})
	s.Require().NoError(err)

	s.Equal(prev.ID, got.CheckoutID)
	s.Equal("pi_1", got.PaymentHandle)
	s.Equal(int64(852), got.AmountDueCents)
	s.Len(got.Quote.Lines, 1)
}

func (s *CheckoutServiceTestSuite) TestCheckout_ReplayWithExhaustedPromo() {
	one := 1
	store := promomocks.NewMockStore(s.ctrl)
	store.EXPECT().Get(gomock.Any(), nil, "ONCE", true).AnyTimes().
		Return(domain.PromoCode{Code: "ONCE", Kind: domain.PromoComplimentary, MaxRedemptions: &one, Uses: 1, Enabled: true}, nil)
	store.EXPECT().PendingCount(gomock.Any(), nil, "ONCE", gomock.Any()).AnyTimes().Return(0, nil)

	svc := checkout.New(checkout.Deps{
		UoW:          s.runner,
		Ads:          s.ads,
		Pricer:       pricing.New(nil, pricing.Config{}, nil),
		Promos:       promo.New(store, s.clock),
		Reservations: s.res,
		Alternates:   s.alternates,
		Checkouts:    s.checkouts,
		Payments:     s.payments,
		Clock:        s.clock,
	}, checkout.Config{Service: "booking", PaymentWindow: 30 * time.Minute})

	claim := s.expectPrepared(monday)
	active := s.heldReservation(monday)
	active.Status = domain.ReservationActive
	prev := domain.Checkout{
		ID:            uuid.New(),
		AdID:          adID,
		Zone:          zone,
		Dates:         []time.Time{monday},
		ReservationID: active.ID,
		Status:        domain.CheckoutFreeComplete,
		Quote:         domain.PriceQuote{SubtotalCents: 800, DiscountCents: 800, PromoCode: "ONCE"},
	}

	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(active, true, nil)
	s.checkouts.EXPECT().GetByReservation(gomock.Any(), nil, active.ID).Return(prev, nil)

	got, err := svc.Checkout(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday}, PromoCode: "once"})
	s.Require().NoError(err)

	s.True(got.Free)
	s.Equal(prev.ID, got.CheckoutID)
	s.Equal(active.ID, got.ReservationID)
	s.Zero(got.AmountDueCents)
}

func (s *CheckoutServiceTestSuite) TestCheckout_ReservationWithoutCheckout() {
	claim := s.expectPrepared(monday)
	held := s.heldReservation(monday)

	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(held, true, nil)
	s.checkouts.EXPECT().GetByReservation(gomock.Any(), nil, held.ID).Return(domain.Checkout{}, repository.ErrNotFound)

	_, err := s.svc.Checkout(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday}})
	s.Require().ErrorIs(err, reservation.ErrDatesAlreadyHeld)
}

func (s *CheckoutServiceTestSuite) TestCheckout_PaymentFailureReleasesSlots() {
	claim := s.expectPrepared(monday)
	held := s.heldReservation(monday)

	var inserted domain.Checkout

	s.res.EXPECT().ClaimIn(gomock.Any(), nil, gomock.Any(), claim).Return(held, false, nil)
	s.checkouts.EXPECT().Insert(gomock.Any(), nil, gomock.Any()).DoAndReturn(func(_ context.Context, _ any, c *domain.Checkout) error {
		inserted = *c
		return nil
	})
	s.ads.EXPECT().SetPaymentStatus(gomock.Any(), nil, adID, domain.PaymentPending).Return(nil)
	s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), int64(852), gomock.Any()).
		Return(domain.PaymentIntent{}, errors.New("provider down"))

	s.checkouts.EXPECT().UpdateStatus(gomock.Any(), nil, gomock.Any(), domain.CheckoutAwaitingPayment, domain.CheckoutCancelled).
		DoAndReturn(func(_ context.Context, _ any, id uuid.UUID, _, _ domain.CheckoutStatus) error {
			s.Equal(inserted.ID, id)
			return nil
		})
	s.res.EXPECT().ReleaseIn(gomock.Any(), nil, gomock.Any(), held.ID, nil).Return(domain.Reservation{}, []time.Time{monday}, nil)
	s.ads.EXPECT().ClearPending(gomock.Any(), nil, adID).Return(nil)

	_, err := s.svc.Checkout(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday}})
	s.Require().ErrorIs(err, checkout.ErrPaymentUnavailable)
}

func (s *CheckoutServiceTestSuite) TestCheckout_UnknownAd() {
	s.ads.EXPECT().TargetZone(gomock.Any(), nil, "nope").Return(domain.Zone(""), repository.ErrNotFound)

	_, err := s.svc.Checkout(context.Background(), checkout.Request{AdID: "nope", Dates: []time.Time{monday}})
	s.Require().ErrorIs(err, checkout.ErrAdNotFound)
	s.Zero(s.runner.Calls)
}

func (s *CheckoutServiceTestSuite) TestCheckout_WindowExceededBeforeTransaction() {
	far := today.AddDate(0, 0, 57)

	s.ads.EXPECT().TargetZone(gomock.Any(), nil, adID).Return(zone, nil)
	s.res.EXPECT().Prepare(adID, zone, []time.Time{far}).
		Return(domain.ClaimRequest{}, domain.WindowExceededError{Dates: []time.Time{far}})

	_, err := s.svc.Checkout(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{far}})
	s.Require().ErrorIs(err, domain.ErrWindowExceeded)
	s.Zero(s.runner.Calls)
}

func (s *CheckoutServiceTestSuite) TestQuote_UsesPreviewValidation() {
	s.expectPrepared(monday, friday)
	s.promos.EXPECT().Evaluate(gomock.Any(), "half", int64(1800), "booking").
		Return(domain.PromoResult{Valid: true, Code: "HALF", Kind: domain.PromoFixed, DiscountCents: 1000}, nil)

	q, err := s.svc.Quote(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday, friday}, PromoCode: "half"})
	s.Require().NoError(err)

	s.Equal(int64(1800), q.SubtotalCents)
	s.Equal(int64(1000), q.DiscountCents)
	s.Equal(int64(52), q.TaxCents)
	s.Equal(int64(852), q.TotalCents)
	s.Equal("HALF", q.PromoCode)
	s.Zero(s.runner.Calls)
}

func (s *CheckoutServiceTestSuite) TestQuote_InvalidPromo() {
	s.expectPrepared(monday)
	s.promos.EXPECT().Evaluate(gomock.Any(), "X", int64(800), "booking").
		Return(domain.PromoResult{Reason: domain.PromoNotFound}, nil)

	_, err := s.svc.Quote(context.Background(), checkout.Request{AdID: adID, Dates: []time.Time{monday}, PromoCode: "X"})

	var pe domain.PromoInvalidError
	s.Require().ErrorAs(err, &pe)
	s.Equal(domain.PromoNotFound, pe.Reason)
}

func (s *CheckoutServiceTestSuite) TestConfirmPayment_MarksPaid() {
	c := s.awaiting(10 * time.Minute)
	c.Quote.PromoCode = "TENOFF"
	c.Quote.DiscountCents = 10

	gomock.InOrder(
		s.checkouts.EXPECT().GetByPaymentHandle(gomock.Any(), nil, "pi_1", true).Return(c, nil),
		s.payments.EXPECT().MarkSucceeded(gomock.Any(), nil, "pi_1").Return(nil),
		s.checkouts.EXPECT().UpdateStatus(gomock.Any(), nil, c.ID, domain.CheckoutAwaitingPayment, domain.CheckoutPaid).Return(nil),
		s.res.EXPECT().ActivateIn(gomock.Any(), nil, c.ReservationID).Return(nil),
		s.ads.EXPECT().SetPaymentStatus(gomock.Any(), nil, adID, domain.PaymentPaid).Return(nil),
		s.promos.EXPECT().RedeemIn(gomock.Any(), nil, "TENOFF", c.ID, adID, int64(10)).Return(nil),
	)

	got, err := s.svc.ConfirmPayment(context.Background(), "pi_1")
	s.Require().NoError(err)
	s.Equal(domain.CheckoutPaid, got.Status)
}

func (s *CheckoutServiceTestSuite) TestConfirmPayment_PromoCeilingDoesNotFailPayment() {
	c := s.awaiting(10 * time.Minute)
	c.Quote.PromoCode = "FIRST2"

	s.checkouts.EXPECT().GetByPaymentHandle(gomock.Any(), nil, "pi_1", true).Return(c, nil)
	s.payments.EXPECT().MarkSucceeded(gomock.Any(), nil, "pi_1").Return(nil)
	s.checkouts.EXPECT().UpdateStatus(gomock.Any(), nil, c.ID, gomock.Any(), domain.CheckoutPaid).Return(nil)
	s.res.EXPECT().ActivateIn(gomock.Any(), nil, c.ReservationID).Return(nil)
	s.ads.EXPECT().SetPaymentStatus(gomock.Any(), nil, adID, domain.PaymentPaid).Return(nil)
	s.promos.EXPECT().RedeemIn(gomock.Any(), nil, "FIRST2", c.ID, adID, gomock.Any()).
		Return(domain.PromoInvalidError{Reason: domain.PromoLimitReached})

	got, err := s.svc.ConfirmPayment(context.Background(), "pi_1")
	s.Require().NoError(err)
	s.Equal(domain.CheckoutPaid, got.Status)
}

func (s *CheckoutServiceTestSuite) TestConfirmPayment_AlreadyPaid() {
	c := s.awaiting(10 * time.Minute)
	c.Status = domain.CheckoutPaid

	s.checkouts.EXPECT().GetByPaymentHandle(gomock.Any(), nil, "pi_1", true).Return(c, nil)

	got, err := s.svc.ConfirmPayment(context.Background(), "pi_1")
	s.Require().NoError(err)
	s.Equal(c, got)
}

func (s *CheckoutServiceTestSuite) TestConfirmPayment_OverdueExpires() {
	c := s.awaiting(-time.Minute)

	s.checkouts.EXPECT().GetByPaymentHandle(gomock.Any(), nil, "pi_1", true).Return(c, nil)
	s.expectClosed(c, domain.CheckoutExpired)

	got, err := s.svc.ConfirmPayment(context.Background(), "pi_1")
	s.Require().ErrorIs(err, domain.ErrPaymentExpired)
	s.Equal(domain.CheckoutExpired, got.Status)
}

func (s *CheckoutServiceTestSuite) TestConfirmPayment_Closed() {
	expired := s.awaiting(-time.Hour)
	expired.Status = domain.CheckoutExpired
	s.checkouts.EXPECT().GetByPaymentHandle(gomock.Any(), nil, "pi_1", true).Return(expired, nil)

	_, err := s.svc.ConfirmPayment(context.Background(), "pi_1")
	s.Require().ErrorIs(err, domain.ErrPaymentExpired)

	cancelled := s.awaiting(time.Hour)
	cancelled.Status = domain.CheckoutCancelled
	s.checkouts.EXPECT().GetByPaymentHandle(gomock.Any(), nil, "pi_2", true).Return(cancelled, nil)

	_, err = s.svc.ConfirmPayment(context.Background(), "pi_2")
	s.Require().ErrorIs(err, checkout.ErrCheckoutClosed)

	s.checkouts.EXPECT().GetByPaymentHandle(gomock.Any(), nil, "pi_3", true).Return(domain.Checkout{}, repository.ErrNotFound)

	_, err = s.svc.ConfirmPayment(context.Background(), "pi_3")
	s.Require().ErrorIs(err, checkout.ErrCheckoutNotFound)
}

func (s *CheckoutServiceTestSuite) TestCancel() {
	c := s.awaiting(10 * time.Minute)

	s.checkouts.EXPECT().Get(gomock.Any(), nil, c.ID, true).Return(c, nil)
	s.expectClosed(c, domain.CheckoutCancelled)

	got, err := s.svc.Cancel(context.Background(), c.ID)
	s.Require().NoError(err)
	s.Equal(domain.CheckoutCancelled, got.Status)

	s.checkouts.EXPECT().Get(gomock.Any(), nil, c.ID, true).Return(got, nil)

	again, err := s.svc.Cancel(context.Background(), c.ID)
	s.Require().NoError(err)
	s.Equal(got, again)
}

func (s *CheckoutServiceTestSuite) TestCancel_PaidIsClosed() {
	c := s.awaiting(10 * time.Minute)
	c.Status = domain.CheckoutPaid

	s.checkouts.EXPECT().Get(gomock.Any(), nil, c.ID, true).Return(c, nil)

	_, err := s.svc.Cancel(context.Background(), c.ID)
	s.Require().ErrorIs(err, checkout.ErrCheckoutClosed)
}

func (s *CheckoutServiceTestSuite) TestGet_ExpiresLazily() {
	c := s.awaiting(-time.Second)

	s.checkouts.EXPECT().Get(gomock.Any(), nil, c.ID, false).Return(c, nil)
	s.checkouts.EXPECT().Get(gomock.Any(), nil, c.ID, true).Return(c, nil)
	s.expectClosed(c, domain.CheckoutExpired)

	got, err := s.svc.Get(context.Background(), c.ID)
	s.Require().NoError(err)
	s.Equal(domain.CheckoutExpired, got.Status)
	s.Len(got.Quote.Lines, 1)
}

func (s *CheckoutServiceTestSuite) TestGet_NotFound() {
	id := uuid.New()
	s.checkouts.EXPECT().Get(gomock.Any(), nil, id, false).Return(domain.Checkout{}, repository.ErrNotFound)

	_, err := s.svc.Get(context.Background(), id)
	s.Require().ErrorIs(err, checkout.ErrCheckoutNotFound)
}

func (s *CheckoutServiceTestSuite) TestExpireStale() {
	overdue := s.awaiting(-time.Minute)
	paidMeanwhile := s.awaiting(-time.Minute)
	paidMeanwhile.Status = domain.CheckoutPaid
	broken := uuid.New()

	s.checkouts.EXPECT().ListOverdue(gomock.Any(), nil, s.clock.Now(), 10).
		Return([]uuid.UUID{overdue.ID, paidMeanwhile.ID, broken}, nil)

	s.checkouts.EXPECT().Get(gomock.Any(), nil, overdue.ID, true).Return(overdue, nil)
	s.expectClosed(overdue, domain.CheckoutExpired)

	s.checkouts.EXPECT().Get(gomock.Any(), nil, paidMeanwhile.ID, true).Return(paidMeanwhile, nil)
	s.checkouts.EXPECT().Get(gomock.Any(), nil, broken, true).Return(domain.Checkout{}, errors.New("boom"))

	n, err := s.svc.ExpireStale(context.Background(), 10)
	s.Require().NoError(err)
	s.Equal(1, n)
}
