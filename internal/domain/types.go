package domain

import (
	"time"

	"github.com/google/uuid"
)

// Zone is a zip code. Coordinates are owned by the geo collaborator.
type Zone string

type RateKind string

const (
	RateWeekday RateKind = "weekday"
	RateWeekend RateKind = "weekend"
)

type ReservationStatus string

const (
	ReservationHeld     ReservationStatus = "held"
	ReservationActive   ReservationStatus = "active"
	ReservationReleased ReservationStatus = "released"
)

type CheckoutStatus string

const (
	CheckoutQuoting         CheckoutStatus = "quoting"
	CheckoutReserving       CheckoutStatus = "reserving"
	CheckoutFreeComplete    CheckoutStatus = "free_complete"
	CheckoutAwaitingPayment CheckoutStatus = "awaiting_payment"
	CheckoutPaid            CheckoutStatus = "paid"
	CheckoutExpired         CheckoutStatus = "expired"
	CheckoutCancelled       CheckoutStatus = "cancelled"
)

// Final reports whether no further transition is possible.
func (s CheckoutStatus) Final() bool {
	switch s {
	case CheckoutFreeComplete, CheckoutPaid, CheckoutExpired, CheckoutCancelled:
		return true
	}
	return false
}

type PromoKind string

const (
	PromoFixed         PromoKind = "fixed"
	PromoPercent       PromoKind = "percent"
	PromoComplimentary PromoKind = "complimentary"
)

type PromoReason string

const (
	PromoNotFound     PromoReason = "not_found"
	PromoWrongService PromoReason = "wrong_service"
	PromoLimitReached PromoReason = "limit_reached"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// DayAvailability is the occupancy of one (zone, date) slot.
type DayAvailability struct {
	Date      time.Time
	Used      int
	Remaining int
}

func (d DayAvailability) Available() bool {
	return d.Remaining > 0
}

type AvailabilityRange struct {
	Zone     Zone
	From     time.Time
	To       time.Time
	Capacity int
	Days     []DayAvailability
}

type Reservation struct {
	ID        uuid.UUID
	AdID      string
	Zone      Zone
	Dates     []time.Time
	Status    ReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClaimRequest is a validated reservation request: dates are distinct, sorted and inside the booking window.
type ClaimRequest struct {
	AdID     string
	Zone     Zone
	Dates    []time.Time
	Capacity int
	Status   ReservationStatus
}

type PromoCode struct {
	Code           string
	Kind           PromoKind
	AmountCents    int64
	PercentOff     int
	Service        string
	MaxRedemptions *int
	Uses           int
	Enabled        bool
	StartsAt       *time.Time
	ExpiresAt      *time.Time
}

// PromoResult is the outcome of validating a code. Reason is set only when Valid is false.
type PromoResult struct {
	Valid         bool
	Code          string
	Kind          PromoKind
	DiscountCents int64
	Reason        PromoReason
}

type PriceLine struct {
	Date  time.Time
	Kind  RateKind
	Cents int64
}

// PriceQuote is computed, never persisted as a source of truth.
type PriceQuote struct {
	Lines         []PriceLine
	SubtotalCents int64
	DiscountCents int64
	TaxCents      int64
	TotalCents    int64
	PromoCode     string
}

type Checkout struct {
	ID            uuid.UUID
	AdID          string
	Zone          Zone
	Dates         []time.Time
	ReservationID uuid.UUID
	Status        CheckoutStatus
	Quote         PriceQuote
	PaymentHandle string
	PaymentURL    string
	ExpiresAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overdue reports whether an unpaid checkout passed its payment deadline.
func (c Checkout) Overdue(now time.Time) bool {
	return c.Status == CheckoutAwaitingPayment && c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// CheckoutResult is either a free completion or a pending payment.
type CheckoutResult struct {
	Free           bool
	CheckoutID     uuid.UUID
	ReservationID  uuid.UUID
	PaymentHandle  string
	PaymentURL     string
	AmountDueCents int64
	Quote          PriceQuote
}

type NearbyZone struct {
	Zone          Zone
	DistanceMiles float64
}

type Alternative = NearbyZone

type PaymentIntent struct {
	Handle string
	URL    string
}

type ZoneChange struct {
	Zone  Zone
	Dates []time.Time
}
