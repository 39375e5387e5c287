package httpgin

import (
	"strings"
	"time"

	"github.com/kirinyoku/adslot-go/internal/domain"
)

type PromoPreviewRequest struct {
	Code          string `json:"code" binding:"required"`
	SubtotalCents int64  `json:"subtotal_cents" binding:"gte=0"`
	Service       string `json:"service"`
}

type PromoPreviewResponse struct {
	Valid         bool   `json:"valid"`
	Code          string `json:"code,omitempty"`
	DiscountCents *int64 `json:"discount_cents,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type CheckoutRequest struct {
	AdID      string   `json:"adId" binding:"required"`
	Dates     []string `json:"dates" binding:"required,min=1"`
	PromoCode string   `json:"promo_code"`
}

type ReleaseRequest struct {
	Dates []string `json:"dates"`
}

type DayAvailabilityDTO struct {
	SlotsUsed      int  `json:"slotsUsed"`
	SlotsRemaining int  `json:"slotsRemaining"`
	Available      bool `json:"available"`
}

type AvailabilityResponse struct {
	Zone            string                        `json:"zone"`
	From            string                        `json:"from"`
	To              string                        `json:"to"`
	MaxSlotsPerDate int                           `json:"maxSlotsPerDate"`
	Availability    map[string]DayAvailabilityDTO `json:"availability"`
}

type AlternativeDTO struct {
	Zone          string  `json:"zone"`
	DistanceMiles float64 `json:"distanceMiles"`
}

type AlternativesResponse struct {
	Alternatives []AlternativeDTO `json:"alternatives"`
}

type PriceLineDTO struct {
	Date  string `json:"date"`
	Kind  string `json:"kind"`
	Cents int64  `json:"cents"`
}

type QuoteDTO struct {
	Lines         []PriceLineDTO `json:"lines"`
	SubtotalCents int64          `json:"subtotal_cents"`
	DiscountCents int64          `json:"discount_cents"`
	TaxCents      int64          `json:"tax_cents"`
	TotalCents    int64          `json:"total_cents"`
	PromoCode     string         `json:"promo_code,omitempty"`
}

type CheckoutResponse struct {
	Free           bool     `json:"free"`
	CheckoutID     string   `json:"checkoutId"`
	ReservationID  string   `json:"reservationId"`
	URL            string   `json:"url,omitempty"`
	PaymentHandle  string   `json:"paymentHandle,omitempty"`
	AmountDueCents int64    `json:"amountDueCents"`
	Quote          QuoteDTO `json:"quote"`
}

type CheckoutDTO struct {
	ID            string     `json:"id"`
	AdID          string     `json:"adId"`
	Zone          string     `json:"zone"`
	Dates         []string   `json:"dates"`
	ReservationID string     `json:"reservationId"`
	Status        string     `json:"status"`
	Quote         QuoteDTO   `json:"quote"`
	PaymentHandle string     `json:"paymentHandle,omitempty"`
	PaymentURL    string     `json:"paymentUrl,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type ReleaseResponse struct {
	ReservationID string   `json:"reservationId"`
	Status        string   `json:"status"`
	Released      []string `json:"released"`
	Remaining     []string `json:"remaining"`
}

type ReservationDTO struct {
	ID        string    `json:"id"`
	AdID      string    `json:"adId"`
	Zone      string    `json:"zone"`
	Dates     []string  `json:"dates"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservedDatesResponse lists reserved dates, for one ad when AdID is set.
type ReservedDatesResponse struct {
	AdID  string   `json:"adId,omitempty"`
	Dates []string `json:"dates"`
}

type WebhookResponse struct {
	Received   bool   `json:"received"`
	Ignored    bool   `json:"ignored,omitempty"`
	CheckoutID string `json:"checkoutId,omitempty"`
	Status     string `json:"status,omitempty"`
}

type ZoneChangedEvent struct {
	Zone  string   `json:"zone"`
	Dates []string `json:"dates"`
}

type ErrorResponse struct {
	Error  string   `json:"error"`
	Dates  []string `json:"dates,omitempty"`
	Reason string   `json:"reason,omitempty"`
}

// SlotFullResponse always carries alternatives, empty when none were found.
type SlotFullResponse struct {
	Error        string           `json:"error"`
	Dates        []string         `json:"dates"`
	Alternatives []AlternativeDTO `json:"alternatives"`
}

// parseDates accepts YYYY-MM-DD values, each optionally a comma-separated list.
func parseDates(raw []string) ([]time.Time, error) {
	var out []time.Time
	for _, r := range raw {
		for _, s := range strings.Split(r, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			d, err := domain.ParseDate(s)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}
	return out, nil
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = domain.FormatDate(d)
	}
	return out
}

func toReservationDTO(r domain.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:        r.ID.String(),
		AdID:      r.AdID,
		Zone:      string(r.Zone),
		Dates:     formatDates(r.Dates),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func toAvailabilityResponse(r domain.AvailabilityRange) AvailabilityResponse {
	days := make(map[string]DayAvailabilityDTO, len(r.Days))
	for _, d := range r.Days {
		days[domain.FormatDate(d.Date)] = DayAvailabilityDTO{
			SlotsUsed:      d.Used,
			SlotsRemaining: d.Remaining,
			Available:      d.Available(),
		}
	}

	return AvailabilityResponse{
		Zone:            string(r.Zone),
		From:            domain.FormatDate(r.From),
		To:              domain.FormatDate(r.To),
		MaxSlotsPerDate: r.Capacity,
		Availability:    days,
	}
}

func toAlternatives(alts []domain.Alternative) []AlternativeDTO {
	out := make([]AlternativeDTO, len(alts))
	for i, a := range alts {
		out[i] = AlternativeDTO{Zone: string(a.Zone), DistanceMiles: a.DistanceMiles}
	}
	return out
}

func toQuote(q domain.PriceQuote) QuoteDTO {
	lines := make([]PriceLineDTO, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = PriceLineDTO{Date: domain.FormatDate(l.Date), Kind: string(l.Kind), Cents: l.Cents}
	}

	return QuoteDTO{
		Lines:         lines,
		SubtotalCents: q.SubtotalCents,
		DiscountCents: q.DiscountCents,
		TaxCents:      q.TaxCents,
		TotalCents:    q.TotalCents,
		PromoCode:     q.PromoCode,
	}
}

func toCheckoutResponse(r domain.CheckoutResult) CheckoutResponse {
	resp := CheckoutResponse{
		Free:           r.Free,
		CheckoutID:     r.CheckoutID.String(),
		ReservationID:  r.ReservationID.String(),
		AmountDueCents: r.AmountDueCents,
		Quote:          toQuote(r.Quote),
	}
	if !r.Free {
		resp.URL = r.PaymentURL
		resp.PaymentHandle = r.PaymentHandle
	}
	return resp
}

func toCheckoutDTO(c domain.Checkout) CheckoutDTO {
	return CheckoutDTO{
		ID:            c.ID.String(),
		AdID:          c.AdID,
		Zone:          string(c.Zone),
		Dates:         formatDates(c.Dates),
		ReservationID: c.ReservationID.String(),
		Status:        string(c.Status),
		Quote:         toQuote(c.Quote),
		PaymentHandle: c.PaymentHandle,
		PaymentURL:    c.PaymentURL,
		ExpiresAt:     c.ExpiresAt,
		CreatedAt:     c.CreatedAt,
	}
}
