package httpgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/payment"
	"github.com/kirinyoku/adslot-go/internal/pkg/errs"
	"github.com/kirinyoku/adslot-go/internal/service/checkout"
	"github.com/kirinyoku/adslot-go/internal/service/reservation"
)

type apiError struct {
	status     int
	body       any
	retryAfter string
}

func classify(err error) apiError {
	var (
		windowErr domain.WindowExceededError
		fullErr   domain.SlotFullError
		promoErr  domain.PromoInvalidError
	)

	switch {
	case errors.Is(err, domain.ErrInvalidDates):
		return apiError{status: http.StatusBadRequest, body: ErrorResponse{Error: "invalid_dates"}}
	case errors.As(err, &windowErr):
		return apiError{status: http.StatusUnprocessableEntity, body: ErrorResponse{
			Error: "window_exceeded",
			Dates: formatDates(windowErr.Dates),
		}}
	case errors.As(err, &fullErr):
		return apiError{status: http.StatusConflict, body: SlotFullResponse{
			Error:        "slot_full",
			Dates:        formatDates(fullErr.Dates),
			Alternatives: toAlternatives(fullErr.Alternatives),
		}}
	case errors.As(err, &promoErr):
		return apiError{status: http.StatusUnprocessableEntity, body: ErrorResponse{
			Error:  "promo_invalid",
			Reason: string(promoErr.Reason),
		}}
	case errors.Is(err, reservation.ErrDatesAlreadyHeld):
		return apiError{status: http.StatusConflict, body: ErrorResponse{Error: "dates_already_held"}}
	case errors.Is(err, reservation.ErrAlreadyReleased):
		return apiError{status: http.StatusConflict, body: ErrorResponse{Error: "reservation_released"}}
	case errors.Is(err, checkout.ErrCheckoutClosed):
		return apiError{status: http.StatusConflict, body: ErrorResponse{Error: "checkout_closed"}}
	case errors.Is(err, checkout.ErrAdNotFound):
		return apiError{status: http.StatusNotFound, body: ErrorResponse{Error: "ad_not_found"}}
	case errors.Is(err, checkout.ErrCheckoutNotFound):
		return apiError{status: http.StatusNotFound, body: ErrorResponse{Error: "checkout_not_found"}}
	case errors.Is(err, reservation.ErrReservationNotFound):
		return apiError{status: http.StatusNotFound, body: ErrorResponse{Error: "reservation_not_found"}}
	case errors.Is(err, domain.ErrPaymentExpired):
		return apiError{status: http.StatusGone, body: ErrorResponse{Error: "payment_expired"}}
	case errors.Is(err, payment.ErrBadSignature):
		return apiError{status: http.StatusUnauthorized, body: ErrorResponse{Error: "bad_signature"}}
	case errors.Is(err, payment.ErrMalformedEvent):
		return apiError{status: http.StatusBadRequest, body: ErrorResponse{Error: "malformed_event"}}
	case errors.Is(err, checkout.ErrPaymentUnavailable):
		return apiError{status: http.StatusBadGateway, body: ErrorResponse{Error: "payment_unavailable"}}
	case errs.Is(err, domain.ErrTransientConflict):
		return apiError{
			status:     http.StatusServiceUnavailable,
			body:       ErrorResponse{Error: "transient_conflict"},
			retryAfter: "1",
		}
	}

	return apiError{status: http.StatusInternalServerError, body: ErrorResponse{Error: "internal_error"}}
}

// respondErr maps service errors onto stable JSON bodies.
// Unmapped errors are attached to the context so the logging middleware reports them.
func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	e := classify(err)
	if e.status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if e.retryAfter != "" {
		c.Header("Retry-After", e.retryAfter)
	}

	c.JSON(e.status, e.body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
