package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDates      = errors.New("dates must be non-empty and unique")
	ErrWindowExceeded    = errors.New("date outside booking window")
	ErrSlotFull          = errors.New("slot full")
	ErrPromoInvalid      = errors.New("promo code invalid")
	ErrTransientConflict = errors.New("transient storage conflict")
	ErrPaymentExpired    = errors.New("payment expired")
)

type WindowExceededError struct {
	Dates []time.Time
}

func (e WindowExceededError) Error() string {
	return fmt.Sprintf("dates outside booking window: %s", JoinDates(e.Dates))
}

func (e WindowExceededError) Is(target error) bool {
	return target == ErrWindowExceeded
}

// SlotFullError carries every requested date that was at capacity, and nearby zones
// with room on them when the checkout looked any up.
type SlotFullError struct {
	Dates        []time.Time
	Alternatives []Alternative
}

func (e SlotFullError) Error() string {
	return fmt.Sprintf("slots full: %s", JoinDates(e.Dates))
}

func (e SlotFullError) Is(target error) bool {
	return target == ErrSlotFull
}

type PromoInvalidError struct {
	Reason PromoReason
}

func (e PromoInvalidError) Error() string {
	return fmt.Sprintf("promo code invalid: %s", e.Reason)
}

func (e PromoInvalidError) Is(target error) bool {
	return target == ErrPromoInvalid
}

func JoinDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = FormatDate(d)
	}
	return strings.Join(parts, ",")
}
