package reservation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrDatesAlreadyHeld    = errors.New("ad already holds some of the requested dates")
	ErrAlreadyReleased     = errors.New("reservation already released")
)

type ReservationNotFoundError struct {
	ReservationID uuid.UUID
}

func (e ReservationNotFoundError) Error() string {
	return fmt.Sprintf("reservation not found: %s", e.ReservationID)
}

func (e ReservationNotFoundError) Is(target error) bool {
	return target == ErrReservationNotFound
}
