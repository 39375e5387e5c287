package repository

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrDatesAlreadyHeld    = errors.New("ad already holds some of the dates")
	ErrReservationReleased = errors.New("reservation released")
	ErrStatusChanged       = errors.New("status changed concurrently")
)
