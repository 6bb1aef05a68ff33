package booking

import "errors"

var (
	// ErrInvalidTransition is returned for an illegal status change. It
	// indicates a programming or data-integrity fault and must never be
	// coerced to a default.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrBookingNotFound is returned when a booking id is unknown.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoPets is returned when a booking request carries no pets.
	ErrNoPets = errors.New("at least one pet is required")

	// ErrInvalidDuration is returned when a quote resolves to zero billable
	// units; the booking must not be submitted.
	ErrInvalidDuration = errors.New("booking duration is invalid")
)
