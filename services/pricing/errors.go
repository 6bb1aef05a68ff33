package pricing

import "errors"

var (
	// ErrServiceNotFound is returned for a lookup of an unknown service id.
	// An unknown id is a data-integrity fault, never a silent default price.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidTimeRange is returned when an hourly booking's end time is
	// not after its start time.
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
