package booking

import "fmt"

// BookingStatus represents the current state of a booking in its lifecycle.
// The wire protocol uses the uppercase string values; anything else is a
// protocol violation and is rejected at the boundary.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusAccepted  BookingStatus = "ACCEPTED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// validTransitions defines the state machine for booking status changes.
// COMPLETED, REJECTED and CANCELLED are sinks.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusRejected:  {},
	StatusCancelled: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	return len(allowed) == 0
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// Label returns a human-readable label for display. Unrecognized raw values
// map to "Unknown"; that label is display-only and is never accepted back
// into the state machine.
func (s BookingStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAccepted:
		return "Accepted"
	case StatusCompleted:
		return "Completed"
	case StatusRejected:
		return "Rejected"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ParseBookingStatus converts a raw string to a BookingStatus, returning an
// error for anything outside the five defined values.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", raw)
	}
	return status, nil
}

// Transition validates a requested status change and returns the new status,
// or ErrInvalidTransition for any pair outside the table, including any
// attempt to leave a terminal status.
func Transition(current, requested BookingStatus) (BookingStatus, error) {
	if !current.IsValid() || !requested.IsValid() {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}
	if !current.CanTransitionTo(requested) {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}
	return requested, nil
}
