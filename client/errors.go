package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a request exceeds its time budget. The
	// caller may retry; the client never does so automatically.
	ErrTimeout = errors.New("request timed out")

	// ErrSessionExpired is returned when a token refresh fails. Both tokens
	// have been cleared; the caller must force re-authentication.
	ErrSessionExpired = errors.New("session expired")
)

// NetworkError wraps an offline or transport-layer failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError carries a non-2xx, non-401 response. It is surfaced as-is,
// with no automatic retry.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}
