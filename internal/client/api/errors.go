package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the server could not be reached at all
	// (connection refused, DNS failure, broken transport).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for 401/403 responses. The session layer
	// maps it to a session clear and a redirect to the login view.
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is a non-success HTTP response. Views surface it inline and
// keep their previous state; it is never fatal.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed: HTTP %d", e.StatusCode)
}
