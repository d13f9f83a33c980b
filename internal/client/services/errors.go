package services

import "fmt"

// ValidationError is a client-side precondition failure. It blocks the
// operation before any network call and carries a user-facing message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ToggleError is a vote toggle the server answered but refused
// (success=false in the response body).
type ToggleError struct {
	Message string
}

func (e *ToggleError) Error() string {
	if e.Message == "" {
		return "vote failed"
	}
	return e.Message
}
