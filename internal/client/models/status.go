package models

import "fmt"

// Status is the moderation state of a suggestion. The set is closed; the
// server decides which transitions are legal, the client only checks
// membership.
type Status string

const (
	StatusOpen        Status = "OPEN"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusImplemented Status = "IMPLEMENTED"
	StatusOnHold      Status = "ON_HOLD"
	StatusRejected    Status = "REJECTED"
)

// AllStatuses lists every valid status in display order.
var AllStatuses = []Status{
	StatusOpen,
	StatusUnderReview,
	StatusInProgress,
	StatusImplemented,
	StatusOnHold,
	StatusRejected,
}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus converts a raw string into a Status, rejecting anything
// outside the closed set.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown suggestion status %q", raw)
	}
	return s, nil
}
