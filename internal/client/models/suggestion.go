// Package models defines the typed entities the SpeakOut client works with
// and the boundary validation that turns loosely-shaped server JSON into
// those entities.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Vote is a single device's vote on a suggestion.
type Vote struct {
	ID               int64     `json:"id"`
	DeviceIdentifier string    `json:"deviceIdentifier"`
	CreatedAt        time.Time `json:"createdAt"`
}

// StatusHistoryEntry records one moderation step. PreviousStatus is empty on
// the first entry. Entries are append-only, ordered ascending by CreatedAt.
type StatusHistoryEntry struct {
	ID             int64     `json:"id"`
	PreviousStatus Status    `json:"previousStatus,omitempty"`
	NewStatus      Status    `json:"newStatus"`
	ChangedBy      string    `json:"changedBy"`
	ChangeReason   string    `json:"changeReason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Suggestion is a submitted idea with its moderatable status and vote tally.
type Suggestion struct {
	ID            int64                `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Status        Status               `json:"status"`
	IsAnonymous   bool                 `json:"isAnonymous"`
	SubmitterName string               `json:"submitterName"`
	VoteCount     int64                `json:"voteCount"`
	CreatedAt     time.Time            `json:"createdAt"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory,omitempty"`
	Votes         []Vote               `json:"votes,omitempty"`
}

// DeletedSuggestion is a soft-deleted suggestion as served by the
// deleted-items endpoint. It carries the full audit trail for display.
type DeletedSuggestion struct {
	Suggestion
	DeletedAt time.Time `json:"deletedAt"`
}

// Submitter returns the display name, honoring anonymity.
func (s *Suggestion) Submitter() string {
	if s.IsAnonymous {
		return "Anonymous"
	}
	if s.SubmitterName == "" {
		return "Unknown"
	}
	return s.SubmitterName
}

// Validate checks the fields aggregation and rendering rely on. Records
// missing an id, title or a known status are rejected at the boundary
// instead of reaching view math with zero values.
func (s *Suggestion) Validate() error {
	if s.ID == 0 {
		return fmt.Errorf("suggestion without id")
	}
	if s.Title == "" {
		return fmt.Errorf("suggestion %d without title", s.ID)
	}
	if !s.Status.Valid() {
		return fmt.Errorf("suggestion %d has unknown status %q", s.ID, s.Status)
	}
	return nil
}

// Page is one paginated slice of suggestions as returned by the list
// endpoint: {content: [...], totalPages: N}.
type Page struct {
	Content    []Suggestion `json:"content"`
	TotalPages int          `json:"totalPages"`
}

// DecodePage unmarshals and validates a paginated list response. Every item
// must pass Validate; a single malformed record fails the whole page so a
// partially-usable view never silently renders.
func DecodePage(data []byte) (*Page, error) {
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding suggestion page: %w", err)
	}
	if p.Content == nil {
		p.Content = []Suggestion{}
	}
	for i := range p.Content {
		if err := p.Content[i].Validate(); err != nil {
			return nil, fmt.Errorf("decoding suggestion page: %w", err)
		}
	}
	if p.TotalPages < 0 {
		p.TotalPages = 0
	}
	return &p, nil
}

// DecodeSuggestions unmarshals and validates an unpaginated suggestion list.
func DecodeSuggestions(data []byte) ([]Suggestion, error) {
	var items []Suggestion
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding suggestions: %w", err)
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("decoding suggestions: %w", err)
		}
	}
	return items, nil
}
