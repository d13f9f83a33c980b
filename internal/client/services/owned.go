package services

import (
	"context"
	"strings"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

// OwnedStore backs the my-suggestions view: the caller's own submissions,
// unpaginated, with self-edit and self-delete restricted to OPEN items.
type OwnedStore struct {
	client api.Client
	items  []models.Suggestion
}

func NewOwnedStore(client api.Client) *OwnedStore {
	return &OwnedStore{client: client}
}

// Items returns the last loaded collection.
func (s *OwnedStore) Items() []models.Suggestion {
	return s.items
}

// Load fetches the caller's suggestions. On failure the previous collection
// stays intact.
func (s *OwnedStore) Load(ctx context.Context) error {
	items, err := s.client.ListOwnSuggestions(ctx)
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

// Submit creates a new suggestion. An empty title or description fails
// validation before any network call.
func (s *OwnedStore) Submit(ctx context.Context, title, description string, anonymous bool) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	return s.client.CreateSuggestion(ctx, api.SuggestionRequest{
		Title:       title,
		Description: description,
		Anonymous:   anonymous,
	})
}

// UpdateOwned edits one of the caller's suggestions. Self-edit is permitted
// only while the item is still OPEN; afterwards moderation owns it. On
// success the matching item is replaced by identity with the server's
// returned record, which wins over the local optimistic copy.
func (s *OwnedStore) UpdateOwned(ctx context.Context, id int64, title, description string) error {
	item := s.byID(id)
	if item == nil {
		return &ValidationError{Field: "suggestion", Reason: "not found in your suggestions"}
	}
	if item.Status != models.StatusOpen {
		return &ValidationError{Field: "status", Reason: "only OPEN suggestions can be edited"}
	}
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	updated, err := s.client.UpdateSuggestion(ctx, id, api.SuggestionRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return err
	}
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
			break
		}
	}
	return nil
}

// Delete removes one of the caller's OPEN suggestions, dropping it from the
// local collection only after the server acknowledged.
func (s *OwnedStore) Delete(ctx context.Context, id int64) error {
	item := s.byID(id)
	if item == nil {
		return &ValidationError{Field: "suggestion", Reason: "not found in your suggestions"}
	}
	if item.Status != models.StatusOpen {
		return &ValidationError{Field: "status", Reason: "only OPEN suggestions can be deleted"}
	}
	if err := s.client.DeleteSuggestion(ctx, id); err != nil {
		return err
	}
	items := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	s.items = items
	return nil
}

func (s *OwnedStore) byID(id int64) *models.Suggestion {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}
