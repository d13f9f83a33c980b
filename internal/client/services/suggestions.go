// Package services holds the client-side state machines between the views
// and the remote service: the paginated suggestion store, the vote
// coordinator, moderation, and the dashboard projection.
package services

import (
	"context"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

// PageView is the state of one paginated suggestion view. It is rebuilt
// wholesale on every successful load and never patched partially.
type PageView struct {
	Items      []models.Suggestion
	PageIndex  int
	TotalPages int
	Filter     models.Status // "" means no status filter
}

// SuggestionStore drives a paginated, filterable suggestion view. Each view
// owns its own store; there is no cross-view or cross-page caching. Every
// Load is exactly one fetch.
type SuggestionStore struct {
	client   api.Client
	pageSize int

	view PageView
	gen  uint64 // bumped by Reset; stale responses are dropped
}

func NewSuggestionStore(client api.Client, pageSize int) *SuggestionStore {
	return &SuggestionStore{client: client, pageSize: pageSize}
}

// View returns the current page view. On a fresh or reset store it is the
// zero view (no items, page 0, no filter).
func (s *SuggestionStore) View() PageView {
	return s.view
}

// PageSize returns the fixed page size this store requests.
func (s *SuggestionStore) PageSize() int {
	return s.pageSize
}

// Load fetches one page. A change of filter always restarts at page 0, and
// the requested page is clamped to [0, totalPages-1] against the last known
// page count. On failure the previous view stays intact; on success the
// view is replaced with the server's page. A response that arrives after
// Reset is discarded without touching state.
func (s *SuggestionStore) Load(ctx context.Context, page int, filter models.Status) error {
	if filter != s.view.Filter {
		page = 0
	}
	page = s.clamp(page)

	gen := s.gen
	result, err := s.client.ListSuggestions(ctx, page, s.pageSize, filter)
	if err != nil {
		return err
	}
	if gen != s.gen {
		// View was torn down while the request was in flight.
		return nil
	}

	s.view = PageView{
		Items:      result.Content,
		PageIndex:  page,
		TotalPages: result.TotalPages,
		Filter:     filter,
	}
	return nil
}

// Reload refetches the current page and filter.
func (s *SuggestionStore) Reload(ctx context.Context) error {
	return s.Load(ctx, s.view.PageIndex, s.view.Filter)
}

// Next advances one page, staying clamped at the last one.
func (s *SuggestionStore) Next(ctx context.Context) error {
	return s.Load(ctx, s.view.PageIndex+1, s.view.Filter)
}

// Prev goes back one page, staying clamped at the first one.
func (s *SuggestionStore) Prev(ctx context.Context) error {
	return s.Load(ctx, s.view.PageIndex-1, s.view.Filter)
}

// SetFilter switches the status filter, restarting at page 0.
func (s *SuggestionStore) SetFilter(ctx context.Context, filter models.Status) error {
	return s.Load(ctx, 0, filter)
}

// Delete removes a suggestion remotely, then drops it from the local view
// only after the server acknowledged. A failed delete leaves the collection
// untouched and surfaces the error non-fatally.
func (s *SuggestionStore) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteSuggestion(ctx, id); err != nil {
		return err
	}
	s.removeLocal(id)
	return nil
}

// Reset tears the view down: pending responses for the old generation are
// discarded and the view returns to its zero state.
func (s *SuggestionStore) Reset() {
	s.gen++
	s.view = PageView{}
}

func (s *SuggestionStore) removeLocal(id int64) {
	items := s.view.Items[:0]
	for _, item := range s.view.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.view.Items = items
}

// clamp bounds a requested page index against the last known page count.
// Before the first load (or when the collection is empty) only the lower
// bound applies, since totalPages is unknown.
func (s *SuggestionStore) clamp(page int) int {
	if page < 0 {
		return 0
	}
	if s.view.TotalPages > 0 && page > s.view.TotalPages-1 {
		return s.view.TotalPages - 1
	}
	return page
}
