package services

import (
	"context"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

// ConfirmFunc asks the operator to confirm a destructive action. Returning
// false aborts before any network call.
type ConfirmFunc func(prompt string) bool

// ModerationController drives the admin workflow: status changes with audit
// reasons, soft deletes into the deleted collection, and the irreversible
// hard-delete-all.
type ModerationController struct {
	client  api.Client
	store   *SuggestionStore
	confirm ConfirmFunc

	deleted []models.DeletedSuggestion
}

func NewModerationController(client api.Client, store *SuggestionStore, confirm ConfirmFunc) *ModerationController {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &ModerationController{client: client, store: store, confirm: confirm}
}

// ChangeStatus moves a suggestion to newStatus with an optional audit
// reason. An empty or unknown status fails validation before any network
// call. On success the current page is refetched rather than patched
// locally: the change may have moved the item out of the active filter's
// result set. The client checks only enum membership; whether a specific
// transition is legal is the server's concern.
func (m *ModerationController) ChangeStatus(ctx context.Context, id int64, newStatus models.Status, reason string) error {
	if newStatus == "" {
		return &ValidationError{Field: "status", Reason: "please select a status"}
	}
	if !newStatus.Valid() {
		return &ValidationError{Field: "status", Reason: "unknown status"}
	}

	err := m.client.ChangeStatus(ctx, id, api.StatusChangeRequest{Status: newStatus, Reason: reason})
	if err != nil {
		return err
	}
	return m.store.Reload(ctx)
}

// SoftDelete moves a suggestion into the deleted collection after explicit
// confirmation. Declining the confirmation is a silent no-op; the item
// leaves the active view only once the server acknowledged.
func (m *ModerationController) SoftDelete(ctx context.Context, id int64) error {
	if !m.confirm("Are you sure you want to delete this suggestion?") {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// Deleted returns the last loaded deleted-items collection.
func (m *ModerationController) Deleted() []models.DeletedSuggestion {
	return m.deleted
}

// LoadDeleted fetches the soft-deleted collection with its audit trail. On
// failure the previous collection stays intact.
func (m *ModerationController) LoadDeleted(ctx context.Context) error {
	items, err := m.client.ListDeletedSuggestions(ctx)
	if err != nil {
		return err
	}
	m.deleted = items
	return nil
}

// HardDeleteAll permanently destroys every soft-deleted record after
// explicit confirmation. The endpoint may answer 204 or a JSON body; both
// count as success. Local state clears immediately on success, then the
// deleted view is re-queried to reconcile against server truth.
func (m *ModerationController) HardDeleteAll(ctx context.Context) error {
	if !m.confirm("Are you sure you want to permanently delete all suggestions?") {
		return nil
	}
	if err := m.client.HardDeleteAll(ctx); err != nil {
		return err
	}
	m.deleted = nil
	return m.LoadDeleted(ctx)
}
