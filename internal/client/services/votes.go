package services

import (
	"context"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
)

// DeviceResolver yields the identifier sent with vote toggles. It never
// fails: resolution problems degrade to a sentinel inside the resolver.
type DeviceResolver interface {
	DeviceID(ctx context.Context) string
}

// VoteCoordinator runs the vote-toggle protocol against one suggestion
// store. Toggling the same (suggestion, device) pair twice nets to zero on
// the server; the client never predicts the resulting count and instead
// reloads the current page after a confirmed toggle.
type VoteCoordinator struct {
	client   api.Client
	device   DeviceResolver
	store    *SuggestionStore
	inflight *inflightSet
}

func NewVoteCoordinator(client api.Client, device DeviceResolver, store *SuggestionStore) *VoteCoordinator {
	return &VoteCoordinator{
		client:   client,
		device:   device,
		store:    store,
		inflight: newInflightSet(),
	}
}

// Toggle flips the caller's vote on suggestionID.
//
// A toggle already pending on the same id makes this call a no-op; distinct
// ids proceed independently. The toggle response is authoritative: on
// success the current page is reloaded to reconcile counts and ordering,
// and on any failure the in-flight lock releases with no local vote-count
// mutation.
func (v *VoteCoordinator) Toggle(ctx context.Context, suggestionID int64) error {
	if !v.inflight.tryAcquire(suggestionID) {
		return nil
	}
	defer v.inflight.release(suggestionID)

	deviceID := v.device.DeviceID(ctx)

	result, err := v.client.ToggleVote(ctx, suggestionID, deviceID)
	if err != nil {
		return err
	}
	if !result.Success {
		return &ToggleError{Message: result.Message}
	}

	return v.store.Reload(ctx)
}

// Voting reports whether a toggle is currently pending on id. Views use it
// to render a busy indicator.
func (v *VoteCoordinator) Voting(id int64) bool {
	return v.inflight.has(id)
}
