package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

func TestChangeStatusValidation(t *testing.T) {
	fake := &fakeClient{}
	mod := NewModerationController(fake, NewSuggestionStore(fake, 6), nil)
	ctx := context.Background()

	var verr *ValidationError
	err := mod.ChangeStatus(ctx, 1, "", "reason")
	require.ErrorAs(t, err, &verr)

	err = mod.ChangeStatus(ctx, 1, models.Status("BOGUS"), "reason")
	require.ErrorAs(t, err, &verr)

	require.Empty(t, fake.ChangeStatusReqs)
}

func TestChangeStatusRefetchesCurrentPage(t *testing.T) {
	fake := &fakeClient{
		ListRet: &models.Page{Content: suggestions(6, models.StatusOpen), TotalPages: 2},
	}
	store := NewSuggestionStore(fake, 6)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx, 0, models.StatusOpen))
	callsBefore := fake.listCallCount()

	mod := NewModerationController(fake, store, nil)
	require.NoError(t, mod.ChangeStatus(ctx, 3, models.StatusInProgress, "picked up"))

	require.Len(t, fake.ChangeStatusReqs, 1)
	require.Equal(t, models.StatusInProgress, fake.ChangeStatusReqs[0].Status)
	require.Equal(t, "picked up", fake.ChangeStatusReqs[0].Reason)

	// The item may have left the filtered result set, so the page is
	// refetched rather than patched.
	require.Equal(t, callsBefore+1, fake.listCallCount())
	require.Equal(t, models.StatusOpen, fake.lastListCall().Status)
}

func TestChangeStatusServerFailure(t *testing.T) {
	fake := &fakeClient{ChangeStatusErr: errors.New("boom")}
	mod := NewModerationController(fake, NewSuggestionStore(fake, 6), nil)

	err := mod.ChangeStatus(context.Background(), 1, models.StatusOnHold, "")
	require.Error(t, err)
	require.Zero(t, fake.listCallCount())
}

func TestSoftDeleteDeclined(t *testing.T) {
	fake := &fakeClient{
		ListRet: &models.Page{Content: suggestions(3, models.StatusOpen), TotalPages: 1},
	}
	store := NewSuggestionStore(fake, 6)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx, 0, ""))

	decline := func(string) bool { return false }
	mod := NewModerationController(fake, store, decline)

	require.NoError(t, mod.SoftDelete(ctx, 1))
	require.Empty(t, fake.DeleteIDs)
	require.Len(t, store.View().Items, 3)
}

func TestSoftDeleteConfirmed(t *testing.T) {
	fake := &fakeClient{
		ListRet: &models.Page{Content: suggestions(3, models.StatusOpen), TotalPages: 1},
	}
	store := NewSuggestionStore(fake, 6)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx, 0, ""))

	var prompt string
	confirm := func(p string) bool {
		prompt = p
		return true
	}
	mod := NewModerationController(fake, store, confirm)

	require.NoError(t, mod.SoftDelete(ctx, 2))
	require.Equal(t, []int64{2}, fake.DeleteIDs)
	require.Len(t, store.View().Items, 2)
	require.Contains(t, prompt, "delete this suggestion")
}

func TestLoadDeleted(t *testing.T) {
	deletedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeClient{
		ListDeletedRet: []models.DeletedSuggestion{
			{Suggestion: models.Suggestion{ID: 4, Title: "Gone", Status: models.StatusRejected}, DeletedAt: deletedAt},
		},
	}
	mod := NewModerationController(fake, nil, nil)
	ctx := context.Background()

	require.NoError(t, mod.LoadDeleted(ctx))
	require.Len(t, mod.Deleted(), 1)
	require.Equal(t, int64(4), mod.Deleted()[0].ID)
	require.True(t, mod.Deleted()[0].DeletedAt.Equal(deletedAt))
}

func TestLoadDeletedFailureKeepsCollection(t *testing.T) {
	fake := &fakeClient{
		ListDeletedRet: []models.DeletedSuggestion{
			{Suggestion: models.Suggestion{ID: 4, Title: "Gone"}},
		},
	}
	mod := NewModerationController(fake, nil, nil)
	ctx := context.Background()
	require.NoError(t, mod.LoadDeleted(ctx))

	fake.ListDeletedRet = nil
	fake.ListDeletedErr = errors.New("boom")
	require.Error(t, mod.LoadDeleted(ctx))
	require.Len(t, mod.Deleted(), 1)
}

func TestHardDeleteAllDeclined(t *testing.T) {
	fake := &fakeClient{}
	decline := func(string) bool { return false }
	mod := NewModerationController(fake, nil, decline)

	require.NoError(t, mod.HardDeleteAll(context.Background()))
	require.Zero(t, fake.HardDeleteCalls)
}

func TestHardDeleteAllConfirmed(t *testing.T) {
	fake := &fakeClient{
		ListDeletedRet: []models.DeletedSuggestion{
			{Suggestion: models.Suggestion{ID: 4, Title: "Gone"}},
		},
	}
	mod := NewModerationController(fake, nil, nil)
	ctx := context.Background()
	require.NoError(t, mod.LoadDeleted(ctx))

	// After the purge the view re-queries server truth.
	fake.ListDeletedRet = nil
	require.NoError(t, mod.HardDeleteAll(ctx))
	require.Equal(t, 1, fake.HardDeleteCalls)
	require.Equal(t, 2, fake.ListDeletedCalls)
	require.Empty(t, mod.Deleted())
}

func TestHardDeleteAllFailureKeepsCollection(t *testing.T) {
	fake := &fakeClient{
		ListDeletedRet: []models.DeletedSuggestion{
			{Suggestion: models.Suggestion{ID: 4, Title: "Gone"}},
		},
		HardDeleteErr: errors.New("boom"),
	}
	mod := NewModerationController(fake, nil, nil)
	ctx := context.Background()
	require.NoError(t, mod.LoadDeleted(ctx))

	require.Error(t, mod.HardDeleteAll(ctx))
	require.Len(t, mod.Deleted(), 1)
}
