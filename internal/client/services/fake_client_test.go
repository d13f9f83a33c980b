package services

import (
	"context"
	"sync"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

// listCall records the arguments of one ListSuggestions invocation.
type listCall struct {
	Page   int
	Size   int
	Status models.Status
}

// fakeClient implements api.Client for unit tests. Behavior is driven by
// result/err fields; arguments are recorded for assertions. Optional *Fn
// hooks override the default behavior where a test needs one.
type fakeClient struct {
	mu sync.Mutex

	LoginRet *api.AuthResult
	LoginErr error

	RegisterErr  error
	RegisterReqs []api.RegisterRequest

	ListRet   *models.Page
	ListErr   error
	ListCalls []listCall
	ListFn    func(ctx context.Context, page, size int, status models.Status) (*models.Page, error)

	ListOwnRet []models.Suggestion
	ListOwnErr error

	CreateErr  error
	CreateReqs []api.SuggestionRequest

	UpdateRet *models.Suggestion
	UpdateErr error

	ToggleRet     *api.ToggleResult
	ToggleErr     error
	ToggleCalls   int
	ToggleDevices []string
	ToggleFn      func(ctx context.Context, id int64, deviceID string) (*api.ToggleResult, error)

	ChangeStatusErr  error
	ChangeStatusReqs []api.StatusChangeRequest

	DeleteErr error
	DeleteIDs []int64

	ListDeletedRet   []models.DeletedSuggestion
	ListDeletedErr   error
	ListDeletedCalls int

	HardDeleteErr   error
	HardDeleteCalls int
}

func (f *fakeClient) Login(ctx context.Context, creds api.Credentials) (*api.AuthResult, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterReqs = append(f.RegisterReqs, req)
	return f.RegisterErr
}

func (f *fakeClient) ListSuggestions(ctx context.Context, page, size int, status models.Status) (*models.Page, error) {
	f.mu.Lock()
	f.ListCalls = append(f.ListCalls, listCall{Page: page, Size: size, Status: status})
	f.mu.Unlock()
	if f.ListFn != nil {
		return f.ListFn(ctx, page, size, status)
	}
	return f.ListRet, f.ListErr
}

func (f *fakeClient) ListOwnSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	return f.ListOwnRet, f.ListOwnErr
}

func (f *fakeClient) CreateSuggestion(ctx context.Context, req api.SuggestionRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateReqs = append(f.CreateReqs, req)
	return f.CreateErr
}

func (f *fakeClient) UpdateSuggestion(ctx context.Context, id int64, req api.SuggestionRequest) (*models.Suggestion, error) {
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) ToggleVote(ctx context.Context, suggestionID int64, deviceID string) (*api.ToggleResult, error) {
	f.mu.Lock()
	f.ToggleCalls++
	f.ToggleDevices = append(f.ToggleDevices, deviceID)
	f.mu.Unlock()
	if f.ToggleFn != nil {
		return f.ToggleFn(ctx, suggestionID, deviceID)
	}
	return f.ToggleRet, f.ToggleErr
}

func (f *fakeClient) ChangeStatus(ctx context.Context, id int64, req api.StatusChangeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ChangeStatusReqs = append(f.ChangeStatusReqs, req)
	return f.ChangeStatusErr
}

func (f *fakeClient) DeleteSuggestion(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr == nil {
		f.DeleteIDs = append(f.DeleteIDs, id)
	}
	return f.DeleteErr
}

func (f *fakeClient) ListDeletedSuggestions(ctx context.Context) ([]models.DeletedSuggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListDeletedCalls++
	return f.ListDeletedRet, f.ListDeletedErr
}

func (f *fakeClient) HardDeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.HardDeleteCalls++
	return f.HardDeleteErr
}

func (f *fakeClient) Dashboard(ctx context.Context) (*models.DashboardSnapshot, error) {
	return nil, nil
}

func (f *fakeClient) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ListCalls)
}

func (f *fakeClient) lastListCall() listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListCalls[len(f.ListCalls)-1]
}

// suggestions builds n valid suggestions with sequential ids starting at 1.
func suggestions(n int, status models.Status) []models.Suggestion {
	items := make([]models.Suggestion, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, models.Suggestion{
			ID:     int64(i),
			Title:  "Idea",
			Status: status,
		})
	}
	return items
}

var _ api.Client = (*fakeClient)(nil)
