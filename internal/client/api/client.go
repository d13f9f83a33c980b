package api

import (
	"context"

	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the login response: a bearer token plus the granted role.
type AuthResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterRequest creates a new employee account. Only admins reach the
// registration view; the server enforces the rest.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       string `json:"role"`
}

// SuggestionRequest creates or edits a suggestion.
type SuggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Anonymous   bool   `json:"anonymous"`
}

// StatusChangeRequest moves a suggestion to a new status with an optional
// audit reason.
type StatusChangeRequest struct {
	Status models.Status `json:"status"`
	Reason string        `json:"reason"`
}

// ToggleResult is the vote-toggle response body. Success=false with a 200 is
// a legitimate refusal (e.g. voting window closed) and is treated as a
// failed toggle by the coordinator.
type ToggleResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client is the remote suggestion-box contract. The concrete implementation
// is HTTPClient; tests substitute fakes.
//
// Every call is at-most-once as perceived by the client: no automatic
// retries, no client-enforced timeout. All methods honor ctx cancellation.
type Client interface {
	// Login authenticates and returns the bearer token and role.
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)

	// Register creates a new employee account.
	Register(ctx context.Context, req RegisterRequest) error

	// ListSuggestions fetches one page. status == "" means no filter.
	ListSuggestions(ctx context.Context, page, size int, status models.Status) (*models.Page, error)

	// ListOwnSuggestions fetches the caller's suggestions, unpaginated.
	ListOwnSuggestions(ctx context.Context) ([]models.Suggestion, error)

	// CreateSuggestion submits a new suggestion.
	CreateSuggestion(ctx context.Context, req SuggestionRequest) error

	// UpdateSuggestion edits an owned suggestion and returns the server's
	// copy of the updated record.
	UpdateSuggestion(ctx context.Context, id int64, req SuggestionRequest) (*models.Suggestion, error)

	// ToggleVote flips the (suggestion, device) vote pair.
	ToggleVote(ctx context.Context, suggestionID int64, deviceID string) (*ToggleResult, error)

	// ChangeStatus moves a suggestion to a new status.
	ChangeStatus(ctx context.Context, id int64, req StatusChangeRequest) error

	// DeleteSuggestion soft-deletes a suggestion into the deleted collection.
	DeleteSuggestion(ctx context.Context, id int64) error

	// ListDeletedSuggestions fetches the soft-deleted collection with its
	// audit trail.
	ListDeletedSuggestions(ctx context.Context) ([]models.DeletedSuggestion, error)

	// HardDeleteAll permanently destroys every soft-deleted record. A 204
	// no-content response is a success.
	HardDeleteAll(ctx context.Context) error

	// Dashboard fetches the aggregate snapshot for the admin dashboard.
	Dashboard(ctx context.Context) (*models.DashboardSnapshot, error)
}
