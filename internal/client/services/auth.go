package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tharun-raj-u/speakout/internal/client/api"
	"github.com/Tharun-raj-u/speakout/internal/client/session"
)

// AuthService turns credentials into a persisted session and handles the
// admin-driven employee registration.
type AuthService struct {
	client api.Client
	guard  *session.Guard
}

func NewAuthService(client api.Client, guard *session.Guard) *AuthService {
	return &AuthService{client: client, guard: guard}
}

// Login authenticates and persists the granted {token, role} pair. The role
// comes from the server; anything outside the known set is rejected rather
// than stored.
func (a *AuthService) Login(ctx context.Context, email, password string) (session.Role, error) {
	if strings.TrimSpace(email) == "" {
		return "", &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return "", &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	result, err := a.client.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	role := session.Role(result.Role)
	if role != session.RoleUser && role != session.RoleAdmin {
		return "", fmt.Errorf("server granted unknown role %q", result.Role)
	}

	if err := a.guard.Login(ctx, result.Token, role); err != nil {
		return "", err
	}
	return role, nil
}

// Logout clears the persisted session.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.guard.Logout(ctx)
}

// RegisterEmployee creates a new employee account. Required fields fail
// validation before any network call; role defaults to USER.
func (a *AuthService) RegisterEmployee(ctx context.Context, req api.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if req.Password == "" {
		return &ValidationError{Field: "password", Reason: "must not be empty"}
	}
	if req.Role == "" {
		req.Role = "USER"
	}
	return a.client.Register(ctx, req)
}
