// Package session owns the client's authentication state: the persisted
// {token, role} pair, token-expiry checks, and per-route admission.
package session

import (
	"errors"
	"time"
)

// Role is the authorization role granted at login.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// Session is the client-side record of authentication state. It exists from
// login success until logout, expiry, or a token decode failure. Token and
// role are persisted independently, so one can be present without the
// other; Authenticated requires both.
type Session struct {
	Token  string
	Role   Role
	Expiry time.Time
}

// Authenticated reports whether both token and role are present. Route
// admission fails closed on anything less.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.Role != ""
}

// ErrExpired means the stored token was missing a valid future expiry (or
// could not be decoded at all). The guard clears the persisted session
// before returning it; callers navigate to the login view, never render it
// inline.
var ErrExpired = errors.New("session expired")
