package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Guard resolves the current session on every view entry and decides route
// admission. It trusts the server on token validity: the JWT is decoded
// without signature verification, only to read the expiry claim.
type Guard struct {
	store *Store
	now   func() time.Time
}

func NewGuard(store *Store) *Guard {
	return &Guard{store: store, now: time.Now}
}

// Resolve returns the current session state as persisted, with the expiry
// check applied whenever a token is present.
//
// A token that cannot be decoded, or whose exp claim lies in the past,
// clears the persisted session and returns ErrExpired so the caller
// redirects to the login view instead of rendering an error. Token and
// role are carried through independently; admission decides what a missing
// piece means per route.
func (g *Guard) Resolve(ctx context.Context) (*Session, error) {
	sess := &Session{
		Token: g.store.Token(ctx),
		Role:  g.store.Role(ctx),
	}

	if sess.Token != "" {
		expiry, err := tokenExpiry(sess.Token)
		if err != nil || expiry.Before(g.now()) {
			_ = g.store.Clear(ctx)
			return nil, ErrExpired
		}
		sess.Expiry = expiry
	}

	return sess, nil
}

// tokenExpiry decodes the JWT without verifying its signature and returns
// the exp claim. A token without exp is treated as undecodable.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, jwt.ErrTokenInvalidClaims
	}
	return exp.Time, nil
}

// Login exchanges a successful auth response for a persisted session.
func (g *Guard) Login(ctx context.Context, token string, role Role) error {
	return g.store.Save(ctx, token, role)
}

// Logout tears the session down.
func (g *Guard) Logout(ctx context.Context) error {
	return g.store.Clear(ctx)
}
