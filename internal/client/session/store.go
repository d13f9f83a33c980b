package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tharun-raj-u/speakout/internal/client/storage"
	"github.com/Tharun-raj-u/speakout/internal/dbx"
)

const (
	keyToken = "token"
	keyRole  = "role"
)

// Store persists the {token, role} pair in the local metadata database.
// It also serves as the api.TokenSource for outbound bearer credentials.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

// Token returns the stored bearer token, or "" when logged out. Read errors
// deliberately read as "no token": resolution fails closed.
func (s *Store) Token(ctx context.Context) string {
	v, err := s.repo().Get(ctx, keyToken)
	if err != nil {
		return ""
	}
	return string(v)
}

// Role returns the stored role, or "" when logged out.
func (s *Store) Role(ctx context.Context) Role {
	v, err := s.repo().Get(ctx, keyRole)
	if err != nil {
		return ""
	}
	return Role(v)
}

// Save persists a fresh {token, role} pair after a successful login. Both
// keys are written in one transaction so a half-saved session can never be
// resolved.
func (s *Store) Save(ctx context.Context, token string, role Role) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRole, []byte(role))
	})
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Clear removes the persisted session on logout, expiry, or decode failure.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, keyRole)
	})
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
