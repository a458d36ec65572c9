// Package session persists the single bearer token that represents the
// client's (possibly) authenticated session. Presence of a token only means
// "worth trying": it is not trusted until a profile fetch succeeds.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lecolegal/intake/internal/client/storage"
)

// TokenKey is the well-known store key holding the session token. The name
// matches the key the web frontend keeps in browser local storage so both
// clients are interchangeable against the same backend.
const TokenKey = "leco_jwt"

// Store keeps at most one token in the underlying key-value store.
type Store struct {
	kv storage.Store
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Token returns the persisted token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.kv.Get(ctx, TokenKey)
}

// Save persists token, replacing any previous one. An empty token removes
// the stored one, mirroring setToken(null) in the web frontend.
func (s *Store) Save(ctx context.Context, token string) error {
	if token == "" {
		return s.kv.Delete(ctx, TokenKey)
	}
	return s.kv.Set(ctx, TokenKey, token)
}

// Clear removes the stored token. Other keys in the store are untouched.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, TokenKey)
}

// ExpiresAt reports the expiry of the stored token when it happens to be a
// JWT with an exp claim. The token is otherwise opaque: the claim is parsed
// without signature verification, feeds display only, and any failure means
// "unknown" rather than an error.
func (s *Store) ExpiresAt(ctx context.Context) (time.Time, bool) {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
