// Package storage provides the local key-value store used by the intake
// client to persist state between runs (most importantly the session token).
// The interface is deliberately small so tests can inject an in-memory
// implementation instead of a real database.
package storage

import "context"

// Store is a flat string key-value store.
//
// Contract:
//   - Get returns "" with a nil error when the key is absent.
//   - Set overwrites any existing value.
//   - Delete is a no-op for absent keys.
//   - Clear removes every key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
