// Package metadata is a small key-value store over the local sqlite database.
// The client uses it as the persistent session storage: the bearer token and
// role live here under fixed keys, so a session survives process restarts.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key; used on logout.
	Clear(ctx context.Context) error
}
