// Package tokenstore persists the bearer token across process restarts.
// It is pure storage: no validation, no decoding.
package tokenstore

import "context"

// Store is a durable single-slot holder for the access token.
// Read returns "" with a nil error when no token is stored.
type Store interface {
	Read(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
