package sessionstore

import (
	"context"
	"errors"
	"time"
)

// TTL is the fixed session lifetime. A key that outlives it simply stops
// existing; expiry and "never issued" are indistinguishable to callers.
const TTL = 3600 * time.Second

// ErrNotFound means the token is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to user ids. It is the single
// authority on whether a request is authenticated.
type Store interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
