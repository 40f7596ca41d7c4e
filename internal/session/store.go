// Package session manages server-side sessions. The session payload (the
// principal's username) lives in an external key-value store; the client
// carries only a signed cookie wrapping the opaque session ID.
package session

import (
	"context"
	"time"
)

// Store persists session payloads keyed by opaque session IDs.
type Store interface {
	// Set binds principal to id for at most ttl.
	Set(ctx context.Context, id, principal string, ttl time.Duration) error
	// Get returns the principal bound to id, or domain.ErrNoSession when the
	// id is unknown or expired.
	Get(ctx context.Context, id string) (string, error)
	// Delete removes the session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
