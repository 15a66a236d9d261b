// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardCache defines the interface for caching serialized dashboard
// views per user. A cache is an optimization only: implementations must
// degrade to misses on any backend failure, and callers must treat a miss
// as "recompute", never as an error.
type DashboardCache interface {
	// Get retrieves the cached payload for a user. A miss returns
	// (nil, nil).
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// Set stores the payload for a user with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, payload []byte, ttl time.Duration) error

	// Invalidate drops the cached payload for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
