// Package cache implements Redis-backed caches for derived views.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fintrack/backend/internal/application/adapter"
)

// dashboardCache implements adapter.DashboardCache on Redis. Payloads are
// opaque bytes; the use case owns the wire format.
type dashboardCache struct {
	client *redis.Client
}

// NewDashboardCache creates a new Redis-backed dashboard cache.
func NewDashboardCache(client *redis.Client) adapter.DashboardCache {
	return &dashboardCache{
		client: client,
	}
}

// Get retrieves the cached payload for a user. A miss returns (nil, nil).
func (c *dashboardCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dashboard cache get: %w", err)
	}
	return payload, nil
}

// Set stores the payload for a user with the given TTL.
func (c *dashboardCache) Set(ctx context.Context, userID uuid.UUID, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, cacheKey(userID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("dashboard cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached payload for a user.
func (c *dashboardCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("dashboard cache invalidate: %w", err)
	}
	return nil
}

func cacheKey(userID uuid.UUID) string {
	return "fintrack:dashboard:" + userID.String()
}
