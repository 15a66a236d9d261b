package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *dashboardCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, &dashboardCache{client: client}
}

func TestDashboardCache(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("miss returns nil payload and nil error", func(t *testing.T) {
		_, c := newTestCache(t)

		payload, err := c.Get(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("set then get round-trips the payload", func(t *testing.T) {
		_, c := newTestCache(t)

		require.NoError(t, c.Set(ctx, userID, []byte(`{"balance":"5450"}`), time.Minute))

		payload, err := c.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"balance":"5450"}`), payload)
	})

	t.Run("invalidate drops the payload", func(t *testing.T) {
		_, c := newTestCache(t)

		require.NoError(t, c.Set(ctx, userID, []byte("stale"), time.Minute))
		require.NoError(t, c.Invalidate(ctx, userID))

		payload, err := c.Get(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("payload expires with the TTL", func(t *testing.T) {
		server, c := newTestCache(t)

		require.NoError(t, c.Set(ctx, userID, []byte("short lived"), time.Minute))
		server.FastForward(2 * time.Minute)

		payload, err := c.Get(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("keys are scoped per user", func(t *testing.T) {
		_, c := newTestCache(t)
		other := uuid.New()

		require.NoError(t, c.Set(ctx, userID, []byte("mine"), time.Minute))
		require.NoError(t, c.Invalidate(ctx, other))

		payload, err := c.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []byte("mine"), payload)
	})
}
