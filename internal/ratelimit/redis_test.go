package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*SlidingWindow, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSlidingWindow(client, limit, window, nil), mr
}

func TestAllow_UnderLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "contact:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
}

func TestAllow_SixthDenied(t *testing.T) {
	limiter, _ := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "contact:1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed, "sixth request inside the window should be denied")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	require.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "contact:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed, "a different key has its own window")
}

func TestAllow_WindowSlides(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	base := time.Now()
	limiter.now = func() time.Time { return base }

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "contact:1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	require.False(t, allowed)

	// Past the window the old entries fall out and the key is admitted again.
	limiter.now = func() time.Time { return base.Add(61 * time.Second) }
	allowed, err = limiter.Allow(ctx, "contact:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_StoreUnreachable(t *testing.T) {
	limiter, mr := newTestLimiter(t, 5, time.Minute)
	mr.Close()

	allowed, err := limiter.Allow(context.Background(), "contact:1.2.3.4")
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestNewSlidingWindow_Defaults(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewSlidingWindow(client, 0, 0, nil)
	assert.Equal(t, 5, limiter.limit)
	assert.Equal(t, time.Minute, limiter.window)
}
