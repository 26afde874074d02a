// Package ratelimit provides a redis-backed sliding-window rate limiter.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// SlidingWindow counts requests per key inside a rolling window using a
// redis sorted set. The whole check-and-consume runs as one transaction so
// concurrent submissions from the same key cannot race past the limit.
type SlidingWindow struct {
	redis  *redis.Client
	limit  int
	window time.Duration
	tracer trace.Tracer

	now func() time.Time // injectable for tests
}

// NewSlidingWindow creates a limiter allowing limit requests per window per key.
func NewSlidingWindow(client *redis.Client, limit int, window time.Duration, tracer trace.Tracer) *SlidingWindow {
	if client == nil {
		panic("ratelimit: redis client cannot be nil")
	}
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	if tracer == nil {
		tracer = otel.Tracer("portfolio.internal.ratelimit")
	}
	return &SlidingWindow{
		redis:  client,
		limit:  limit,
		window: window,
		tracer: tracer,
		now:    time.Now,
	}
}

// Allow consumes one unit for key and reports whether the request may
// proceed. The error is non-nil only when the store itself failed; callers
// decide whether that fails open or closed.
func (l *SlidingWindow) Allow(ctx context.Context, key string) (bool, error) {
	ctx, span := l.tracer.Start(ctx, "ratelimit.allow")
	defer span.End()

	now := l.now()
	cutoff := now.Add(-l.window)
	k := windowKey(key)

	pipe := l.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "0", strconv.FormatInt(cutoff.UnixNano(), 10))
	pipe.ZAdd(ctx, k, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	card := pipe.ZCard(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("ratelimit: window update for %s: %w", key, err)
	}

	return card.Val() <= int64(l.limit), nil
}

func windowKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}
