package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func TestRateLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows requests under the limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow(ctx, "10.0.0.1") {
				t.Fatalf("request %d should be allowed", i+1)
			}
		}
	})

	t.Run("blocks requests over the limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 2, time.Minute)

		rl.allow(ctx, "10.0.0.2")
		rl.allow(ctx, "10.0.0.2")
		if rl.allow(ctx, "10.0.0.2") {
			t.Error("third request should be blocked")
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 1, time.Minute)

		rl.allow(ctx, "10.0.0.3")
		if !rl.allow(ctx, "10.0.0.4") {
			t.Error("a different client should not be blocked")
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		rl, mr := newTestLimiter(t, 1, time.Minute)

		rl.allow(ctx, "10.0.0.5")
		if rl.allow(ctx, "10.0.0.5") {
			t.Fatal("second request should be blocked")
		}

		mr.FastForward(2 * time.Minute)

		if !rl.allow(ctx, "10.0.0.5") {
			t.Error("request after window expiry should be allowed")
		}
	})

	t.Run("fails open when redis is down", func(t *testing.T) {
		rl, mr := newTestLimiter(t, 1, time.Minute)
		mr.Close()

		if !rl.allow(ctx, "10.0.0.6") {
			t.Error("request should be allowed when the backend is unreachable")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 1, time.Minute)

		rl.allow(ctx, "10.0.0.7")
		if err := rl.Reset(ctx); err != nil {
			t.Fatalf("reset failed: %v", err)
		}
		if !rl.allow(ctx, "10.0.0.7") {
			t.Error("request after reset should be allowed")
		}
	})
}
