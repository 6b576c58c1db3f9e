// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/expenso/backend/internal/domain/error"
	"github.com/expenso/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:login:"
)

// RateLimiter provides IP-based fixed-window rate limiting backed by Redis.
// When Redis is unreachable requests are allowed through.
type RateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(client, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	redisKey := rateLimitKeyPrefix + key

	attempts, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("Rate limiter unavailable, allowing request", "error", err)
		return true
	}

	if attempts == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Warn("Failed to set rate limit window", "error", err)
		}
	}

	return attempts <= int64(rl.maxAttempts)
}

// Reset clears all rate limit state (useful for testing).
func (rl *RateLimiter) Reset(ctx context.Context) error {
	iter := rl.client.Scan(ctx, 0, rateLimitKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := rl.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
