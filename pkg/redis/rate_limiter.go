package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrementWindow counts a hit in the current window and arms its expiry on the first hit.
var incrementWindow = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter is a fixed-window limiter shared by every instance using the same Redis.
type RateLimiter struct {
	client    *Client
	namespace string
	limit     int
	window    time.Duration
	now       func() time.Time
}

// NewRateLimiter allows limit hits per key in each window
func NewRateLimiter(client *Client, namespace string, limit int, window time.Duration) (*RateLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit: %d, must be positive", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("invalid window: %v, must be positive", window)
	}

	return &RateLimiter{
		client:    client,
		namespace: namespace,
		limit:     limit,
		window:    window,
		now:       time.Now,
	}, nil
}

// Allow records a hit for key and reports whether it is within the limit
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := incrementWindow.Run(ctx, rl.client.GetClient(),
		[]string{rl.buildKey(key)},
		rl.window.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit window: %w", err)
	}

	return count <= int64(rl.limit), nil
}

// Ping checks the backing Redis server
func (rl *RateLimiter) Ping(ctx context.Context) error {
	return rl.client.Ping(ctx)
}

// Name identifies the limiter backend in health reports
func (rl *RateLimiter) Name() string {
	return "redis"
}

// buildKey constructs the full key using Namespace::key::window format
func (rl *RateLimiter) buildKey(key string) string {
	window := strconv.FormatInt(rl.now().UnixMilli()/rl.window.Milliseconds(), 10)
	if rl.namespace != "" {
		return rl.namespace + "::" + key + "::" + window
	}
	return key + "::" + window
}
