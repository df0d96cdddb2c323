package ratelimit

import (
	"time"

	"weather-finder/pkg/redis"
)

var _ Limiter = (*redis.RateLimiter)(nil)

// NewRedisLimiter shares a fixed one-minute window across every instance pointed at the same server
func NewRedisLimiter(client *redis.Client, namespace string, requestsPerMinute int) (Limiter, error) {
	return redis.NewRateLimiter(client, namespace, requestsPerMinute, time.Minute)
}
