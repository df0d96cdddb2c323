package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sweepThreshold = 1024
	idleTTL        = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter is an in-process token bucket per key
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewMemoryLimiter refills requestsPerMinute tokens per minute, holding at most burst
func NewMemoryLimiter(requestsPerMinute, burst int) (*MemoryLimiter, error) {
	if requestsPerMinute <= 0 {
		return nil, fmt.Errorf("invalid requests per minute: %d, must be positive", requestsPerMinute)
	}
	if burst <= 0 {
		return nil, fmt.Errorf("invalid burst: %d, must be positive", burst)
	}

	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		now:      time.Now,
	}, nil
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		if len(l.visitors) >= sweepThreshold {
			l.sweep(now)
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1), nil
}

// sweep drops visitors idle for longer than idleTTL; callers hold mu
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.visitors, key)
		}
	}
}

func (l *MemoryLimiter) Ping(context.Context) error {
	return nil
}

func (l *MemoryLimiter) Name() string {
	return "memory"
}
