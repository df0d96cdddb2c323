package ratelimit

import "context"

// Limiter decides whether a caller identified by key may perform another search
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
	Name() string
}
