package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(0).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	assert.Equal(t, "cache:6380", NewRedisConfig().WithHost("cache").WithPort(6380).Addr())
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithPort(70000))
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewRateLimiterValidation(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)
	defer client.Close()

	_, err = NewRateLimiter(nil, "ns", 1, time.Minute)
	assert.Error(t, err)
	_, err = NewRateLimiter(client, "ns", 0, time.Minute)
	assert.Error(t, err)
	_, err = NewRateLimiter(client, "ns", 1, 0)
	assert.Error(t, err)
}

func TestBuildKey(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)
	defer client.Close()

	limiter, err := NewRateLimiter(client, "weather_finder", 5, time.Minute)
	require.NoError(t, err)
	limiter.now = func() time.Time { return time.UnixMilli(120_000) }

	assert.Equal(t, "weather_finder::10.0.0.1::2", limiter.buildKey("10.0.0.1"))
	limiter.namespace = ""
	assert.Equal(t, "10.0.0.1::2", limiter.buildKey("10.0.0.1"))
}

// TestAllowAgainstServer needs a live server, e.g. REDIS_TEST_HOST=localhost.
func TestAllowAgainstServer(t *testing.T) {
	host := os.Getenv("REDIS_TEST_HOST")
	if host == "" {
		t.Skip("REDIS_TEST_HOST not set")
	}

	client, err := NewClient(NewRedisConfig().WithHost(host))
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx))

	limiter, err := NewRateLimiter(client, "weather_finder_test", 2, time.Minute)
	require.NoError(t, err)

	key := uuid.New().String()
	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed)
}
