package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-finder/internal/domain/model"
	"weather-finder/internal/domain/model/external"
)

type fakeGateway struct {
	status model.HealthStatus
}

func (f fakeGateway) GetForecast(context.Context, string) (*external.ForecastResponse, error) {
	return nil, errors.New("not used")
}

func (f fakeGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status, Details: map[string]string{}}
}

type fakeLimiter struct {
	pingErr error
}

func (f fakeLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
func (f fakeLimiter) Ping(context.Context) error                 { return f.pingErr }
func (f fakeLimiter) Name() string                               { return "fake" }

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		provider model.HealthStatus
		pingErr  error
		want     model.HealthStatus
		limiter  model.HealthStatus
	}{
		{name: "all up", provider: model.StatusUp, want: model.StatusUp, limiter: model.StatusUp},
		{name: "provider down", provider: model.StatusDown, want: model.StatusDown, limiter: model.StatusUp},
		{name: "limiter down", provider: model.StatusUp, pingErr: errors.New("connection refused"), want: model.StatusDown, limiter: model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewHealthUseCase(fakeGateway{status: tt.provider}, fakeLimiter{pingErr: tt.pingErr})

			got := uc.CheckHealth(context.Background())

			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.provider, got.Provider.Status)
			assert.Equal(t, tt.limiter, got.RateLimiter.Status)
			assert.Equal(t, "fake", got.RateLimiter.Details["backend"])
		})
	}
}

func TestCheckHealthWithoutLimiter(t *testing.T) {
	got := NewHealthUseCase(fakeGateway{status: model.StatusUp}, nil).CheckHealth(context.Background())

	assert.Equal(t, model.StatusDown, got.Status)
	assert.Equal(t, model.StatusUnknown, got.RateLimiter.Status)
}
