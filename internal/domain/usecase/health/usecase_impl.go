package health

import (
	"context"

	"weather-finder/internal/domain/gateway/api"
	"weather-finder/internal/domain/model"
	"weather-finder/pkg/ratelimit"
)

type healthUseCase struct {
	apiGateway api.WeatherGateway
	limiter    ratelimit.Limiter
}

func NewHealthUseCase(apiGateway api.WeatherGateway, limiter ratelimit.Limiter) UseCase {
	return &healthUseCase{
		apiGateway: apiGateway,
		limiter:    limiter,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	providerHealth := useCase.apiGateway.Health(ctx)
	limiterHealth := useCase.limiterHealth(ctx)

	overallStatus := model.StatusUp
	if providerHealth.Status != model.StatusUp || limiterHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Provider:    providerHealth,
		RateLimiter: limiterHealth,
	}
}

func (useCase *healthUseCase) limiterHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.limiter == nil {
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: map[string]string{}}
	}

	details := map[string]string{"backend": useCase.limiter.Name()}
	if err := useCase.limiter.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
