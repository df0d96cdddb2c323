package api

import (
	"context"

	"weather-finder/internal/domain/model"
	"weather-finder/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// GetForecast gets the 5 day / 3 hour forecast for a city.
	// encodedCity must already be escaped for use in a query string.
	GetForecast(ctx context.Context, encodedCity string) (*external.ForecastResponse, error)

	// Health reports whether the provider can be reached
	Health(ctx context.Context) model.ComponentHealthStatus
}
