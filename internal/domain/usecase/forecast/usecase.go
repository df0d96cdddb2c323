package forecast

import (
	"context"
	"errors"

	"weather-finder/internal/domain/entity"
)

// ErrCityNotFound is the single failure kind surfaced to users. Transport
// failures, error statuses and malformed payloads all wrap it.
var ErrCityNotFound = errors.New("city not found")

type UseCase interface {
	// Lookup retrieves the forecast for an already query-escaped city name and
	// reduces it to one entry per day
	Lookup(ctx context.Context, encodedCity string) (*entity.Forecast, error)
}
