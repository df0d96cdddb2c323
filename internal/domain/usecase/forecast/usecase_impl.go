package forecast

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-finder/internal/domain/entity"
	"weather-finder/internal/domain/gateway/api"
	"weather-finder/internal/domain/model/external"
	"weather-finder/pkg/log"
	"weather-finder/pkg/msg"
	"weather-finder/pkg/util/numberutils"
	"weather-finder/pkg/util/stringutils"
)

// SamplesPerDay is the number of 3 hour samples in 24 hours.
const SamplesPerDay = 8

const DefaultIconBaseURL = "https://openweathermap.org/img/wn"

type forecastUseCase struct {
	apiGateway  api.WeatherGateway
	iconBaseURL string
	now         func() time.Time
}

// Option customizes the forecast use case.
type Option func(*forecastUseCase)

// WithIconBaseURL sets the base URL icons are resolved against.
func WithIconBaseURL(baseURL string) Option {
	return func(uc *forecastUseCase) {
		if baseURL != "" {
			uc.iconBaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(uc *forecastUseCase) {
		uc.now = now
	}
}

func NewForecastUseCase(apiGateway api.WeatherGateway, opts ...Option) UseCase {
	uc := &forecastUseCase{
		apiGateway:  apiGateway,
		iconBaseURL: DefaultIconBaseURL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Lookup retrieves and transforms the forecast for a city
func (uc *forecastUseCase) Lookup(ctx context.Context, encodedCity string) (*entity.Forecast, error) {
	requestID := uuid.New().String()
	city := decodeForLog(encodedCity)
	start := time.Now()

	log.Info(msg.GetMessage("forecast.lookup-start", city),
		zap.String("request_id", requestID),
		zap.String("city", city))

	response, err := uc.apiGateway.GetForecast(ctx, encodedCity)
	if err != nil {
		log.Warn(msg.GetMessage("forecast.lookup-fail", city, err),
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCityNotFound, err)
	}

	forecast := Transform(response, uc.now(), uc.iconBaseURL)

	log.Info(msg.GetMessage("forecast.lookup-success", city, forecast.City, forecast.Country, len(forecast.Entries)),
		zap.String("request_id", requestID),
		zap.String("city", city),
		zap.Duration("latency", time.Since(start)))

	return forecast, nil
}

// Transform keeps one sample per day, starting with the first, and formats it as a ForecastEntry.
func Transform(response *external.ForecastResponse, now time.Time, iconBaseURL string) *entity.Forecast {
	forecast := &entity.Forecast{Entries: []entity.ForecastEntry{}}
	if response == nil {
		return forecast
	}

	if response.City != nil {
		forecast.City = response.City.Name
		forecast.Country = response.City.Country
	}

	limit := min(response.Cnt, len(response.List))
	for i, j := 0, 0; i < limit; i, j = i+SamplesPerDay, j+1 {
		sample := response.List[i]
		timestamp := time.Unix(sample.Dt, 0).In(now.Location())

		entry := entity.ForecastEntry{
			SequenceIndex:      j,
			Label:              DateLabel(timestamp, now),
			TemperatureCelsius: numberutils.RoundHalfUp(sample.Main.Temp),
			Timestamp:          timestamp,
		}
		if len(sample.Weather) > 0 {
			entry.Description = stringutils.CapitalizeEachWord(sample.Weather[0].Description)
			entry.IconReference = IconURL(iconBaseURL, sample.Weather[0].Icon)
		}

		forecast.Entries = append(forecast.Entries, entry)
	}

	return forecast
}

// DateLabel names a sample's day relative to now: "Today", "Tomorrow" or the weekday.
// Days before today get an empty label.
func DateLabel(sample time.Time, now time.Time) string {
	sample = sample.In(now.Location())
	sampleDay := midnight(sample)
	today := midnight(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch {
	case sampleDay.Equal(today):
		return "Today"
	case sampleDay.Equal(tomorrow):
		return "Tomorrow"
	case sampleDay.After(tomorrow):
		return sample.Weekday().String()
	default:
		return ""
	}
}

// IconURL resolves an icon code to its PNG on the icon host.
func IconURL(baseURL string, icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s.png", strings.TrimRight(baseURL, "/"), icon)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func decodeForLog(encodedCity string) string {
	if decoded, err := url.QueryUnescape(encodedCity); err == nil {
		return decoded
	}
	return encodedCity
}
