package main

import (
	"fmt"
	"io"
	"time"

	"weather-finder/configs"
	"weather-finder/internal/domain/gateway/api"
	"weather-finder/internal/domain/usecase/forecast"
	"weather-finder/internal/domain/usecase/health"
	"weather-finder/pkg/http"
	"weather-finder/pkg/log"
	"weather-finder/pkg/msg"
	"weather-finder/pkg/ratelimit"
	"weather-finder/pkg/redis"
	"weather-finder/pkg/resource"
	"weather-finder/pkg/util/numberutils"
)

type application struct {
	weatherGateway  api.WeatherGateway
	forecastUseCase forecast.UseCase
}

// loadConfig reads the properties and messages, from the embedded files unless a path overrides them
func loadConfig() error {
	if err := configs.Env.Validate(); err != nil {
		return err
	}

	if configs.Env.PropertiesPath != "" {
		if err := resource.Init(configs.Env.PropertiesPath); err != nil {
			return err
		}
	} else if err := resource.Load(configs.Application); err != nil {
		return err
	}

	if configs.Env.MessagesPath != "" {
		return msg.Init(configs.Env.MessagesPath)
	}
	return msg.Load(configs.Messages)
}

func setupLogger(output io.Writer) {
	log.Setup(log.Options{
		ApplicationName: configs.Env.ApplicationName,
		Level:           configs.Env.LogLevel,
		Output:          output,
	})
}

func newApplication() (*application, error) {
	baseURL := resource.GetString("weather.base-url")
	if baseURL == "" {
		return nil, fmt.Errorf("weather.base-url is not set")
	}

	weatherGateway := api.NewWeatherGateway(baseURL, configs.Env.WeatherAPIKey, http.ClientOptions{
		ConnectionTimeout: durationOrDefault("weather.http.connection-timeout", 10*time.Second),
		ReadTimeout:       durationOrDefault("weather.http.read-timeout", 30*time.Second),
	})

	forecastUseCase := forecast.NewForecastUseCase(weatherGateway,
		forecast.WithIconBaseURL(resource.GetString("weather.icon-base-url")))

	return &application{
		weatherGateway:  weatherGateway,
		forecastUseCase: forecastUseCase,
	}, nil
}

func (app *application) healthUseCase(limiter ratelimit.Limiter) health.UseCase {
	return health.NewHealthUseCase(app.weatherGateway, limiter)
}

// newLimiter builds the search rate limiter selected by ratelimit.backend
func newLimiter() (ratelimit.Limiter, func() error, error) {
	requestsPerMinute := resource.GetInt("ratelimit.requests-per-minute")
	if !numberutils.IsIntPositive(requestsPerMinute) {
		return nil, nil, fmt.Errorf("ratelimit.requests-per-minute must be positive, got %d", requestsPerMinute)
	}

	switch backend := resource.GetStringOrDefault("ratelimit.backend", "memory"); backend {
	case "memory":
		limiter, err := ratelimit.NewMemoryLimiter(requestsPerMinute, resource.GetInt("ratelimit.burst"))
		return limiter, func() error { return nil }, err
	case "redis":
		config := redis.NewRedisConfig().
			WithHost(resource.GetString("redis.host")).
			WithPort(numberutils.ToIntWithDefault(resource.GetString("redis.port"), 6379)).
			WithPassword(resource.GetString("redis.password")).
			WithDatabase(numberutils.ToIntWithDefault(resource.GetString("redis.database"), 0))

		client, err := redis.NewClient(config)
		if err != nil {
			return nil, nil, err
		}

		limiter, err := ratelimit.NewRedisLimiter(client, resource.GetString("ratelimit.namespace"), requestsPerMinute)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return limiter, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown ratelimit.backend %q", backend)
	}
}

func durationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := resource.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}
