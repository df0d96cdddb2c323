package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"weather-finder/internal/domain/model"
	"weather-finder/internal/domain/model/external"
	"weather-finder/pkg/http"
)

const (
	forecastPath = "/data/2.5/forecast"
	metricUnits  = "metric"
)

// ErrMalformedResponse is returned when a 2xx forecast body lacks the city or sample list.
var ErrMalformedResponse = errors.New("malformed forecast response")

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeatherMap
type weatherGatewayImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapHTTPLogger("appid")
	}

	return &weatherGatewayImpl{
		baseURL:    baseUrl,
		apiKey:     apiKey,
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetForecast gets the forecast for a city, with temperatures in Celsius
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, encodedCity string) (*external.ForecastResponse, error) {
	queryParams := map[string]string{
		"q":     encodedCity,
		"appid": url.QueryEscape(w.apiKey),
		"units": metricUnits,
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(queryParams).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.ForecastResponse)
		if response.City == nil || response.List == nil {
			return nil, ErrMalformedResponse
		}
		return response, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		return nil, fmt.Errorf("weather provider returned status %d: %s: %w", status, errorResponse.Message, err)
	}

	return nil, fmt.Errorf("weather provider request failed: %w", err)
}

// Health sends a HEAD request to the provider; any HTTP answer counts as reachable
func (w *weatherGatewayImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	_, _, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.HEAD).
		WithPath("/").
		Execute()

	details := map[string]string{"baseUrl": w.baseURL}
	if status == 0 && err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["status"] = strconv.Itoa(status)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
