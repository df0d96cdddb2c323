package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-finder/internal/domain/model"
	httpclient "weather-finder/pkg/http"
)

const forecastBody = `{
  "cod": "200",
  "cnt": 2,
  "list": [
    {"dt": 1700000000, "main": {"temp": 21.6}, "weather": [{"description": "light rain", "icon": "10d"}]},
    {"dt": 1700010800, "main": {"temp": 19.2}, "weather": [{"description": "clear sky", "icon": "01n"}]}
  ],
  "city": {"name": "São Paulo", "country": "BR"}
}`

func TestGetForecastBuildsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
		assert.Equal(t, "appid=test-key&q=S%C3%A3o+Paulo&units=metric", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	gateway := NewWeatherGateway(server.URL, "test-key", httpclient.ClientOptions{})
	response, err := gateway.GetForecast(context.Background(), url.QueryEscape("São Paulo"))

	require.NoError(t, err)
	assert.Equal(t, 2, response.Cnt)
	assert.Equal(t, "São Paulo", response.City.Name)
	assert.Equal(t, "BR", response.City.Country)
	require.Len(t, response.List, 2)
	assert.Equal(t, 21.6, response.List[0].Main.Temp)
	assert.Equal(t, "10d", response.List[0].Weather[0].Icon)
}

func TestGetForecastErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	gateway := NewWeatherGateway(server.URL, "test-key", httpclient.ClientOptions{})
	response, err := gateway.GetForecast(context.Background(), "Atlantis")

	require.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "city not found")
}

func TestGetForecastUnauthorizedWithNumericCod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	gateway := NewWeatherGateway(server.URL, "bad-key", httpclient.ClientOptions{})
	_, err := gateway.GetForecast(context.Background(), "Rome")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestGetForecastMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing city", `{"cnt": 1, "list": []}`},
		{"missing list", `{"cnt": 1, "city": {"name": "Rome"}}`},
		{"invalid json", `{"cnt": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			gateway := NewWeatherGateway(server.URL, "test-key", httpclient.ClientOptions{})
			response, err := gateway.GetForecast(context.Background(), "Rome")

			require.Error(t, err)
			assert.Nil(t, response)
		})
	}
}

func TestGetForecastHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gateway := NewWeatherGateway(server.URL, "test-key", httpclient.ClientOptions{})
	_, err := gateway.GetForecast(ctx, "Rome")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	gateway := NewWeatherGateway(server.URL, "test-key", httpclient.ClientOptions{})
	health := gateway.Health(context.Background())
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "401", health.Details["status"])

	server.Close()
	health = gateway.Health(context.Background())
	assert.Equal(t, model.StatusDown, health.Status)
	assert.NotEmpty(t, health.Details["error"])
}
