package forecast

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-finder/internal/domain/gateway/api"
	"weather-finder/internal/domain/model"
	"weather-finder/internal/domain/model/external"
	httpclient "weather-finder/pkg/http"
)

// Wednesday 2026-10-14 09:30 UTC
var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

type fakeGateway struct {
	response *external.ForecastResponse
	err      error
	calls    []string
}

func (g *fakeGateway) GetForecast(_ context.Context, encodedCity string) (*external.ForecastResponse, error) {
	g.calls = append(g.calls, encodedCity)
	return g.response, g.err
}

func (g *fakeGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

var _ api.WeatherGateway = (*fakeGateway)(nil)

// fiveDayResponse returns 40 samples 3 hours apart starting at start.
func fiveDayResponse(start time.Time) *external.ForecastResponse {
	response := &external.ForecastResponse{
		Cnt:  40,
		City: &external.ForecastCity{Name: "London", Country: "GB"},
	}
	for i := 0; i < 40; i++ {
		response.List = append(response.List, external.ForecastSample{
			Dt:      start.Add(time.Duration(i) * 3 * time.Hour).Unix(),
			Main:    external.ForecastMain{Temp: float64(i) + 0.6},
			Weather: []external.WeatherCondition{{Description: "light rain", Icon: "10d"}},
		})
	}
	return response
}

func TestTransformTakesOneSamplePerDay(t *testing.T) {
	forecast := Transform(fiveDayResponse(fixedNow), fixedNow, DefaultIconBaseURL)

	assert.Equal(t, "London", forecast.City)
	assert.Equal(t, "GB", forecast.Country)
	require.Len(t, forecast.Entries, 5)

	labels := []string{"Today", "Tomorrow", "Friday", "Saturday", "Sunday"}
	for i, entry := range forecast.Entries {
		assert.Equal(t, i, entry.SequenceIndex)
		assert.Equal(t, labels[i], entry.Label)
		// sample index i*8 has temp i*8 + 0.6
		assert.Equal(t, i*8+1, entry.TemperatureCelsius)
		assert.Equal(t, "Light Rain", entry.Description)
		assert.Equal(t, "https://openweathermap.org/img/wn/10d.png", entry.IconReference)
	}
	for i := 1; i < len(forecast.Entries); i++ {
		assert.True(t, forecast.Entries[i].Timestamp.After(forecast.Entries[i-1].Timestamp))
	}
}

func TestTransformRespectsCnt(t *testing.T) {
	response := fiveDayResponse(fixedNow)
	response.Cnt = 9
	assert.Len(t, Transform(response, fixedNow, DefaultIconBaseURL).Entries, 2)

	response.Cnt = 100
	assert.Len(t, Transform(response, fixedNow, DefaultIconBaseURL).Entries, 5)

	response.Cnt = 0
	assert.Empty(t, Transform(response, fixedNow, DefaultIconBaseURL).Entries)
}

func TestTransformRounding(t *testing.T) {
	response := &external.ForecastResponse{
		Cnt:  9,
		City: &external.ForecastCity{Name: "Oslo", Country: "NO"},
	}
	for i := 0; i < 9; i++ {
		response.List = append(response.List, external.ForecastSample{Dt: fixedNow.Unix()})
	}
	response.List[0].Main.Temp = 21.6
	response.List[8].Main.Temp = 21.4

	forecast := Transform(response, fixedNow, DefaultIconBaseURL)

	require.Len(t, forecast.Entries, 2)
	assert.Equal(t, 22, forecast.Entries[0].TemperatureCelsius)
	assert.Equal(t, 21, forecast.Entries[1].TemperatureCelsius)
}

func TestTransformSampleWithoutWeather(t *testing.T) {
	response := &external.ForecastResponse{
		Cnt:  1,
		City: &external.ForecastCity{Name: "Oslo"},
		List: []external.ForecastSample{{Dt: fixedNow.Unix(), Main: external.ForecastMain{Temp: -0.5}}},
	}

	forecast := Transform(response, fixedNow, "https://icons.example/")

	require.Len(t, forecast.Entries, 1)
	assert.Equal(t, "", forecast.Entries[0].Description)
	assert.Equal(t, "", forecast.Entries[0].IconReference)
	assert.Equal(t, 0, forecast.Entries[0].TemperatureCelsius)
	assert.Equal(t, "", forecast.Country)
}

func TestTransformNilResponse(t *testing.T) {
	forecast := Transform(nil, fixedNow, DefaultIconBaseURL)
	assert.NotNil(t, forecast.Entries)
	assert.Empty(t, forecast.Entries)
}

func TestDateLabel(t *testing.T) {
	today := midnight(fixedNow)

	tests := []struct {
		name   string
		sample time.Time
		want   string
	}{
		{"now", fixedNow, "Today"},
		{"late today", today.Add(23*time.Hour + 59*time.Minute), "Today"},
		{"midnight plus 24h", today.Add(24 * time.Hour), "Tomorrow"},
		{"end of tomorrow", today.Add(47 * time.Hour), "Tomorrow"},
		{"three days ahead", fixedNow.AddDate(0, 0, 3), "Saturday"},
		{"two days ahead", today.Add(48 * time.Hour), "Friday"},
		{"yesterday", fixedNow.Add(-24 * time.Hour), ""},
		{"just before midnight", today.Add(-time.Minute), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateLabel(tt.sample, fixedNow))
		})
	}
}

func TestDateLabelUsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, time.October, 14, 23, 0, 0, 0, tokyo)

	// 2026-10-14 15:30 UTC is 2026-10-15 00:30 in Tokyo
	sample := time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, "Tomorrow", DateLabel(sample, now))
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "https://openweathermap.org/img/wn/01n.png", IconURL("https://openweathermap.org/img/wn/", "01n"))
	assert.Equal(t, "", IconURL(DefaultIconBaseURL, ""))
}

func TestLookupSuccess(t *testing.T) {
	gateway := &fakeGateway{response: fiveDayResponse(fixedNow)}
	useCase := NewForecastUseCase(gateway,
		WithClock(func() time.Time { return fixedNow }),
		WithIconBaseURL("https://icons.example/img/"))

	forecast, err := useCase.Lookup(context.Background(), "S%C3%A3o+Paulo")

	require.NoError(t, err)
	assert.Equal(t, []string{"S%C3%A3o+Paulo"}, gateway.calls)
	require.Len(t, forecast.Entries, 5)
	assert.Equal(t, "https://icons.example/img/10d.png", forecast.Entries[0].IconReference)
}

func TestLookupFailureWrapsCityNotFound(t *testing.T) {
	cause := errors.New("connection refused")
	gateway := &fakeGateway{err: cause}
	useCase := NewForecastUseCase(gateway)

	forecast, err := useCase.Lookup(context.Background(), "Atlantis")

	assert.Nil(t, forecast)
	assert.ErrorIs(t, err, ErrCityNotFound)
	assert.ErrorIs(t, err, cause)
}

func TestLookupAgainstProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Paris" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cod":"200","cnt":1,"city":{"name":"Paris","country":"FR"},
			"list":[{"dt":` + strconv.FormatInt(fixedNow.Unix(), 10) + `,"main":{"temp":12.5},"weather":[{"description":"overcast clouds","icon":"04d"}]}]}`))
	}))
	defer server.Close()

	useCase := NewForecastUseCase(
		api.NewWeatherGateway(server.URL, "key", httpclient.ClientOptions{}),
		WithClock(func() time.Time { return fixedNow }))

	forecast, err := useCase.Lookup(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", forecast.City)
	assert.Equal(t, "FR", forecast.Country)
	require.Len(t, forecast.Entries, 1)
	assert.Equal(t, "Today", forecast.Entries[0].Label)
	assert.Equal(t, 13, forecast.Entries[0].TemperatureCelsius)
	assert.Equal(t, "Overcast Clouds", forecast.Entries[0].Description)

	_, err = useCase.Lookup(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, ErrCityNotFound)
}
