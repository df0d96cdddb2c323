package external

// ForecastResponse represents the response from the OpenWeatherMap 5 day / 3 hour forecast API
type ForecastResponse struct {
	Cod     string           `json:"cod"`
	Cnt     int              `json:"cnt"`
	List    []ForecastSample `json:"list"`
	City    *ForecastCity    `json:"city"`
	Message any              `json:"message,omitempty"`
}

// ForecastSample represents a single 3 hour forecast reading
type ForecastSample struct {
	Dt      int64              `json:"dt"`
	Main    ForecastMain       `json:"main"`
	Weather []WeatherCondition `json:"weather"`
	DtTxt   string             `json:"dt_txt"`
}

// ForecastMain holds the temperature block of a sample, in the requested units
type ForecastMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// WeatherCondition represents a weather condition of a sample
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ForecastCity represents the city metadata of a forecast response
type ForecastCity struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// APIErrorResponse represents error responses from the OpenWeatherMap API.
// Cod is a string or a number depending on the endpoint.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
