package entity

import "time"

// ForecastEntry is one day card derived from a forecast sample
type ForecastEntry struct {
	SequenceIndex      int       `json:"sequenceIndex"`
	Label              string    `json:"label"`
	TemperatureCelsius int       `json:"temperatureCelsius"`
	Description        string    `json:"description"`
	IconReference      string    `json:"iconReference"`
	Timestamp          time.Time `json:"timestamp"`
}

// Forecast is the result of one successful lookup
type Forecast struct {
	City    string          `json:"city"`
	Country string          `json:"country"`
	Entries []ForecastEntry `json:"forecasts"`
}
