// Package widget holds the search state shared by the terminal and web front-ends,
// the operations that mutate it and the view derived from it.
package widget

import (
	"context"
	"net/url"
	"strings"

	"weather-finder/internal/domain/entity"
	"weather-finder/internal/domain/usecase/forecast"
	"weather-finder/pkg/msg"
)

// SearchState is owned by a single front-end and only changed through its methods.
type SearchState struct {
	RawInput        string
	ActiveCity      string
	ResolvedCity    string
	ResolvedCountry string
	IsLoading       bool
	ErrorMessage    string
	Forecasts       []entity.ForecastEntry
}

// Result is the outcome of one retrieval.
type Result struct {
	ActiveCity string
	Forecast   *entity.Forecast
	Err        error
}

// SetInput replaces the text in the input field.
func (s *SearchState) SetInput(text string) {
	s.RawInput = text
}

// Commit turns the current input into the active city. It reports false and
// leaves the state alone when the input is blank.
func (s *SearchState) Commit() bool {
	city := strings.TrimSpace(s.RawInput)
	if city == "" {
		return false
	}

	s.ActiveCity = url.QueryEscape(city)
	s.RawInput = ""
	return true
}

// BeginRetrieval marks a retrieval as in flight.
func (s *SearchState) BeginRetrieval() {
	s.IsLoading = true
	s.ErrorMessage = ""
}

// Apply stores the outcome of a retrieval. Forecasts are replaced wholesale on
// success and kept on failure. Loading always ends.
func (s *SearchState) Apply(result Result) {
	defer func() { s.IsLoading = false }()

	if result.Err != nil || result.Forecast == nil {
		s.ErrorMessage = msg.GetMessage("forecast.city-not-found")
		return
	}

	s.ResolvedCity = result.Forecast.City
	s.ResolvedCountry = result.Forecast.Country
	s.Forecasts = append([]entity.ForecastEntry(nil), result.Forecast.Entries...)
}

// Retrieve runs one lookup for an active city. It blocks until the use case returns.
func Retrieve(ctx context.Context, useCase forecast.UseCase, activeCity string) Result {
	found, err := useCase.Lookup(ctx, activeCity)
	return Result{ActiveCity: activeCity, Forecast: found, Err: err}
}

// Search commits the input and, when that succeeds, retrieves the forecast synchronously.
func (s *SearchState) Search(ctx context.Context, useCase forecast.UseCase) bool {
	if !s.Commit() {
		return false
	}
	s.BeginRetrieval()
	s.Apply(Retrieve(ctx, useCase, s.ActiveCity))
	return true
}
