package widget

import (
	"slices"

	"weather-finder/pkg/msg"
)

// Mode is what the forecast area shows, in priority order.
type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeEmpty
	ModeForecast
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	case ModeEmpty:
		return "empty"
	default:
		return "forecast"
	}
}

// Card is one rendered day.
type Card struct {
	Key         int
	Icon        string
	Temperature string
	Description string
	Date        string
}

// View is everything a front-end needs to draw the widget.
type View struct {
	Mode        Mode
	Title       string
	Placeholder string
	SearchLabel string
	Input       string
	Loading     string
	Error       string
	Hint        string
	Header      string
	Cards       []Card
}

// NewView derives the view from a state. It has no side effects.
func NewView(state SearchState) View {
	view := View{
		Title:       msg.GetMessage("widget.title"),
		Placeholder: msg.GetMessage("widget.placeholder"),
		SearchLabel: msg.GetMessage("widget.search"),
		Input:       state.RawInput,
	}

	switch {
	case state.IsLoading:
		view.Mode = ModeLoading
		view.Loading = msg.GetMessage("widget.loading")
	case state.ErrorMessage != "":
		view.Mode = ModeError
		view.Error = state.ErrorMessage
	case len(state.Forecasts) == 0:
		view.Mode = ModeEmpty
		view.Hint = msg.GetMessage("widget.empty")
	default:
		view.Mode = ModeForecast
		view.Header = msg.GetMessage("widget.header", state.ResolvedCity, state.ResolvedCountry)
		view.Cards = make([]Card, 0, len(state.Forecasts))
		for _, entry := range state.Forecasts {
			view.Cards = append(view.Cards, Card{
				Key:         entry.SequenceIndex,
				Icon:        entry.IconReference,
				Temperature: msg.GetMessage("widget.temperature", entry.TemperatureCelsius),
				Description: entry.Description,
				Date:        entry.Label,
			})
		}
		slices.SortStableFunc(view.Cards, func(a, b Card) int { return a.Key - b.Key })
	}

	return view
}
