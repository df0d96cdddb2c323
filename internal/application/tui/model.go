// Package tui is the interactive terminal front-end of the widget.
package tui

import (
	"context"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weather-finder/internal/application/widget"
	"weather-finder/internal/domain/usecase/forecast"
	"weather-finder/pkg/msg"
)

// retrievalMsg carries a finished lookup back into the event loop.
type retrievalMsg widget.Result

type Model struct {
	ctx     context.Context
	useCase forecast.UseCase

	state   widget.SearchState
	input   textinput.Model
	spinner spinner.Model
	keyMap  KeyMap
	style   *Style
	width   int
}

func New(ctx context.Context, useCase forecast.UseCase) Model {
	m := Model{
		ctx:     ctx,
		useCase: useCase,
		keyMap:  DefaultKeyMap,
		style:   DefaultStyles(),
	}

	m.input = textinput.New()
	m.input.Placeholder = msg.GetMessage("widget.placeholder")
	m.input.Width = 40
	m.input.Focus()

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))

	return m
}

// State returns a copy of the search state.
func (m Model) State() widget.SearchState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Search):
			m.state.SetInput(m.input.Value())
			if !m.state.Commit() {
				return m, nil
			}
			m.input.SetValue("")
			m.state.BeginRetrieval()
			return m, tea.Batch(m.retrieve(m.state.ActiveCity), m.spinner.Tick)

		default:
			m.input, cmd = m.input.Update(msg)
			m.state.SetInput(m.input.Value())
			return m, cmd
		}

	case retrievalMsg:
		// Results are applied in arrival order; the last one to arrive wins.
		m.state.Apply(widget.Result(msg))
		return m, nil

	case spinner.TickMsg:
		if !m.state.IsLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// retrieve runs the lookup off the event loop. Pending lookups are never cancelled.
func (m Model) retrieve(activeCity string) tea.Cmd {
	ctx, useCase := m.ctx, m.useCase
	return func() tea.Msg {
		return retrievalMsg(widget.Retrieve(ctx, useCase, activeCity))
	}
}

func (m Model) View() string {
	view := widget.NewView(m.state)

	var b strings.Builder
	b.WriteString(m.style.Title.Render(view.Title))
	b.WriteString("\n")
	b.WriteString(m.style.Input.Render(m.input.View()))
	b.WriteString("\n")

	switch view.Mode {
	case widget.ModeLoading:
		b.WriteString(m.style.Hint.Render(m.spinner.View() + " " + view.Loading))
	case widget.ModeError:
		b.WriteString(m.style.Error.Render(view.Error))
	case widget.ModeEmpty:
		b.WriteString(m.style.Hint.Render(view.Hint))
	case widget.ModeForecast:
		b.WriteString(m.style.Header.Render(view.Header))
		b.WriteString("\n")
		b.WriteString(m.renderCards(view.Cards))
	}

	b.WriteString("\n")
	b.WriteString(m.style.Help.Render(msg.GetMessage("widget.help")))
	b.WriteString("\n")
	return b.String()
}

// RenderResult renders the outcome of a finished search without the input line.
func RenderResult(style *Style, view widget.View, width int) string {
	switch view.Mode {
	case widget.ModeError:
		return style.Error.Render(view.Error)
	case widget.ModeForecast:
		return style.Header.Render(view.Header) + "\n" + RenderCards(style, view.Cards, width)
	default:
		return style.Hint.Render(view.Hint)
	}
}

func (m Model) renderCards(cards []widget.Card) string {
	return RenderCards(m.style, cards, m.width)
}

// RenderCards lays the cards out in rows that fit width. A zero width puts them on one row.
func RenderCards(style *Style, cards []widget.Card, width int) string {
	perRow := len(cards)
	if width > 0 {
		cardTotal := cardWidth + style.Card.GetHorizontalFrameSize()
		perRow = max(1, width/cardTotal)
	}

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		body := strings.Join([]string{
			iconGlyph(card.Icon) + "  " + style.Temp.Render(card.Temperature),
			card.Description,
			card.Date,
		}, "\n")
		rendered = append(rendered, style.Card.Render(body))
	}

	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// iconGlyph maps an OpenWeatherMap icon URL (".../10d.png") to a terminal glyph.
func iconGlyph(iconURL string) string {
	code := strings.TrimSuffix(path.Base(iconURL), ".png")
	if len(code) < 2 {
		return "?"
	}

	switch code[:2] {
	case "01":
		return "☀"
	case "02":
		return "⛅"
	case "03", "04":
		return "☁"
	case "09", "10":
		return "☂"
	case "11":
		return "⚡"
	case "13":
		return "❄"
	case "50":
		return "≋"
	default:
		return "?"
	}
}
