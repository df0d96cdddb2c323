package tui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 20

type Style struct {
	Title  lipgloss.Style
	Input  lipgloss.Style
	Header lipgloss.Style
	Card   lipgloss.Style
	Temp   lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyles() *Style {
	accent := lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	border := lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}

	return &Style{
		Title: lipgloss.NewStyle().Bold(true).Padding(0, 1).MarginBottom(1),
		Input: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Header: lipgloss.NewStyle().Bold(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent).
			Padding(0, 1).
			MarginTop(1),
		Card: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(cardWidth).
			Padding(0, 1).
			Align(lipgloss.Center),
		Temp:  lipgloss.NewStyle().Bold(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}).MarginTop(1),
		Hint:  lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Help:  lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
