package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/tenpin/bowling"
	"github.com/lox/tenpin/internal/lane"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	LaneTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	PlayerNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	FinishedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func laneStatusStyle(s lane.LaneStatus) lipgloss.Style {
	switch s {
	case lane.GameFinished:
		return FinishedStyle
	case lane.GameInProgress:
		return WarningStyle
	default:
		return InfoStyle
	}
}

func playerStatusStyle(s bowling.Status) lipgloss.Style {
	switch s {
	case bowling.Finished:
		return FinishedStyle
	case bowling.InProgress:
		return WarningStyle
	default:
		return InfoStyle
	}
}
