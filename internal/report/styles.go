package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/tenpin/internal/lane"
)

// Styles holds the lipgloss styles used for lane reports. They are bound to
// a renderer so the colour profile follows the destination.
type Styles struct {
	Finished   lipgloss.Style
	InProgress lipgloss.Style
	NoGame     lipgloss.Style
	Name       lipgloss.Style
	Score      lipgloss.Style
}

// NewStyles creates the report styles for renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Finished: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		InProgress: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		NoGame: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Name: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// Header returns the style for a lane header with the given status.
func (s Styles) Header(status lane.LaneStatus) lipgloss.Style {
	switch status {
	case lane.GameFinished:
		return s.Finished
	case lane.GameInProgress:
		return s.InProgress
	default:
		return s.NoGame
	}
}
