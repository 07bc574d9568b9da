// Package tui shows scored lanes as a live terminal board.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/tenpin/internal/lane"
)

// LanesMsg carries a freshly scored set of lanes.
type LanesMsg struct {
	Lanes []lane.Lane
}

// ErrMsg reports a failed load. The board keeps showing the last good lanes.
type ErrMsg struct {
	Err error
}

// BoardModel is the Bubble Tea model for the lane board
type BoardModel struct {
	title  string
	logger *log.Logger

	viewport viewport.Model
	lanes    []lane.Lane
	lastErr  error
	updates  int
	quitting bool

	width       int
	height      int
	initialized bool
}

// NewBoardModel creates a board titled with the watched directory.
func NewBoardModel(title string, logger *log.Logger) *BoardModel {
	// Sized properly once WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	return &BoardModel{
		title:    title,
		logger:   logger.WithPrefix("tui"),
		viewport: vp,
	}
}

func (m *BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages in the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LanesMsg:
		m.lanes = msg.Lanes
		m.lastErr = nil
		m.updates++
		m.viewport.SetContent(m.renderLanes())

	case ErrMsg:
		m.lastErr = msg.Err

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "home", "g":
			m.viewport.GotoTop()
		case "end", "G":
			m.viewport.GotoBottom()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *BoardModel) resize() {
	w := m.width - 2
	h := m.height - 4 // header, footer and border
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.viewport.Width = w
	m.viewport.Height = h

	if !m.initialized && w > 1 && h > 1 {
		m.viewport.GotoTop()
		m.initialized = true
	}
}

// View renders the board
func (m *BoardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render(fmt.Sprintf(" tenpin: %s ", m.title))

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(m.viewport.Width).
		Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
}

func (m *BoardModel) renderFooter() string {
	if m.lastErr != nil {
		return ErrorStyle.Render("error: " + m.lastErr.Error())
	}
	return InfoStyle.Render(fmt.Sprintf("%d lanes, %d updates, q to quit", len(m.lanes), m.updates))
}

func (m *BoardModel) renderLanes() string {
	if len(m.lanes) == 0 {
		return InfoStyle.Render("Waiting for lanes...")
	}

	nameWidth := 0
	for _, l := range m.lanes {
		for _, p := range l.Players {
			nameWidth = max(nameWidth, lipgloss.Width(p.Name))
		}
	}

	var b strings.Builder
	for i, l := range m.lanes {
		if i > 0 {
			b.WriteString("\n")
		}
		status := l.Summary()
		b.WriteString(LaneTitleStyle.Render(fmt.Sprintf("Lane %d", l.Number)))
		b.WriteString(InfoStyle.Render(" " + l.Source + " "))
		b.WriteString(laneStatusStyle(status).Render(status.String()))
		b.WriteString("\n")

		for _, p := range l.Players {
			name := PlayerNameStyle.Render(p.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(p.Name)))
			fmt.Fprintf(&b, "  %s %s  frame %2d  pins %3d  %s\n",
				name,
				ScoreStyle.Render(fmt.Sprintf("%3d", p.Score)),
				p.Progress.Current(),
				p.Pinfall(),
				playerStatusStyle(p.Status).Render(p.Status.String()),
			)
		}
	}
	return b.String()
}
