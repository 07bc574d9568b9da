package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/tenpin/internal/lane"
)

// Sender is the part of *tea.Program the reporter needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Reporter forwards scored lanes to a running board program.
type Reporter struct {
	program Sender
}

// NewReporter returns a reporter feeding program.
func NewReporter(program Sender) *Reporter {
	return &Reporter{program: program}
}

func (r *Reporter) Report(lanes []lane.Lane) error {
	r.program.Send(LanesMsg{Lanes: lanes})
	return nil
}

// ReportError shows err in the board footer.
func (r *Reporter) ReportError(err error) {
	r.program.Send(ErrMsg{Err: err})
}
