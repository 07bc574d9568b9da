package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/tenpin/internal/fileutil"
	"github.com/lox/tenpin/internal/lane"
	"github.com/muesli/termenv"
)

// TextReporter writes lanes as
//
//	## Lane 1: game in progress ##
//	Ann 43
//	Bob 0
type TextReporter struct {
	writer io.Writer
	styles Styles
}

// NewConsoleReporter writes to w, coloured when w is a terminal that
// supports it. A nil writer means stdout.
func NewConsoleReporter(w io.Writer) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	return &TextReporter{
		writer: w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// NewPlainReporter writes to w without any styling.
func NewPlainReporter(w io.Writer) *TextReporter {
	return &TextReporter{
		writer: w,
		styles: plainStyles(),
	}
}

func (t *TextReporter) Report(lanes []lane.Lane) error {
	return Write(t.writer, lanes, t.styles)
}

// Write renders lanes to w using styles.
func Write(w io.Writer, lanes []lane.Lane, styles Styles) error {
	for _, l := range lanes {
		status := l.Summary()
		header := fmt.Sprintf("## Lane %d: %s ##", l.Number, status)
		if _, err := fmt.Fprintln(w, styles.Header(status).Render(header)); err != nil {
			return err
		}
		for _, p := range l.Players {
			line := styles.Name.Render(p.Name) + " " + styles.Score.Render(strconv.Itoa(p.Score))
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// FileReporter replaces a file with a plain report on every call.
type FileReporter struct {
	path   string
	styles Styles
}

// NewFileReporter creates a reporter writing to path.
func NewFileReporter(path string) *FileReporter {
	return &FileReporter{path: path, styles: plainStyles()}
}

// Path returns the destination file.
func (f *FileReporter) Path() string { return f.path }

func (f *FileReporter) Report(lanes []lane.Lane) error {
	var buf bytes.Buffer
	if err := Write(&buf, lanes, f.styles); err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(f.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func plainStyles() Styles {
	return NewStyles(lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii)))
}
