// Package report writes scored lanes to consoles, files and other sinks.
package report

import (
	"errors"

	"github.com/lox/tenpin/internal/lane"
)

//go:generate mockgen -destination=mocks/mock_reporter.go -package=mocks github.com/lox/tenpin/internal/report Reporter

// Reporter receives the complete set of lanes each time they are scored.
type Reporter interface {
	Report(lanes []lane.Lane) error
}

// NullReporter discards every report.
type NullReporter struct{}

func (NullReporter) Report([]lane.Lane) error { return nil }

// MultiReporter fans a report out to several reporters.
type MultiReporter struct {
	reporters []Reporter
}

// NewMultiReporter builds a composite reporter, pruning nil entries and
// returning a NullReporter when none remain.
func NewMultiReporter(reporters ...Reporter) Reporter {
	filtered := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			filtered = append(filtered, r)
		}
	}

	switch len(filtered) {
	case 0:
		return NullReporter{}
	case 1:
		return filtered[0]
	default:
		return MultiReporter{reporters: filtered}
	}
}

// Report delivers lanes to every reporter, even when an earlier one fails,
// and joins the errors.
func (m MultiReporter) Report(lanes []lane.Lane) error {
	var errs []error
	for _, r := range m.reporters {
		if err := r.Report(lanes); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(lanes []lane.Lane) error

func (f ReporterFunc) Report(lanes []lane.Lane) error { return f(lanes) }
