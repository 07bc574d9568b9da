// Package watch re-scores a lane directory on a fixed interval and reports
// whenever the results change.
package watch

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/tenpin/internal/lane"
	"github.com/lox/tenpin/internal/report"
)

// Loader loads every lane in a directory.
type Loader interface {
	LoadDir(ctx context.Context, dir string) ([]lane.Lane, error)
}

// Options configures a Watcher.
type Options struct {
	Dir      string
	Interval time.Duration
	Clock    quartz.Clock

	// OnError, if set, is called with every failed refresh.
	OnError func(error)
}

// Watcher polls a directory and forwards changed results to a reporter.
type Watcher struct {
	loader   Loader
	reporter report.Reporter
	logger   *log.Logger
	opts     Options

	last     []lane.Lane
	reported bool
}

// New creates a watcher. A zero interval means two seconds and a nil clock
// means the real clock.
func New(loader Loader, reporter report.Reporter, logger *log.Logger, opts Options) *Watcher {
	if opts.Interval <= 0 {
		opts.Interval = 2 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	return &Watcher{
		loader:   loader,
		reporter: reporter,
		logger:   logger.WithPrefix("watch").With("dir", opts.Dir),
		opts:     opts,
	}
}

// Run polls once straight away and then on every tick until ctx is done.
// Refresh failures are logged and the previous results stay in place.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := w.opts.Clock.NewTicker(w.opts.Interval, "watch")
	defer ticker.Stop()

	w.logger.Info("Watching lanes", "interval", w.opts.Interval)
	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopped watching")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *Watcher) refresh(ctx context.Context) {
	if _, err := w.Poll(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("Refresh failed", "error", err)
		if w.opts.OnError != nil {
			w.opts.OnError(err)
		}
	}
}

// Poll loads the directory once and reports the lanes if they differ from
// the last successful report. It returns whether a report was made.
func (w *Watcher) Poll(ctx context.Context) (bool, error) {
	lanes, err := w.loader.LoadDir(ctx, w.opts.Dir)
	if err != nil {
		return false, err
	}
	if w.reported && reflect.DeepEqual(lanes, w.last) {
		w.logger.Debug("Lanes unchanged")
		return false, nil
	}
	if err := w.reporter.Report(lanes); err != nil {
		return false, err
	}
	w.last = lanes
	w.reported = true
	w.logger.Debug("Reported lanes", "lanes", len(lanes))
	return true, nil
}
