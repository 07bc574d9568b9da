package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/broadcast"
	"github.com/lox/tenpin/internal/config"
	"github.com/lox/tenpin/internal/report"
	"github.com/lox/tenpin/internal/tui"
	"github.com/lox/tenpin/internal/watch"
	"golang.org/x/sync/errgroup"
)

// WatchCmd keeps re-scoring a directory and streams every change
type WatchCmd struct {
	ConfigFlags `kong:"embed"`
	Dir      string        `kong:"arg,optional,help='Directory of lane files (default from config)'"`
	Output   string        `kong:"short='o',help='Rewrite the report in this file on every change'"`
	Interval time.Duration `kong:"help='Poll interval (default from config)'"`
	Listen   string        `kong:"help='Websocket/HTTP listen address (default from config)'"`
	TUI      bool          `kong:"name='tui',help='Show a live terminal board instead of printing reports'"`
}

func (c *WatchCmd) Run() error {
	cfg, err := c.resolve()
	if err != nil {
		return err
	}

	// The board owns the terminal, so logs would corrupt it
	var logOut io.Writer = os.Stderr
	if cfg.Watch.TUI {
		logOut = io.Discard
	}
	logger, err := shared.SetupLogger(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(shared.SetupSignalHandler(logger))
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	hub := broadcast.NewHub(logger)
	reporters := []report.Reporter{hub}
	opts := watch.Options{Dir: cfg.InputDir, Interval: cfg.WatchInterval()}

	if cfg.Watch.TUI {
		program := tea.NewProgram(tui.NewBoardModel(cfg.InputDir, logger), tea.WithAltScreen(), tea.WithContext(ctx))
		board := tui.NewReporter(program)
		reporters = append(reporters, board)
		opts.OnError = board.ReportError
		g.Go(func() error {
			defer cancel() // quitting the board stops everything else
			if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return err
			}
			return nil
		})
	} else {
		reporters = append(reporters, report.NewConsoleReporter(os.Stdout))
	}
	if cfg.OutputFile != "" {
		reporters = append(reporters, report.NewFileReporter(cfg.OutputFile))
	}

	watcher := watch.New(newLoader(logger, cfg), report.NewMultiReporter(reporters...), logger, opts)

	g.Go(func() error {
		return hub.ListenAndServe(ctx, cfg.Watch.Listen)
	})
	g.Go(func() error {
		return watcher.Run(ctx)
	})

	return g.Wait()
}

func (c *WatchCmd) resolve() (*config.Config, error) {
	cfg, err := c.load(c.Dir)
	if err != nil {
		return nil, err
	}
	if c.Output != "" {
		cfg.OutputFile = c.Output
	}
	if c.Interval > 0 {
		cfg.Watch.Interval = c.Interval.String()
	}
	if c.Listen != "" {
		cfg.Watch.Listen = c.Listen
	}
	if c.TUI {
		cfg.Watch.TUI = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
