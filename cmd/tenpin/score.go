package main

import (
	"context"
	"io"
	"os"

	"github.com/lox/tenpin/cmd/tenpin/shared"
	"github.com/lox/tenpin/internal/config"
	"github.com/lox/tenpin/internal/lane"
	"github.com/lox/tenpin/internal/report"
)

// ScoreCmd scores a directory once and writes the report
type ScoreCmd struct {
	ConfigFlags `kong:"embed"`
	Dir     string `kong:"arg,optional,help='Directory of lane files (default from config)'"`
	Output  string `kong:"short='o',help='Write the report to this file'"`
	Console bool   `kong:"help='Also print the report when writing to a file'"`
}

func (c *ScoreCmd) Run() error {
	cfg, err := c.resolve()
	if err != nil {
		return err
	}
	logger, err := shared.SetupLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	ctx := shared.SetupSignalHandler(logger)
	return c.run(ctx, cfg, newLoader(logger, cfg), os.Stdout)
}

func (c *ScoreCmd) resolve() (*config.Config, error) {
	cfg, err := c.load(c.Dir)
	if err != nil {
		return nil, err
	}
	if c.Output != "" {
		cfg.OutputFile = c.Output
	}
	if c.Console {
		cfg.Console = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ScoreCmd) run(ctx context.Context, cfg *config.Config, loader *lane.Loader, stdout io.Writer) error {
	lanes, err := loader.LoadDir(ctx, cfg.InputDir)
	if err != nil {
		return err
	}
	return reporterFor(cfg, stdout).Report(lanes)
}

// reporterFor builds the text reporters selected by cfg.
func reporterFor(cfg *config.Config, stdout io.Writer) report.Reporter {
	var reporters []report.Reporter
	if cfg.ReportToConsole() {
		reporters = append(reporters, report.NewConsoleReporter(stdout))
	}
	if cfg.OutputFile != "" {
		reporters = append(reporters, report.NewFileReporter(cfg.OutputFile))
	}
	return report.NewMultiReporter(reporters...)
}
