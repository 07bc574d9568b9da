// Package config loads tenpin settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultInputDir      = "lanes"
	DefaultLogLevel      = "info"
	DefaultWatchInterval = 2 * time.Second
	DefaultListen        = "localhost:8080"

	minWatchInterval = 100 * time.Millisecond
)

// Config is the complete tenpin configuration
type Config struct {
	InputDir   string       `hcl:"input_dir,optional"`
	OutputFile string       `hcl:"output_file,optional"`
	Console    bool         `hcl:"console,optional"`
	LogLevel   string       `hcl:"log_level,optional"`
	Workers    int          `hcl:"workers,optional"`
	Watch      *WatchConfig `hcl:"watch,block"`
}

// WatchConfig configures the watch command
type WatchConfig struct {
	Interval string `hcl:"interval,optional"`
	Listen   string `hcl:"listen,optional"`
	TUI      bool   `hcl:"tui,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		InputDir: DefaultInputDir,
		LogLevel: DefaultLogLevel,
		Watch: &WatchConfig{
			Interval: DefaultWatchInterval.String(),
			Listen:   DefaultListen,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; missing values in an existing file are defaulted.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Watch == nil {
		c.Watch = &WatchConfig{}
	}
	if c.Watch.Interval == "" {
		c.Watch.Interval = DefaultWatchInterval.String()
	}
	if c.Watch.Listen == "" {
		c.Watch.Listen = DefaultListen
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must be set")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if c.Watch != nil {
		interval, err := time.ParseDuration(c.Watch.Interval)
		if err != nil {
			return fmt.Errorf("invalid watch interval %q: %w", c.Watch.Interval, err)
		}
		if interval < minWatchInterval {
			return fmt.Errorf("watch interval %s is below the minimum of %s", interval, minWatchInterval)
		}
	}
	return nil
}

// WatchInterval returns the parsed watch interval, or the default when it
// is unset or unparsable.
func (c *Config) WatchInterval() time.Duration {
	if c.Watch == nil {
		return DefaultWatchInterval
	}
	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil || d <= 0 {
		return DefaultWatchInterval
	}
	return d
}

// ReportToConsole reports whether results should be printed to stdout.
// Console output is used when no output file is set or when requested
// explicitly alongside the file.
func (c *Config) ReportToConsole() bool {
	return c.OutputFile == "" || c.Console
}
