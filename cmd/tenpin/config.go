package main

import (
	"github.com/charmbracelet/log"
	"github.com/lox/tenpin/internal/config"
	"github.com/lox/tenpin/internal/lane"
)

// ConfigFlags are shared by every command that reads the config file.
// Flags that are set override the file.
type ConfigFlags struct {
	Config   string `kong:"default='tenpin.hcl',help='HCL config file (optional)'"`
	LogLevel string `kong:"help='Log level (debug, info, warn, error)'"`
	Workers  int    `kong:"help='Files parsed in parallel (0 picks from CPU count)'"`
}

func (f ConfigFlags) load(dir string) (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if dir != "" {
		cfg.InputDir = dir
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.Workers > 0 {
		cfg.Workers = f.Workers
	}
	return cfg, nil
}

// newLoader builds the lane loader for cfg. The report file is excluded so
// writing it into the lane directory does not turn it into a lane.
func newLoader(logger *log.Logger, cfg *config.Config) *lane.Loader {
	return lane.NewLoader(logger, cfg.Workers, cfg.OutputFile)
}
