package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenpin.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultWatchInterval, cfg.WatchInterval())
	assert.True(t, cfg.ReportToConsole())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
input_dir   = "games"
output_file = "out/result.txt"
console     = true
log_level   = "debug"
workers     = 3

watch {
  interval = "500ms"
  listen   = ":9090"
  tui      = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "games", cfg.InputDir)
	assert.Equal(t, "out/result.txt", cfg.OutputFile)
	assert.True(t, cfg.Console)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Workers)
	require.NotNil(t, cfg.Watch)
	assert.Equal(t, 500*time.Millisecond, cfg.WatchInterval())
	assert.Equal(t, ":9090", cfg.Watch.Listen)
	assert.True(t, cfg.Watch.TUI)
	assert.True(t, cfg.ReportToConsole())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `output_file = "result.txt"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.NotNil(t, cfg.Watch)
	assert.Equal(t, DefaultWatchInterval, cfg.WatchInterval())
	assert.Equal(t, DefaultListen, cfg.Watch.Listen)
	assert.False(t, cfg.ReportToConsole())
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `input_dir = `)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse HCL file")

	path = writeConfig(t, `unknown = 1`)
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty input dir", func(c *Config) { c.InputDir = "" }, "input_dir"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"bad interval", func(c *Config) { c.Watch.Interval = "soon" }, "invalid watch interval"},
		{"interval too short", func(c *Config) { c.Watch.Interval = "1ms" }, "below the minimum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
