package lane

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/tenpin/bowling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lane2.txt", "Cy:X|X|X|X|X|X|X|X|X|X||XX\n")
	writeFile(t, dir, "lane1.txt", "Ann:3-|X|4/|5\nBob:\n")
	writeFile(t, dir, ".lane0.swp", "garbage")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	lanes, err := NewLoader(testLogger(), 0).LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, lanes, 2)

	assert.Equal(t, 1, lanes[0].Number)
	assert.Equal(t, "lane1.txt", lanes[0].Source)
	require.Len(t, lanes[0].Players, 2)
	assert.Equal(t, "Ann", lanes[0].Players[0].Name)
	assert.Equal(t, "Bob", lanes[0].Players[1].Name)
	assert.Equal(t, GameInProgress, lanes[0].Summary())

	assert.Equal(t, 2, lanes[1].Number)
	assert.Equal(t, "lane2.txt", lanes[1].Source)
	assert.Equal(t, 300, lanes[1].Players[0].Score)
	assert.Equal(t, GameFinished, lanes[1].Summary())
}

func TestLoadDirKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, dir, fmt.Sprintf("lane%02d.txt", i), fmt.Sprintf("P%d:%d", i, i%10))
	}

	lanes, err := NewLoader(testLogger(), 2).LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, lanes, 20)
	for i, l := range lanes {
		assert.Equal(t, i+1, l.Number)
		assert.Equal(t, fmt.Sprintf("P%d", i), l.Players[0].Name)
		assert.Equal(t, i%10, l.Players[0].Score)
	}
}

func TestLoadDirNoInput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeFile(t, dir, "plain.txt", "Ann:X")

	tests := []struct {
		name string
		dir  string
	}{
		{"missing", filepath.Join(dir, "nope")},
		{"empty", t.TempDir()},
		{"not a directory", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(testLogger(), 1).LoadDir(context.Background(), tt.dir)
			assert.ErrorIs(t, err, ErrNoInput)
		})
	}
}

func TestLoadDirFailsWholeLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Ann:X|X\n")
	writeFile(t, dir, "b.txt", "Bob:X|X\nCy:X|Y\n")

	lanes, err := NewLoader(testLogger(), 1).LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Nil(t, lanes)
	assert.ErrorIs(t, err, bowling.ErrSyntax)
	assert.Contains(t, err.Error(), "b.txt: line 2")
}

func TestLoadDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Ann:X\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(testLogger(), 1).LoadDir(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadDirSkipsExcludedReport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lane1.txt", "Ann:X|X\n")
	writeFile(t, dir, "results.txt", "## Lane 1: game in progress ##\nAnn 30\n")

	_, err := NewLoader(testLogger(), 1).LoadDir(context.Background(), dir)
	require.ErrorIs(t, err, bowling.ErrSyntax, "the report is not notation")

	// Relative and absolute spellings of the report path both match.
	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, filepath.Join(dir, "results.txt"))
	require.NoError(t, err)

	for _, exclude := range []string{filepath.Join(dir, "results.txt"), rel} {
		lanes, err := NewLoader(testLogger(), 1, exclude).LoadDir(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, lanes, 1)
		assert.Equal(t, "lane1.txt", lanes[0].Source)
	}
}

func TestLoadDirOnlyExcludedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "results.txt", "## Lane 1: no game ##\n")

	_, err := NewLoader(testLogger(), 1, filepath.Join(dir, "results.txt"), "").LoadDir(context.Background(), dir)
	assert.ErrorIs(t, err, ErrNoInput)
}
