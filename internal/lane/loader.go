package lane

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/tenpin/bowling"
	"golang.org/x/sync/errgroup"
)

// ErrNoInput is returned when the input directory is missing or holds no
// source files.
var ErrNoInput = errors.New("lane: no input files")

// Loader reads a directory of sources into lanes.
type Loader struct {
	logger  *log.Logger
	workers int
	exclude map[string]bool // absolute paths never read as sources
}

// NewLoader creates a loader. workers bounds how many files are parsed at
// once; zero or less picks a default from the CPU count. Files named in
// exclude, such as a report written into the lane directory, are skipped.
func NewLoader(logger *log.Logger, workers int, exclude ...string) *Loader {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8 // Cap at 8, files are small
		}
	}
	skip := make(map[string]bool, len(exclude))
	for _, path := range exclude {
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			skip[abs] = true
		}
	}
	return &Loader{
		logger:  logger.WithPrefix("lane"),
		workers: workers,
		exclude: skip,
	}
}

// LoadDir parses every regular, non-hidden file in dir. Files are ordered
// by name and numbered from 1. Any malformed file fails the whole load.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]Lane, error) {
	paths, err := l.sources(dir)
	if err != nil {
		return nil, err
	}

	lanes := make([]Lane, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			game, err := readFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			lanes[i] = Lane{Number: i + 1, Source: filepath.Base(path), Players: game}
			l.logger.Debug("Scored lane", "lane", i+1, "source", path, "players", len(game))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.Info("Loaded lanes", "dir", dir, "lanes", len(lanes))
	return lanes, nil
}

func (l *Loader) sources(dir string) ([]string, error) {
	paths, err := SourceFiles(dir)
	if err != nil || len(l.exclude) == 0 {
		return paths, err
	}

	kept := paths[:0]
	for _, path := range paths {
		if abs, err := filepath.Abs(path); err == nil && l.exclude[abs] {
			l.logger.Debug("Skipping excluded file", "path", path)
			continue
		}
		kept = append(kept, path)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: %s holds only excluded files", ErrNoInput, dir)
	}
	return kept, nil
}

// SourceFiles lists the regular, non-hidden files of dir sorted by name.
func SourceFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNoInput, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoInput, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoInput, dir)
	}
	sort.Strings(paths)
	return paths, nil
}

func readFile(path string) (bowling.Game, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
