package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lox/tenpin/internal/lane"
)

// CheckCmd validates notation without scoring it
type CheckCmd struct {
	Paths []string `kong:"arg,help='Lane files or directories to check'"`
}

func (c *CheckCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *CheckCmd) run(w io.Writer) error {
	files, err := c.files()
	if err != nil {
		return err
	}

	bad := 0
	for _, path := range files {
		problems, err := checkFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, p := range problems {
			fmt.Fprintf(w, "%s:%v\n", path, p)
		}
		bad += len(problems)
	}

	if bad > 0 {
		return fmt.Errorf("%d malformed line(s) in %d file(s)", bad, len(files))
	}
	fmt.Fprintf(w, "%d file(s) OK\n", len(files))
	return nil
}

// files expands directories into their lane files.
func (c *CheckCmd) files() ([]string, error) {
	var files []string
	for _, path := range c.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		inDir, err := lane.SourceFiles(path)
		if err != nil {
			return nil, err
		}
		files = append(files, inDir...)
	}
	return files, nil
}

func checkFile(path string) ([]*lane.LineError, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lane.Check(f)
}
