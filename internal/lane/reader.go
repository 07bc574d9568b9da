package lane

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lox/tenpin/bowling"
)

// LineError locates a failure within a source.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Read parses every line of r into a game, in order. Blank lines are
// skipped; the first malformed line fails the whole source.
func Read(r io.Reader) (bowling.Game, error) {
	game := bowling.Game{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		player, err := bowling.ParsePlayer(line)
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		game = append(game, player)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return game, nil
}

// Check validates every line of r and returns one *LineError per malformed
// line. Unlike Read it keeps going after the first problem.
func Check(r io.Reader) ([]*LineError, error) {
	var problems []*LineError
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := bowling.Validate(line); err != nil {
			problems = append(problems, &LineError{Line: lineNo, Err: err})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return problems, nil
}
