package bowling

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax matches every *SyntaxError via errors.Is.
	ErrSyntax = errors.New("bowling: notation syntax error")

	// ErrInvariant matches every *InvariantError via errors.Is.
	ErrInvariant = errors.New("bowling: invariant violation")
)

// SyntaxError reports a notation line that does not match the grammar.
// Column is 1-based and zero when the error concerns the line as a whole.
type SyntaxError struct {
	Column int
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("notation syntax error: %s", e.Reason)
	}
	return fmt.Sprintf("notation syntax error at column %d: %s", e.Column, e.Reason)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// InvariantError reports an internal consistency failure while decoding,
// such as a spare with no first throw to complete. Validated notation never
// produces one; seeing it means the decoder is wrong, not the input.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("bowling invariant violated: %s", e.Reason)
}

func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

func syntaxErrorf(column int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Column: column, Reason: fmt.Sprintf(format, args...)}
}
