package bowling

import (
	"fmt"
	"strings"
)

const (
	// MaxPins is the number of pins standing at the start of a frame.
	MaxPins = 10

	// Frames is the number of frames in a complete game.
	Frames = 10
)

// Notation characters
const (
	strikeMark    = 'X'
	spareMark     = '/'
	missMark      = '-'
	frameSep      = '|'
	nameSeparator = ':'
)

// Throw is the number of pins knocked down by one ball, in [0, MaxPins].
type Throw int

// IsStrike reports whether the throw cleared every pin.
func (t Throw) IsStrike() bool { return t == MaxPins }

// decode maps one notation character to a pin count. first is the first
// throw of the open frame and is only consulted for a spare; hasFirst is
// false when the frame has not been opened yet.
func decode(c byte, first Throw, hasFirst bool) (Throw, error) {
	switch {
	case c == missMark:
		return 0, nil
	case c >= '0' && c <= '9':
		return Throw(c - '0'), nil
	case c == strikeMark:
		return MaxPins, nil
	case c == spareMark:
		if !hasFirst {
			return 0, &InvariantError{Reason: "spare decoded without a first throw in its frame"}
		}
		if first < 0 || first >= MaxPins {
			return 0, &InvariantError{Reason: fmt.Sprintf("spare cannot complete a first throw of %d", first)}
		}
		return MaxPins - first, nil
	default:
		return 0, &InvariantError{Reason: fmt.Sprintf("undecodable character %q", c)}
	}
}

func isThrowMark(c byte) bool {
	return c == missMark || c == strikeMark || c == spareMark || (c >= '0' && c <= '9')
}

// ThrowSequence is the ordered list of throws bowled by one player. It is
// immutable once built.
type ThrowSequence struct {
	throws []Throw
}

// NewThrowSequence builds a sequence from raw pin counts. Each count must
// lie in [0, MaxPins].
func NewThrowSequence(pins ...int) (ThrowSequence, error) {
	throws := make([]Throw, len(pins))
	for i, p := range pins {
		if p < 0 || p > MaxPins {
			return ThrowSequence{}, &InvariantError{Reason: fmt.Sprintf("throw %d has %d pins, outside [0,%d]", i+1, p, MaxPins)}
		}
		throws[i] = Throw(p)
	}
	return ThrowSequence{throws: throws}, nil
}

// Len returns the number of throws.
func (s ThrowSequence) Len() int { return len(s.throws) }

// Values returns a copy of the pin counts.
func (s ThrowSequence) Values() []int {
	out := make([]int, len(s.throws))
	for i, t := range s.throws {
		out[i] = int(t)
	}
	return out
}

// Append returns a new sequence with t added after the existing throws.
func (s ThrowSequence) Append(t Throw) ThrowSequence {
	throws := make([]Throw, len(s.throws), len(s.throws)+1)
	copy(throws, s.throws)
	return ThrowSequence{throws: append(throws, t)}
}

func (s ThrowSequence) String() string {
	parts := make([]string, len(s.throws))
	for i, t := range s.throws {
		parts[i] = fmt.Sprint(int(t))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
