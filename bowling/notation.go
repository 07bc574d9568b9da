package bowling

import "strings"

type frameState int

const (
	awaitingFirstThrow frameState = iota
	awaitingSecondThrow
)

// Progress describes how far a player has got through a game.
type Progress struct {
	Throws       int // balls bowled, fill balls included
	Frames       int // completed frames, at most Frames
	FillExpected int // fill balls earned by the tenth frame
	FillSeen     int // fill balls bowled
}

// Status derives the player's status from the progress counters.
func (p Progress) Status() Status {
	switch {
	case p.Throws == 0:
		return NotStarted
	case p.Frames == Frames && p.FillSeen == p.FillExpected:
		return Finished
	default:
		return InProgress
	}
}

// Current returns the 1-based frame being bowled, or Frames once the last
// frame is reached.
func (p Progress) Current() int {
	if p.Frames >= Frames {
		return Frames
	}
	return p.Frames + 1
}

// scanner walks a notation body once, validating, decoding and counting
// progress as it goes.
type scanner struct {
	offset int // column of body[0] minus one
	throws []Throw
	prog   Progress
	state  frameState
	first  Throw // first throw of the open frame or fill pair
	seps   int   // separators read since the last throw
}

func scanBody(body string, offset int) (*scanner, error) {
	s := &scanner{offset: offset, throws: make([]Throw, 0, len(body))}
	for i := 0; i < len(body); i++ {
		c := body[i]
		col := offset + i + 1

		var err error
		switch {
		case c == frameSep:
			err = s.separator(col)
		case !isThrowMark(c):
			err = syntaxErrorf(col, "unexpected character %q", c)
		case s.prog.Frames == Frames:
			err = s.fill(c, col)
		default:
			err = s.frameThrow(c, col)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *scanner) separator(col int) error {
	if len(s.throws) == 0 {
		return syntaxErrorf(col, "separator before the first frame")
	}
	if s.prog.Frames == Frames {
		s.seps++
		if s.seps > 2 {
			return syntaxErrorf(col, "too many separators after the tenth frame")
		}
		return nil
	}
	if s.seps > 0 {
		return syntaxErrorf(col, "empty frame %d", s.prog.Frames+1)
	}
	if s.state == awaitingSecondThrow {
		return syntaxErrorf(col, "frame %d is missing its second throw", s.prog.Frames+1)
	}
	s.seps++
	return nil
}

func (s *scanner) frameThrow(c byte, col int) error {
	frame := s.prog.Frames + 1

	if s.state == awaitingFirstThrow {
		if len(s.throws) > 0 && s.seps == 0 {
			return syntaxErrorf(col, "frame %d must be separated from the previous frame by %q", frame, frameSep)
		}
		if c == spareMark {
			return syntaxErrorf(col, "spare cannot open frame %d", frame)
		}
		t, err := s.emit(c, false)
		if err != nil {
			return err
		}
		if t.IsStrike() {
			s.closeFrame(2)
			return nil
		}
		s.first = t
		s.state = awaitingSecondThrow
		return nil
	}

	if c == strikeMark {
		return syntaxErrorf(col, "strike must be the first throw of frame %d", frame)
	}
	t, err := s.emit(c, true)
	if err != nil {
		return err
	}
	if s.first+t > MaxPins {
		return syntaxErrorf(col, "frame %d knocks down more than %d pins", frame, MaxPins)
	}
	s.state = awaitingFirstThrow
	if s.first+t == MaxPins {
		s.closeFrame(1)
	} else {
		s.closeFrame(0)
	}
	return nil
}

// closeFrame records a completed frame. fills is the number of fill balls
// the frame would earn if it were the tenth.
func (s *scanner) closeFrame(fills int) {
	s.prog.Frames++
	s.seps = 0
	if s.prog.Frames == Frames {
		s.prog.FillExpected = fills
	}
}

func (s *scanner) fill(c byte, col int) error {
	if s.prog.FillSeen == s.prog.FillExpected {
		return syntaxErrorf(col, "throw after the final fill ball")
	}

	if s.state == awaitingFirstThrow {
		if c == spareMark {
			return syntaxErrorf(col, "spare cannot be the first fill ball")
		}
		t, err := s.emit(c, false)
		if err != nil {
			return err
		}
		s.prog.FillSeen++
		s.seps = 0
		if !t.IsStrike() {
			s.first = t
			s.state = awaitingSecondThrow
		}
		return nil
	}

	if c == strikeMark {
		return syntaxErrorf(col, "strike cannot follow a fill ball of %d", s.first)
	}
	t, err := s.emit(c, true)
	if err != nil {
		return err
	}
	if s.first+t > MaxPins {
		return syntaxErrorf(col, "fill balls knock down more than %d pins", MaxPins)
	}
	s.prog.FillSeen++
	s.seps = 0
	s.state = awaitingFirstThrow
	return nil
}

func (s *scanner) emit(c byte, hasFirst bool) (Throw, error) {
	t, err := decode(c, s.first, hasFirst)
	if err != nil {
		return 0, err
	}
	if t < 0 || t > MaxPins {
		return 0, &InvariantError{Reason: "decoded throw outside the pin range"}
	}
	s.throws = append(s.throws, t)
	s.prog.Throws++
	return t, nil
}

// splitLine separates the player name from the notation body at the last
// ':' and checks the name.
func splitLine(line string) (name, body string, err error) {
	idx := strings.LastIndexByte(line, nameSeparator)
	if idx < 0 {
		return "", "", syntaxErrorf(0, "missing %q after the player name", nameSeparator)
	}
	name, body = line[:idx], line[idx+1:]
	if name == "" {
		return "", "", syntaxErrorf(1, "empty player name")
	}
	if i := strings.IndexByte(name, nameSeparator); i >= 0 {
		return "", "", syntaxErrorf(i+1, "player name contains %q", nameSeparator)
	}
	return name, body, nil
}

// Validate checks a notation line against the grammar and returns a
// *SyntaxError describing the first problem found.
func Validate(line string) error {
	_, _, _, err := parseLine(line)
	return err
}

// Valid reports whether line is well-formed notation.
func Valid(line string) bool {
	return Validate(line) == nil
}

// Parse splits a notation line into the player name and the throws bowled.
func Parse(line string) (string, ThrowSequence, error) {
	name, throws, _, err := parseLine(line)
	return name, throws, err
}

func parseLine(line string) (string, ThrowSequence, Progress, error) {
	name, body, err := splitLine(line)
	if err != nil {
		return "", ThrowSequence{}, Progress{}, err
	}
	s, err := scanBody(body, len(name)+1)
	if err != nil {
		return "", ThrowSequence{}, Progress{}, err
	}
	return name, ThrowSequence{throws: s.throws}, s.prog, nil
}
