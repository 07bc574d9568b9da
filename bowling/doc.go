// Package bowling scores ten-pin bowling games written in frame notation.
//
// A player is recorded on a single line:
//
//	name:frame1|frame2|...|frame10[|fill balls]
//
// Each frame is "X" for a strike, or one or two throws drawn from the
// digits, "-" (a miss) and "/" (a spare, only as the second throw). The
// tenth frame may be followed by the fill balls it earned: two after a
// strike, one after a spare. Fill balls may be concatenated to the tenth
// frame ("XXX", "7/5") or separated from it ("X||XX", "X|X|X").
//
// # Basic Usage
//
//	p, err := bowling.ParsePlayer("Ann:X|7/|9-|X|-8|8/|-6|X|X|X||81")
//	if err != nil {
//	    var syn *bowling.SyntaxError
//	    if errors.As(err, &syn) {
//	        // malformed notation
//	    }
//	}
//	fmt.Println(p.Name, p.Score, p.Status) // Ann 167 finished
//
// The pipeline is available piece by piece: Validate checks a line,
// Parse decodes it into a ThrowSequence, Score totals a sequence and
// Classify reports the Status of a notation body.
//
// # Architecture
//
// Validation, decoding and status tracking share one scan over the body.
// The scan is a two-state machine (awaiting the first throw of a frame,
// awaiting the second) so a spare can only ever resolve against the first
// throw of its own frame. The scan also yields a Progress value (frames
// completed, fill balls owed, fill balls seen) from which Status is
// derived without counting separators.
//
// Every function in this package is pure; callers may score lines
// concurrently without coordination.
package bowling
