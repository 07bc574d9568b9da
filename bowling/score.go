package bowling

// Score returns the ten-pin score of the throws bowled so far. Bonuses are
// added for whatever look-ahead throws exist, so a partial game scores what
// has been earned up to now. Fill balls only count as bonus for the tenth
// frame.
func Score(seq ThrowSequence) int {
	t := seq.throws
	total := 0
	for i, frame := 0, 1; i < len(t) && frame <= Frames; frame++ {
		switch {
		case t[i].IsStrike():
			total += sum(t[i:min(i+3, len(t))])
			i++
		case i+1 < len(t):
			total += int(t[i] + t[i+1])
			if t[i]+t[i+1] == MaxPins && i+2 < len(t) {
				total += int(t[i+2])
			}
			i += 2
		default:
			// half-finished frame
			total += int(t[i])
			i++
		}
	}
	return total
}

// Pinfall returns the total number of pins knocked down, without bonuses.
func Pinfall(seq ThrowSequence) int {
	return sum(seq.throws)
}

func sum(throws []Throw) int {
	total := 0
	for _, t := range throws {
		total += int(t)
	}
	return total
}
