package bowling

// Player is the scored result of one notation line. Score, Status and
// Progress are computed when the line is parsed and never change.
type Player struct {
	Name     string
	Throws   ThrowSequence
	Score    int
	Status   Status
	Progress Progress
}

// Game is the ordered list of players bowling on one lane.
type Game []Player

// ParsePlayer validates and scores one notation line.
func ParsePlayer(line string) (Player, error) {
	name, throws, prog, err := parseLine(line)
	if err != nil {
		return Player{}, err
	}
	return Player{
		Name:     name,
		Throws:   throws,
		Score:    Score(throws),
		Status:   prog.Status(),
		Progress: prog,
	}, nil
}

// Pinfall returns the pins the player has knocked down, without bonuses.
func (p Player) Pinfall() int {
	return Pinfall(p.Throws)
}
