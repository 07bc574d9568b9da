package bowling

// Status summarises how far a player has got through a game.
type Status string

const (
	// NotStarted means no throw has been bowled.
	NotStarted Status = "not started"
	// InProgress means frames or earned fill balls are still to come.
	InProgress Status = "in progress"
	// Finished means all ten frames and their fill balls are bowled.
	Finished Status = "finished"
)

func (s Status) String() string { return string(s) }

// Classify reports the status of a notation body, the part of a line after
// "name:". An empty body has not started; a body is finished once all ten
// frames and every fill ball they earned have been bowled.
func Classify(body string) (Status, error) {
	s, err := scanBody(body, 0)
	if err != nil {
		return "", err
	}
	return s.prog.Status(), nil
}
