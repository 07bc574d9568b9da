// Package lane turns input sources into scored lanes. One source (usually
// a file) holds one line per player and becomes one Lane.
package lane

import "github.com/lox/tenpin/bowling"

// LaneStatus is the lane-level summary of its players' statuses.
type LaneStatus string

const (
	// NoGame means no player on the lane has started.
	NoGame LaneStatus = "no game"
	// GameInProgress means at least one player is still bowling.
	GameInProgress LaneStatus = "game in progress"
	// GameFinished means every player has finished.
	GameFinished LaneStatus = "game finished"
)

func (s LaneStatus) String() string { return string(s) }

// Lane is one scored source.
type Lane struct {
	Number  int // 1-based position in load order
	Source  string
	Players bowling.Game
}

// Summary reduces the players' statuses to a lane status.
func (l Lane) Summary() LaneStatus {
	return Summarize(l.Players)
}

// Summarize reports NoGame when nobody has started, GameFinished when
// everyone has finished and GameInProgress otherwise. An empty game has no
// game.
func Summarize(game bowling.Game) LaneStatus {
	if allStatus(game, bowling.NotStarted) {
		return NoGame
	}
	if allStatus(game, bowling.Finished) {
		return GameFinished
	}
	return GameInProgress
}

func allStatus(game bowling.Game, status bowling.Status) bool {
	for _, p := range game {
		if p.Status != status {
			return false
		}
	}
	return true
}
