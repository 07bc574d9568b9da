package broadcast

import (
	"github.com/lox/tenpin/bowling"
	"github.com/lox/tenpin/internal/lane"
)

// Snapshot is the JSON document pushed to subscribers.
type Snapshot struct {
	Lanes []LaneSnapshot `json:"lanes"`
}

// LaneSnapshot describes one lane.
type LaneSnapshot struct {
	Lane    int              `json:"lane"`
	Source  string           `json:"source"`
	Status  lane.LaneStatus  `json:"status"`
	Players []PlayerSnapshot `json:"players"`
}

// PlayerSnapshot describes one player on a lane.
type PlayerSnapshot struct {
	Name    string         `json:"name"`
	Score   int            `json:"score"`
	Pinfall int            `json:"pinfall"`
	Status  bowling.Status `json:"status"`
	Frame   int            `json:"frame"`
	Throws  []int          `json:"throws"`
}

// NewSnapshot converts scored lanes into their wire form.
func NewSnapshot(lanes []lane.Lane) Snapshot {
	snap := Snapshot{Lanes: make([]LaneSnapshot, 0, len(lanes))}
	for _, l := range lanes {
		ls := LaneSnapshot{
			Lane:    l.Number,
			Source:  l.Source,
			Status:  l.Summary(),
			Players: make([]PlayerSnapshot, 0, len(l.Players)),
		}
		for _, p := range l.Players {
			ls.Players = append(ls.Players, PlayerSnapshot{
				Name:    p.Name,
				Score:   p.Score,
				Pinfall: p.Pinfall(),
				Status:  p.Status,
				Frame:   p.Progress.Current(),
				Throws:  p.Throws.Values(),
			})
		}
		snap.Lanes = append(snap.Lanes, ls)
	}
	return snap
}
