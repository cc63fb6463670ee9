package score

import (
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

type Scorer interface {
	Init(file string) error
	Deinit()

	// Save the state of this performance
	Save(chart *game.Chart, history *History)

	// Load up previous state for the chart
	Load(chart *game.Chart) []History

	// Best returns the highest scoring run of the chart
	Best(chart *game.Chart) (History, bool)
}

// History is one recorded run of a chart.
type History struct {
	ID       int64
	Sum      string
	Score    int
	Params   game.Params
	Inputs   []game.Input
	PlayedAt time.Time
}
