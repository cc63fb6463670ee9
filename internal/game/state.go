package game

import (
	"math"
	"strconv"

	"git.lost.host/meutraa/fret/internal/vec"
)

// FallingNote is a note currently on the playing field.
type FallingNote struct {
	ID         string
	Pos        vec.Vec
	CreateTime float64
	Radius     float64

	Note                Note
	Column              Column
	Speed               float64
	SuccessfullyPressed bool
}

// State is a snapshot of the simulation. Transitions return a new State and
// never write to the slices of the one they were given.
type State struct {
	Time      float64       // Ticks elapsed
	Notes     []FallingNote // Active notes, in creation order
	Exit      []FallingNote // Notes removed since the previous tick
	ObjCount  int           // Monotonic id counter
	Score     int
	GameOver  bool
	LastCount float64 // Tick count at which the song ends
}

func Initial() State {
	return State{
		Notes:     []FallingNote{},
		Exit:      []FallingNote{},
		LastCount: math.Inf(1),
	}
}

func noteID(n int) string {
	return "note" + strconv.Itoa(n)
}
