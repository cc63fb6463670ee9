package driver

import (
	"errors"
	"math"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

var ErrNoEnd = errors.New("chart has no end, game over can not be reached")

// Simulate folds a timeline and recorded inputs in virtual time, without a
// clock or effects, until the game is over. Folding the inputs recorded by
// Driver.Run over the same chart reproduces its final state.
func Simulate(r game.Reducer, timeline *Timeline, inputs []game.Input, interval time.Duration, presenter Presenter) (game.State, error) {
	fold := NewFold(r, nil, presenter)
	st := &stepper{fold: fold, timeline: timeline, interval: interval}

	i := 0
	for {
		next := st.nextTick()
		for ; i < len(inputs) && inputs[i].At <= next; i++ {
			st.press(inputs[i].Key, inputs[i].At)
		}
		if state := st.tick(); state.GameOver {
			return state, nil
		}
		if timeline.Len() == 0 && i == len(inputs) && math.IsInf(fold.State().LastCount, 1) {
			return fold.State(), ErrNoEnd
		}
	}
}
