package driver

import (
	"context"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

// Driver runs a chart in real time: a periodic tick, the chart timeline and
// key presses are folded one at a time on the goroutine calling Run.
type Driver struct {
	Fold      *Fold
	Interval  time.Duration
	NewTicker func(d time.Duration) Ticker

	now func() time.Time
}

func New(fold *Fold, interval time.Duration) *Driver {
	return &Driver{
		Fold:      fold,
		Interval:  interval,
		NewTicker: NewBasicTicker,
		now:       time.Now,
	}
}

// Run folds the stream until the game is over, the key channel is closed or
// ctx is done. It returns the last state and the key presses, stamped for
// Simulate.
func (d *Driver) Run(ctx context.Context, timeline *Timeline, keys <-chan game.Key) (game.State, []game.Input, error) {
	st := &stepper{fold: d.Fold, timeline: timeline, interval: d.Interval}
	inputs := []game.Input{}

	ticker := d.NewTicker(d.Interval)
	defer ticker.Stop()
	start := d.now()

	for {
		select {
		case <-ctx.Done():
			return d.Fold.State(), inputs, ctx.Err()
		case key, ok := <-keys:
			if !ok {
				return d.Fold.State(), inputs, nil
			}
			at := st.press(key, d.now().Sub(start))
			inputs = append(inputs, game.Input{Key: key, At: at})
		case <-ticker.Chan():
			if state := st.tick(); state.GameOver {
				return state, inputs, nil
			}
		}
	}
}
