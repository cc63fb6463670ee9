package driver

import (
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

// stepper merges the timeline, key presses and ticks into one ordered
// stream. At any instant scheduled actions come first, then key presses,
// then the tick.
type stepper struct {
	fold     *Fold
	timeline *Timeline
	interval time.Duration

	ticks int64         // Ticks emitted so far
	clock time.Duration // Latest instant processed
}

func (s *stepper) nextTick() time.Duration {
	return time.Duration(s.ticks+1) * s.interval
}

// advance applies every scheduled action due at or before at.
func (s *stepper) advance(at time.Duration) {
	for {
		ev, ok := s.timeline.PopDue(at)
		if !ok {
			break
		}
		s.fold.Apply(ev.Action)
	}
	if at > s.clock {
		s.clock = at
	}
}

// press applies a key press. The time is clamped between the latest
// processed instant and the next tick so a replay folds it identically.
func (s *stepper) press(key game.Key, at time.Duration) time.Duration {
	if at < s.clock {
		at = s.clock
	}
	if next := s.nextTick(); at > next {
		at = next
	}
	s.advance(at)
	s.fold.Apply(game.PushKey(key))
	return at
}

func (s *stepper) tick() game.State {
	s.advance(s.nextTick())
	state := s.fold.Apply(game.Tick(float64(s.ticks)))
	s.ticks++
	return state
}
