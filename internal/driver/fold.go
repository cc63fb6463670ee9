package driver

import (
	"log"

	"git.lost.host/meutraa/fret/internal/game"
)

// Player performs the sound effects asked for by transitions.
type Player interface {
	Play(note game.Note) error
}

// Presenter is handed every state, in order.
type Presenter interface {
	Present(s game.State)
}

// Fold is the single accumulator of the game state. It is not safe for
// concurrent use, the driver owns it.
type Fold struct {
	Reducer   game.Reducer
	Player    Player
	Presenter Presenter

	state game.State
}

func NewFold(r game.Reducer, player Player, presenter Presenter) *Fold {
	return &Fold{
		Reducer:   r,
		Player:    player,
		Presenter: presenter,
		state:     game.Initial(),
	}
}

func (f *Fold) State() game.State {
	return f.state
}

// Apply reduces one action, then performs its effects and presents the
// resulting state. Audio failures are reported and otherwise ignored.
func (f *Fold) Apply(a game.Action) game.State {
	next, effects := f.Reducer.Apply(f.state, a)
	f.state = next

	if nil != f.Player {
		for _, e := range effects {
			if err := f.Player.Play(e.Note); nil != err {
				log.Println("unable to play note:", err)
			}
		}
	}
	if nil != f.Presenter {
		f.Presenter.Present(next)
	}
	return next
}
