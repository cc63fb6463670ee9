package render

import (
	"git.lost.host/meutraa/fret/internal/game"
)

// Renderer shows game states. Present is called once per state, in order,
// from a single goroutine.
type Renderer interface {
	Init() error
	Deinit() error
	Present(s game.State)
}

// Multi presents every state to all of its renderers.
type Multi []Renderer

func (m Multi) Init() error {
	for i, r := range m {
		if err := r.Init(); nil != err {
			for _, started := range m[:i] {
				started.Deinit()
			}
			return err
		}
	}
	return nil
}

func (m Multi) Deinit() error {
	var first error
	for i := len(m) - 1; i >= 0; i-- {
		if err := m[i].Deinit(); nil != err && nil == first {
			first = err
		}
	}
	return first
}

func (m Multi) Present(s game.State) {
	for _, r := range m {
		r.Present(s)
	}
}
