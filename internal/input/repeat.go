package input

import (
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

// Repeat drops auto-repeated presses. A key arriving again within Interval
// of its previous event is being held down, not pressed again.
type Repeat struct {
	Interval time.Duration

	now  func() time.Time
	last [game.NColumns]time.Time
}

func NewRepeat(interval time.Duration) *Repeat {
	return &Repeat{Interval: interval, now: time.Now}
}

// Allow reports whether p is a new key down. Every event, allowed or not,
// restarts the interval of its key, so a held key stays suppressed.
func (r *Repeat) Allow(p Press) bool {
	if p.Quit || r.Interval <= 0 {
		return true
	}
	now := r.now()
	last := r.last[p.Key.Column()]
	r.last[p.Key.Column()] = now
	return last.IsZero() || now.Sub(last) >= r.Interval
}

// Unrepeated is a Source that only delivers new key downs of the wrapped one.
type Unrepeated struct {
	Source
	Repeat *Repeat
}

func NewUnrepeated(src Source, interval time.Duration) *Unrepeated {
	return &Unrepeated{Source: src, Repeat: NewRepeat(interval)}
}

func (u *Unrepeated) Start() (<-chan Press, error) {
	in, err := u.Source.Start()
	if nil != err {
		return nil, err
	}
	out := make(chan Press, cap(in))
	go func() {
		defer close(out)
		for press := range in {
			if u.Repeat.Allow(press) {
				out <- press
			}
		}
	}()
	return out, nil
}
