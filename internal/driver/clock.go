package driver

import (
	"time"
)

type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type basicTicker struct {
	ticker *time.Ticker
}

func NewBasicTicker(d time.Duration) Ticker {
	return &basicTicker{ticker: time.NewTicker(d)}
}

func (bt *basicTicker) Chan() <-chan time.Time {
	return bt.ticker.C
}

func (bt *basicTicker) Stop() {
	bt.ticker.Stop()
}

// FakeTicker only ticks when told to.
type FakeTicker struct {
	c    chan time.Time
	done chan struct{}
}

func NewFakeTicker() *FakeTicker {
	return &FakeTicker{
		c:    make(chan time.Time),
		done: make(chan struct{}),
	}
}

func (f *FakeTicker) Chan() <-chan time.Time {
	return f.c
}

func (f *FakeTicker) Stop() {
	select {
	case <-f.done:
	default:
		close(f.done)
	}
}

// Inc delivers n ticks, returning early once the ticker is stopped. It
// reports how many were delivered.
func (f *FakeTicker) Inc(n int) int {
	for i := 0; i < n; i++ {
		select {
		case f.c <- time.Time{}:
		case <-f.done:
			return i
		}
	}
	return n
}
