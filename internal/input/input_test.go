package input

import (
	"testing"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
	"github.com/eiannone/keyboard"
)

func TestParseKeymap(t *testing.T) {
	km, err := ParseKeymap("HJkl")
	if nil != err {
		t.Fatal(err)
	}
	if km != (Keymap{'h', 'j', 'k', 'l'}) {
		t.Errorf("keymap %q", km)
	}
	for _, bad := range []string{"", "hjk", "hjklm", "hjkh"} {
		if _, err := ParseKeymap(bad); nil == err {
			t.Errorf("%q accepted", bad)
		}
	}
}

var translateTests = map[keyboard.KeyEvent]struct {
	press Press
	ok    bool
}{
	{Rune: 'h'}:              {Press{Key: game.KeyH}, true},
	{Rune: 'J'}:              {Press{Key: game.KeyJ}, true},
	{Rune: 'k'}:              {Press{Key: game.KeyK}, true},
	{Rune: 'l'}:              {Press{Key: game.KeyL}, true},
	{Rune: 'x'}:              {Press{}, false},
	{Key: keyboard.KeyEsc}:   {Press{Quit: true}, true},
	{Key: keyboard.KeyCtrlC}: {Press{Quit: true}, true},
	{Key: keyboard.KeySpace}: {Press{}, false},
}

func TestTranslate(t *testing.T) {
	km, _ := ParseKeymap("hjkl")
	s := KeyboardSource{Keymap: km}
	for ev, expected := range translateTests {
		press, ok := s.translate(ev)
		if press != expected.press || ok != expected.ok {
			t.Log("event   ", ev)
			t.Log("out     ", press, ok)
			t.Log("expected", expected.press, expected.ok)
			t.Fail()
		}
	}
}

type repeatEvent struct {
	press Press
	at    time.Duration
	allow bool
}

var repeatTests = []repeatEvent{
	{Press{Key: game.KeyH}, 0, true},
	{Press{Key: game.KeyJ}, 20 * time.Millisecond, true},
	{Press{Key: game.KeyH}, 60 * time.Millisecond, false},
	{Press{Key: game.KeyH}, 130 * time.Millisecond, false},
	{Press{Key: game.KeyH}, 300 * time.Millisecond, true},
	{Press{Key: game.KeyJ}, 300 * time.Millisecond, true},
	{Press{Quit: true}, 310 * time.Millisecond, true},
	{Press{Key: game.KeyH}, 400 * time.Millisecond, true},
	{Press{Key: game.KeyK}, 400 * time.Millisecond, true},
}

func TestRepeatAllow(t *testing.T) {
	start := time.Unix(1000, 0)
	var at time.Duration
	r := NewRepeat(100 * time.Millisecond)
	r.now = func() time.Time { return start.Add(at) }

	for i, ev := range repeatTests {
		at = ev.at
		if allow := r.Allow(ev.press); allow != ev.allow {
			t.Errorf("%v: %v at %v allowed %v, expected %v", i, ev.press, ev.at, allow, ev.allow)
		}
	}
}

// Holding a key at the usual 30 Hz terminal repeat rate
func TestRepeatHeldKey(t *testing.T) {
	start := time.Unix(1000, 0)
	var at time.Duration
	r := NewRepeat(100 * time.Millisecond)
	r.now = func() time.Time { return start.Add(at) }

	allowed := 0
	for at = 0; at < 5*time.Second; at += 33 * time.Millisecond {
		if r.Allow(Press{Key: game.KeyH}) {
			allowed++
		}
	}
	if allowed != 1 {
		t.Errorf("%v presses from one held key", allowed)
	}

	r.Interval = 0
	if !r.Allow(Press{Key: game.KeyH}) {
		t.Errorf("repeat suppression without an interval")
	}
}

type chanSource chan Press

func (c chanSource) Start() (<-chan Press, error) { return c, nil }
func (c chanSource) Close() error                 { return nil }

func TestUnrepeated(t *testing.T) {
	src := make(chanSource, 8)
	u := NewUnrepeated(src, time.Second)
	now := time.Unix(1000, 0)
	u.Repeat.now = func() time.Time { return now }

	presses, err := u.Start()
	if nil != err {
		t.Fatal(err)
	}
	for _, p := range []Press{{Key: game.KeyH}, {Key: game.KeyH}, {Key: game.KeyL}, {Key: game.KeyH}, {Quit: true}} {
		src <- p
	}
	close(src)

	expected := []Press{{Key: game.KeyH}, {Key: game.KeyL}, {Quit: true}}
	i := 0
	for p := range presses {
		if i >= len(expected) || p != expected[i] {
			t.Errorf("press %v: %v", i, p)
		}
		i++
	}
	if i != len(expected) {
		t.Errorf("%v presses delivered, expected %v", i, len(expected))
	}
}
