package input

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"git.lost.host/meutraa/fret/internal/game"
)

// Press is one key down. Quit is set for the keys that abort the game.
type Press struct {
	Key  game.Key
	Quit bool
}

// Source delivers key presses until it is closed.
type Source interface {
	Start() (<-chan Press, error)
	Close() error
}

// Keymap holds the rune for each of the four keys, in column order.
type Keymap [game.NColumns]rune

func ParseKeymap(keys string) (Keymap, error) {
	var km Keymap
	if utf8.RuneCountInString(keys) != game.NColumns {
		return km, fmt.Errorf("expected %d keys, found %q", game.NColumns, keys)
	}
	seen := map[rune]bool{}
	i := 0
	for _, r := range keys {
		r = unicode.ToLower(r)
		if seen[r] {
			return km, fmt.Errorf("key %q mapped twice", r)
		}
		seen[r] = true
		km[i] = r
		i++
	}
	return km, nil
}

func (km Keymap) Lookup(r rune) (game.Key, bool) {
	r = unicode.ToLower(r)
	for i, c := range km {
		if c == r {
			return game.Key(i), true
		}
	}
	return 0, false
}
