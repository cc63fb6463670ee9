package input

import (
	"log"

	"github.com/eiannone/keyboard"
)

// KeyboardSource reads the terminal keyboard.
type KeyboardSource struct {
	Keymap Keymap
}

func (s *KeyboardSource) Start() (<-chan Press, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}

	presses := make(chan Press, 128)
	go func() {
		defer close(presses)
		for ev := range events {
			if nil != ev.Err {
				log.Println("unable to read keyboard input", ev.Err)
				continue
			}
			if press, ok := s.translate(ev); ok {
				presses <- press
			}
		}
	}()
	return presses, nil
}

func (s *KeyboardSource) translate(ev keyboard.KeyEvent) (Press, bool) {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Press{Quit: true}, true
	}
	key, ok := s.Keymap.Lookup(ev.Rune)
	if !ok {
		return Press{}, false
	}
	return Press{Key: key}, true
}

func (s *KeyboardSource) Close() error {
	return keyboard.Close()
}
