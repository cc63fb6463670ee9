package render

import (
	"fmt"

	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/input"
	"git.lost.host/meutraa/fret/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TcellRenderer redraws the whole field through tcell on every state. As
// tcell owns the terminal it is also the input source.
type TcellRenderer struct {
	Theme  theme.Theme
	Keymap input.Keymap
	Best   int

	params  game.Params
	screen  tcell.Screen
	layout  Layout
	resized chan struct{} // Set by the event loop, taken by Present
}

func NewTcellRenderer(p game.Params, th theme.Theme, km input.Keymap) *TcellRenderer {
	return &TcellRenderer{Theme: th, Keymap: km, params: p, resized: make(chan struct{}, 1)}
}

func (r *TcellRenderer) Init() error {
	if nil != r.screen {
		return nil
	}
	screen, err := tcell.NewScreen()
	if nil != err {
		return err
	}
	if err := screen.Init(); nil != err {
		return err
	}
	r.screen = screen
	r.resize()
	return nil
}

func (r *TcellRenderer) resize() {
	w, h := r.screen.Size()
	r.layout = Layout{Params: r.params, Rows: h, Cols: w}
}

func (r *TcellRenderer) Deinit() error {
	if nil != r.screen {
		r.screen.Fini()
		r.screen = nil
	}
	return nil
}

func (r *TcellRenderer) Present(s game.State) {
	if nil == r.screen {
		return
	}
	select {
	case <-r.resized:
		r.screen.Sync()
		r.resize()
	default:
	}
	r.screen.Clear()

	hit := r.layout.HitRow()
	for c := game.Green; c <= game.Yellow; c++ {
		r.screen.SetContent(r.layout.ColumnCol(c), hit, '◯', nil, r.style(c))
		if hit+1 < r.layout.StatusRow() {
			r.screen.SetContent(r.layout.ColumnCol(c), hit+1, r.Keymap[game.KeyForColumn(c)], nil, tcell.StyleDefault.Dim(true))
		}
	}
	for _, n := range s.Notes {
		row, col, ok := r.layout.Cell(n.Pos)
		if !ok {
			continue
		}
		r.screen.SetContent(col, row, '⬤', nil, r.style(n.Column))
	}

	r.text(0, fmt.Sprintf("Score: %d   Best: %d", s.Score, r.Best), tcell.StyleDefault)
	if s.GameOver {
		r.text(r.layout.StatusRow(), "Game Over", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	} else {
		r.text(r.layout.StatusRow(), "h j k l to play, esc to quit", tcell.StyleDefault)
	}
	r.screen.Show()
}

func (r *TcellRenderer) style(c game.Column) tcell.Style {
	col := r.Theme.ColumnColor(c)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
}

func (r *TcellRenderer) text(row int, s string, style tcell.Style) {
	col := 0
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

// Start turns the screen's key events into presses. Init must be called first.
func (r *TcellRenderer) Start() (<-chan input.Press, error) {
	if nil == r.screen {
		return nil, fmt.Errorf("tcell screen is not initialised")
	}
	screen := r.screen
	presses := make(chan input.Press, 128)
	go func() {
		defer close(presses)
		for {
			ev := screen.PollEvent()
			if nil == ev {
				// Screen finalised
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if press, ok := r.translate(ev); ok {
					presses <- press
				}
			case *tcell.EventResize:
				select {
				case r.resized <- struct{}{}:
				default:
				}
			}
		}
	}()
	return presses, nil
}

func (r *TcellRenderer) translate(ev *tcell.EventKey) (input.Press, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Press{Quit: true}, true
	case tcell.KeyRune:
		if key, ok := r.Keymap.Lookup(ev.Rune()); ok {
			return input.Press{Key: key}, true
		}
	}
	return input.Press{}, false
}

func (r *TcellRenderer) Close() error {
	return nil
}
