package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/theme"
	"golang.org/x/term"
)

type cell struct {
	row, col int
}

// DefaultRenderer draws to an ANSI terminal, only touching the cells that
// changed since the previous state.
type DefaultRenderer struct {
	Out    io.Writer
	Theme  theme.Theme
	Layout Layout
	Best   int // Best previous score, shown next to the score

	buffer       strings.Builder
	restoreState *term.State
	drawn        map[string]cell
	score        int
	gameOver     bool
}

func NewDefaultRenderer(p game.Params, th theme.Theme) *DefaultRenderer {
	return &DefaultRenderer{
		Out:    os.Stdout,
		Theme:  th,
		Layout: Layout{Params: p, Rows: 24, Cols: 40},
	}
}

func (r *DefaultRenderer) Init() error {
	r.drawn = map[string]cell{}
	r.score = -1

	if f, ok := r.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		columns, rows, err := term.GetSize(int(f.Fd()))
		if nil != err {
			return fmt.Errorf("unable to get terminal size: %w", err)
		}
		r.Layout.Rows, r.Layout.Cols = rows, columns

		state, err := term.MakeRaw(int(f.Fd()))
		if nil != err {
			return err
		}
		r.restoreState = state
	}

	fmt.Fprintf(r.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	r.renderStatic()
	r.flush()
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	f := r.Out.(*os.File)
	return term.Restore(int(f.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Present(s game.State) {
	if nil == r.drawn {
		r.drawn = map[string]cell{}
		r.score = -1
	}

	// Remove notes that left the field
	for _, n := range s.Exit {
		if c, ok := r.drawn[n.ID]; ok {
			r.clear(c)
			delete(r.drawn, n.ID)
		}
	}

	for _, n := range s.Notes {
		row, col, ok := r.Layout.Cell(n.Pos)
		prev, drawn := r.drawn[n.ID]
		if drawn && (!ok || prev != (cell{row, col})) {
			r.clear(prev)
			delete(r.drawn, n.ID)
		}
		if !ok {
			continue
		}
		r.Fill(row, col, r.Theme.RenderNote(n.Column))
		r.drawn[n.ID] = cell{row, col}
	}
	r.renderHitLine()

	if s.Score != r.score {
		r.score = s.Score
		r.Fill(0, 0, fmt.Sprintf("\033[KScore: %d   Best: %d", s.Score, r.Best))
	}
	if s.GameOver && !r.gameOver {
		r.gameOver = true
		r.Fill(r.Layout.StatusRow(), 0, "\033[K\033[1;31mGame Over\033[0m")
	}
	r.flush()
}

func (r *DefaultRenderer) renderStatic() {
	r.Fill(r.Layout.StatusRow(), 0, "\033[Kh j k l to play, esc to quit")
	r.renderHitLine()
}

// Notes pass over the hit line, so it is redrawn where they do not cover it.
func (r *DefaultRenderer) renderHitLine() {
	hit := r.Layout.HitRow()
	occupied := map[cell]bool{}
	for _, c := range r.drawn {
		occupied[c] = true
	}
	for c := game.Green; c <= game.Yellow; c++ {
		col := r.Layout.ColumnCol(c)
		if !occupied[cell{hit, col}] {
			r.Fill(hit, col, r.Theme.RenderHitField(c))
		}
	}
}

func (r *DefaultRenderer) clear(c cell) {
	r.Fill(c.row, c.col, " ")
}

// Fill writes message at a zero based cell.
func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row+1), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column+1), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() {
	r.Out.Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}
