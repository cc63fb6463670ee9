package render

import (
	"math"

	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/vec"
)

// Layout maps canvas coordinates onto a grid of terminal cells. The first
// row holds the score, the last one the status line.
type Layout struct {
	Params     game.Params
	Rows, Cols int
}

func (l Layout) fieldRows() int {
	if l.Rows < 3 {
		return 1
	}
	return l.Rows - 2
}

// Cell returns the zero based row and column of a canvas position, and
// whether it lies on the playing field.
func (l Layout) Cell(p vec.Vec) (int, int, bool) {
	if p.Y < 0 || p.Y > l.Params.CanvasHeight || p.X < 0 || p.X > l.Params.CanvasWidth {
		return 0, 0, false
	}
	row := 1 + int(math.Round(p.Y/l.Params.CanvasHeight*float64(l.fieldRows()-1)))
	col := int(math.Round(p.X / l.Params.CanvasWidth * float64(l.Cols-1)))
	return row, col, true
}

// HitRow is the row the hit line is drawn on.
func (l Layout) HitRow() int {
	row, _, _ := l.Cell(vec.Vec{Y: l.Params.HitLineY})
	return row
}

// ColumnCol is the terminal column of a note column.
func (l Layout) ColumnCol(c game.Column) int {
	_, col, _ := l.Cell(vec.Vec{X: c.X(l.Params.CanvasWidth)})
	return col
}

func (l Layout) StatusRow() int {
	return l.Rows - 1
}
