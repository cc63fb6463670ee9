package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/fret/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) ColumnColor(column game.Column) color.RGBA {
	return getColumnColor(column)
}

func (t *DefaultTheme) RenderNote(column game.Column) string {
	color := getColumnColor(column)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, syms[column%game.NColumns])
}

func (t *DefaultTheme) RenderHitField(column game.Column) string {
	color := getColumnColor(column)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", color.R, color.G, color.B, barSyms[column%game.NColumns])
}

var (
	syms         = [...]string{"⬤", "⬤", "⬤", "⬤"}
	barSyms      = [...]string{"◯", "◯", "◯", "◯"}
	columnColors = map[game.Column]color.RGBA{
		game.Green:  {0, 200, 80, 255},
		game.Red:    {236, 30, 0, 255},
		game.Blue:   {0, 118, 236, 255},
		game.Yellow: {236, 195, 0, 255},
	}
	white = color.RGBA{255, 255, 255, 255}
)

func getColumnColor(c game.Column) color.RGBA {
	col, ok := columnColors[c]
	if !ok {
		return white
	}
	return col
}
