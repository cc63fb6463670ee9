package theme

import (
	"image/color"

	"git.lost.host/meutraa/fret/internal/game"
)

type Theme interface {
	ColumnColor(column game.Column) color.RGBA
	RenderNote(column game.Column) string
	RenderHitField(column game.Column) string
}
