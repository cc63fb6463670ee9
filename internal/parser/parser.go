package parser

import (
	"io"

	"git.lost.host/meutraa/fret/internal/game"
)

type Parser interface {
	Parse(name string, r io.Reader) (*game.Chart, error)
	ParseFile(file string) (*game.Chart, error)
}
