package testdata

import (
	"strings"

	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/parser"
)

// GetChart returns a short song: a four note riff over a bass line.
func GetChart() (*game.Chart, error) {
	var p parser.DefaultParser
	return p.Parse("riff", strings.NewReader(data))
}

const data = `userPlayed,instrument,velocity,pitch,start,end
false,bass-electric,90,40,0.5,1.0
true,piano,100,60,4.0,4.25
true,piano,100,61,4.5,4.75
false,bass-electric,90,43,4.5,5.0
true,piano,100,62,5.0,5.25
true,violin,80,63,5.5,6.0
false,bass-electric,90,45,6.0,6.5
`
