package parser

import (
	"errors"
	"math"
	"strings"
	"testing"

	"git.lost.host/meutraa/fret/internal/game"
)

const header = "userPlayed,instrument,velocity,pitch,start,end\n"

func TestParseSingleRow(t *testing.T) {
	p := DefaultParser{}
	chart, err := p.Parse("one", strings.NewReader(header+"true,piano,100,60,1.0,1.5"))
	if nil != err {
		t.Fatal(err)
	}
	if len(chart.Notes) != 1 {
		t.Fatalf("parsed %v notes", len(chart.Notes))
	}
	n := chart.Notes[0]
	if !n.UserPlayed || n.Instrument != "piano" || n.Pitch != 60 || n.Start != 1.0 || n.End != 1.5 {
		t.Errorf("parsed %+v", n)
	}
	if math.Abs(n.Velocity-0.787) > 0.001 {
		t.Errorf("velocity %v", n.Velocity)
	}
	if chart.UserCount != 1 || chart.BackgroundCount != 0 || chart.Name != "one" || chart.Hash == "" {
		t.Errorf("chart %+v", chart)
	}
}

func TestParseSkipsBlankRows(t *testing.T) {
	data := header +
		"True,violin,127,61,0.5,1\r\n" +
		"   \n" +
		"\n" +
		"false,bass-electric,0,40,2,2.25\n" +
		"\t\n"
	chart, err := (&DefaultParser{}).Parse("blank", strings.NewReader(data))
	if nil != err {
		t.Fatal(err)
	}
	expected := []game.Note{
		{UserPlayed: true, Instrument: "violin", Velocity: 1, Pitch: 61, Start: 0.5, End: 1},
		{UserPlayed: false, Instrument: "bass-electric", Velocity: 0, Pitch: 40, Start: 2, End: 2.25},
	}
	if len(chart.Notes) != len(expected) {
		t.Fatalf("parsed %v notes", len(chart.Notes))
	}
	for i := range expected {
		if chart.Notes[i] != expected[i] {
			t.Log("out     ", chart.Notes[i])
			t.Log("expected", expected[i])
			t.Fail()
		}
	}
	if chart.UserCount != 1 || chart.BackgroundCount != 1 {
		t.Errorf("counts %v %v", chart.UserCount, chart.BackgroundCount)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	chart, err := (&DefaultParser{}).Parse("empty", strings.NewReader(header))
	if nil != err {
		t.Fatal(err)
	}
	if len(chart.Notes) != 0 {
		t.Errorf("parsed %v notes", len(chart.Notes))
	}
	if _, ok := chart.Last(); ok {
		t.Errorf("empty chart has a last note")
	}
}

var malformed = []string{
	"true,piano,100,60,1.0",
	"true,piano,100,60,1.0,1.5,7",
	"yes,piano,100,60,1.0,1.5",
	"true,,100,60,1.0,1.5",
	"true,piano,128,60,1.0,1.5",
	"true,piano,-1,60,1.0,1.5",
	"true,piano,loud,60,1.0,1.5",
	"true,piano,100,60.5,1.0,1.5",
	"true,piano,100,60,soon,1.5",
	"true,piano,100,60,1.0,NaN",
	"true,piano,100,60,-2,1.5",
	"true,piano,100,60,1.0,1e9",
	"true,piano,100,60,3600.5,3601",
}

func TestParseAcceptsHourLongChart(t *testing.T) {
	chart, err := (&DefaultParser{}).Parse("long", strings.NewReader(header+"false,piano,1,1,3599,3600\n"))
	if nil != err {
		t.Fatal(err)
	}
	if last, _ := chart.Last(); last.End != MaxSeconds {
		t.Errorf("last note ends at %v", last.End)
	}
}

func TestParseRejectsMalformedRows(t *testing.T) {
	for _, row := range malformed {
		_, err := (&DefaultParser{}).Parse("bad", strings.NewReader(header+"true,piano,1,1,0,1\n"+row))
		if !errors.Is(err, ErrMalformedRow) {
			t.Errorf("%q: err = %v", row, err)
			continue
		}
		if !strings.Contains(err.Error(), "line 3") {
			t.Errorf("%q: error does not name the line: %v", row, err)
		}
	}
}

func TestHashDependsOnContent(t *testing.T) {
	p := DefaultParser{}
	a, _ := p.Parse("a", strings.NewReader(header+"true,piano,100,60,1.0,1.5"))
	b, _ := p.Parse("b", strings.NewReader(header+"true,piano,100,60,1.0,1.5"))
	c, _ := p.Parse("a", strings.NewReader(header+"true,piano,100,61,1.0,1.5"))
	if a.Hash != b.Hash || a.Hash == c.Hash {
		t.Errorf("hashes %v %v %v", a.Hash, b.Hash, c.Hash)
	}
}
