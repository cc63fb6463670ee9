package score

import (
	"reflect"
	"testing"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
)

var compactTests = map[*[]game.Input][]InputsCompact{
	{}: {},
	{{Key: 0, At: 100}, {Key: 3, At: 200}}: {
		{Index: 0, Times: []time.Duration{100}},
		{Index: 1, Times: []time.Duration{}},
		{Index: 2, Times: []time.Duration{}},
		{Index: 3, Times: []time.Duration{200}},
	},
	{{Key: 1, At: 1}, {Key: 1, At: 2}}: {
		{Index: 0, Times: []time.Duration{}},
		{Index: 1, Times: []time.Duration{1, 2}},
	},
	{{Key: 2, At: 5}, {Key: 0, At: 7}, {Key: 2, At: 9}}: {
		{Index: 0, Times: []time.Duration{7}},
		{Index: 1, Times: []time.Duration{}},
		{Index: 2, Times: []time.Duration{5, 9}},
	},
}

func TestCompactInputs(t *testing.T) {
	for in, expected := range compactTests {
		if out := compactInputs(*in); !reflect.DeepEqual(out, expected) {
			t.Errorf("compact %v: got %v, expected %v", *in, out, expected)
		}
	}
}

// Presses of different keys come back merged in time order
func TestUncompactInputs(t *testing.T) {
	for expected, in := range compactTests {
		out := uncompactInputs(in)
		if len(out) != len(*expected) {
			t.Errorf("uncompact %v: got %v, expected %v", in, out, *expected)
			continue
		}
		for i := range out {
			if out[i] != (*expected)[i] {
				t.Errorf("uncompact %v: got %v, expected %v", in, out, *expected)
				break
			}
		}
	}
}

func BenchmarkUncompactInputs(b *testing.B) {
	ins := []game.Input{}
	for i := 0; i < 1000; i++ {
		ins = append(ins, game.Input{Key: game.Key(i % game.NColumns), At: time.Duration(i) * time.Millisecond})
	}
	compact := compactInputs(ins)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uncompactInputs(compact)
	}
}
