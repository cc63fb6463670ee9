package vec

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(p, q Vec) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

var directionTests = map[float64]Vec{
	0:   {0, -1},
	90:  {1, 0},
	180: {0, 1},
	270: {-1, 0},
	360: {0, -1},
}

func TestUnitVectorInDirection(t *testing.T) {
	for deg, expected := range directionTests {
		out := UnitVectorInDirection(deg)
		if !near(out, expected) {
			t.Log("deg     ", deg)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
		if math.Abs(out.Len()-1) > epsilon {
			t.Errorf("unit vector at %v has length %v", deg, out.Len())
		}
	}
}

func TestArithmetic(t *testing.T) {
	a, b := Vec{3, 4}, Vec{1, -2}
	if a.Add(b) != (Vec{4, 2}) {
		t.Errorf("add: %v", a.Add(b))
	}
	if a.Sub(b) != (Vec{2, 6}) {
		t.Errorf("sub: %v", a.Sub(b))
	}
	if a.Scale(2) != (Vec{6, 8}) {
		t.Errorf("scale: %v", a.Scale(2))
	}
	if a.Len() != 5 {
		t.Errorf("len: %v", a.Len())
	}
	if a.Ortho() != (Vec{4, -3}) {
		t.Errorf("ortho: %v", a.Ortho())
	}
	if (Vec{}).Len() != 0 {
		t.Errorf("zero: %v", Vec{})
	}
}

func TestRotateKeepsLength(t *testing.T) {
	a := Vec{3, 4}
	for deg := -720.0; deg <= 720; deg += 15 {
		if math.Abs(a.Rotate(deg).Len()-5) > epsilon {
			t.Errorf("rotate(%v) changed length to %v", deg, a.Rotate(deg).Len())
		}
	}
}
