package vec

import "math"

// Vec is an immutable 2D point or direction.
type Vec struct {
	X, Y float64
}

func (a Vec) Add(b Vec) Vec       { return Vec{a.X + b.X, a.Y + b.Y} }
func (a Vec) Sub(b Vec) Vec       { return a.Add(b.Scale(-1)) }
func (a Vec) Scale(s float64) Vec { return Vec{a.X * s, a.Y * s} }
func (a Vec) Len() float64        { return math.Sqrt(a.X*a.X + a.Y*a.Y) }
func (a Vec) Ortho() Vec          { return Vec{a.Y, -a.X} }

// Rotate turns the vector clockwise on screen (y grows downwards) by deg degrees.
func (a Vec) Rotate(deg float64) Vec {
	rad := math.Pi * deg / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec{a.X*cos - a.Y*sin, a.X*sin + a.Y*cos}
}

// UnitVectorInDirection returns "up" rotated by deg, so 180 points down the screen.
func UnitVectorInDirection(deg float64) Vec {
	return Vec{0, -1}.Rotate(deg)
}
