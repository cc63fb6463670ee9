package game

import "time"

// Params holds the fixed tuning of the playing field.
type Params struct {
	CanvasWidth  float64
	CanvasHeight float64
	TickInterval time.Duration
	HitLineY     float64 // y-coordinate of the buttons notes should be hit on
	Margin       float64 // Fraction of HitLineY that still counts as a hit
	NoteSpeed    float64 // Pixels per tick
	Radius       float64
}

func DefaultParams() Params {
	return Params{
		CanvasWidth:  200,
		CanvasHeight: 400,
		TickInterval: 10 * time.Millisecond,
		HitLineY:     350,
		// 0.2 plays well, loosen or tighten to taste
		Margin:    0.2,
		NoteSpeed: 1,
		Radius:    0.07 * 200,
	}
}

// TicksPerSecond converts song seconds into tick counts.
func (p Params) TicksPerSecond() float64 {
	return float64(time.Second) / float64(p.TickInterval)
}

// TimeToImpact is how many seconds a note takes to fall from y=0 to the hit line.
func (p Params) TimeToImpact() float64 {
	return p.HitLineY * (float64(p.TickInterval) / float64(time.Millisecond)) / 1000 * p.NoteSpeed
}

// ScanLimit is the lowest y a note may have and still be considered by a key press.
func (p Params) ScanLimit() float64 {
	return p.HitLineY * (1 + p.Margin)
}

// HitWindow is the largest distance from the hit line that counts as a hit.
func (p Params) HitWindow() float64 {
	return p.HitLineY * p.Margin
}
