package game

import (
	"math"
	"time"
)

// Note is one chart entry.
type Note struct {
	UserPlayed bool    // Scrolls down a column instead of playing in the background
	Instrument string  // Instrument name resolved by the audio bank
	Velocity   float64 // 0-1
	Pitch      int     // MIDI pitch, 0-127
	Start      float64 // Seconds from the start of the song
	End        float64
}

// Duration is how long the note sounds for.
func (n Note) Duration() time.Duration {
	return time.Duration(math.Round(math.Abs(n.End-n.Start) * float64(time.Second)))
}

// Input is a recorded key press, offset from the start of the stream.
type Input struct {
	Key Key
	At  time.Duration
}
