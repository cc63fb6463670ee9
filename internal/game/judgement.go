package game

import "math"

type Judgement uint8

const (
	Empty Judgement = iota // No note in the scan window of the column
	Miss                   // A note was found but is too far from the hit line
	Hit
)

func (j Judgement) String() string {
	switch j {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	}
	return "Empty"
}

// Judge classifies a key press against the active notes without changing
// anything. The returned index points into s.Notes and is -1 for Empty.
//
// Notes are scanned well above the hit window, so pressing early while a note
// is still approaching counts as a miss rather than being ignored.
func Judge(p Params, s State, key Key) (Judgement, int) {
	column := key.Column()
	limit := p.ScanLimit()

	closest := -1
	for i, n := range s.Notes {
		if n.Column != column || n.Pos.Y > limit {
			continue
		}
		// Strictly greater keeps the first of equal notes
		if closest == -1 || n.Pos.Y > s.Notes[closest].Pos.Y {
			closest = i
		}
	}
	if closest == -1 {
		return Empty, -1
	}
	if math.Abs(s.Notes[closest].Pos.Y-p.HitLineY) <= p.HitWindow() {
		return Hit, closest
	}
	return Miss, closest
}
