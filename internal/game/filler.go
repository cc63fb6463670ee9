package game

// LCG using GCC's constants
const (
	lcgM = 0x80000000
	lcgA = 1103515245
	lcgC = 12345
)

func hash(seed uint64) uint64 {
	return (lcgA*seed + lcgC) % lcgM
}

// scale maps a hash into [0, max].
func scale(h uint64, max float64) float64 {
	return max * float64(h) / float64(lcgM-1)
}

// fillerNote builds the short note played when a key press hits nothing.
// The seed makes it vary between presses while staying reproducible.
func fillerNote(seed int, from *Note) Note {
	h1 := hash(uint64(seed))
	h2 := hash(h1)
	instrument := "piano"
	if from != nil {
		instrument = from.Instrument
	}
	return Note{
		Instrument: instrument,
		Velocity:   0.5,
		Pitch:      int(scale(h1, 127)),
		Start:      0,
		End:        scale(h2, 0.5),
	}
}
