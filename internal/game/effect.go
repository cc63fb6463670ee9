package game

type EffectKind uint8

const (
	// A note from the chart should sound
	EffectPlay EffectKind = iota
	// A key press did not hit anything, a filler note should sound
	EffectFiller
)

// Effect describes a side effect a transition asks the driver to perform.
type Effect struct {
	Kind EffectKind
	Note Note
}
