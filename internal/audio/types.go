package audio

import (
	"errors"
	"time"

	"github.com/faiface/beep"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)

	// Fade out after a note is released
	releaseTime = 300 * time.Millisecond
	// Pitch recorded in sample files
	rootPitch = 60
)

var (
	ErrUnknownInstrument = errors.New("instrument not found")
	ErrUnsupportedFormat = errors.New("unsupported sample format")
)

// Instrument turns a note into a finite stream of samples.
type Instrument interface {
	Voice(sr beep.SampleRate, pitch int, velocity float64, d time.Duration) beep.Streamer
}
