package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// synth is an additive instrument: a handful of harmonics under an
// attack/decay envelope.
type synth struct {
	harmonics []float64 // Amplitude of each multiple of the base frequency
	attack    time.Duration
	decay     float64 // Exponential decay per second, 0 sustains
}

var synths = map[string]synth{
	"piano":         {harmonics: []float64{1, 0.5, 0.25, 0.12}, attack: 5 * time.Millisecond, decay: 2.5},
	"violin":        {harmonics: []float64{1, 0.5, 0.33, 0.25, 0.2}, attack: 60 * time.Millisecond},
	"flute":         {harmonics: []float64{1, 0.1, 0.05}, attack: 40 * time.Millisecond},
	"trumpet":       {harmonics: []float64{1, 0.8, 0.6, 0.4, 0.2}, attack: 20 * time.Millisecond, decay: 0.5},
	"saxophone":     {harmonics: []float64{1, 0.6, 0.5, 0.3}, attack: 30 * time.Millisecond, decay: 0.3},
	"trombone":      {harmonics: []float64{1, 0.7, 0.5, 0.3}, attack: 40 * time.Millisecond, decay: 0.3},
	"bass-electric": {harmonics: []float64{1, 0.4, 0.1}, attack: 5 * time.Millisecond, decay: 1.5},
}

func (s synth) Voice(sr beep.SampleRate, pitch int, velocity float64, d time.Duration) beep.Streamer {
	sum := 0.0
	for _, h := range s.harmonics {
		sum += h
	}
	return &synthVoice{
		synth:  s,
		sr:     sr,
		freq:   NoteFreq(pitch),
		gain:   0.3 * velocity / sum,
		held:   sr.N(d),
		length: sr.N(d + releaseTime),
		rise:   sr.N(s.attack),
		fall:   sr.N(releaseTime),
	}
}

type synthVoice struct {
	synth
	sr     beep.SampleRate
	freq   float64
	gain   float64
	pos    int
	held   int // Samples until release
	length int

	rise, fall int // Attack and release in samples
}

func (v *synthVoice) envelope() float64 {
	e := 1.0
	if v.pos < v.rise {
		e = float64(v.pos) / float64(v.rise)
	}
	if v.decay > 0 {
		e *= math.Exp(-v.decay * float64(v.pos) / float64(v.sr))
	}
	if v.pos >= v.held {
		e *= 1 - float64(v.pos-v.held)/float64(v.fall)
	}
	return e
}

func (v *synthVoice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.length {
			return i, i > 0
		}
		t := float64(v.pos) / float64(v.sr)
		val := 0.0
		for k, h := range v.harmonics {
			val += h * math.Sin(2*math.Pi*v.freq*float64(k+1)*t)
		}
		val *= v.gain * v.envelope()

		samples[i][0] = val
		samples[i][1] = val
		v.pos++
	}
	return len(samples), true
}

func (v *synthVoice) Err() error { return nil }
