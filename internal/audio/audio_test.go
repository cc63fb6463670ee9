package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// drainCount streams s to the end and returns the number of samples.
func drainCount(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Abs(sample[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestNoteFreq(t *testing.T) {
	freqs := map[int]float64{69: 440, 57: 220, 81: 880, 60: 261.6256}
	for midi, freq := range freqs {
		if math.Abs(NoteFreq(midi)-freq) > 0.001 {
			t.Errorf("midi %v: %v, expected %v", midi, NoteFreq(midi), freq)
		}
	}
	if NoteFreq(-1) != 0 || NoteFreq(128) != 0 {
		t.Errorf("out of range notes have a frequency")
	}
}

func TestSynthVoiceLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	for name, s := range synths {
		n, peak := drainCount(s.Voice(sr, 60, 1, 250*time.Millisecond))
		if n != sr.N(250*time.Millisecond+releaseTime) {
			t.Errorf("%v: %v samples", name, n)
		}
		if peak <= 0 || peak > 1 {
			t.Errorf("%v: peak %v", name, peak)
		}
	}
}

func TestSynthVelocity(t *testing.T) {
	sr := beep.SampleRate(8000)
	_, loud := drainCount(synths["flute"].Voice(sr, 72, 1, 100*time.Millisecond))
	_, quiet := drainCount(synths["flute"].Voice(sr, 72, 0.25, 100*time.Millisecond))
	_, silent := drainCount(synths["flute"].Voice(sr, 72, 0, 100*time.Millisecond))
	if math.Abs(quiet*4-loud) > 1e-9 || silent != 0 {
		t.Errorf("peaks %v %v %v", loud, quiet, silent)
	}
}

func TestBankUnknownInstrument(t *testing.T) {
	b := NewBank()
	_, err := b.Get("kazoo")
	if !errors.Is(err, ErrUnknownInstrument) {
		t.Fatalf("err = %v", err)
	}
	for _, name := range []string{"piano", "violin", "bass-electric"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not list %v: %v", name, err)
		}
	}
	if _, err := b.Get("piano"); nil != err {
		t.Errorf("piano: %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	sr := beep.SampleRate(8000)
	f, err := os.Create(filepath.Join(dir, "kazoo.wav"))
	if nil != err {
		t.Fatal(err)
	}
	tone := synth{harmonics: []float64{1}}.Voice(sr, rootPitch, 1, time.Second)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, tone, format); nil != err {
		t.Fatal(err)
	}
	f.Close()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); nil != err {
		t.Fatal(err)
	}

	b := NewBank()
	if err := b.LoadDir(dir); nil != err {
		t.Fatal(err)
	}
	kazoo, err := b.Get("kazoo")
	if nil != err {
		t.Fatal(err)
	}
	if _, ok := kazoo.(*sampled); !ok {
		t.Errorf("kazoo is a %T", kazoo)
	}
	if _, err := b.Get("notes"); nil == err {
		t.Errorf("text file loaded as an instrument")
	}

	// Bounded by the note, not the recording
	n, _ := drainCount(kazoo.Voice(sr, rootPitch, 1, 100*time.Millisecond))
	if n != sr.N(100*time.Millisecond+releaseTime) {
		t.Errorf("%v samples", n)
	}
	// An octave up plays the recording twice as fast
	n, _ = drainCount(kazoo.Voice(sr, rootPitch+12, 1, 10*time.Second))
	expected := sr.N(time.Second+releaseTime) / 2
	if n < expected*9/10 || n > expected*11/10 {
		t.Errorf("%v samples, expected about %v", n, expected)
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(NewBank(), DefaultSampleRate)
	if err := p.Play(game.Note{Instrument: "piano", Pitch: 60, Velocity: 1, End: 1}); nil != err {
		t.Errorf("piano: %v", err)
	}
	err := p.Play(game.Note{Instrument: "kazoo"})
	if !errors.Is(err, ErrUnknownInstrument) {
		t.Errorf("kazoo: %v", err)
	}
	p.Close()
}
