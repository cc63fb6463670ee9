package audio

import (
	"sync"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player sounds notes through the speaker. Until Init is called it only
// resolves instruments, which keeps it usable without an audio device.
type Player struct {
	bank       *Bank
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	ctrl       *beep.Ctrl

	mu          sync.Mutex
	initialized bool
}

func NewPlayer(bank *Bank, sr beep.SampleRate) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		bank:       bank,
		sampleRate: sr,
		mixer:      mixer,
		ctrl:       &beep.Ctrl{Streamer: mixer},
	}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); nil != err {
		return err
	}
	speaker.Play(p.ctrl)
	p.initialized = true
	return nil
}

// Play starts the note and returns immediately, the voice stops by itself
// after the note's duration.
func (p *Player) Play(n game.Note) error {
	instrument, err := p.bank.Get(n.Instrument)
	if nil != err {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return nil
	}

	voice := instrument.Voice(p.sampleRate, n.Pitch, n.Velocity, n.Duration())
	speaker.Lock()
	p.mixer.Add(voice)
	speaker.Unlock()
	return nil
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.initialized = false
}
