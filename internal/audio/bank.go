package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Bank resolves instrument names.
type Bank struct {
	instruments map[string]Instrument
}

// NewBank returns a bank holding the built in synth instruments.
func NewBank() *Bank {
	b := &Bank{instruments: map[string]Instrument{}}
	for name, s := range synths {
		b.instruments[name] = s
	}
	return b
}

func (b *Bank) Add(name string, i Instrument) {
	b.instruments[name] = i
}

func (b *Bank) Get(name string) (Instrument, error) {
	i, ok := b.instruments[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q, available instruments are: %s",
			ErrUnknownInstrument, name, strings.Join(b.Names(), ", "))
	}
	return i, nil
}

func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.instruments))
	for name := range b.instruments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDir adds a sampled instrument for every .wav, .mp3 or .ogg file under
// dir, named after the file. Samples replace synths of the same name.
func (b *Bank) LoadDir(dir string) error {
	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".wav", ".mp3", ".ogg":
		default:
			return nil
		}
		buffer, err := decodeSample(p)
		if nil != err {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		log.Printf("Loaded %v (%v samples)\n", name, buffer.Len())
		b.Add(name, newSampled(buffer, rootPitch))
		return nil
	})
}
