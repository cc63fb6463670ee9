package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// sampled plays a recording of the instrument at rootPitch, resampled to
// reach other pitches.
type sampled struct {
	buffer *beep.Buffer
	root   int
}

func newSampled(buffer *beep.Buffer, root int) *sampled {
	return &sampled{buffer: buffer, root: root}
}

// decodeSample reads a whole sample file into memory.
func decodeSample(file string) (*beep.Buffer, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, file)
	}
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

func (s *sampled) Voice(sr beep.SampleRate, pitch int, velocity float64, d time.Duration) beep.Streamer {
	ratio := NoteFreq(pitch) / NoteFreq(s.root)
	ratio *= float64(s.buffer.Format().SampleRate) / float64(sr)
	if ratio <= 0 || math.IsNaN(ratio) {
		ratio = 1
	}

	var streamer beep.Streamer = s.buffer.Streamer(0, s.buffer.Len())
	streamer = beep.ResampleRatio(4, ratio, streamer)
	streamer = beep.Take(sr.N(d+releaseTime), streamer)
	return &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(velocity),
		Silent:   velocity <= 0,
	}
}
