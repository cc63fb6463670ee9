package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"io"
	"io/ioutil"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"git.lost.host/meutraa/fret/internal/game"
	"github.com/pkg/errors"
)

var ErrMalformedRow = errors.New("malformed chart row")

const fieldCount = 6

// MaxSeconds bounds note times, replays step through every tick up to the
// last note.
const MaxSeconds = 60 * 60

// DefaultParser reads charts of the form
//
//	userPlayed,instrument,velocity,pitch,start,end
//
// with a header row, velocity and pitch as 0-127 integers and times in seconds.
type DefaultParser struct{}

func (p *DefaultParser) ParseFile(file string) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return p.parse(name, data)
}

func (p *DefaultParser) Parse(name string, r io.Reader) (*game.Chart, error) {
	data, err := ioutil.ReadAll(r)
	if nil != err {
		return nil, err
	}
	return p.parse(name, data)
}

func (p *DefaultParser) parse(name string, data []byte) (*game.Chart, error) {
	sum := sha256.Sum256(data)

	str := strings.ReplaceAll(string(data), "\r", "")
	lines := strings.Split(str, "\n")
	notes := []game.Note{}
	// skip the header row
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		note, err := p.parseRow(line)
		if nil != err {
			return nil, errors.Wrapf(err, "%v line %d", name, i+1)
		}
		notes = append(notes, note)
	}

	return game.NewChart(name, base64.StdEncoding.EncodeToString(sum[:]), notes), nil
}

func (p *DefaultParser) parseRow(row string) (game.Note, error) {
	fields := strings.Split(row, ",")
	if len(fields) != fieldCount {
		return game.Note{}, errors.Wrapf(ErrMalformedRow, "expected %d fields, found %d", fieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	userPlayed, err := strconv.ParseBool(strings.ToLower(fields[0]))
	if nil != err {
		return game.Note{}, errors.Wrapf(ErrMalformedRow, "user played %q", fields[0])
	}
	if fields[1] == "" {
		return game.Note{}, errors.Wrap(ErrMalformedRow, "empty instrument")
	}
	velocity, err := parseMidi(fields[2])
	if nil != err {
		return game.Note{}, errors.Wrap(err, "velocity")
	}
	pitch, err := parseMidi(fields[3])
	if nil != err {
		return game.Note{}, errors.Wrap(err, "pitch")
	}
	start, err := parseSeconds(fields[4])
	if nil != err {
		return game.Note{}, errors.Wrap(err, "start")
	}
	end, err := parseSeconds(fields[5])
	if nil != err {
		return game.Note{}, errors.Wrap(err, "end")
	}

	return game.Note{
		UserPlayed: userPlayed,
		Instrument: fields[1],
		Velocity:   float64(velocity) / 127,
		Pitch:      pitch,
		Start:      start,
		End:        end,
	}, nil
}

// parseMidi reads a 0-127 integer.
func parseMidi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if nil != err || v < 0 || v > 127 {
		return 0, errors.Wrapf(ErrMalformedRow, "%q is not within 0-127", s)
	}
	return v, nil
}

func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxSeconds {
		return 0, errors.Wrapf(ErrMalformedRow, "%q is not a time in seconds", s)
	}
	return v, nil
}
