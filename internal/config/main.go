package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/fret/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("fret", "Play the user notes of a song chart on four keys.")

	Chart      = app.Arg("chart", "Chart CSV file").Required().ExistingFile()
	Samples    = app.Flag("samples", "Directory of instrument samples, named instrument[-pitch].wav|mp3|ogg").Short('s').ExistingDir()
	Database   = app.Flag("db", "Score history database").Default("scores.db").String()
	Renderer   = app.Flag("renderer", "Terminal renderer").Default("ansi").Short('r').Enum("ansi", "tcell")
	Frames     = app.Flag("frames", "Directory to save PNG frames to").String()
	FrameEvery = app.Flag("frame-every", "Save every nth tick as a frame").Default("5").Int()
	Delay      = app.Flag("delay", "Start delay after the first key press").Default("1s").Short('d').Duration()
	Tick       = app.Flag("tick", "Tick interval").Default("10ms").Short('t').Duration()
	Speed      = app.Flag("speed", "Note speed in pixels per tick").Default("1").Float64()
	HitLine    = app.Flag("hit-line", "y-coordinate of the hit line").Default("350").Float64()
	Margin     = app.Flag("margin", "Fraction of the hit line that still counts as a hit").Default("0.2").Float64()
	Keys       = app.Flag("keys", "Keys for the green, red, blue and yellow columns").Default("hjkl").Short('k').String()
	Repeat     = app.Flag("repeat", "Presses of a key within this long of its previous event are auto-repeat").Default("100ms").Duration()
	Mute       = app.Flag("mute", "Do not open the audio device").Bool()
	Replay     = app.Flag("replay", "Re-simulate the stored runs of the chart and exit").Bool()
	LogFile    = app.Flag("log", "Log file").Default("fret.log").String()
)

func init() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
}

// Parse reads the command line, args excludes the program name.
func Parse(args []string) error {
	if _, err := app.Parse(args); nil != err {
		return err
	}
	return validate()
}

func validate() error {
	switch {
	case *Tick <= 0:
		return fmt.Errorf("tick interval must be positive, got %v", *Tick)
	case *Speed <= 0:
		return fmt.Errorf("note speed must be positive, got %v", *Speed)
	case *HitLine <= 0 || *HitLine >= game.DefaultParams().CanvasHeight:
		return fmt.Errorf("hit line must be inside the canvas, got %v", *HitLine)
	case *Margin < 0 || *Margin >= 1:
		return fmt.Errorf("margin must be in [0, 1), got %v", *Margin)
	case *Repeat < 0:
		return fmt.Errorf("repeat interval can not be negative, got %v", *Repeat)
	case *FrameEvery < 1:
		return fmt.Errorf("frame-every must be at least 1, got %v", *FrameEvery)
	case *Delay < 0:
		*Delay = 0
	}
	return nil
}

func Params() game.Params {
	p := game.DefaultParams()
	p.TickInterval = *Tick
	p.NoteSpeed = *Speed
	p.HitLineY = *HitLine
	p.Margin = *Margin
	return p
}

// StartDelay is never shorter than one tick.
func StartDelay() time.Duration {
	if *Delay < *Tick {
		return *Tick
	}
	return *Delay
}
