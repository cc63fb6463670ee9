package render

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/theme"
	"github.com/fogleman/gg"
)

// FrameRecorder saves every Every-th tick as a PNG, drawn on the canvas the
// game is simulated on.
type FrameRecorder struct {
	Dir   string
	Every int
	Scale float64
	Theme theme.Theme

	params game.Params
	dc     *gg.Context
	last   float64
	frames int
	final  bool
}

func NewFrameRecorder(dir string, every int, p game.Params, th theme.Theme) *FrameRecorder {
	return &FrameRecorder{Dir: dir, Every: every, Scale: 2, Theme: th, params: p, last: -1}
}

func (f *FrameRecorder) Init() error {
	if f.Every < 1 {
		f.Every = 1
	}
	if err := os.MkdirAll(f.Dir, 0755); nil != err {
		return fmt.Errorf("unable to create frame directory: %w", err)
	}
	f.dc = gg.NewContext(int(f.params.CanvasWidth*f.Scale), int(f.params.CanvasHeight*f.Scale))
	f.dc.Scale(f.Scale, f.Scale)
	return nil
}

func (f *FrameRecorder) Deinit() error {
	return nil
}

// Frames is the number of images written so far.
func (f *FrameRecorder) Frames() int {
	return f.frames
}

// Present only draws once per tick, on the first state of that tick that is
// due, and always draws the final state.
func (f *FrameRecorder) Present(s game.State) {
	if nil == f.dc || f.final {
		return
	}
	if s.GameOver {
		f.final = true
	} else if s.Time == f.last || int64(s.Time)%int64(f.Every) != 0 {
		return
	}
	f.last = s.Time

	f.drawFrame(s)
	file := filepath.Join(f.Dir, fmt.Sprintf("fr%06d.png", f.frames))
	if err := f.dc.SavePNG(file); nil != err {
		// Recording is best effort, stop instead of failing every frame
		log.Println("unable to save frame", err)
		f.dc = nil
		return
	}
	f.frames++
}

func (f *FrameRecorder) drawFrame(s game.State) {
	dc := f.dc
	w, h := f.params.CanvasWidth, f.params.CanvasHeight

	dc.SetRGB(0.17, 0.17, 0.17)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Column guides and the hit line buttons
	for c := game.Green; c <= game.Yellow; c++ {
		x := c.X(w)
		dc.SetRGBA(1, 1, 1, 0.1)
		dc.SetLineWidth(0.5)
		dc.DrawLine(x, 0, x, h)
		dc.Stroke()

		col := f.Theme.ColumnColor(c)
		dc.SetRGBA255(int(col.R), int(col.G), int(col.B), 255)
		dc.SetLineWidth(2)
		dc.DrawCircle(x, f.params.HitLineY, f.params.Radius)
		dc.Stroke()
	}

	for _, n := range s.Notes {
		col := f.Theme.ColumnColor(n.Column)
		dc.DrawCircle(n.Pos.X, n.Pos.Y, n.Radius)
		dc.SetRGBA255(int(col.R), int(col.G), int(col.B), 255)
		dc.FillPreserve()
		dc.SetRGBA(0, 0, 0, 1)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	// Score bar, one notch per hit
	dc.SetRGBA(1, 1, 1, 0.8)
	for i := 0; i < s.Score; i++ {
		dc.DrawRectangle(4+float64(i%40)*4.8, 4+float64(i/40)*6, 3, 4)
	}
	dc.Fill()

	if s.GameOver {
		dc.SetRGBA(0.9, 0.1, 0.1, 0.6)
		dc.DrawRectangle(0, h/2-10, w, 20)
		dc.Fill()
	}
}
