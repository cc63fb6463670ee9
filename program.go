package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/fret/internal/audio"
	"git.lost.host/meutraa/fret/internal/config"
	"git.lost.host/meutraa/fret/internal/driver"
	"git.lost.host/meutraa/fret/internal/game"
	"git.lost.host/meutraa/fret/internal/input"
	"git.lost.host/meutraa/fret/internal/parser"
	"git.lost.host/meutraa/fret/internal/render"
	"git.lost.host/meutraa/fret/internal/score"
	"git.lost.host/meutraa/fret/internal/theme"
)

type Program struct {
	Parser   parser.Parser
	Scorer   score.Scorer
	Theme    theme.Theme
	Bank     *audio.Bank
	Player   *audio.Player
	Renderer render.Renderer
	Source   input.Source

	params  game.Params
	chart   *game.Chart
	best    int
	keymap  input.Keymap
	frames  *render.FrameRecorder
	reading bool
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Scorer = &score.DefaultScorer{}
	p.Theme = &theme.DefaultTheme{}
	p.params = config.Params()

	var err error
	p.keymap, err = input.ParseKeymap(*config.Keys)
	if nil != err {
		return err
	}

	p.chart, err = p.Parser.ParseFile(*config.Chart)
	if nil != err {
		return fmt.Errorf("unable to parse chart: %w", err)
	}
	log.Printf("Loaded %v (%v user, %v background notes)\n", p.chart.Name, p.chart.UserCount, p.chart.BackgroundCount)

	if err := p.Scorer.Init(*config.Database); nil != err {
		return fmt.Errorf("unable to open score database: %w", err)
	}
	if best, ok := p.Scorer.Best(p.chart); ok {
		p.best = best.Score
	}

	if *config.Replay {
		return nil
	}

	p.Bank = audio.NewBank()
	if *config.Samples != "" {
		if err := p.Bank.LoadDir(*config.Samples); nil != err {
			return fmt.Errorf("unable to load samples: %w", err)
		}
	}
	if !*config.Mute {
		p.Player = audio.NewPlayer(p.Bank, audio.DefaultSampleRate)
		if err := p.Player.Init(); nil != err {
			return fmt.Errorf("unable to open audio device: %w", err)
		}
	}

	multi := render.Multi{}
	switch *config.Renderer {
	case "tcell":
		r := render.NewTcellRenderer(p.params, p.Theme, p.keymap)
		r.Best = p.best
		multi = append(multi, r)
		p.Source = r
	default:
		r := render.NewDefaultRenderer(p.params, p.Theme)
		r.Best = p.best
		multi = append(multi, r)
		p.Source = &input.KeyboardSource{Keymap: p.keymap}
	}
	if *config.Frames != "" {
		p.frames = render.NewFrameRecorder(*config.Frames, *config.FrameEvery, p.params, p.Theme)
		multi = append(multi, p.frames)
	}
	p.Renderer = multi
	p.Source = input.NewUnrepeated(p.Source, *config.Repeat)

	return p.Renderer.Init()
}

func (p *Program) Deinit() {
	if p.reading {
		if err := p.Source.Close(); nil != err {
			log.Println("unable to close input", err)
		}
	}
	if nil != p.Renderer {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}
	if nil != p.Player {
		p.Player.Close()
	}
	p.Scorer.Deinit()
}

// Play waits for the first key press, then runs the chart until the game is
// over or the player quits. Finished runs are saved.
func (p *Program) Play(ctx context.Context) (game.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	presses, err := p.Source.Start()
	if nil != err {
		return game.State{}, fmt.Errorf("unable to read keys: %w", err)
	}
	p.reading = true

	p.Renderer.Present(game.Initial())
	select {
	case <-ctx.Done():
		return game.State{}, ctx.Err()
	case press, ok := <-presses:
		if !ok || press.Quit {
			return game.State{}, context.Canceled
		}
	}
	select {
	case <-ctx.Done():
		return game.State{}, ctx.Err()
	case <-time.After(config.StartDelay()):
	}

	keys := make(chan game.Key, 128)
	go func() {
		defer close(keys)
		for press := range presses {
			if press.Quit {
				cancel()
				return
			}
			select {
			case keys <- press.Key:
			case <-ctx.Done():
				return
			}
		}
	}()

	var player driver.Player
	if nil != p.Player {
		player = p.Player
	}
	fold := driver.NewFold(game.NewReducer(p.params), player, p.Renderer)
	d := driver.New(fold, p.params.TickInterval)
	state, inputs, err := d.Run(ctx, driver.NewTimeline(p.chart, p.params), keys)
	if nil != err {
		return state, err
	}

	if state.GameOver {
		p.Scorer.Save(p.chart, &score.History{
			Score:  state.Score,
			Params: p.params,
			Inputs: inputs,
		})
	}
	if nil != p.frames {
		log.Printf("Saved %v frames to %v\n", p.frames.Frames(), *config.Frames)
	}
	return state, nil
}

// Replay simulates every stored run of the chart again and reports any
// score that can not be reproduced.
func (p *Program) Replay() error {
	histories := p.Scorer.Load(p.chart)
	if len(histories) == 0 {
		fmt.Printf("No runs of %v recorded\n", p.chart.Name)
		return nil
	}
	mismatches := 0
	replayer := score.NewReplayer(p.chart)
	for _, h := range histories {
		state, err := replayer.Replay(&h)
		if nil != err {
			return fmt.Errorf("unable to replay run %v: %w", h.ID, err)
		}
		mark := ""
		if state.Score != h.Score {
			mark = "  mismatch"
			mismatches++
		}
		fmt.Printf("%4v  %v  %4v  %4v%v\n", h.ID, h.PlayedAt.Format(time.RFC3339), h.Score, state.Score, mark)
	}
	if mismatches > 0 {
		return fmt.Errorf("%v of %v runs did not replay to their stored score", mismatches, len(histories))
	}
	return nil
}
