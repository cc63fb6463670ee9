package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/fret/internal/config"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	// The terminal belongs to the renderer
	logFile, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	p := &Program{}
	if err := p.Init(); nil != err {
		p.Deinit()
		log.SetOutput(os.Stderr)
		return err
	}

	if *config.Replay {
		defer p.Deinit()
		return p.Replay()
	}

	state, err := p.Play(context.Background())
	p.Deinit()
	log.SetOutput(os.Stderr)
	if errors.Is(err, context.Canceled) {
		fmt.Println("Quit")
		return nil
	}
	if nil != err {
		return err
	}

	if state.Score > p.best {
		fmt.Printf("Score %v, new high score!\n", state.Score)
	} else {
		fmt.Printf("Score %v, high score %v\n", state.Score, p.best)
	}
	return nil
}
