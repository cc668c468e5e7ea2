package game

import (
	"context"
	"time"
)

// Sink receives what the clock produces.
type Sink interface {
	Render(State)
	GameOver(GameOver)
}

// Run is the clock for goroutine-driven frontends. It sleeps until Start,
// then ticks every Progress.Speed and hands each state to sink. The ticker is
// stopped as soon as a game ends and only restarted by the next Start. Run
// returns when ctx is done.
func (e *Engine) Run(ctx context.Context, sink Sink) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.wake:
		}
		sink.Render(e.State())
		if err := e.runGame(ctx, sink); err != nil {
			return err
		}
	}
}

func (e *Engine) runGame(ctx context.Context, sink Sink) error {
	speed := e.Speed()
	ticker := time.NewTicker(speed)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		s, ok := e.Tick()
		if !ok {
			if s.Phase != PhasePlaying {
				return nil
			}
			continue
		}
		sink.Render(s)

		if over, done := s.GameOver(); done {
			sink.GameOver(over)
			return nil
		}
		if s.Progress.Speed != speed {
			speed = s.Progress.Speed
			ticker.Reset(speed)
		}
	}
}
