// Package term is the tcell terminal frontend. Each board cell is two
// columns wide so the grid looks square.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"word-snake/ai"
	"word-snake/game"
	"word-snake/game/types"
	"word-snake/input"
	"word-snake/ui/hud"
)

const (
	boardX    = 1
	boardY    = 1
	cellWidth = 2
	panelGap  = 3
)

var (
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorSlateBlue)
	styleHead    = tcell.StyleDefault.Background(tcell.ColorRebeccaPurple).Foreground(tcell.ColorWhite).Bold(true)
	styleBody    = tcell.StyleDefault.Background(tcell.ColorMediumSlateBlue).Foreground(tcell.ColorWhite)
	styleCorrect = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite).Bold(true)
	styleDecoy   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleScore   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleOverlay = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

type Options struct {
	Autopilot bool
	Logger    zerolog.Logger
}

// Run takes over the terminal until the player quits or ctx is done.
func Run(ctx context.Context, e *game.Engine, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return run(ctx, screen, e, opts)
}

func run(ctx context.Context, screen tcell.Screen, e *game.Engine, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v := newView(screen, e, opts)
	v.draw(e.State())

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	clock := make(chan error, 1)
	go func() { clock <- e.Run(ctx, v) }()

	for {
		select {
		case <-ctx.Done():
			<-clock
			return nil
		case err := <-clock:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case ev := <-events:
			if v.handle(ev) {
				cancel()
				<-clock
				return nil
			}
		}
	}
}

// view draws engine states and implements game.Sink.
type view struct {
	screen    tcell.Screen
	engine    *game.Engine
	pilot     ai.Autopilot
	autopilot atomic.Bool
	log       zerolog.Logger

	mu sync.Mutex // serializes drawing between the clock and input goroutines
}

func newView(screen tcell.Screen, e *game.Engine, opts Options) *view {
	v := &view{screen: screen, engine: e, log: opts.Logger}
	v.autopilot.Store(opts.Autopilot)
	return v
}

// Render draws s and, in autopilot mode, chooses the next heading.
func (v *view) Render(s game.State) {
	if v.autopilot.Load() && s.Phase == game.PhasePlaying {
		v.engine.SetDirection(v.pilot.Decide(s))
	}
	v.draw(s)
}

// GameOver is drawn by Render as part of the terminal state.
func (v *view) GameOver(over game.GameOver) {
	v.log.Debug().Str("reason", over.Reason).Int("score", over.Score).Msg("game over shown")
}

// handle applies one terminal event and reports whether to quit.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.apply(keyCommand(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw(v.engine.State())
	}
	return false
}

func (v *view) apply(cmd input.Command) bool {
	if cmd.Kind == input.ToggleAutopilot {
		on := !v.autopilot.Load()
		v.autopilot.Store(on)
		v.log.Info().Bool("autopilot", on).Msg("autopilot toggled")
		v.draw(v.engine.State())
		return false
	}
	return input.Apply(v.engine, cmd)
}

// keyCommand maps a key press to a command.
func keyCommand(key tcell.Key, r rune) input.Command {
	switch key {
	case tcell.KeyUp:
		return input.MoveCmd(types.Up)
	case tcell.KeyDown:
		return input.MoveCmd(types.Down)
	case tcell.KeyLeft:
		return input.MoveCmd(types.Left)
	case tcell.KeyRight:
		return input.MoveCmd(types.Right)
	case tcell.KeyEnter:
		return input.Command{Kind: input.Start}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Command{Kind: input.Quit}
	case tcell.KeyRune:
		return input.FromRune(r)
	}
	return input.Command{}
}

func (v *view) draw(s game.State) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.screen.Clear()
	v.drawBoard(s)
	v.drawPanel(s)

	switch {
	case s.Phase == game.PhaseIdle:
		v.drawOverlay(s.Grid, []string{hud.Title, hud.StartPrompt(v.autopilot.Load())})
	case s.Terminal():
		over, _ := s.GameOver()
		v.drawOverlay(s.Grid, hud.GameOver(over))
	}
	v.screen.Show()
}

func (v *view) drawBoard(s game.State) {
	w, h := s.Grid.Width*cellWidth, s.Grid.Height
	for x := boardX - 1; x <= boardX+w; x++ {
		v.screen.SetContent(x, boardY-1, '─', nil, styleBorder)
		v.screen.SetContent(x, boardY+h, '─', nil, styleBorder)
	}
	for y := boardY - 1; y <= boardY+h; y++ {
		v.screen.SetContent(boardX-1, y, '│', nil, styleBorder)
		v.screen.SetContent(boardX+w, y, '│', nil, styleBorder)
	}
	v.screen.SetContent(boardX-1, boardY-1, '┌', nil, styleBorder)
	v.screen.SetContent(boardX+w, boardY-1, '┐', nil, styleBorder)
	v.screen.SetContent(boardX-1, boardY+h, '└', nil, styleBorder)
	v.screen.SetContent(boardX+w, boardY+h, '┘', nil, styleBorder)

	letters := s.SegmentLetters()
	for i := len(s.Snake.Body) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		ch := rune(letters[i])
		if ch == 0 {
			ch = ' '
			if i == 0 {
				ch = headGlyph(s.Direction)
			}
		}
		v.putCell(s.Snake.Body[i], ch, style)
	}

	for _, t := range s.Tiles {
		style := styleDecoy
		if t.Correct {
			style = styleCorrect
		}
		v.putCell(t.Position, rune(t.Letter), style)
	}
}

func (v *view) putCell(p types.Point, ch rune, style tcell.Style) {
	x := boardX + p.X*cellWidth
	y := boardY + p.Y
	v.screen.SetContent(x, y, ch, nil, style)
	v.screen.SetContent(x+1, y, ' ', nil, style)
}

func headGlyph(d types.Direction) rune {
	switch d {
	case types.Up:
		return '^'
	case types.Down:
		return 'v'
	case types.Left:
		return '<'
	default:
		return '>'
	}
}

func (v *view) drawPanel(s game.State) {
	x := boardX + s.Grid.Width*cellWidth + panelGap
	y := boardY - 1

	y = v.text(x, y, hud.Title, styleText.Bold(true)) + 1
	y = v.text(x, y, hud.Score(s), styleScore)
	if best := hud.Best(v.engine.Session()); best != "" {
		y = v.text(x, y, best, styleDim)
	}
	if s.Phase != game.PhaseIdle {
		y = v.text(x, y, hud.Level(s), styleText)
		y = v.text(x, y, hud.Words(s), styleText)
		y = v.text(x, y, hud.Build(s), styleText.Bold(true))
	}
	y++

	v.screen.SetContent(x, y, ' ', nil, styleCorrect)
	v.text(x+2, y, hud.Legend[0], styleDim)
	y++
	v.screen.SetContent(x, y, ' ', nil, styleDecoy)
	y = v.text(x+2, y, hud.Legend[1], styleDim) + 1

	for _, line := range hud.Help {
		y = v.text(x, y, line, styleDim)
	}
	y++
	y = v.text(x, y, "Enter start  P autopilot  Q quit", styleDim)
	if v.autopilot.Load() {
		v.text(x, y, "Autopilot on", styleScore)
	}
}

func (v *view) drawOverlay(grid types.Grid, lines []string) {
	w := grid.Width * cellWidth
	top := boardY + (grid.Height-len(lines))/2
	for i, line := range lines {
		v.text(boardX+max(0, (w-len(line))/2), top+i, line, styleOverlay)
	}
}

// text writes s starting at (x, y) and returns the next line.
func (v *view) text(x, y int, s string, style tcell.Style) int {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
	return y + 1
}
