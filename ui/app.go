// Package ui is the raylib window frontend.
package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"word-snake/ai"
	"word-snake/game"
	"word-snake/game/types"
	"word-snake/input"
)

// keyMap lists the non-letter keys; letters go through input.FromRune.
var keyMap = map[int32]input.Command{
	rl.KeyUp:     input.MoveCmd(types.Up),
	rl.KeyDown:   input.MoveCmd(types.Down),
	rl.KeyLeft:   input.MoveCmd(types.Left),
	rl.KeyRight:  input.MoveCmd(types.Right),
	rl.KeyEnter:  {Kind: input.Start},
	rl.KeyEscape: {Kind: input.Quit},
}

type Options struct {
	Width, Height int
	Autopilot     bool
	Logger        zerolog.Logger
}

// Run opens the window and drives e from the frame loop until the player
// quits or closes the window.
func Run(e *game.Engine, opts Options) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "Word Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	renderer := NewRenderer()
	swipe := input.Swipe{Threshold: input.SwipeThreshold}
	pilot := ai.Autopilot{}
	autopilot := opts.Autopilot
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		for _, cmd := range pollCommands(&swipe) {
			if cmd.Kind == input.ToggleAutopilot {
				autopilot = !autopilot
				opts.Logger.Info().Bool("autopilot", autopilot).Msg("autopilot toggled")
				continue
			}
			if cmd.Kind == input.Start && e.State().Phase != game.PhasePlaying {
				lastUpdate = time.Now()
			}
			if input.Apply(e, cmd) {
				return
			}
		}

		// Update game state at the current speed
		if time.Since(lastUpdate) >= e.Speed() {
			if autopilot {
				e.SetDirection(pilot.Decide(e.State()))
			}
			e.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(e.State(), e.Session(), autopilot)
	}
}

// pollCommands collects this frame's key presses and a finished swipe.
func pollCommands(swipe *input.Swipe) []input.Command {
	var cmds []input.Command
	for key, cmd := range keyMap {
		if rl.IsKeyPressed(key) {
			cmds = append(cmds, cmd)
		}
	}
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if cmd := input.FromRune(ch); cmd.Kind != input.None {
			cmds = append(cmds, cmd)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		swipe.Begin(float64(pos.X), float64(pos.Y))
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if dir, ok := swipe.End(float64(pos.X), float64(pos.Y)); ok {
			cmds = append(cmds, input.MoveCmd(dir))
		}
	}
	return cmds
}
