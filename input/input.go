// Package input turns raw key presses and swipe gestures into engine commands.
// Frontends map their own key codes onto Command values and hand them to Apply.
package input

import (
	"unicode"

	"word-snake/game"
	"word-snake/game/types"
)

// Kind is the type of a Command.
type Kind int

const (
	None Kind = iota
	Move
	Start
	Quit
	ToggleAutopilot
)

// Command is a single player intent.
type Command struct {
	Kind Kind
	Dir  types.Direction
}

// MoveCmd returns a movement command.
func MoveCmd(d types.Direction) Command {
	return Command{Kind: Move, Dir: d}
}

// FromRune maps the letter keys shared by every frontend: WASD to move,
// space to start, q to quit, p to toggle the autopilot.
func FromRune(r rune) Command {
	switch unicode.ToLower(r) {
	case 'w':
		return MoveCmd(types.Up)
	case 'a':
		return MoveCmd(types.Left)
	case 's':
		return MoveCmd(types.Down)
	case 'd':
		return MoveCmd(types.Right)
	case ' ':
		return Command{Kind: Start}
	case 'q':
		return Command{Kind: Quit}
	case 'p':
		return Command{Kind: ToggleAutopilot}
	default:
		return Command{}
	}
}

// Controller is the part of the engine commands act on.
type Controller interface {
	Start() game.State
	SetDirection(types.Direction) bool
	State() game.State
}

// Apply executes c against ctrl. Start only fires when no game is running.
// It reports whether the player asked to quit.
func Apply(ctrl Controller, c Command) (quit bool) {
	switch c.Kind {
	case Move:
		ctrl.SetDirection(c.Dir)
	case Start:
		if ctrl.State().Phase != game.PhasePlaying {
			ctrl.Start()
		}
	case Quit:
		return true
	}
	return false
}
