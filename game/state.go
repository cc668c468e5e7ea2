package game

import (
	"strings"

	"word-snake/game/entity"
	"word-snake/game/types"
	"word-snake/game/words"
)

// Phase is where a game sits in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWrongLetter
	PhaseCollided
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWrongLetter:
		return "wrong_letter"
	case PhaseCollided:
		return "collided"
	default:
		return "idle"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == PhaseWrongLetter || p == PhaseCollided
}

// Event is something that happened during the tick that produced a State.
type Event int

const (
	EventLetterCollected Event = iota + 1
	EventWordCompleted
	EventLevelUp
	EventWrongLetter
	EventCollision
)

func (e Event) String() string {
	switch e {
	case EventLetterCollected:
		return "letter_collected"
	case EventWordCompleted:
		return "word_completed"
	case EventLevelUp:
		return "level_up"
	case EventWrongLetter:
		return "wrong_letter"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a game. Each tick derives a new State
// from the previous one; slices are never shared for writing.
type State struct {
	Grid      types.Grid
	Snake     entity.Snake
	Direction types.Direction
	Tiles     []entity.LetterTile
	Word      entity.Word
	Progress  entity.Progression
	Phase     Phase
	Reason    string
	Tick      uint64
	Events    []Event
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s.Phase.Terminal()
}

// Has reports whether e happened on the tick that produced s.
func (s State) Has(e Event) bool {
	for _, x := range s.Events {
		if x == e {
			return true
		}
	}
	return false
}

// GameOver is the terminal notification for the UI.
type GameOver struct {
	Reason         string
	Score          int
	Level          int
	WordsCompleted int
}

// GameOver returns the terminal notification; false while the game runs.
func (s State) GameOver() (GameOver, bool) {
	if !s.Terminal() {
		return GameOver{}, false
	}
	return GameOver{
		Reason:         s.Reason,
		Score:          s.Progress.Score,
		Level:          s.Progress.Level,
		WordsCompleted: s.Progress.WordsCompleted,
	}, true
}

// SegmentLetters labels each snake segment, head first. The head carries the
// most recent collected letter and each following segment the one before it;
// segments past the earliest letter get 0.
func (s State) SegmentLetters() []byte {
	out := make([]byte, s.Snake.Len())
	collected := s.Word.Collected
	for i := range out {
		idx := len(collected) - 1 - i
		if idx >= 0 {
			out[i] = collected[idx]
		}
	}
	return out
}

// BuildSlots returns the target word with uncollected letters masked as '?'.
func (s State) BuildSlots() string {
	var b strings.Builder
	for i := 0; i < len(s.Word.Target); i++ {
		if i < len(s.Word.Collected) {
			b.WriteByte(s.Word.Target[i])
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// WordLength is the target length for the current level.
func (s State) WordLength() int {
	return words.LengthForLevel(s.Progress.Level)
}
