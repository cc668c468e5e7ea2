package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"word-snake/game/entity"
	"word-snake/game/manager"
	"word-snake/game/types"
	"word-snake/game/words"
)

// Rules is the pure transition function of the game. All randomness comes
// from the injected rng, so a seeded Rules replays the same game.
type Rules struct {
	grid         types.Grid
	collisionMgr *manager.CollisionManager
	progressMgr  *manager.ProgressionManager
}

func NewRules(grid types.Grid, bank *words.Bank, rng *rand.Rand, speed time.Duration, log zerolog.Logger) *Rules {
	collisionMgr := manager.NewCollisionManager(grid)
	letterMgr := manager.NewLetterManager(collisionMgr, rng, log)
	return &Rules{
		grid:         grid,
		collisionMgr: collisionMgr,
		progressMgr:  manager.NewProgressionManager(bank, letterMgr, rng, speed),
	}
}

// Start returns a fresh playing state: a one-cell snake in the middle of the
// grid heading right, level 1 and a new target word.
func (r *Rules) Start() State {
	snake := entity.NewSnake(r.grid.Center())
	progress, word, tiles := r.progressMgr.Reset(snake)
	return State{
		Grid:      r.grid,
		Snake:     snake,
		Direction: types.Right,
		Tiles:     tiles,
		Word:      word,
		Progress:  progress,
		Phase:     PhasePlaying,
	}
}

// Tick advances prev by one cell in dir. Idle and terminal states are
// returned unchanged. An invalid dir, or one reversing prev.Direction, keeps
// the current heading.
func (r *Rules) Tick(prev State, dir types.Direction) State {
	if prev.Phase != PhasePlaying {
		return prev
	}

	next := prev
	next.Tick++
	next.Events = nil
	if dir.Valid() && !dir.IsReverse(prev.Direction) {
		next.Direction = dir
	}

	step := r.collisionMgr.Step(prev.Snake, next.Direction)
	if step.Collided {
		next.Phase = PhaseCollided
		next.Reason = types.CollisionReason
		next.Events = []Event{EventCollision}
		return next
	}

	tile, ate := entity.TileAt(prev.Tiles, step.NewHead)
	if !ate {
		next.Snake = step.Candidate.DropTail()
		return next
	}

	// Eating a decoy freezes the board as it was before the move.
	if !tile.Correct {
		next.Phase = PhaseWrongLetter
		next.Reason = manager.WrongLetterReason(tile.Letter, prev.Word.Target)
		next.Events = []Event{EventWrongLetter}
		return next
	}

	grown := step.Candidate
	c := r.progressMgr.Consume(prev.Progress, prev.Word, prev.Tiles, tile, grown)
	next.Snake = grown
	next.Progress = c.Progress
	next.Word = c.Word
	next.Tiles = c.Tiles
	next.Events = []Event{EventLetterCollected}
	if c.Outcome == manager.OutcomeWordComplete {
		next.Events = append(next.Events, EventWordCompleted)
	}
	if c.LeveledUp {
		next.Events = append(next.Events, EventLevelUp)
	}
	return next
}
