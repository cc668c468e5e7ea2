package game

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"word-snake/game/entity"
	"word-snake/game/manager"
	"word-snake/game/types"
	"word-snake/game/words"
)

// Options configures an Engine. Zero values fall back to the standard game.
type Options struct {
	Grid   types.Grid
	Speed  time.Duration
	Bank   *words.Bank
	Rand   *rand.Rand
	Logger zerolog.Logger
}

// Engine holds the current game and the pending direction. It is safe for
// concurrent use: input handlers call SetDirection while a clock calls Tick.
type Engine struct {
	rules   *Rules
	log     zerolog.Logger
	session *manager.StateManager

	mu      sync.Mutex // guards everything below
	uuid    string
	state   State
	pending types.Direction

	ticking atomic.Bool
	wake    chan struct{}
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.Grid.Width <= 0 || opts.Grid.Height <= 0 {
		opts.Grid = types.DefaultGrid
	}
	if opts.Speed <= 0 {
		opts.Speed = types.InitialSpeed
	}
	if opts.Bank == nil {
		bank, err := words.Default()
		if err != nil {
			return nil, err
		}
		opts.Bank = bank
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		rules:   NewRules(opts.Grid, opts.Bank, opts.Rand, opts.Speed, opts.Logger),
		log:     opts.Logger,
		session: manager.NewStateManager(),
		state:   idleState(opts.Grid, opts.Speed),
		wake:    make(chan struct{}, 1),
	}, nil
}

// idleState is shown before the first Start.
func idleState(grid types.Grid, speed time.Duration) State {
	return State{
		Grid:      grid,
		Snake:     entity.NewSnake(grid.Center()),
		Direction: types.Right,
		Progress:  entity.Progression{Level: types.MinLevel, Speed: speed},
		Phase:     PhaseIdle,
	}
}

// Start begins a new game, discarding any game in progress, and wakes Run.
func (e *Engine) Start() State {
	e.mu.Lock()
	e.uuid = uuid.New().String()
	e.state = e.rules.Start()
	e.pending = e.state.Direction
	e.session.GameStarted(time.Now())
	s := e.state
	id := e.uuid
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}

	e.log.Info().
		Str("game", id).
		Int("word_len", len(s.Word.Target)).
		Dur("speed", s.Progress.Speed).
		Msg("game started")
	return s
}

// SetDirection records d as the heading for the next tick. Only perpendicular
// or same-direction changes relative to the last applied heading are accepted;
// later calls before a tick overwrite earlier ones.
func (e *Engine) SetDirection(d types.Direction) bool {
	if !d.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase != PhasePlaying {
		return false
	}
	if d.IsReverse(e.state.Direction) {
		e.log.Debug().Str("game", e.uuid).Stringer("dir", d).Msg("reverse direction ignored")
		return false
	}
	e.pending = d
	return true
}

// Tick runs one simulation step. It reports false without changing anything
// when no game is playing or another tick is still running.
func (e *Engine) Tick() (State, bool) {
	if !e.ticking.CompareAndSwap(false, true) {
		return e.State(), false
	}
	defer e.ticking.Store(false)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase != PhasePlaying {
		return e.state, false
	}

	prev := e.state
	e.state = e.rules.Tick(prev, e.pending)
	e.pending = e.state.Direction
	if over, done := e.state.GameOver(); done {
		e.session.GameEnded(manager.GameRecord{
			ID:             e.uuid,
			Score:          over.Score,
			Level:          over.Level,
			WordsCompleted: over.WordsCompleted,
			Reason:         over.Reason,
		}, time.Now())
	}
	e.logTick(prev, e.state)
	return e.state, true
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ID returns the identifier of the current game, empty before the first Start.
func (e *Engine) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.uuid
}

// Session returns statistics for the games finished so far.
func (e *Engine) Session() manager.SessionStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Stats()
}

// Speed is the current tick interval.
func (e *Engine) Speed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Progress.Speed
}

func (e *Engine) logTick(prev, next State) {
	e.log.Trace().
		Str("game", e.uuid).
		Uint64("tick", next.Tick).
		Int("head_x", next.Snake.Head().X).
		Int("head_y", next.Snake.Head().Y).
		Msg("tick")

	if next.Has(EventWordCompleted) {
		e.log.Info().
			Str("game", e.uuid).
			Str("word", prev.Word.Target).
			Int("score", next.Progress.Score).
			Int("words", next.Progress.WordsCompleted).
			Msg("word completed")
	}
	if next.Has(EventLevelUp) {
		e.log.Info().
			Str("game", e.uuid).
			Int("level", next.Progress.Level).
			Int("word_len", len(next.Word.Target)).
			Msg("level up")
	}
	if over, ok := next.GameOver(); ok {
		e.log.Info().
			Str("game", e.uuid).
			Str("reason", over.Reason).
			Int("score", over.Score).
			Int("level", over.Level).
			Int("words", over.WordsCompleted).
			Msg("game over")
	}
}
