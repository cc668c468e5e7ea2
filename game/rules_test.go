package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"word-snake/game/entity"
	"word-snake/game/types"
	"word-snake/game/words"
)

func newRules(t *testing.T, seed int64) *Rules {
	t.Helper()
	bank, err := words.Default()
	if err != nil {
		t.Fatalf("words.Default: %v", err)
	}
	return NewRules(types.DefaultGrid, bank, rand.New(rand.NewSource(seed)), types.InitialSpeed, zerolog.Nop())
}

// placeAhead replaces the board with the required letter right in front of the head.
func placeAhead(s State) State {
	next, _ := s.Word.NextLetter()
	s.Tiles = []entity.LetterTile{{Position: s.Snake.Head().Add(s.Direction), Letter: next, Correct: true}}
	return s
}

// eatWord spells the whole current word, re-centering a fresh snake before
// each bite so the board edge is never reached.
func eatWord(r *Rules, s State) State {
	for !s.Terminal() {
		s.Snake = entity.NewSnake(types.Point{X: 5, Y: 5})
		s.Direction = types.Right
		s = r.Tick(placeAhead(s), types.Right)
		if s.Has(EventWordCompleted) {
			return s
		}
	}
	return s
}

func TestStart(t *testing.T) {
	s := newRules(t, 1).Start()

	if s.Phase != PhasePlaying {
		t.Errorf("phase = %v", s.Phase)
	}
	if s.Snake.Len() != 1 || s.Snake.Head() != (types.Point{X: 10, Y: 10}) {
		t.Errorf("snake = %v", s.Snake.Body)
	}
	if s.Direction != types.Right {
		t.Errorf("direction = %v", s.Direction)
	}
	if len(s.Word.Target) != 3 || s.Word.Collected != "" {
		t.Errorf("word = %+v", s.Word)
	}
	if s.Progress.Score != 0 || s.Progress.Level != 1 || s.Progress.WordsCompleted != 0 || s.Progress.Speed != types.InitialSpeed {
		t.Errorf("progress = %+v", s.Progress)
	}
	if entity.CorrectTiles(s.Tiles) != 1 {
		t.Errorf("tiles = %+v", s.Tiles)
	}
}

func TestTickMovesWithoutGrowing(t *testing.T) {
	r := newRules(t, 2)
	s := r.Start()
	s.Tiles = nil

	next := r.Tick(s, types.Down)
	if next.Snake.Len() != 1 || next.Snake.Head() != (types.Point{X: 10, Y: 11}) {
		t.Errorf("snake = %v", next.Snake.Body)
	}
	if next.Direction != types.Down || next.Tick != 1 || len(next.Events) != 0 {
		t.Errorf("next = %+v", next)
	}
	if s.Snake.Head() != (types.Point{X: 10, Y: 10}) || s.Tick != 0 {
		t.Error("Tick modified the previous state")
	}
}

func TestTickIgnoresReverseDirection(t *testing.T) {
	r := newRules(t, 2)
	s := r.Start()
	s.Tiles = nil

	next := r.Tick(s, types.Left)
	if next.Direction != types.Right || next.Snake.Head() != (types.Point{X: 11, Y: 10}) {
		t.Errorf("reverse applied: dir=%v head=%v", next.Direction, next.Snake.Head())
	}
}

// Scenario A: three correct letters at level 1 complete a word.
func TestScenarioCompleteFirstWord(t *testing.T) {
	r := newRules(t, 3)
	s := r.Start()
	target := s.Word.Target

	for i := 0; i < 3; i++ {
		before := s.Snake.Len()
		s = r.Tick(placeAhead(s), s.Direction)
		if s.Snake.Len() != before+1 {
			t.Fatalf("bite %d: length %d, want %d", i, s.Snake.Len(), before+1)
		}
		if i < 2 && s.Word.Collected != target[:i+1] {
			t.Fatalf("bite %d: collected %q of %q", i, s.Word.Collected, target)
		}
	}

	if !s.Has(EventWordCompleted) || s.Has(EventLevelUp) {
		t.Errorf("events = %v", s.Events)
	}
	if s.Progress.Score != 80 || s.Progress.WordsCompleted != 1 || s.Progress.Level != 1 {
		t.Errorf("progress = %+v", s.Progress)
	}
	if s.Phase != PhasePlaying || s.Word.Collected != "" || len(s.Word.Target) != 3 {
		t.Errorf("state after word: phase=%v word=%+v", s.Phase, s.Word)
	}
	if s.Snake.Len() != 4 || s.Snake.Head() != (types.Point{X: 13, Y: 10}) {
		t.Errorf("snake = %v", s.Snake.Body)
	}
}

// Scenario B: the third completed word raises the level and the word length.
func TestScenarioLevelUp(t *testing.T) {
	r := newRules(t, 4)
	s := r.Start()

	for i := 1; i <= 3; i++ {
		s = eatWord(r, s)
		if s.Terminal() {
			t.Fatalf("word %d ended the game: %s", i, s.Reason)
		}
	}
	if !s.Has(EventLevelUp) {
		t.Errorf("events = %v", s.Events)
	}
	if s.Progress.Level != 2 || s.Progress.WordsCompleted != 3 {
		t.Errorf("progress = %+v", s.Progress)
	}
	if len(s.Word.Target) != 4 || s.WordLength() != 4 {
		t.Errorf("target %q, want 4 letters", s.Word.Target)
	}
}

// Scenario C: eating a decoy ends the game and freezes the board.
func TestScenarioWrongLetter(t *testing.T) {
	r := newRules(t, 5)
	s := r.Start()
	s = r.Tick(placeAhead(s), s.Direction) // one correct letter first
	s.Tiles = []entity.LetterTile{{Position: s.Snake.Head().Add(types.Down), Letter: 'Q'}}
	before := s

	s = r.Tick(s, types.Down)

	if s.Phase != PhaseWrongLetter || !s.Terminal() {
		t.Fatalf("phase = %v", s.Phase)
	}
	if !strings.Contains(s.Reason, `"Q"`) || !strings.Contains(s.Reason, before.Word.Target) {
		t.Errorf("reason = %q", s.Reason)
	}
	if s.Progress != before.Progress {
		t.Errorf("progress changed: %+v -> %+v", before.Progress, s.Progress)
	}
	// No growth: the fatal head is not part of the final snake.
	if s.Snake.Len() != before.Snake.Len() || s.Snake.Head() != before.Snake.Head() {
		t.Errorf("snake = %v, want frozen %v", s.Snake.Body, before.Snake.Body)
	}
	if len(s.Tiles) != len(before.Tiles) {
		t.Errorf("tiles changed on wrong letter")
	}
	over, ok := s.GameOver()
	if !ok || over.Reason != s.Reason || over.Score != before.Progress.Score || over.Level != 1 {
		t.Errorf("game over = %+v, %v", over, ok)
	}
}

// Scenario D: leaving the left edge is a collision.
func TestScenarioWallCollision(t *testing.T) {
	r := newRules(t, 6)
	s := r.Start()
	s.Tiles = nil
	s.Snake = entity.NewSnake(types.Point{X: 0, Y: 7})
	s.Direction = types.Left

	next := r.Tick(s, types.Left)
	if next.Phase != PhaseCollided || next.Reason != types.CollisionReason {
		t.Fatalf("phase=%v reason=%q", next.Phase, next.Reason)
	}
	if next.Snake.Head() != (types.Point{X: 0, Y: 7}) || next.Snake.Len() != 1 {
		t.Errorf("snake = %v", next.Snake.Body)
	}
	if !next.Has(EventCollision) {
		t.Errorf("events = %v", next.Events)
	}
}

func TestSelfCollision(t *testing.T) {
	r := newRules(t, 6)
	s := r.Start()
	s.Tiles = nil
	s.Snake = entity.Snake{Body: []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}}
	s.Direction = types.Left

	next := r.Tick(s, types.Down)
	if next.Phase != PhaseCollided {
		t.Fatalf("phase = %v", next.Phase)
	}
}

// Scenario E: level never exceeds the maximum.
func TestScenarioLevelCap(t *testing.T) {
	r := newRules(t, 7)
	s := r.Start()
	s.Progress.Level = types.MaxLevel
	s.Progress.WordsCompleted = 21
	s.Word = entity.Word{Target: "PHILOSOPHY"}

	for i := 0; i < 3; i++ {
		s = eatWord(r, s)
		if s.Has(EventLevelUp) {
			t.Fatalf("word %d leveled up past %d", i+1, types.MaxLevel)
		}
	}
	if s.Progress.Level != types.MaxLevel || s.Progress.WordsCompleted != 24 {
		t.Errorf("progress = %+v", s.Progress)
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	r := newRules(t, 8)
	s := r.Start()
	s.Phase = PhaseCollided
	if next := r.Tick(s, types.Up); next.Tick != s.Tick || next.Snake.Head() != s.Snake.Head() {
		t.Error("terminal state advanced")
	}
}

// TestInvariants plays random games and checks the per-tick properties.
func TestInvariants(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		r := newRules(t, seed)
		moves := rand.New(rand.NewSource(seed + 1000))
		s := r.Start()

		for i := 0; i < 400 && !s.Terminal(); i++ {
			dir := types.Directions[moves.Intn(len(types.Directions))]
			prev := s
			s = r.Tick(prev, dir)

			if s.Terminal() {
				if s.Snake.Len() != prev.Snake.Len() || s.Snake.Head() != prev.Snake.Head() {
					t.Fatalf("seed %d: terminal tick moved the snake", seed)
				}
				if s.Progress != prev.Progress {
					t.Fatalf("seed %d: terminal tick changed progress", seed)
				}
				break
			}

			for _, p := range s.Snake.Body {
				if !s.Grid.Contains(p) {
					t.Fatalf("seed %d tick %d: segment %v off the grid", seed, s.Tick, p)
				}
			}
			if !strings.HasPrefix(s.Word.Target, s.Word.Collected) || len(s.Word.Collected) >= len(s.Word.Target) {
				t.Fatalf("seed %d tick %d: collected %q vs target %q", seed, s.Tick, s.Word.Collected, s.Word.Target)
			}
			if n := entity.CorrectTiles(s.Tiles); n > 1 {
				t.Fatalf("seed %d tick %d: %d correct tiles", seed, s.Tick, n)
			}
			want := prev.Snake.Len()
			if s.Has(EventLetterCollected) {
				want++
			}
			if s.Snake.Len() != want {
				t.Fatalf("seed %d tick %d: length %d, want %d", seed, s.Tick, s.Snake.Len(), want)
			}
		}
	}
}

func TestRenderHelpers(t *testing.T) {
	s := State{
		Snake: entity.Snake{Body: []types.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
		Word:  entity.Word{Target: "CODE", Collected: "COD"},
	}
	if got := string(s.SegmentLetters()); got != "DOC\x00" {
		t.Errorf("SegmentLetters = %q", got)
	}
	if got := s.BuildSlots(); got != "COD?" {
		t.Errorf("BuildSlots = %q", got)
	}
}
