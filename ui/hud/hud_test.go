package hud

import (
	"testing"

	"word-snake/game"
	"word-snake/game/entity"
	"word-snake/game/manager"
)

func TestStatusText(t *testing.T) {
	s := game.State{
		Word:     entity.Word{Target: "DOOR", Collected: "DO"},
		Progress: entity.Progression{Score: 120, Level: 2, WordsCompleted: 1},
	}
	tests := []struct {
		got, want string
	}{
		{Level(s), "Level 2 (4 letters)"},
		{Words(s), "1 word"},
		{Score(s), "Score: 120"},
		{Build(s), "Build: DO??"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}

	s.Progress.WordsCompleted = 4
	if got := Words(s); got != "4 words" {
		t.Errorf("Words = %q", got)
	}
}

func TestGameOverLines(t *testing.T) {
	lines := GameOver(game.GameOver{Reason: "Hit a wall or yourself!", Score: 80, Level: 1, WordsCompleted: 1})
	want := []string{
		"Game Over!",
		"Hit a wall or yourself!",
		"Score: 80",
		"Level Reached: 1",
		"Words Completed: 1",
		"Press Enter to play again",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestBest(t *testing.T) {
	if got := Best(manager.SessionStats{}); got != "" {
		t.Errorf("Best before any game = %q", got)
	}
	if got := Best(manager.SessionStats{GamesPlayed: 1, HighScore: 80}); got != "Best: 80 (1 game)" {
		t.Errorf("Best = %q", got)
	}
	if got := Best(manager.SessionStats{GamesPlayed: 3, HighScore: 210}); got != "Best: 210 (3 games)" {
		t.Errorf("Best = %q", got)
	}
}
