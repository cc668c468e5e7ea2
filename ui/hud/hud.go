// Package hud builds the text shown around the board. It is shared by the
// window and terminal frontends.
package hud

import (
	"fmt"

	"word-snake/game"
	"word-snake/game/manager"
)

const Title = "Word Snake"

// Help lines shown under the board.
var Help = []string{
	"Swipe or use arrow keys to move",
	"Progress through levels by completing words!",
	"Level up every 3 words (max 10-letter words)",
}

// Legend pairs a tile kind with its caption.
var Legend = [2]string{"Correct letter", "Wrong letter (avoid!)"}

// Level is e.g. "Level 2 (4 letters)".
func Level(s game.State) string {
	return fmt.Sprintf("Level %d (%d letters)", s.Progress.Level, s.WordLength())
}

func Words(s game.State) string {
	if s.Progress.WordsCompleted == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", s.Progress.WordsCompleted)
}

func Score(s game.State) string {
	return fmt.Sprintf("Score: %d", s.Progress.Score)
}

// Best is the session high score, empty before the first game ends.
func Best(stats manager.SessionStats) string {
	if stats.GamesPlayed == 0 {
		return ""
	}
	games := "games"
	if stats.GamesPlayed == 1 {
		games = "game"
	}
	return fmt.Sprintf("Best: %d (%d %s)", stats.HighScore, stats.GamesPlayed, games)
}

// Build shows the word under construction, e.g. "Build: DO??".
func Build(s game.State) string {
	return "Build: " + s.BuildSlots()
}

// StartPrompt is shown over the board before the first game.
func StartPrompt(autopilot bool) string {
	if autopilot {
		return "Press Enter to start (autopilot)"
	}
	return "Press Enter to start"
}

// GameOver lists the summary lines for the game-over overlay.
func GameOver(over game.GameOver) []string {
	return []string{
		"Game Over!",
		over.Reason,
		fmt.Sprintf("Score: %d", over.Score),
		fmt.Sprintf("Level Reached: %d", over.Level),
		fmt.Sprintf("Words Completed: %d", over.WordsCompleted),
		"Press Enter to play again",
	}
}
