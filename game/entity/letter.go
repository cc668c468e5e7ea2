package entity

import (
	"time"

	"golang.org/x/exp/slices"

	"word-snake/game/types"
)

// LetterTile is a letter lying on the board. Exactly one tile per spawn is
// Correct: the next letter the word needs.
type LetterTile struct {
	Position types.Point
	Letter   byte
	Correct  bool
}

// TileAt returns the tile on p, if any.
func TileAt(tiles []LetterTile, p types.Point) (LetterTile, bool) {
	i := slices.IndexFunc(tiles, func(t LetterTile) bool { return t.Position == p })
	if i < 0 {
		return LetterTile{}, false
	}
	return tiles[i], true
}

// CorrectTiles counts tiles marked Correct.
func CorrectTiles(tiles []LetterTile) int {
	n := 0
	for _, t := range tiles {
		if t.Correct {
			n++
		}
	}
	return n
}

// Word is the active target word and the prefix gathered so far.
type Word struct {
	Target    string
	Collected string
}

// NextLetter returns the letter the player must eat next.
// It reports false once the word is complete.
func (w Word) NextLetter() (byte, bool) {
	if len(w.Collected) >= len(w.Target) {
		return 0, false
	}
	return w.Target[len(w.Collected)], true
}

// Complete reports whether every letter has been collected.
func (w Word) Complete() bool {
	return w.Target != "" && w.Collected == w.Target
}

// Collect returns the word with letter appended to the collected prefix.
func (w Word) Collect(letter byte) Word {
	return Word{Target: w.Target, Collected: w.Collected + string(letter)}
}

// Progression is the scoring and difficulty state of a game.
type Progression struct {
	Score          int
	Level          int
	WordsCompleted int
	Speed          time.Duration
}
