package manager

import (
	"fmt"
	"math/rand"
	"time"

	"word-snake/game/entity"
	"word-snake/game/types"
	"word-snake/game/words"
)

// Outcome classifies what eating a tile did to the game.
type Outcome int

const (
	OutcomeLetter       Outcome = iota + 1 // correct letter, word still open
	OutcomeWordComplete                    // correct letter finished the word
	OutcomeWrongLetter                     // decoy eaten, game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLetter:
		return "letter"
	case OutcomeWordComplete:
		return "word_complete"
	case OutcomeWrongLetter:
		return "wrong_letter"
	default:
		return "none"
	}
}

// Consumption is the progression after a tile has been eaten.
type Consumption struct {
	Outcome   Outcome
	Progress  entity.Progression
	Word      entity.Word
	Tiles     []entity.LetterTile
	LeveledUp bool
}

// ProgressionManager owns scoring, word completion and level ups.
type ProgressionManager struct {
	bank       *words.Bank
	letterMgr  *LetterManager
	rng        *rand.Rand
	startSpeed time.Duration
}

func NewProgressionManager(bank *words.Bank, letterMgr *LetterManager, rng *rand.Rand, speed time.Duration) *ProgressionManager {
	if speed <= 0 {
		speed = types.InitialSpeed
	}
	return &ProgressionManager{
		bank:       bank,
		letterMgr:  letterMgr,
		rng:        rng,
		startSpeed: speed,
	}
}

// Reset returns level-1 progression with a fresh target word and its tiles.
func (pm *ProgressionManager) Reset(snake entity.Snake) (entity.Progression, entity.Word, []entity.LetterTile) {
	progress := entity.Progression{
		Score:          0,
		Level:          types.MinLevel,
		WordsCompleted: 0,
		Speed:          pm.startSpeed,
	}
	word, tiles := pm.NewWord(progress.Level, snake)
	return progress, word, tiles
}

// NewWord draws a target word sized for level and spawns its first letter.
func (pm *ProgressionManager) NewWord(level int, snake entity.Snake) (entity.Word, []entity.LetterTile) {
	word := entity.Word{Target: pm.bank.PickRandom(pm.rng, words.LengthForLevel(level))}
	return word, pm.letterMgr.Spawn(word, snake)
}

// Consume applies eating tile. snake is the body after the move, used to keep
// respawned tiles off the snake. A wrong tile leaves everything unchanged.
func (pm *ProgressionManager) Consume(progress entity.Progression, word entity.Word, tiles []entity.LetterTile, tile entity.LetterTile, snake entity.Snake) Consumption {
	if !tile.Correct {
		return Consumption{
			Outcome:  OutcomeWrongLetter,
			Progress: progress,
			Word:     word,
			Tiles:    tiles,
		}
	}

	word = word.Collect(tile.Letter)
	progress.Score += types.LetterPoints

	if !word.Complete() {
		return Consumption{
			Outcome:  OutcomeLetter,
			Progress: progress,
			Word:     word,
			Tiles:    pm.letterMgr.Spawn(word, snake),
		}
	}

	progress.Score += types.WordBonus
	progress.WordsCompleted++
	leveledUp := false
	if progress.WordsCompleted%types.WordsPerLevel == 0 && progress.Level < types.MaxLevel {
		progress.Level++
		leveledUp = true
	}

	next, nextTiles := pm.NewWord(progress.Level, snake)
	return Consumption{
		Outcome:   OutcomeWordComplete,
		Progress:  progress,
		Word:      next,
		Tiles:     nextTiles,
		LeveledUp: leveledUp,
	}
}

// WrongLetterReason is the game-over message for eating a decoy.
func WrongLetterReason(letter byte, target string) string {
	return fmt.Sprintf("Wrong letter! %q doesn't fit in %q", string(letter), target)
}
