package manager

import (
	"math/rand"

	"github.com/rs/zerolog"

	"word-snake/game/entity"
	"word-snake/game/types"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LetterManager places the letter tiles for the next required letter.
type LetterManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	log          zerolog.Logger
}

func NewLetterManager(collisionMgr *CollisionManager, rng *rand.Rand, log zerolog.Logger) *LetterManager {
	return &LetterManager{
		grid:         collisionMgr.Grid(),
		rng:          rng,
		collisionMgr: collisionMgr,
		log:          log,
	}
}

// Spawn returns one correct tile carrying word's next letter plus 3 or 4 decoys.
// Decoys keep clear of the snake, of each other and of the cells around the
// head. A decoy that cannot be placed within MaxSpawnAttempts is dropped.
// A complete word gets no tiles.
func (lm *LetterManager) Spawn(word entity.Word, snake entity.Snake) []entity.LetterTile {
	next, ok := word.NextLetter()
	if !ok {
		return nil
	}

	tiles := make([]entity.LetterTile, 0, 1+types.MaxDecoys)
	if pos, ok := lm.placeCorrect(snake); ok {
		tiles = append(tiles, entity.LetterTile{Position: pos, Letter: next, Correct: true})
	} else {
		lm.log.Warn().Int("snake_len", snake.Len()).Msg("no free cell for the correct letter")
	}

	decoys := types.MinDecoys + lm.rng.Intn(types.MaxDecoys-types.MinDecoys+1)
	for i := 0; i < decoys; i++ {
		pos, ok := lm.placeDecoy(snake, tiles)
		if !ok {
			lm.log.Debug().Int("decoy", i).Int("attempts", types.MaxSpawnAttempts).Msg("decoy dropped, board crowded")
			continue
		}
		tiles = append(tiles, entity.LetterTile{Position: pos, Letter: lm.randomLetter()})
	}
	return tiles
}

// placeCorrect rejection-samples a free cell. When sampling keeps hitting the
// snake it falls back to a uniform pick among the remaining free cells, so the
// call always terminates.
func (lm *LetterManager) placeCorrect(snake entity.Snake) (types.Point, bool) {
	for attempt := 0; attempt < lm.grid.Cells(); attempt++ {
		pos := lm.randomCell()
		if !snake.Occupies(pos) {
			return pos, true
		}
	}

	free := make([]types.Point, 0, lm.grid.Cells()-snake.Len())
	for y := 0; y < lm.grid.Height; y++ {
		for x := 0; x < lm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[lm.rng.Intn(len(free))], true
}

func (lm *LetterManager) placeDecoy(snake entity.Snake, tiles []entity.LetterTile) (types.Point, bool) {
	for attempt := 0; attempt < types.MaxSpawnAttempts; attempt++ {
		pos := lm.randomCell()
		if !lm.collisionMgr.ValidateSpawnPosition(pos, snake, tiles) {
			continue
		}
		if lm.collisionMgr.IsAdjacentToHead(pos, snake) {
			continue
		}
		return pos, true
	}
	return types.Point{}, false
}

func (lm *LetterManager) randomCell() types.Point {
	return types.Point{
		X: lm.rng.Intn(lm.grid.Width),
		Y: lm.rng.Intn(lm.grid.Height),
	}
}

func (lm *LetterManager) randomLetter() byte {
	return alphabet[lm.rng.Intn(len(alphabet))]
}
