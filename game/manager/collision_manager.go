package manager

import (
	"word-snake/game/entity"
	"word-snake/game/types"
)

// StepResult is the outcome of advancing the snake one cell.
type StepResult struct {
	NewHead  types.Point
	Collided bool
	// Candidate is [NewHead, ...snake]; the caller drops the tail unless the
	// snake grows. Empty when Collided.
	Candidate entity.Snake
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Step moves the head one cell along dir and checks walls and the pre-move body.
// The input snake is never modified.
func (cm *CollisionManager) Step(snake entity.Snake, dir types.Direction) StepResult {
	newHead := snake.Head().Add(dir)
	if cm.CheckCollision(newHead, snake) {
		return StepResult{NewHead: newHead, Collided: true}
	}
	return StepResult{
		NewHead:   newHead,
		Candidate: snake.Grow(newHead),
	}
}

// CheckCollision checks all types of collisions for a given position
func (cm *CollisionManager) CheckCollision(pos types.Point, snake entity.Snake) bool {
	return cm.isWallCollision(pos) || cm.isSelfCollision(pos, snake)
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks the whole body, tail included: the tail has not moved
// yet when the new head is evaluated.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake entity.Snake) bool {
	return snake.Occupies(pos)
}

// ValidateSpawnPosition checks if a position is free for a new tile
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake entity.Snake, tiles []entity.LetterTile) bool {
	if cm.isWallCollision(pos) || snake.Occupies(pos) {
		return false
	}
	_, taken := entity.TileAt(tiles, pos)
	return !taken
}

// IsAdjacentToHead reports whether pos is one of the four cells next to the head.
func (cm *CollisionManager) IsAdjacentToHead(pos types.Point, snake entity.Snake) bool {
	for _, n := range snake.Head().Neighbors() {
		if n == pos {
			return true
		}
	}
	return false
}

// Grid returns the board the manager checks against.
func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}
