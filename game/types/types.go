package types

import "time"

// Point is a grid coordinate. It doubles as the movement vector of a Direction.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neighbors returns the four orthogonally adjacent cells, in or out of the grid.
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
	}
}

// Manhattan returns the taxicab distance between two points (no wrapping).
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the spawn cell for a fresh snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	GridSize = 20

	InitialSpeed = 150 * time.Millisecond

	MinLevel      = 1
	MaxLevel      = 8
	WordsPerLevel = 3 // Completed words needed per level up

	MinWordLength = 3
	MaxWordLength = 10

	LetterPoints = 10 // Score for each correct letter
	WordBonus    = 50 // Bonus for completing the word

	MinDecoys        = 3
	MaxDecoys        = 4
	MaxSpawnAttempts = 100 // Placement tries per decoy before it is dropped

	CollisionReason = "Hit a wall or yourself!"
)

// DefaultGrid is the square board the game is played on.
var DefaultGrid = Grid{Width: GridSize, Height: GridSize}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
