package entity

import (
	"golang.org/x/exp/slices"

	"word-snake/game/types"
)

// Snake is an immutable head-first body. Every move returns a new Snake so
// earlier game states stay valid.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) Snake {
	return Snake{Body: []types.Point{startPos}}
}

// Head returns the first segment.
func (s Snake) Head() types.Point {
	return s.Body[0]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s Snake) Occupies(p types.Point) bool {
	return slices.Contains(s.Body, p)
}

// Grow returns the body with newHead prepended and the tail kept.
func (s Snake) Grow(newHead types.Point) Snake {
	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	body = append(body, s.Body...)
	return Snake{Body: body}
}

// DropTail returns the body without its last segment. A one-cell snake is
// returned unchanged.
func (s Snake) DropTail() Snake {
	if len(s.Body) <= 1 {
		return s
	}
	return Snake{Body: slices.Clone(s.Body[:len(s.Body)-1])}
}

// Clone returns a deep copy.
func (s Snake) Clone() Snake {
	return Snake{Body: slices.Clone(s.Body)}
}
