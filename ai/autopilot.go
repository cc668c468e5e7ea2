// Package ai provides a computer player that steers the snake in demo mode.
package ai

import (
	"word-snake/game"
	"word-snake/game/entity"
	"word-snake/game/types"
)

// reading is what the snake senses one cell ahead in a direction.
type reading struct {
	dir      types.Direction
	fatal    bool // wall, body or decoy
	correct  bool // the required letter is there
	distance int  // Manhattan distance from the cell to the correct tile
	space    int  // cells reachable from there
}

// Autopilot picks a heading every tick: never a fatal move when a safe one
// exists, the required letter when it is adjacent, otherwise the move that
// gets closer to it without boxing the snake in.
type Autopilot struct{}

// Decide returns the direction to feed into Engine.SetDirection.
func (Autopilot) Decide(s game.State) types.Direction {
	if s.Snake.Len() == 0 {
		return s.Direction
	}

	target, hasTarget := correctTile(s.Tiles)
	current := s.Direction
	candidates := []types.Direction{current, current.TurnLeft(), current.TurnRight()}

	var best reading
	for i, dir := range candidates {
		r := sense(s, dir, target, hasTarget)
		if i == 0 || better(r, best, s.Snake.Len()) {
			best = r
		}
	}
	return best.dir
}

func sense(s game.State, dir types.Direction, target types.Point, hasTarget bool) reading {
	next := s.Snake.Head().Add(dir)
	r := reading{dir: dir}

	if !s.Grid.Contains(next) || s.Snake.Occupies(next) {
		r.fatal = true
		return r
	}
	if tile, ok := entity.TileAt(s.Tiles, next); ok {
		if !tile.Correct {
			r.fatal = true
			return r
		}
		r.correct = true
	}
	if hasTarget {
		r.distance = types.Manhattan(next, target)
	}
	r.space = freeSpace(s, next)
	return r
}

// better reports whether a beats b.
func better(a, b reading, snakeLen int) bool {
	if a.fatal != b.fatal {
		return !a.fatal
	}
	aRoomy, bRoomy := a.space > snakeLen, b.space > snakeLen
	if aRoomy != bRoomy {
		return aRoomy
	}
	if a.correct != b.correct {
		return a.correct
	}
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	return a.space > b.space
}

// freeSpace flood-fills from start through cells that are neither body nor
// decoy and returns how many it reached.
func freeSpace(s game.State, start types.Point) int {
	blocked := make(map[types.Point]bool, s.Snake.Len()+len(s.Tiles))
	for _, p := range s.Snake.Body {
		blocked[p] = true
	}
	for _, t := range s.Tiles {
		if !t.Correct {
			blocked[t.Position] = true
		}
	}

	seen := map[types.Point]bool{start: true}
	queue := []types.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range p.Neighbors() {
			if seen[n] || blocked[n] || !s.Grid.Contains(n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func correctTile(tiles []entity.LetterTile) (types.Point, bool) {
	for _, t := range tiles {
		if t.Correct {
			return t.Position, true
		}
	}
	return types.Point{}, false
}
