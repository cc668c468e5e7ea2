package input

import (
	"math"

	"word-snake/game/types"
)

// SwipeThreshold is the minimum displacement, in pixels, along the dominant
// axis for a drag to count as a swipe.
const SwipeThreshold = 30

// SwipeDirection converts a drag displacement into a direction. Screen
// coordinates grow downwards.
func SwipeDirection(dx, dy, threshold float64) (types.Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if math.Max(ax, ay) <= threshold {
		return types.Direction{}, false
	}
	if ax > ay {
		if dx > 0 {
			return types.Right, true
		}
		return types.Left, true
	}
	if dy > 0 {
		return types.Down, true
	}
	return types.Up, true
}

// Swipe tracks a single drag gesture between press and release.
type Swipe struct {
	Threshold float64

	startX, startY float64
	active         bool
}

// Begin records where the drag started.
func (s *Swipe) Begin(x, y float64) {
	s.startX, s.startY = x, y
	s.active = true
}

// End finishes the drag and returns its direction, if it was long enough.
func (s *Swipe) End(x, y float64) (types.Direction, bool) {
	if !s.active {
		return types.Direction{}, false
	}
	s.active = false
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = SwipeThreshold
	}
	return SwipeDirection(x-s.startX, y-s.startY, threshold)
}
