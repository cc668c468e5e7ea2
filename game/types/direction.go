package types

// Direction is a unit movement vector on the grid.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists the four cardinal directions.
var Directions = [4]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four cardinal unit vectors.
func (d Direction) Valid() bool {
	return (d.X == 0) != (d.Y == 0) && abs(d.X)+abs(d.Y) == 1
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverse reports whether d points straight back along other's axis.
func (d Direction) IsReverse(other Direction) bool {
	return d.Valid() && d == other.Opposite()
}

// TurnLeft rotates d 90° counter-clockwise (screen coordinates, Y down).
func (d Direction) TurnLeft() Direction {
	return Direction{X: d.Y, Y: -d.X}
}

// TurnRight rotates d 90° clockwise (screen coordinates, Y down).
func (d Direction) TurnRight() Direction {
	return Direction{X: -d.Y, Y: d.X}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
