package grid

// Direction is one of the four movement directions.
type Direction int

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Down moves towards the last row.
	Down
	// Left moves towards column 0.
	Left
	// Right moves towards the last column.
	Right
)

// Directions is the fixed set random direction changes are sampled from.
var Directions = []Direction{Up, Down, Left, Right}

var vectors = map[Direction]Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var opposites = map[Direction]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// Vector returns the unit step for the direction. Unknown directions don't
// move.
func (d Direction) Vector() Point {
	return vectors[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if o, ok := opposites[d]; ok {
		return o
	}
	return d
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	_, ok := vectors[d]
	return ok
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
	}
	return "unknown"
}

// ParseDirection converts "up", "down", "left" or "right" into a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return Up, false
}
