package grid

import "fmt"

// Point is a cell coordinate on the grid. X grows to the right and Y grows
// downwards.
type Point struct {
	X int
	Y int
}

// Add returns the point moved one step in the given direction.
func (p Point) Add(d Direction) Point {
	v := d.Vector()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
