// Package grid tracks which entity occupies each cell of the bordered play
// field.
package grid

import (
	"bytes"
	"fmt"
	"io"
)

// CellState is what currently occupies a cell.
type CellState int

const (
	// Empty is the state of every interior cell never written to.
	Empty CellState = iota
	// Border cells line the outer edge and never change.
	Border
	// Snake marks a cell owned by a snake body segment.
	Snake
	// Rabbit marks a cell holding a rabbit.
	Rabbit
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Border:
		return "border"
	case Snake:
		return "snake"
	case Rabbit:
		return "rabbit"
	}
	return "unknown"
}

// Grid is a sparse occupancy map over a width x height rectangle. The zero
// state of a cell is Empty; border cells are derived from the dimensions.
type Grid struct {
	width  int
	height int
	cells  map[Point]CellState
}

// New creates an empty grid of the given size.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  map[Point]CellState{},
	}
}

// Width of the grid including the border.
func (g *Grid) Width() int { return g.width }

// Height of the grid including the border.
func (g *Grid) Height() int { return g.height }

// IsBorder reports whether p lies on the outer edge.
func (g *Grid) IsBorder(p Point) bool {
	return p.X == 0 || p.X == g.width-1 || p.Y == 0 || p.Y == g.height-1
}

// Contains reports whether p is inside the declared bounds.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Interior reports whether p is inside the bounds and off the border.
func (g *Grid) Interior(p Point) bool {
	return g.Contains(p) && !g.IsBorder(p)
}

// Get returns the state of the cell at p. Points outside the bounds are
// tolerated and read as Empty unless they were written.
func (g *Grid) Get(p Point) CellState {
	if g.Contains(p) && g.IsBorder(p) {
		return Border
	}
	return g.cells[p]
}

// Set writes the state of the cell at p. Border cells are permanent and
// writes to them are dropped.
func (g *Grid) Set(p Point, state CellState) {
	if g.Contains(p) && g.IsBorder(p) {
		return
	}
	if state == Empty {
		delete(g.cells, p)
		return
	}
	g.cells[p] = state
}

// Count returns how many cells are in the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(Point{X: x, Y: y}) == state {
				n++
			}
		}
	}
	return n
}

// EmptyInterior lists every interior cell that is Empty, row by row.
func (g *Grid) EmptyInterior() []Point {
	points := []Point{}
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			p := Point{X: x, Y: y}
			if g.Get(p) == Empty {
				points = append(points, p)
			}
		}
	}
	return points
}

// Display writes one line per row with the first letter of each cell state.
func (g *Grid) Display(w io.Writer) error {
	for y := 0; y < g.height; y++ {
		line := make([]byte, 0, g.width+1)
		for x := 0; x < g.width; x++ {
			line = append(line, g.Get(Point{X: x, Y: y}).String()[0])
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// String is the serialized occupancy, the same text Display writes.
func (g *Grid) String() string {
	buf := &bytes.Buffer{}
	if err := g.Display(buf); err != nil {
		return fmt.Sprintf("grid(%dx%d): %v", g.width, g.height, err)
	}
	return buf.String()
}
