// Package entity holds the things that move around the grid: snakes and
// rabbits.
package entity

import (
	"github.com/battlesnakeio/mamba/grid"
	"golang.org/x/exp/slices"
)

// Snake is an ordered body of cells with the head first.
type Snake struct {
	Player int
	Dead   bool

	body      []grid.Point
	direction grid.Direction
	grown     int
}

// NewSnake lays out a snake of the given size with its head at head and the
// rest of the body trailing behind it, heading in dir.
func NewSnake(player int, head grid.Point, dir grid.Direction, size int) *Snake {
	if size < 1 {
		size = 1
	}
	back := dir.Opposite()
	body := make([]grid.Point, 0, size)
	p := head
	for i := 0; i < size; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return &Snake{
		Player:    player,
		body:      body,
		direction: dir,
	}
}

// Head returns the first point in the body
func (s *Snake) Head() grid.Point {
	return s.body[0]
}

// Neck is the segment right behind the head. A snake of one cell has its head
// as neck.
func (s *Snake) Neck() grid.Point {
	if len(s.body) < 2 {
		return s.body[0]
	}
	return s.body[1]
}

// Tail returns the last point in the body.
func (s *Snake) Tail() grid.Point {
	return s.body[len(s.body)-1]
}

// Len is the number of body segments, colocated ones included.
func (s *Snake) Len() int { return len(s.body) }

// Grown is the total number of segments added by Grow.
func (s *Snake) Grown() int { return s.grown }

// Direction the snake will move on the next Advance.
func (s *Snake) Direction() grid.Direction { return s.direction }

// Body returns a copy of the body, head first.
func (s *Snake) Body() []grid.Point {
	return slices.Clone(s.body)
}

// Occupies reports whether any segment, the head included, is on p.
func (s *Snake) Occupies(p grid.Point) bool {
	return slices.Contains(s.body, p)
}

// Advance moves the head one cell in the current direction and drops the last
// segment. The dropped cell is returned so the caller can clear it.
func (s *Snake) Advance() grid.Point {
	head := s.Head().Add(s.direction)
	vacated := s.Tail()
	s.body = slices.Insert(s.body[:len(s.body)-1], 0, head)
	return vacated
}

// Grow appends n copies of the tail. They stay on the tail cell until later
// advances spread them out.
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	tail := s.Tail()
	for i := 0; i < n; i++ {
		s.body = append(s.body, tail)
	}
	s.grown += n
}

// SetDirection requests a new direction for the next Advance. Reversals are
// ignored for snakes longer than one cell: the exact opposite of the current
// direction and any turn that would put the head on the neck. It returns
// whether the direction was accepted.
func (s *Snake) SetDirection(d grid.Direction) bool {
	if !d.Valid() {
		return false
	}
	if len(s.body) > 1 {
		if d == s.direction.Opposite() {
			return false
		}
		if s.Head().Add(d) == s.Neck() {
			return false
		}
	}
	s.direction = d
	return true
}

// IsCollided reports whether the head sits on a border or snake cell.
func (s *Snake) IsCollided(g *grid.Grid) bool {
	state := g.Get(s.Head())
	return state == grid.Border || state == grid.Snake
}

// Mark writes every segment except the head as Snake on the grid. The head is
// left alone so collision checks see what it moved onto.
func (s *Snake) Mark(g *grid.Grid) {
	for _, p := range s.body[1:] {
		g.Set(p, grid.Snake)
	}
}
