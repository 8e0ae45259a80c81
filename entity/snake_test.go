package entity

import (
	"testing"

	"github.com/battlesnakeio/mamba/grid"
	"github.com/stretchr/testify/require"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(0, grid.Point{X: 5, Y: 5}, grid.Right, 3)
	require.Equal(t, []grid.Point{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}, s.Body())
	require.Equal(t, grid.Point{X: 4, Y: 5}, s.Neck())
	require.Equal(t, grid.Point{X: 3, Y: 5}, s.Tail())

	s = NewSnake(1, grid.Point{X: 5, Y: 5}, grid.Up, 2)
	require.Equal(t, []grid.Point{{X: 5, Y: 5}, {X: 5, Y: 6}}, s.Body())
}

func TestSnake_Advance(t *testing.T) {
	tests := []struct {
		Direction grid.Direction
		Expected  grid.Point
	}{
		{Direction: grid.Up, Expected: grid.Point{X: 5, Y: 4}},
		{Direction: grid.Down, Expected: grid.Point{X: 5, Y: 6}},
		{Direction: grid.Right, Expected: grid.Point{X: 6, Y: 5}},
	}

	for _, test := range tests {
		s := NewSnake(0, grid.Point{X: 5, Y: 5}, grid.Right, 3)
		require.True(t, s.SetDirection(test.Direction))
		vacated := s.Advance()
		require.Equal(t, test.Expected, s.Head(), "Direction: %s", test.Direction)
		require.Equal(t, grid.Point{X: 3, Y: 5}, vacated)
		require.Equal(t, 3, s.Len())
		require.Equal(t, grid.Point{X: 5, Y: 5}, s.Neck())
	}
}

func TestSnake_GrowKeepsLength(t *testing.T) {
	s := NewSnake(0, grid.Point{X: 10, Y: 5}, grid.Right, 3)
	s.Grow(2)
	require.Equal(t, 5, s.Len())
	require.Equal(t, 2, s.Grown())
	require.Equal(t, []grid.Point{
		{X: 10, Y: 5},
		{X: 9, Y: 5},
		{X: 8, Y: 5},
		{X: 8, Y: 5},
		{X: 8, Y: 5},
	}, s.Body())

	for i := 0; i < 4; i++ {
		s.Advance()
		require.Equal(t, 3+s.Grown(), s.Len())
	}
	require.Equal(t, []grid.Point{
		{X: 14, Y: 5},
		{X: 13, Y: 5},
		{X: 12, Y: 5},
		{X: 11, Y: 5},
		{X: 10, Y: 5},
	}, s.Body())

	s.Grow(0)
	s.Grow(-3)
	require.Equal(t, 5, s.Len())
}

func TestSnake_SetDirectionRejectsReversal(t *testing.T) {
	for _, d := range grid.Directions {
		s := NewSnake(0, grid.Point{X: 5, Y: 5}, d, 3)
		require.False(t, s.SetDirection(d.Opposite()), "Direction: %s", d)
		require.Equal(t, d, s.Direction())
	}
}

func TestSnake_SetDirectionRejectsNeck(t *testing.T) {
	s := NewSnake(0, grid.Point{X: 5, Y: 5}, grid.Right, 3)

	// Up then Left before the next advance would fold the head onto the neck.
	require.True(t, s.SetDirection(grid.Up))
	require.False(t, s.SetDirection(grid.Down))
	require.False(t, s.SetDirection(grid.Left))
	require.Equal(t, grid.Up, s.Direction())

	s.Advance()
	require.True(t, s.SetDirection(grid.Left))
	require.Equal(t, grid.Left, s.Direction())
}

func TestSnake_SingleCellCanReverse(t *testing.T) {
	s := NewSnake(0, grid.Point{X: 5, Y: 5}, grid.Right, 1)
	require.True(t, s.SetDirection(grid.Left))
	s.Advance()
	require.Equal(t, grid.Point{X: 4, Y: 5}, s.Head())
}

func TestSnake_SetDirectionAppliedOnNextAdvance(t *testing.T) {
	s := NewSnake(0, grid.Point{X: 5, Y: 5}, grid.Right, 3)
	require.True(t, s.SetDirection(grid.Down))
	require.Equal(t, grid.Point{X: 5, Y: 5}, s.Head())
	s.Advance()
	require.Equal(t, grid.Point{X: 5, Y: 6}, s.Head())
}

func TestSnake_IsCollided(t *testing.T) {
	g := grid.New(10, 10)
	s := NewSnake(0, grid.Point{X: 7, Y: 5}, grid.Right, 3)
	s.Mark(g)
	require.False(t, s.IsCollided(g))

	s.Advance()
	s.Advance()
	require.Equal(t, grid.Point{X: 9, Y: 5}, s.Head())
	require.True(t, s.IsCollided(g))

	g = grid.New(10, 10)
	s = NewSnake(0, grid.Point{X: 5, Y: 5}, grid.Right, 3)
	g.Set(grid.Point{X: 6, Y: 5}, grid.Snake)
	s.Advance()
	require.True(t, s.IsCollided(g))
}

func TestSnake_Mark(t *testing.T) {
	g := grid.New(10, 10)
	s := NewSnake(0, grid.Point{X: 5, Y: 5}, grid.Right, 3)
	s.Mark(g)
	require.Equal(t, grid.Empty, g.Get(grid.Point{X: 5, Y: 5}))
	require.Equal(t, grid.Snake, g.Get(grid.Point{X: 4, Y: 5}))
	require.Equal(t, grid.Snake, g.Get(grid.Point{X: 3, Y: 5}))
	require.True(t, s.Occupies(grid.Point{X: 5, Y: 5}))
	require.False(t, s.Occupies(grid.Point{X: 6, Y: 5}))
}
