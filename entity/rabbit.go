package entity

import "github.com/battlesnakeio/mamba/grid"

// DefaultHopDistance is how many cells a rabbit hops before turning.
const DefaultHopDistance = 5

// Rand is the random source used for direction changes. *rand.Rand satisfies
// it.
type Rand interface {
	Intn(n int) int
}

// RandomDirection picks uniformly from grid.Directions.
func RandomDirection(rng Rand) grid.Direction {
	return grid.Directions[rng.Intn(len(grid.Directions))]
}

// Rabbit wanders the grid in straight runs of Default cells.
type Rabbit struct {
	Pos       grid.Point
	Dir       grid.Direction
	Remaining int
	Default   int
}

// NewRabbit places a rabbit at pos heading right with a full hop distance.
func NewRabbit(pos grid.Point, hopDistance int) *Rabbit {
	if hopDistance < 1 {
		hopDistance = DefaultHopDistance
	}
	return &Rabbit{
		Pos:       pos,
		Dir:       grid.Right,
		Remaining: hopDistance,
		Default:   hopDistance,
	}
}

// Hop tries to move the rabbit one cell along its direction. A blocked cell
// makes the rabbit turn to a random direction without moving. After Default
// successful hops the rabbit turns and starts a new run. The grid is updated
// to follow the rabbit. It returns whether the rabbit moved.
func (r *Rabbit) Hop(g *grid.Grid, rng Rand) bool {
	if r.Remaining <= 0 {
		r.turn(rng)
		return false
	}

	next := r.Pos.Add(r.Dir)
	if !g.Interior(next) || g.Get(next) != grid.Empty {
		r.Dir = RandomDirection(rng)
		return false
	}

	g.Set(r.Pos, grid.Empty)
	g.Set(next, grid.Rabbit)
	r.Pos = next
	r.Remaining--
	if r.Remaining == 0 {
		r.turn(rng)
	}
	return true
}

func (r *Rabbit) turn(rng Rand) {
	r.Remaining = r.Default
	r.Dir = RandomDirection(rng)
}
