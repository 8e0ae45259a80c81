package rules

import (
	"github.com/battlesnakeio/mamba/grid"
	"github.com/pkg/errors"
)

// spawnAttempts is how many random cells are tried before falling back to a
// scan of every empty cell.
const spawnAttempts = 64

// ErrSpawnExhausted is returned when no empty interior cell is left to spawn
// a rabbit or snake into.
var ErrSpawnExhausted = errors.New("rules: no empty cell left to spawn into")

// isFree reports whether p is an empty interior cell with no snake on it. Snake
// heads are never marked on the grid so the bodies are checked directly.
func (g *Game) isFree(p grid.Point) bool {
	if !g.Grid.Interior(p) || g.Grid.Get(p) != grid.Empty {
		return false
	}
	for _, pl := range g.Players {
		if pl.Snake != nil && pl.Snake.Occupies(p) {
			return false
		}
	}
	return true
}

// getUnoccupiedPoint picks a free interior cell uniformly at random. Random
// samples are tried first; once those are spent every free cell is listed and
// one is chosen from the list, so the search always terminates.
func (g *Game) getUnoccupiedPoint() (grid.Point, error) {
	w, h := g.Grid.Width(), g.Grid.Height()
	for i := 0; i < spawnAttempts; i++ {
		p := grid.Point{X: 1 + g.rng.Intn(w-2), Y: 1 + g.rng.Intn(h-2)}
		if g.isFree(p) {
			return p, nil
		}
	}

	openPoints := g.getUnoccupiedPoints()
	if len(openPoints) == 0 {
		spawnExhaustedTotal.Inc()
		return grid.Point{}, ErrSpawnExhausted
	}
	return openPoints[g.rng.Intn(len(openPoints))], nil
}

func (g *Game) getUnoccupiedPoints() []grid.Point {
	candidatePoints := []grid.Point{}
	for _, p := range g.Grid.EmptyInterior() {
		if g.isFree(p) {
			candidatePoints = append(candidatePoints, p)
		}
	}
	return candidatePoints
}
