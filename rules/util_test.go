package rules

import (
	"testing"

	"github.com/battlesnakeio/mamba/config"
	"github.com/battlesnakeio/mamba/entity"
	"github.com/battlesnakeio/mamba/grid"
	"github.com/stretchr/testify/require"
)

func testConfig(width, height, startSize, rabbits int, twoPlayer bool) *config.Config {
	c := config.Default()
	c.MapWidth = width
	c.MapHeight = height
	c.StartSize = startSize
	c.RabbitCount = rabbits
	c.TwoPlayer = twoPlayer
	return c
}

func newTestGame(t *testing.T, c *config.Config, seed int64) *Game {
	g, err := New(c, WithSeed(seed))
	require.NoError(t, err)
	return g
}

// placeSnakes swaps in the given snakes and rebuilds the grid around them,
// keeping the rabbits where they are.
func placeSnakes(g *Game, snakes ...*entity.Snake) {
	g.Grid = grid.New(g.Config.Width(), g.Config.Height())
	for i, s := range snakes {
		g.Players[i].Snake = s
		s.Mark(g.Grid)
	}
	for _, r := range g.Rabbits {
		g.Grid.Set(r.Pos, grid.Rabbit)
	}
}

// placeRabbit moves the first rabbit to p.
func placeRabbit(g *Game, p grid.Point) *entity.Rabbit {
	r := g.Rabbits[0]
	g.Grid.Set(r.Pos, grid.Empty)
	r.Pos = p
	g.Grid.Set(p, grid.Rabbit)
	return r
}
