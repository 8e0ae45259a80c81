package rules

import (
	"github.com/battlesnakeio/mamba/entity"
	"github.com/battlesnakeio/mamba/grid"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// newRound throws away the grid, snakes and rabbits and lays out a fresh
// round. Per round counters are zeroed, cumulative stats are kept.
func (g *Game) newRound() error {
	cfg := g.Config
	g.Round++
	g.RoundID = uuid.NewV4().String()
	g.Turn = 0
	g.Grid = grid.New(cfg.Width(), cfg.Height())
	g.Rabbits = nil

	for _, p := range g.Players {
		p.Stats.RabbitsEaten = 0
		p.Snake = nil
	}
	for _, p := range g.Players {
		snake, err := g.placeSnake(p.ID)
		if err != nil {
			return err
		}
		p.Snake = snake
	}

	for i := 0; i < cfg.RabbitCount; i++ {
		if _, err := g.spawnRabbit(); err != nil {
			return err
		}
	}

	roundsTotal.Inc()
	log.WithFields(g.fields()).
		WithField("RoundID", g.RoundID).
		WithField("Mode", g.Mode()).
		Info("new round")
	return nil
}

// startPosition returns where a player's head starts and where it faces. A
// single snake starts in the middle heading right. With two players the
// first starts a third of the way down heading right and the second two
// thirds down heading left.
func startPosition(width, height, player, players int) (grid.Point, grid.Direction) {
	if players == 1 {
		return grid.Point{X: width / 2, Y: height / 2}, grid.Right
	}
	if player == 0 {
		return grid.Point{X: width / 2, Y: height / 3}, grid.Right
	}
	return grid.Point{X: width - 1 - width/2, Y: 2 * height / 3}, grid.Left
}

func (g *Game) placeSnake(player int) (*entity.Snake, error) {
	head, dir := startPosition(g.Grid.Width(), g.Grid.Height(), player, len(g.Players))
	snake := entity.NewSnake(player, head, dir, g.Config.StartSize)
	for _, p := range snake.Body() {
		if !g.isFree(p) {
			return nil, errors.Wrapf(ErrSpawnExhausted, "rules: snake %d does not fit at %s", player, p)
		}
	}
	snake.Mark(g.Grid)
	return snake, nil
}

func (g *Game) spawnRabbit() (*entity.Rabbit, error) {
	p, err := g.getUnoccupiedPoint()
	if err != nil {
		return nil, errors.Wrap(err, "rules: unable to spawn rabbit")
	}
	r := entity.NewRabbit(p, g.Config.HopDistance)
	g.Grid.Set(p, grid.Rabbit)
	g.Rabbits = append(g.Rabbits, r)
	log.WithFields(g.fields()).WithField("At", p).Debug("rabbit spawned")
	return r, nil
}
