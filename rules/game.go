// Package rules runs the Mamba game: it owns the game state and advances it
// one tick at a time. A Game is not safe for concurrent use; the host drives
// it from a single loop.
package rules

import (
	"io"
	"io/ioutil"
	"math/rand"
	"time"

	"github.com/battlesnakeio/mamba/config"
	"github.com/battlesnakeio/mamba/entity"
	"github.com/battlesnakeio/mamba/grid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Stats are the per player counters. RabbitsEaten is per round, the rest are
// kept across rounds until ResetScores.
type Stats struct {
	RabbitsEaten int
	HighScore    int
	Kills        int
	Deaths       int
}

// Player is a seat in the game with its current snake.
type Player struct {
	ID    int
	Snake *entity.Snake
	Stats Stats
}

// Game is the full game state owned by the loop.
type Game struct {
	Config  *config.Config
	Grid    *grid.Grid
	Players []*Player
	Rabbits []*entity.Rabbit
	Paused  bool
	Round   int
	RoundID string
	Turn    int

	rng     *rand.Rand
	console io.Writer
}

// Option configures a Game.
type Option func(*Game)

// WithSeed makes every random choice of the game reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand sets the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithConsole sets where Dump writes. Dumps are dropped by default.
func WithConsole(w io.Writer) Option {
	return func(g *Game) { g.console = w }
}

// New validates the config and builds the first round.
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		Config:  cfg,
		console: ioutil.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := 0; i < cfg.Players(); i++ {
		g.Players = append(g.Players, &Player{ID: i})
	}

	if err := g.newRound(); err != nil {
		return nil, errors.Wrap(err, "rules: unable to create first round")
	}
	return g, nil
}

// Mode is single or multi player depending on the seat count.
func (g *Game) Mode() GameMode {
	if len(g.Players) > 1 {
		return GameModeMultiPlayer
	}
	return GameModeSinglePlayer
}

// Status is GameStatusPaused or GameStatusRunning.
func (g *Game) Status() string {
	if g.Paused {
		return GameStatusPaused
	}
	return GameStatusRunning
}

// AlivePlayers returns the players whose snake has not died.
func (g *Game) AlivePlayers() []*Player {
	players := []*Player{}
	for _, p := range g.Players {
		if p.Snake != nil && !p.Snake.Dead {
			players = append(players, p)
		}
	}
	return players
}

func (g *Game) fields() log.Fields {
	return log.Fields{
		"Round": g.Round,
		"Turn":  g.Turn,
	}
}
