package commands

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/battlesnakeio/mamba/grid"
	"github.com/battlesnakeio/mamba/render"
	"github.com/battlesnakeio/mamba/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simTicks = 500

func init() {
	simCmd.Flags().IntVarP(&simTicks, "ticks", "t", simTicks, "number of ticks to run")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs a headless game with random steering and prints a summary",
	Args: func(c *cobra.Command, args []string) error {
		if simTicks < 1 {
			return errors.New("ticks must be at least 1")
		}
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		if err := setupLogging(os.Stderr); err != nil {
			return err
		}
		g, err := newGame(os.Stdout)
		if err != nil {
			return err
		}
		res, err := simulate(g, rand.New(rand.NewSource(gameSeed())), simTicks)
		if err != nil {
			return err
		}
		return printSimulation(os.Stdout, g, res)
	},
}

type simResult struct {
	Ticks  int
	Rounds int
	Eaten  int
	Kills  int
	Deaths map[string]int
}

// simulate runs the game for n ticks. Each live snake turns at random about
// one tick in four. A round that ends is unpaused right away.
func simulate(g *rules.Game, steer *rand.Rand, n int) (*simResult, error) {
	res := &simResult{Rounds: 1, Deaths: map[string]int{}}
	for i := 0; i < n; i++ {
		for _, p := range g.AlivePlayers() {
			if steer.Intn(4) == 0 {
				g.Steer(p.ID, grid.Directions[steer.Intn(len(grid.Directions))])
			}
		}

		tick, err := g.Tick()
		if err != nil {
			return nil, errors.Wrapf(err, "sim failed on tick %d", i)
		}
		res.Ticks++
		res.Eaten += len(tick.Eaten)
		res.Kills += len(tick.Kills)
		for _, d := range tick.Deaths {
			res.Deaths[d.Cause]++
		}
		if tick.Reset {
			res.Rounds++
			g.TogglePause()
		}
	}
	log.WithFields(log.Fields{
		"Ticks":  res.Ticks,
		"Rounds": res.Rounds,
		"Eaten":  res.Eaten,
	}).Info("simulation done")
	return res, nil
}

func printSimulation(w io.Writer, g *rules.Game, res *simResult) error {
	_, err := fmt.Fprintf(w, "%s\n\nticks %d  rounds %d  eaten %d  kills %d  deaths %v\n",
		render.Summary(g), res.Ticks, res.Rounds, res.Eaten, res.Kills, res.Deaths)
	return err
}
