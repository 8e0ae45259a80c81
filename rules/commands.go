package rules

import (
	"fmt"

	"github.com/battlesnakeio/mamba/grid"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Steer requests a new direction for a player's snake. It is applied on the
// next tick; reversals into the snake's own neck are ignored.
func (g *Game) Steer(player int, d grid.Direction) bool {
	if player < 0 || player >= len(g.Players) {
		return false
	}
	p := g.Players[player]
	if p.Snake == nil || p.Snake.Dead {
		return false
	}
	ok := p.Snake.SetDirection(d)
	log.WithFields(g.fields()).
		WithField("Player", player).
		WithField("Direction", d).
		WithField("Accepted", ok).
		Debug("steer")
	return ok
}

// TogglePause flips the paused flag and returns the new value.
func (g *Game) TogglePause() bool {
	g.Paused = !g.Paused
	log.WithFields(g.fields()).WithField("Paused", g.Paused).Info("toggle pause")
	return g.Paused
}

// Reset abandons the current round and starts a new one. Cumulative stats are
// kept.
func (g *Game) Reset() error {
	if err := g.newRound(); err != nil {
		g.Paused = true
		return errors.Wrap(err, "rules: unable to reset round")
	}
	return nil
}

// ResetScores zeroes every player's stats.
func (g *Game) ResetScores() {
	for _, p := range g.Players {
		p.Stats = Stats{}
	}
	log.WithFields(g.fields()).Info("scores reset")
}

// Dump writes the grid letter map and the player stats to the console.
func (g *Game) Dump() error {
	_, err := fmt.Fprintf(g.console, "round %d (%s) turn %d %s\n", g.Round, g.RoundID, g.Turn, g.Status())
	if err != nil {
		return err
	}
	if err = g.Grid.Display(g.console); err != nil {
		return err
	}
	stats := make([]Stats, 0, len(g.Players))
	for _, p := range g.Players {
		stats = append(stats, p.Stats)
	}
	spew.Fdump(g.console, stats)
	return nil
}
