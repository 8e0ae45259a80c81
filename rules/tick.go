package rules

import (
	"strconv"

	"github.com/battlesnakeio/mamba/grid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Eat records a snake eating a rabbit.
type Eat struct {
	Player int
	At     grid.Point
}

// Kill records a snake's head entering another snake's body.
type Kill struct {
	Player int
	Victim int
	At     grid.Point
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Round  int
	Turn   int
	Paused bool
	Eaten  []Eat
	Kills  []Kill
	Deaths []Death
	// Reset is set when the tick ended the round and a new one was built.
	Reset bool
}

// Tick runs the game one tick and updates the state. Nothing happens while
// the game is paused. A death or a failed rabbit respawn pauses the game and
// starts a new round; an error is only returned when that new round cannot
// be built either.
func (g *Game) Tick() (*TickResult, error) {
	if g.Paused {
		return &TickResult{Round: g.Round, Turn: g.Turn, Paused: true}, nil
	}
	defer instrument()()

	g.Turn++
	res := &TickResult{Round: g.Round, Turn: g.Turn}
	ticksTotal.Inc()

	// 1. snakes eat the rabbits under their heads, replacements spawn
	log.WithFields(g.fields()).Debug("handle rabbits eaten")
	if err := g.checkForSnakesEating(res); err != nil {
		log.WithFields(g.fields()).WithError(err).Warn("rabbit respawn failed, starting a new round")
		return g.endRound(res)
	}

	// 2. move snakes and update the grid
	log.WithFields(g.fields()).Debug("advance snakes")
	g.updateSnakes()

	// 3. move rabbits
	log.WithFields(g.fields()).Debug("hop rabbits")
	g.updateRabbits()

	// 4. heads entering another snake
	if len(g.Players) > 1 {
		g.checkForKills(res)
	}

	// 5. check for death
	log.WithFields(g.fields()).Debug("check for death")
	res.Deaths = checkForDeath(g.Grid, g.Turn, g.AlivePlayers())
	for _, d := range res.Deaths {
		p := g.Players[d.Player]
		p.Snake.Dead = true
		p.Stats.Deaths++
		deathsTotal.WithLabelValues(d.Cause).Inc()
		log.WithFields(g.fields()).
			WithField("Player", d.Player).
			WithField("Cause", d.Cause).
			WithField("Length", p.Snake.Len()).
			Info("snake died")
	}
	if CheckForRoundOver(g.Mode(), g.Players) {
		return g.endRound(res)
	}
	return res, nil
}

// endRound pauses the game and lays out a fresh round.
func (g *Game) endRound(res *TickResult) (*TickResult, error) {
	g.Paused = true
	res.Reset = true
	if err := g.newRound(); err != nil {
		return res, errors.Wrap(err, "rules: unable to start a new round")
	}
	return res, nil
}

func (g *Game) checkForSnakesEating(res *TickResult) error {
	for _, p := range g.AlivePlayers() {
		head := p.Snake.Head()
		for i := 0; i < len(g.Rabbits); i++ {
			r := g.Rabbits[i]
			if r.Pos != head {
				continue
			}

			p.Stats.RabbitsEaten++
			if p.Stats.RabbitsEaten > p.Stats.HighScore {
				p.Stats.HighScore = p.Stats.RabbitsEaten
			}
			res.Eaten = append(res.Eaten, Eat{Player: p.ID, At: r.Pos})
			rabbitsEatenTotal.WithLabelValues(strconv.Itoa(p.ID)).Inc()
			log.WithFields(g.fields()).
				WithField("Player", p.ID).
				WithField("At", r.Pos).
				WithField("Eaten", p.Stats.RabbitsEaten).
				Info("snake ate")

			g.Rabbits = append(g.Rabbits[:i], g.Rabbits[i+1:]...)
			g.Grid.Set(r.Pos, grid.Empty)
			i--
			if _, err := g.spawnRabbit(); err != nil {
				return err
			}
			p.Snake.Grow(g.Config.GrowLength)
		}
	}
	return nil
}

func (g *Game) updateSnakes() {
	for _, p := range g.AlivePlayers() {
		vacated := p.Snake.Advance()
		g.Grid.Set(vacated, grid.Empty)
		p.Snake.Mark(g.Grid)
	}
}

// updateRabbits hops every rabbit. A rabbit with a snake head on top of it is
// caught and stays put so it is eaten on the next tick.
func (g *Game) updateRabbits() {
	for _, r := range g.Rabbits {
		if g.caught(r.Pos) {
			continue
		}
		r.Hop(g.Grid, g.rng)
	}
}

func (g *Game) caught(p grid.Point) bool {
	for _, pl := range g.AlivePlayers() {
		if pl.Snake.Head() == p {
			return true
		}
	}
	return false
}

func (g *Game) checkForKills(res *TickResult) {
	alive := g.AlivePlayers()
	for _, a := range alive {
		head := a.Snake.Head()
		for _, b := range alive {
			if a.ID == b.ID || !b.Snake.Occupies(head) {
				continue
			}
			a.Stats.Kills++
			res.Kills = append(res.Kills, Kill{Player: a.ID, Victim: b.ID, At: head})
			killsTotal.WithLabelValues(strconv.Itoa(a.ID)).Inc()
			log.WithFields(g.fields()).
				WithField("Player", a.ID).
				WithField("Victim", b.ID).
				Info("snake kill")
		}
	}
}
