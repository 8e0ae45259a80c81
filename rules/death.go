package rules

import (
	"github.com/battlesnakeio/mamba/grid"
)

// Death records a snake dying on a given turn.
type Death struct {
	Player int
	Cause  string
	Turn   int
}

// checkForDeath looks through the snakes with the updated coords and checks to see if any have died.
// Possible death options are wall collision, snake body collision (own or other) and
// snake head collision (other snake is same size or greater).
func checkForDeath(g *grid.Grid, turn int, players []*Player) []Death {
	updates := []Death{}
	for _, p := range players {
		s := p.Snake
		head := s.Head()
		if deathByOutOfBounds(g, head) {
			updates = append(updates, Death{Player: p.ID, Cause: DeathCauseWallCollision, Turn: turn})
			continue
		}

		if g.Get(head) == grid.Snake {
			cause := DeathCauseSnakeCollision
			if deathBySelfCollision(p) {
				cause = DeathCauseSnakeSelfCollision
			}
			updates = append(updates, Death{Player: p.ID, Cause: cause, Turn: turn})
			continue
		}

		for _, other := range players {
			if deathByHeadCollision(p, other) {
				updates = append(updates, Death{Player: p.ID, Cause: DeathCauseHeadToHeadCollision, Turn: turn})
				break
			}
		}
	}
	return updates
}

func deathByOutOfBounds(g *grid.Grid, head grid.Point) bool {
	return !g.Contains(head) || g.IsBorder(head)
}

func deathBySelfCollision(p *Player) bool {
	body := p.Snake.Body()
	for _, b := range body[1:] {
		if b == body[0] {
			return true
		}
	}
	return false
}

func deathByHeadCollision(snake, other *Player) bool {
	return other.ID != snake.ID &&
		snake.Snake.Head() == other.Snake.Head() &&
		snake.Snake.Len() <= other.Snake.Len()
}
