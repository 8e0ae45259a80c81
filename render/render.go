// Package render draws a game through a Renderer, the drawing collaborator
// that knows how to put a colored tile on a grid cell.
package render

import (
	"fmt"

	"github.com/battlesnakeio/mamba/grid"
	"github.com/battlesnakeio/mamba/rules"
	"github.com/pkg/errors"
)

// Layer orders what is drawn on top of what. Higher layers win.
type Layer int

// Layers from bottom to top.
const (
	LayerBorder Layer = iota + 1
	LayerBackground
	LayerMap
	LayerText
	LayerSnake
	LayerRabbit
)

// Renderer is the drawing collaborator. Coordinates are grid cells; text
// starts at a cell and runs to the right.
type Renderer interface {
	Clear() error
	DrawTile(x, y int, color string, layer Layer)
	DrawText(x, y int, color string, layer Layer, text string)
	Flush() error
}

// Frame draws one full frame of the game: border, background, rabbits,
// snakes and the HUD below the grid.
func Frame(r Renderer, g *rules.Game, palette *Palette) error {
	if g == nil || g.Grid == nil {
		return errors.New("render: nothing to draw")
	}
	if err := r.Clear(); err != nil {
		return err
	}
	colors := g.Config.Colors

	for y := 0; y < g.Grid.Height(); y++ {
		for x := 0; x < g.Grid.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			if g.Grid.IsBorder(p) {
				r.DrawTile(x, y, colors.Border, LayerBorder)
			} else {
				r.DrawTile(x, y, colors.Map, LayerBackground)
			}
		}
	}

	for _, p := range g.Players {
		if p.Snake == nil {
			continue
		}
		color := palette.Color(p.ID)
		for _, b := range p.Snake.Body() {
			r.DrawTile(b.X, b.Y, color, LayerSnake)
		}
	}
	for _, rabbit := range g.Rabbits {
		r.DrawTile(rabbit.Pos.X, rabbit.Pos.Y, colors.Rabbit, LayerRabbit)
	}

	for i, line := range HUD(g) {
		r.DrawText(0, g.Grid.Height()+i, colors.Text, LayerText, line)
	}
	return r.Flush()
}

// HUD returns the status lines shown under the grid.
func HUD(g *rules.Game) []string {
	status := fmt.Sprintf("Hungry Mamba! round %d  ticks %d", g.Round, g.Turn)
	if g.Paused {
		status += "  PAUSED (space)"
	}
	lines := []string{status}
	for _, p := range g.Players {
		length := 0
		if p.Snake != nil {
			length = p.Snake.Len()
		}
		line := fmt.Sprintf("P%d score %d  high %d  length %d", p.ID+1, p.Stats.RabbitsEaten, p.Stats.HighScore, length)
		if len(g.Players) > 1 {
			line += fmt.Sprintf("  kills %d", p.Stats.Kills)
		}
		lines = append(lines, line)
	}
	return lines
}
