package render

import (
	"strings"
	"testing"

	"github.com/battlesnakeio/mamba/config"
	"github.com/battlesnakeio/mamba/grid"
	"github.com/battlesnakeio/mamba/rules"
	"github.com/stretchr/testify/require"
)

type tile struct {
	color string
	layer Layer
}

type recorder struct {
	tiles   map[grid.Point]tile
	text    []string
	cleared int
	flushed int
}

func newRecorder() *recorder {
	return &recorder{tiles: map[grid.Point]tile{}}
}

func (r *recorder) Clear() error {
	r.cleared++
	r.tiles = map[grid.Point]tile{}
	r.text = nil
	return nil
}

func (r *recorder) DrawTile(x, y int, color string, layer Layer) {
	p := grid.Point{X: x, Y: y}
	if cur, ok := r.tiles[p]; ok && cur.layer > layer {
		return
	}
	r.tiles[p] = tile{color: color, layer: layer}
}

func (r *recorder) DrawText(x, y int, color string, layer Layer, text string) {
	r.text = append(r.text, text)
}

func (r *recorder) Flush() error {
	r.flushed++
	return nil
}

func testGame(t *testing.T, twoPlayer bool) *rules.Game {
	c := config.Default()
	c.MapWidth = 12
	c.MapHeight = 10
	c.StartSize = 3
	c.TwoPlayer = twoPlayer
	g, err := rules.New(c, rules.WithSeed(3))
	require.NoError(t, err)
	return g
}

func TestFrameDrawsEveryLayer(t *testing.T) {
	g := testGame(t, false)
	r := newRecorder()
	p := NewPalette(g.Config.Colors)

	require.NoError(t, Frame(r, g, p))
	require.Equal(t, 1, r.cleared)
	require.Equal(t, 1, r.flushed)
	require.Len(t, r.tiles, g.Grid.Width()*g.Grid.Height())

	require.Equal(t, tile{g.Config.Colors.Border, LayerBorder}, r.tiles[grid.Point{X: 0, Y: 0}])
	for _, b := range g.Players[0].Snake.Body() {
		require.Equal(t, tile{g.Config.Colors.Snake, LayerSnake}, r.tiles[b])
	}
	rabbit := g.Rabbits[0]
	require.Equal(t, tile{g.Config.Colors.Rabbit, LayerRabbit}, r.tiles[rabbit.Pos])

	background := 0
	for _, tl := range r.tiles {
		if tl.layer == LayerBackground {
			require.Equal(t, g.Config.Colors.Map, tl.color)
			background++
		}
	}
	interior := (g.Grid.Width() - 2) * (g.Grid.Height() - 2)
	require.Equal(t, interior-g.Players[0].Snake.Len()-len(g.Rabbits), background)
}

func TestFrameHUD(t *testing.T) {
	g := testGame(t, true)
	g.Players[0].Stats.RabbitsEaten = 2
	g.Players[1].Stats.Kills = 1
	g.Paused = true
	r := newRecorder()

	require.NoError(t, Frame(r, g, NewPalette(g.Config.Colors)))
	require.Len(t, r.text, 3)
	require.Contains(t, r.text[0], "round 1")
	require.Contains(t, r.text[0], "PAUSED")
	require.True(t, strings.HasPrefix(r.text[1], "P1 score 2"))
	require.Contains(t, r.text[2], "kills 1")
}

func TestFrameTwoPlayerColors(t *testing.T) {
	g := testGame(t, true)
	r := newRecorder()

	require.NoError(t, Frame(r, g, NewPalette(g.Config.Colors)))
	require.Equal(t, g.Config.Colors.Snake, r.tiles[g.Players[0].Snake.Head()].color)
	require.Equal(t, g.Config.Colors.Snake2, r.tiles[g.Players[1].Snake.Head()].color)
}

func TestFrameNilGame(t *testing.T) {
	require.Error(t, Frame(newRecorder(), nil, nil))
}

func TestPaletteCycles(t *testing.T) {
	p := NewPalette(config.Colors{Snake: "black"})
	require.Equal(t, "black", p.Color(0))
	require.Equal(t, "yellow", p.Color(1))
	require.Equal(t, "black", p.Color(0))
	require.Equal(t, "white", p.Color(5))
	require.Equal(t, "black", p.Color(6))
	require.Equal(t, "yellow", p.Color(7))

	p.Reset(config.Colors{Snake: "green", Snake2: "blue"})
	require.Equal(t, "blue", p.Color(1))
	require.Equal(t, "green", p.Color(0))
}

func TestHUDWithoutSnake(t *testing.T) {
	g := testGame(t, false)
	g.Players[0].Snake = nil

	lines := HUD(g)
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "length 0")
	require.NoError(t, Frame(newRecorder(), g, NewPalette(g.Config.Colors)))
}

func TestTermboxColor(t *testing.T) {
	require.Equal(t, TermboxColor("default"), TermboxColor("no-such-color"))
	require.NotEqual(t, TermboxColor("red"), TermboxColor("green"))
}

func TestSummary(t *testing.T) {
	g := testGame(t, false)
	g.Players[0].Stats.Deaths = 4

	s := Summary(g)
	require.Contains(t, s, "Hungry Mamba!")
	require.Contains(t, s, "P1 deaths 4")
	for _, line := range strings.Split(strings.TrimSpace(g.Grid.String()), "\n") {
		require.Contains(t, s, line)
	}
}
