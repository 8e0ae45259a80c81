package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/battlesnakeio/mamba/config"
	"github.com/battlesnakeio/mamba/render"
	"github.com/battlesnakeio/mamba/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingRenderer struct {
	frames int
}

func (r *countingRenderer) Clear() error { return nil }

func (r *countingRenderer) DrawTile(x, y int, color string, layer render.Layer) {}

func (r *countingRenderer) DrawText(x, y int, color string, layer render.Layer, text string) {}

func (r *countingRenderer) Flush() error {
	r.frames++
	return nil
}

func testGame(t *testing.T, twoPlayer bool) *rules.Game {
	c := config.Default()
	c.MapWidth = 20
	c.MapHeight = 12
	c.TwoPlayer = twoPlayer
	g, err := rules.New(c, rules.WithSeed(11), rules.WithConsole(&bytes.Buffer{}))
	require.NoError(t, err)
	return g
}

func TestRunLoop(t *testing.T) {
	g := testGame(t, false)
	r := &countingRenderer{}
	events := make(chan termbox.Event)
	ticks := make(chan struct{})
	done := make(chan error)

	go func() { done <- runLoop(g, r, events, ticks) }()

	ticks <- struct{}{}
	ticks <- struct{}{}
	events <- key(termbox.KeySpace)
	ticks <- struct{}{}
	events <- key(termbox.KeyEsc)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not quit")
	}
	require.Equal(t, 2, g.Turn)
	require.True(t, g.Paused)
	require.Equal(t, 5, r.frames)
}

func TestRunLoopSurvivesFailedTick(t *testing.T) {
	g := testGame(t, false)
	// the next round cannot fit a snake of the start size
	g.Config.MapWidth = 4
	g.Config.MapHeight = 4
	events := make(chan termbox.Event)
	ticks := make(chan struct{})
	done := make(chan error)

	go func() { done <- runLoop(g, &countingRenderer{}, events, ticks) }()

	// the snake runs right into the border within 9 ticks
	for i := 0; i < 12; i++ {
		ticks <- struct{}{}
	}
	events <- key(termbox.KeyEsc)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not quit")
	}
	require.True(t, g.Paused)
	require.Equal(t, 2, g.Round)
	require.Nil(t, g.Players[0].Snake)
}

func TestRunLoopStopsWhenTicksClose(t *testing.T) {
	g := testGame(t, false)
	ticks := make(chan struct{})
	close(ticks)

	require.NoError(t, runLoop(g, &countingRenderer{}, make(chan termbox.Event), ticks))
}

func TestTickQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := setupTickQueue(ctx, rate.Limit(1000))

	for i := 0; i < 3; i++ {
		select {
		case <-q:
		case <-time.After(time.Second):
			t.Fatal("no tick")
		}
	}

	cancel()
	for range q {
	}
}
