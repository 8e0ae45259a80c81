package commands

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() (string, *simResult) {
		g := testGame(t, true)
		res, err := simulate(g, rand.New(rand.NewSource(5)), 300)
		require.NoError(t, err)
		return g.Grid.String(), res
	}

	grid1, res1 := run()
	grid2, res2 := run()
	require.Equal(t, grid1, grid2)
	require.Equal(t, res1, res2)
	require.Equal(t, 300, res1.Ticks)
}

func TestSimulateRestartsRounds(t *testing.T) {
	g := testGame(t, false)
	res, err := simulate(g, rand.New(rand.NewSource(1)), 200)
	require.NoError(t, err)

	deaths := 0
	for _, n := range res.Deaths {
		deaths += n
	}
	require.Equal(t, res.Rounds, g.Round)
	require.Equal(t, deaths, g.Players[0].Stats.Deaths)
	require.False(t, g.Paused)
}

func TestPrintSimulation(t *testing.T) {
	g := testGame(t, false)
	res, err := simulate(g, rand.New(rand.NewSource(2)), 10)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, printSimulation(buf, g, res))
	require.Contains(t, buf.String(), "ticks 10")
}

func TestDump(t *testing.T) {
	seed = 9
	defer func() { seed = 0 }()

	buf := &bytes.Buffer{}
	require.NoError(t, dump(buf))
	require.Contains(t, buf.String(), "MapWidth")
	require.Contains(t, buf.String(), "round 1")
}
