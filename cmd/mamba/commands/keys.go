package commands

import (
	"github.com/battlesnakeio/mamba/grid"
	"github.com/battlesnakeio/mamba/rules"
	termbox "github.com/nsf/termbox-go"
)

type action int

const (
	actionNone action = iota
	actionSteer
	actionPause
	actionReset
	actionResetScores
	actionDump
	actionQuit
)

type command struct {
	action action
	player int
	dir    grid.Direction
}

var arrowKeys = map[termbox.Key]grid.Direction{
	termbox.KeyArrowUp:    grid.Up,
	termbox.KeyArrowDown:  grid.Down,
	termbox.KeyArrowLeft:  grid.Left,
	termbox.KeyArrowRight: grid.Right,
}

var wasdKeys = map[rune]grid.Direction{
	'w': grid.Up,
	's': grid.Down,
	'a': grid.Left,
	'd': grid.Right,
}

// keyCommand maps a key event to a game command. Arrows steer player one,
// WASD steers player two in two player mode.
func keyCommand(ev termbox.Event, twoPlayer bool) command {
	if ev.Type != termbox.EventKey {
		return command{}
	}
	if d, ok := arrowKeys[ev.Key]; ok {
		return command{action: actionSteer, player: 0, dir: d}
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC, termbox.KeyCtrlQ:
		return command{action: actionQuit}
	case termbox.KeySpace:
		return command{action: actionPause}
	}

	ch := ev.Ch
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if d, ok := wasdKeys[ch]; ok && twoPlayer {
		return command{action: actionSteer, player: 1, dir: d}
	}
	switch ch {
	case ' ':
		return command{action: actionPause}
	case 'r':
		return command{action: actionReset}
	case 'x':
		return command{action: actionResetScores}
	case 'e':
		return command{action: actionDump}
	}
	return command{}
}

// apply runs a command against the game and reports whether to quit.
func apply(g *rules.Game, c command) (bool, error) {
	switch c.action {
	case actionSteer:
		g.Steer(c.player, c.dir)
	case actionPause:
		g.TogglePause()
	case actionReset:
		return false, g.Reset()
	case actionResetScores:
		g.ResetScores()
	case actionDump:
		return false, g.Dump()
	case actionQuit:
		return true, nil
	}
	return false, nil
}
