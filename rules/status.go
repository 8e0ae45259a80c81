package rules

const (
	// GameStatusRunning means ticks advance the game.
	GameStatusRunning = "running"
	// GameStatusPaused means ticks are ignored until the game is unpaused.
	GameStatusPaused = "paused"
)
