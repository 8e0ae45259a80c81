package rules

// GameMode represents the mode the game is running in
type GameMode string

const (
	// GameModeSinglePlayer represents the game running with one snake, the round ends when it dies.
	GameModeSinglePlayer GameMode = "single-player"
	// GameModeMultiPlayer represents two snakes sharing the grid, the round ends as soon as either dies.
	GameModeMultiPlayer GameMode = "multi-player"
)

// CheckForRoundOver checks if the round has ended. End condition is dependent on game mode.
func CheckForRoundOver(mode GameMode, players []*Player) bool {
	alive := 0
	for _, p := range players {
		if p.Snake != nil && !p.Snake.Dead {
			alive++
		}
	}
	if mode == GameModeSinglePlayer {
		return alive == 0
	}
	return alive < len(players)
}
