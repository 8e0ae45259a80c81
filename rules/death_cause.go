package rules

const (
	// DeathCauseSnakeCollision is the death reason when a snake runs into another snake's body
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseSnakeSelfCollision is the death reason when a snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseHeadToHeadCollision is when a snake dies from a head on head collision
	DeathCauseHeadToHeadCollision = "head-collision"
	// DeathCauseWallCollision is when a snake runs into the border
	DeathCauseWallCollision = "wall-collision"
)
