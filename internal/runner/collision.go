package runner

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Collides is the lenient overlap test between an actor and an obstacle.
// Each operand is divided by div on its own; this is not a symmetric shrink
// of either box. The last term divides the actor's y, not its height.
func Collides(actor, obstacle core.Box, div float64) bool {
	return actor.X < obstacle.X+obstacle.W/div &&
		actor.X+actor.W/div > obstacle.X &&
		actor.Y < obstacle.Y+obstacle.H/div &&
		actor.H+actor.Y/div > obstacle.Y
}
