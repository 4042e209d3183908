package entity

import (
	"math"

	"github.com/vovakirdan/tui-r42/internal/core"
)

// Headings in degrees.
const (
	AngleRight     = 0.0
	AngleRightDown = 45.0
	AngleDown      = 90.0
	AngleLeftDown  = 135.0
	AngleLeft      = 180.0
	AngleUp        = 270.0
)

// FireDown always fires straight down while the player is alive.
func FireDown(_ core.Location, _ core.Rectangle, playerAlive bool, _ int, _ *core.RNG) (float64, bool) {
	return AngleDown, playerAlive
}

// FireDiagonalAtPlayer fires diagonally towards the player's side. When the
// enemy is above the player it may fire straight down instead; that chance
// grows as fewer enemies remain.
func FireDiagonalAtPlayer(center core.Location, player core.Rectangle, playerAlive bool, enemies int, rng *core.RNG) (float64, bool) {
	if !playerAlive {
		return 0, false
	}
	if rng != nil {
		roll := int(math.Ceil(rng.Float64() * float64(enemies) / 1.5))
		if roll <= 1 && center.Left >= player.Left && center.Left <= player.Right {
			return AngleDown, true
		}
	}
	if center.Left < player.Left {
		return AngleRightDown, true
	}
	return AngleLeftDown, true
}
