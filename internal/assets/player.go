package assets

import (
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
)

// Ship is the player's frame.
var Ship = core.ParseFrame(
	"00W00",
	"00W00",
	"0WCW0",
	"WWCWW",
	"W0r0W",
)

// PlayerBullet is the frame of the player's bullet.
var PlayerBullet = core.ParseFrame("Y", "y")

// EnemyBullet is the frame of an enemy bullet.
var EnemyBullet = core.ParseFrame("R")

// PhaserColor is the color of the phaser beam.
const PhaserColor = core.ColorBrightMagenta

// Player returns the ship configuration for the given handling.
func Player(speed, bulletSpeed, bulletAcceleration float64) entity.PlayerConfig {
	return entity.PlayerConfig{
		Frame:              Ship,
		Explosion:          PlayerExplosion(),
		Speed:              speed,
		BulletFrame:        PlayerBullet,
		BulletSpeed:        bulletSpeed,
		BulletAcceleration: bulletAcceleration,
	}
}
