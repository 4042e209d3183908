// Package assets holds the pixel art and the enemy blueprints. Importing it
// registers every enemy type with the registry.
package assets

import (
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
)

var (
	explosionCenter = core.ParseFrame(
		"0Y0Y0",
		"YWoWY",
		"0oWo0",
		"YWoWY",
		"0Y0Y0",
	)
	shardSmall = core.ParseFrame("o")
	shardBig   = core.ParseFrame("yY")
)

// Explosion returns the standard enemy explosion: a flash plus eight shards
// flung out in every direction.
func Explosion() entity.Explosion {
	return radial(explosionCenter, 0.45, 20)
}

// PlayerExplosion is larger and lasts longer than an enemy explosion.
func PlayerExplosion() entity.Explosion {
	e := radial(core.ParseFrame(
		"0R0R0R0",
		"RYWYWYR",
		"0WoRoW0",
		"RYWYWYR",
		"0R0R0R0",
	), 0.6, 40)
	e.Acceleration = 1.01
	return e
}

func radial(center core.Frame, speed float64, duration int) entity.Explosion {
	shards := make([]entity.Shard, 0, 8)
	for i := 0; i < 8; i++ {
		frame := shardSmall
		s := speed
		if i%2 == 1 {
			frame = shardBig
			s = speed * 0.75
		}
		shards = append(shards, entity.Shard{Frame: frame, Angle: float64(i) * 45, Speed: s})
	}
	return entity.Explosion{
		Center:         center,
		Shrapnel:       shards,
		Acceleration:   1,
		CenterDuration: duration,
	}
}
