package entity

import "github.com/vovakirdan/tui-r42/internal/core"

// Shard is one piece of shrapnel flung out by an explosion.
type Shard struct {
	Frame core.Frame
	Angle float64
	Speed float64
}

// Explosion describes how an entity blows up: a stationary center that
// fizzles after CenterDuration ticks, plus shrapnel particles.
type Explosion struct {
	Center         core.Frame
	Shrapnel       []Shard
	Acceleration   float64
	CenterDuration int
}

// ExplosionCenter is the stationary flash left where something exploded.
type ExplosionCenter struct {
	Location       core.Location
	Frame          core.Frame
	StartTick      int
	FizzleDuration int
}

// Fizzled reports whether the center has outlived its duration.
func (c *ExplosionCenter) Fizzled(tick int) bool {
	return tick-c.StartTick > c.FizzleDuration
}

// Hitbox returns the center's collision box.
func (c *ExplosionCenter) Hitbox(pixelSize float64) (core.Rectangle, bool) {
	if c.Frame.Empty() {
		return core.Rectangle{}, false
	}
	box := c.Frame.Bounds(c.Location, pixelSize)
	return box, box.Valid()
}
