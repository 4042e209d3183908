// Package entity defines the things that live on the playfield: enemies,
// the player ship, particles and explosion centers.
package entity

import (
	"github.com/vovakirdan/tui-r42/internal/core"
)

// LocationProvider moves an entity.
type LocationProvider interface {
	UpdateState(tick int)
	Location() core.Location
	IncreaseSpeed(factor float64)
}

// FrameProvider animates an entity.
type FrameProvider interface {
	UpdateState(tick int)
	CurrentFrame() (core.Frame, bool)
	CurrentIndex() int
	NextFrame() (core.Frame, bool)
	IncreaseSpeed(factor float64)
}

// FireAngleFunc returns the heading of a bullet an enemy at center fires at
// the player, or ok=false to hold fire.
type FireAngleFunc func(center core.Location, player core.Rectangle, playerAlive bool, enemies int, rng *core.RNG) (angle float64, ok bool)

// Enemy is a destructible opponent.
type Enemy struct {
	ID        int
	Type      string
	Points    int
	Hitpoints int
	Explosion Explosion

	// Fire parameters; FireAngle is nil for enemies that never shoot.
	FireAngle    FireAngleFunc
	FireInterval int
	BulletFrame  core.Frame
	BulletSpeed  float64

	pixelSize   float64
	offsets     []core.Location
	topInset    float64
	bottomInset float64
	location    LocationProvider
	frames      FrameProvider
	lastFired   int
}

// Location returns the top-left location of the current frame, including
// the frame's offset. Enemies without a frame report core.OffField.
func (e *Enemy) Location() core.Location {
	if _, ok := e.frames.CurrentFrame(); !ok {
		return core.OffField
	}
	loc := e.location.Location()
	if i := e.frames.CurrentIndex(); i < len(e.offsets) {
		loc = loc.Add(e.offsets[i].Left*e.pixelSize, e.offsets[i].Top*e.pixelSize)
	}
	return loc
}

// CurrentFrame returns the frame being shown.
func (e *Enemy) CurrentFrame() (core.Frame, bool) {
	return e.frames.CurrentFrame()
}

// Hitbox returns the collision box; ok is false without a valid frame.
func (e *Enemy) Hitbox() (core.Rectangle, bool) {
	f, ok := e.frames.CurrentFrame()
	if !ok {
		return core.Rectangle{}, false
	}
	box := f.Hitbox(e.Location(), e.pixelSize, e.topInset, e.bottomInset)
	return box, box.Valid()
}

// Center returns the midpoint of the current frame.
func (e *Enemy) Center() core.Location {
	f, ok := e.frames.CurrentFrame()
	if !ok {
		return core.OffField
	}
	return f.Center(e.Location(), e.pixelSize)
}

// UpdateState advances animation and movement.
func (e *Enemy) UpdateState(tick int) {
	e.frames.UpdateState(tick)
	e.location.UpdateState(tick)
}

// IncreaseSpeed speeds up both movement and animation.
func (e *Enemy) IncreaseSpeed(factor float64) {
	e.location.IncreaseSpeed(factor)
	e.frames.IncreaseSpeed(factor)
}

// Hit registers a bullet hit and reports whether the enemy is destroyed.
// Enemies with more than one hitpoint lose one and show the next damage
// frame instead.
func (e *Enemy) Hit() (destroyed bool) {
	if e.Hitpoints <= 1 {
		e.Hitpoints = 0
		return true
	}
	e.Hitpoints--
	e.frames.NextFrame()
	return false
}

// TryFire returns a bullet when the enemy is allowed to shoot this tick.
func (e *Enemy) TryFire(tick int, player core.Rectangle, playerAlive bool, enemies int, field core.Rectangle, rng *core.RNG) (*Particle, bool) {
	if e.FireAngle == nil || e.BulletFrame.Empty() || e.FireInterval <= 0 {
		return nil, false
	}
	if tick-e.lastFired < e.FireInterval {
		return nil, false
	}
	center := e.Center()
	angle, ok := e.FireAngle(center, player, playerAlive, enemies, rng)
	if !ok {
		return nil, false
	}
	e.lastFired = tick

	w, _ := e.BulletFrame.Dimensions(e.pixelSize)
	loc := core.Location{Left: center.Left - w/2, Top: center.Top}
	return NewParticle(EnemyBullet, e.BulletFrame, loc, angle, e.BulletSpeed, 1, field, e.pixelSize), true
}
