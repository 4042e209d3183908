package entity

import (
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/motion"
)

// ParticleKind tells shrapnel, enemy bullets and the player's bullet apart.
type ParticleKind int

const (
	Shrapnel ParticleKind = iota
	EnemyBullet
	PlayerBullet
)

// Particle is a projectile: a frame moving along a fixed angle whose speed
// is multiplied by its acceleration every tick.
type Particle struct {
	Kind  ParticleKind
	Frame core.Frame

	provider *motion.Provider
}

// NewParticle creates a particle at loc. Acceleration 1 keeps constant speed.
func NewParticle(kind ParticleKind, frame core.Frame, loc core.Location, angle, speed, acceleration float64, field core.Rectangle, pixelSize float64) *Particle {
	w, h := frame.Dimensions(pixelSize)
	if acceleration == 0 {
		acceleration = 1
	}
	cfg := motion.Config{
		Kind:         motion.Accelerate,
		Speed:        speed,
		Angle:        angle,
		Acceleration: acceleration,
		Width:        w,
		Height:       h,
		Field:        field,
	}
	return &Particle{
		Kind:     kind,
		Frame:    frame,
		provider: motion.New(cfg, loc, nil),
	}
}

// UpdateState moves the particle one tick.
func (p *Particle) UpdateState(tick int) {
	p.provider.UpdateState(tick)
}

// Location returns the top-left location.
func (p *Particle) Location() core.Location {
	return p.provider.Location()
}

// InFlight is false once the particle has left the field.
func (p *Particle) InFlight() bool {
	return p.provider.InFlight()
}

// Angle returns the heading in degrees.
func (p *Particle) Angle() float64 {
	return p.provider.Angle()
}

// Speed returns the current per-tick speed.
func (p *Particle) Speed() float64 {
	return p.provider.Speed()
}

// Hitbox returns the particle's collision box.
func (p *Particle) Hitbox(pixelSize float64) (core.Rectangle, bool) {
	if p.Frame.Empty() {
		return core.Rectangle{}, false
	}
	box := p.Frame.Bounds(p.Location(), pixelSize)
	return box, box.Valid()
}
