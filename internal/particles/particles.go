// Package particles manages explosions: the stationary centers and the
// shrapnel and enemy bullets that fly across the field.
package particles

import (
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
)

// System owns the live particles and explosion centers of one level.
type System struct {
	Particles []*entity.Particle
	Centers   []*entity.ExplosionCenter

	field     core.Rectangle
	pixelSize float64
}

// New creates an empty system for the field.
func New(field core.Rectangle, pixelSize float64) *System {
	if pixelSize <= 0 {
		pixelSize = 1
	}
	return &System{field: field, pixelSize: pixelSize}
}

// Queue spawns an explosion centered on center: one center flash and one
// particle per shard.
func (s *System) Queue(center core.Location, e entity.Explosion, tick int) {
	if !e.Center.Empty() {
		w, h := e.Center.Dimensions(s.pixelSize)
		s.Centers = append(s.Centers, &entity.ExplosionCenter{
			Location:       core.Location{Left: center.Left - w/2, Top: center.Top - h/2},
			Frame:          e.Center,
			StartTick:      tick,
			FizzleDuration: e.CenterDuration,
		})
	}
	for _, shard := range e.Shrapnel {
		w, h := shard.Frame.Dimensions(s.pixelSize)
		loc := core.Location{Left: center.Left - w/2, Top: center.Top - h/2}
		s.Particles = append(s.Particles, entity.NewParticle(
			entity.Shrapnel, shard.Frame, loc, shard.Angle, shard.Speed, e.Acceleration, s.field, s.pixelSize))
	}
}

// Add inserts an already built particle, such as an enemy bullet.
func (s *System) Add(p *entity.Particle) {
	s.Particles = append(s.Particles, p)
}

// Update moves every particle and drops those that left the field.
func (s *System) Update(tick int) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		p.UpdateState(tick)
		if p.InFlight() {
			kept = append(kept, p)
		}
	}
	clear(s.Particles[len(kept):])
	s.Particles = kept
}

// Sweep removes explosion centers that have fizzled.
func (s *System) Sweep(tick int) {
	kept := s.Centers[:0]
	for _, c := range s.Centers {
		if !c.Fizzled(tick) {
			kept = append(kept, c)
		}
	}
	clear(s.Centers[len(kept):])
	s.Centers = kept
}

// Count returns the number of particles of the given kind.
func (s *System) Count(kind entity.ParticleKind) int {
	n := 0
	for _, p := range s.Particles {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops everything.
func (s *System) Reset() {
	s.Particles = nil
	s.Centers = nil
}
