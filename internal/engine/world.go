package engine

import (
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
	"github.com/vovakirdan/tui-r42/internal/particles"
)

// World holds the live collections of the running level. It is passed
// explicitly to every runner so a single tick can be tested in isolation.
type World struct {
	Field     core.Rectangle
	PixelSize float64
	RNG       *core.RNG

	// Keyboard is the input snapshot of the current tick.
	Keyboard core.KeyboardState

	Player    *entity.Player
	Enemies   []*entity.Enemy
	Particles *particles.System

	// Beam holds the phaser beam locations while a phaser shot is pending.
	Beam []core.Location

	// TotalEnemies is the enemy count the level started with.
	TotalEnemies int
	// SpeedRamp is the product of the ramp factors applied to the survivors.
	SpeedRamp float64

	Stars []core.Location

	respawn pending
	nextID  int
}

// pending is a short-lived Idle -> Pending(at) -> Idle state machine.
type pending struct {
	active bool
	at     int
}

func (p *pending) schedule(at int) {
	p.active = true
	p.at = at
}

// due reports whether the pending event fires at tick and clears it.
func (p *pending) due(tick int) bool {
	if !p.active || tick < p.at {
		return false
	}
	p.active = false
	return true
}

// NewWorld creates an empty world with the player at its spawn location.
func NewWorld(field core.Rectangle, pixelSize float64, player entity.PlayerConfig, rng *core.RNG) *World {
	if pixelSize <= 0 {
		pixelSize = 1
	}
	w := &World{
		Field:     field,
		PixelSize: pixelSize,
		RNG:       rng,
		Particles: particles.New(field, pixelSize),
		SpeedRamp: 1,
	}
	w.Player = entity.NewPlayer(player, w.PlayerSpawn(player.Frame), field, pixelSize)
	w.Stars = starfield(field, rng)
	return w
}

// PlayerSpawn returns the fixed spawn location: bottom center of the field.
func (w *World) PlayerSpawn(ship core.Frame) core.Location {
	sw, sh := ship.Dimensions(w.PixelSize)
	return core.Location{
		Left: w.Field.Left + (w.Field.Width()-sw)/2,
		Top:  w.Field.Bottom - sh - w.PixelSize,
	}
}

// NextEnemyID returns a new unique enemy id.
func (w *World) NextEnemyID() int {
	w.nextID++
	return w.nextID
}

// SetEnemies installs the enemies of a new wave and resets the speed ramp.
func (w *World) SetEnemies(enemies []*entity.Enemy) {
	w.Enemies = enemies
	w.TotalEnemies = len(enemies)
	w.SpeedRamp = 1
}

// AddEnemy adds one enemy to the running wave.
func (w *World) AddEnemy(e *entity.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// EnemyByID looks up a live enemy.
func (w *World) EnemyByID(id int) (*entity.Enemy, bool) {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// RemoveEnemy removes a live enemy and reports whether it was present.
func (w *World) RemoveEnemy(id int) (*entity.Enemy, bool) {
	for i, e := range w.Enemies {
		if e.ID == id {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return e, true
		}
	}
	return nil, false
}

// Clear drops enemies, particles and the beam.
func (w *World) Clear() {
	w.Enemies = nil
	w.TotalEnemies = 0
	w.SpeedRamp = 1
	w.Particles.Reset()
	w.Beam = nil
}

func starfield(field core.Rectangle, rng *core.RNG) []core.Location {
	if rng == nil {
		return nil
	}
	n := int(field.Width()*field.Height()) / 400
	stars := make([]core.Location, 0, n)
	for range n {
		stars = append(stars, core.Location{
			Left: rng.Range(field.Left, field.Right),
			Top:  rng.Range(field.Top, field.Bottom),
		})
	}
	return stars
}
