package entity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-r42/internal/core"
)

// MoveLimit restricts how the player ship may move.
type MoveLimit int

const (
	MoveFree MoveLimit = iota
	// MoveForceUp keeps the ship flying upwards; only sideways input applies.
	MoveForceUp
	// MoveSideways ignores vertical input.
	MoveSideways
)

// ParseMoveLimit parses "none", "forceup" or "sideways".
func ParseMoveLimit(s string) (MoveLimit, error) {
	switch s {
	case "", "none":
		return MoveFree, nil
	case "forceup":
		return MoveForceUp, nil
	case "sideways":
		return MoveSideways, nil
	}
	return MoveFree, fmt.Errorf("entity: unknown move limit %q", s)
}

// PlayerConfig holds the ship's assets and handling.
type PlayerConfig struct {
	Frame              core.Frame
	Explosion          Explosion
	Speed              float64
	BulletFrame        core.Frame
	BulletSpeed        float64
	BulletAcceleration float64
}

// Player is the ship. At most one of its bullets is in flight at a time.
type Player struct {
	Alive     bool
	Location  core.Location
	MoveLimit MoveLimit
	Bullet    *Particle

	cfg       PlayerConfig
	field     core.Rectangle
	pixelSize float64
}

// NewPlayer creates a living ship at spawn.
func NewPlayer(cfg PlayerConfig, spawn core.Location, field core.Rectangle, pixelSize float64) *Player {
	if pixelSize <= 0 {
		pixelSize = 1
	}
	return &Player{
		Alive:     true,
		Location:  spawn,
		cfg:       cfg,
		field:     field,
		pixelSize: pixelSize,
	}
}

// Frame returns the ship frame.
func (p *Player) Frame() core.Frame {
	return p.cfg.Frame
}

// Explosion returns the ship's explosion asset.
func (p *Player) Explosion() Explosion {
	return p.cfg.Explosion
}

// Hitbox returns the ship's collision box; ok is false while dead.
func (p *Player) Hitbox() (core.Rectangle, bool) {
	if !p.Alive || p.cfg.Frame.Empty() {
		return core.Rectangle{}, false
	}
	box := p.cfg.Frame.Bounds(p.Location, p.pixelSize)
	return box, box.Valid()
}

// Center returns the midpoint of the ship.
func (p *Player) Center() core.Location {
	return p.cfg.Frame.Center(p.Location, p.pixelSize)
}

// Nozzle returns where bullets and the phaser beam leave the ship: the
// middle of its top edge.
func (p *Player) Nozzle() core.Location {
	w, _ := p.cfg.Frame.Dimensions(p.pixelSize)
	return core.Location{Left: p.Location.Left + w/2, Top: p.Location.Top}
}

// Move applies the keyboard directions for one tick and keeps the ship on
// the field.
func (p *Player) Move(kb core.KeyboardState) {
	if !p.Alive {
		return
	}
	dx, dy := 0.0, 0.0
	if kb.Left {
		dx--
	}
	if kb.Right {
		dx++
	}
	switch p.MoveLimit {
	case MoveFree:
		if kb.Up {
			dy--
		}
		if kb.Down {
			dy++
		}
	case MoveForceUp:
		dy = -1
	}
	if dx == 0 && dy == 0 {
		return
	}
	// Diagonals move at the same speed as straight lines.
	n := math.Hypot(dx, dy)
	p.Location = p.Location.Add(dx/n*p.cfg.Speed, dy/n*p.cfg.Speed)

	w, h := p.cfg.Frame.Dimensions(p.pixelSize)
	p.Location.Left = core.ClampF(p.Location.Left, p.field.Left, p.field.Right-w)
	p.Location.Top = core.ClampF(p.Location.Top, p.field.Top, p.field.Bottom-h)
}

// Fire launches a bullet from the nozzle when fire is held, the ship is
// alive and no bullet is in flight. It reports whether a bullet was fired.
func (p *Player) Fire(kb core.KeyboardState) bool {
	if !kb.Fire || !p.Alive || p.Bullet != nil || p.cfg.BulletFrame.Empty() {
		return false
	}
	w, h := p.cfg.BulletFrame.Dimensions(p.pixelSize)
	nozzle := p.Nozzle()
	loc := core.Location{Left: nozzle.Left - w/2, Top: nozzle.Top - h}
	p.Bullet = NewParticle(PlayerBullet, p.cfg.BulletFrame, loc, AngleUp, p.cfg.BulletSpeed, p.cfg.BulletAcceleration, p.field, p.pixelSize)
	return true
}

// UpdateBullet moves the bullet and drops it once it leaves the field.
func (p *Player) UpdateBullet(tick int) {
	if p.Bullet == nil {
		return
	}
	p.Bullet.UpdateState(tick)
	if !p.Bullet.InFlight() {
		p.Bullet = nil
	}
}

// Kill marks the ship as destroyed.
func (p *Player) Kill() {
	p.Alive = false
}

// Respawn brings the ship back at loc.
func (p *Player) Respawn(loc core.Location) {
	p.Alive = true
	p.Location = loc
}
