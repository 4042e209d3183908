// Package collision finds what the player ship and its bullet hit.
package collision

import (
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
	"github.com/vovakirdan/tui-r42/internal/particles"
)

// Kind identifies the sort of hittable object.
type Kind int

const (
	Enemy Kind = iota
	Particle
	ExplosionCenter
)

// Target is one hittable object with its hitbox. EnemyID is set for enemies.
type Target struct {
	Kind    Kind
	EnemyID int
	Box     core.Rectangle
}

// Result of a scan. At most one player hit and one bullet hit are reported.
type Result struct {
	PlayerHit    bool
	PlayerHitBy  Target
	BulletHit    bool
	BulletTarget Target
}

// Targets collects every hittable object: enemies with a valid frame,
// particles and explosion centers, in that order.
func Targets(enemies []*entity.Enemy, sys *particles.System, pixelSize float64) []Target {
	out := make([]Target, 0, len(enemies)+len(sys.Particles)+len(sys.Centers))
	for _, e := range enemies {
		if box, ok := e.Hitbox(); ok {
			out = append(out, Target{Kind: Enemy, EnemyID: e.ID, Box: box})
		}
	}
	for _, p := range sys.Particles {
		if box, ok := p.Hitbox(pixelSize); ok {
			out = append(out, Target{Kind: Particle, Box: box})
		}
	}
	for _, c := range sys.Centers {
		if box, ok := c.Hitbox(pixelSize); ok {
			out = append(out, Target{Kind: ExplosionCenter, Box: box})
		}
	}
	return out
}

// Scan tests targets in order against the player (when checkPlayer) and the
// bullet (when checkBullet, enemies only). Once the player is hit it is not
// tested again, and a bullet is consumed by its first hit.
func Scan(targets []Target, player core.Rectangle, checkPlayer bool, bullet core.Rectangle, checkBullet bool) Result {
	var r Result
	for _, t := range targets {
		if !checkPlayer && !checkBullet {
			break
		}
		if checkPlayer && t.Box.Overlaps(player) {
			r.PlayerHit = true
			r.PlayerHitBy = t
			checkPlayer = false
		}
		if checkBullet && t.Kind == Enemy && t.Box.Overlaps(bullet) {
			r.BulletHit = true
			r.BulletTarget = t
			checkBullet = false
		}
	}
	return r
}
