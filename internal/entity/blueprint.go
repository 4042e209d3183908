package entity

import (
	"github.com/vovakirdan/tui-r42/internal/animation"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/motion"
)

// RecolorMode controls how ColorVariable cells are filled at spawn.
type RecolorMode int

const (
	// RecolorFixed uses Blueprint.Color.
	RecolorFixed RecolorMode = iota
	// RecolorRandom picks one color from core.Palette per enemy.
	RecolorRandom
)

// Band is the vertical range an enemy may move in. Ratios are fractions of
// the field height; AroundSpawn, when set, overrides them with a band of
// that many cells above and below the spawn location.
type Band struct {
	TopRatio    float64
	BottomRatio float64
	AroundSpawn float64
}

// Fire describes enemy shooting.
type Fire struct {
	Angle       FireAngleFunc
	Interval    int
	BulletSpeed float64
	Bullet      core.Frame
}

// Blueprint is the configuration record of one enemy type. Enemies are
// spawned from it; no per-type code is needed.
type Blueprint struct {
	Type      string
	Frames    core.FrameSet
	Offsets   []core.Location // per-frame offsets in cells
	Recolor   RecolorMode
	Color     core.Color
	Points    int
	Hitpoints int
	Explosion Explosion

	Motion      motion.Config // Kind, Speed, Angle and kind parameters; size and field are filled at spawn
	StartAngles []float64     // initial heading picked at random when set
	Band        Band
	Animation   animation.Config

	// Vertical hitbox insets in cells.
	HitboxTop    float64
	HitboxBottom float64

	Fire Fire
}

// SpawnEnv carries the per-world values a spawn needs.
type SpawnEnv struct {
	Field      core.Rectangle
	PixelSize  float64
	SpeedScale float64 // difficulty multiplier applied to the base speed
	Tick       int
	RNG        *core.RNG
}

// Spawn creates an enemy of the blueprint's type at loc.
func Spawn(bp Blueprint, id int, loc core.Location, env SpawnEnv) *Enemy {
	px := env.PixelSize
	if px <= 0 {
		px = 1
	}
	rng := env.RNG
	if rng == nil {
		rng = core.NewRNG(int64(id) + 1)
	}

	color := bp.Color
	if bp.Recolor == RecolorRandom {
		color = rng.PickColor(core.Palette)
	}
	frames := bp.Frames.Recolor(core.ColorVariable, color)
	explosion := bp.Explosion
	explosion.Center = explosion.Center.Recolor(core.ColorVariable, color)

	w, h := frames.MaxDimensions(px)
	cfg := bp.Motion
	cfg.Width, cfg.Height = w, h
	cfg.Field = env.Field
	if env.SpeedScale > 0 {
		cfg.Speed *= env.SpeedScale
		scaled := make([]float64, len(cfg.Speeds))
		for i, s := range cfg.Speeds {
			scaled[i] = s * env.SpeedScale
		}
		cfg.Speeds = scaled
	}
	if len(bp.StartAngles) > 0 {
		cfg.Angle = rng.PickFloat(bp.StartAngles, cfg.Angle)
	}
	cfg.MaxTop, cfg.MaxBottom = bandFor(bp.Band, loc, h, px, env.Field)

	e := &Enemy{
		ID:           id,
		Type:         bp.Type,
		Points:       bp.Points,
		Hitpoints:    bp.Hitpoints,
		Explosion:    explosion,
		FireAngle:    bp.Fire.Angle,
		FireInterval: bp.Fire.Interval,
		BulletFrame:  bp.Fire.Bullet,
		BulletSpeed:  bp.Fire.BulletSpeed,
		pixelSize:    px,
		offsets:      bp.Offsets,
		topInset:     bp.HitboxTop * px,
		bottomInset:  bp.HitboxBottom * px,
		location:     motion.New(cfg, loc, rng),
		frames:       animation.New(bp.Animation, frames, rng),
	}
	if e.FireInterval > 0 {
		e.lastFired = env.Tick - rng.Intn(e.FireInterval)
	}
	return e
}

func bandFor(b Band, loc core.Location, height, px float64, field core.Rectangle) (top, bottom float64) {
	if b.AroundSpawn > 0 {
		return loc.Top - b.AroundSpawn*px, loc.Top + b.AroundSpawn*px + height
	}
	if b.BottomRatio > b.TopRatio {
		fh := field.Height()
		return field.Top + fh*b.TopRatio, field.Top + fh*b.BottomRatio
	}
	return field.Top, field.Bottom
}
