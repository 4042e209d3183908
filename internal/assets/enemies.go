package assets

import (
	"github.com/vovakirdan/tui-r42/internal/animation"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
	"github.com/vovakirdan/tui-r42/internal/motion"
	"github.com/vovakirdan/tui-r42/internal/registry"
)

// Enemy tags used by level files.
const (
	Bird     = "bird"
	Robot    = "robot"
	Orb      = "orb"
	Spinner  = "spinner"
	Balloon  = "balloon"
	Asteroid = "asteroid"
	Beacon   = "beacon"
)

func init() {
	registry.Register(Bird, "Bird", bird)
	registry.Register(Robot, "Robot", robot)
	registry.Register(Orb, "Orb", orb)
	registry.Register(Spinner, "Spinner", spinner)
	registry.Register(Balloon, "Balloon", balloon)
	registry.Register(Asteroid, "Asteroid", asteroid)
	registry.Register(Beacon, "Beacon", beacon)
}

var birdFrames = core.FrameSet{
	core.ParseFrame(
		"0000000",
		"00V0V00",
		"0V0V0V0",
		"0V000V0",
	),
	core.ParseFrame(
		"0000000",
		"0VV0VV0",
		"V00V00V",
		"0000000",
	),
	core.ParseFrame(
		"0000000",
		"VVV0VVV",
		"000V000",
		"0000000",
	),
	core.ParseFrame(
		"V00000V",
		"0VV0VV0",
		"000V000",
		"0000000",
	),
}

func bird() entity.Blueprint {
	return entity.Blueprint{
		Frames:      birdFrames,
		Recolor:     entity.RecolorRandom,
		Points:      200,
		Explosion:   Explosion(),
		Motion:      motion.Config{Kind: motion.Bounce, Speed: 0.15},
		StartAngles: []float64{2, 358, 178, 182},
		Band:        entity.Band{TopRatio: 0, BottomRatio: 0.7},
		Animation:   animation.Config{Kind: animation.BackAndForth, Interval: 6, RandomStart: true},
		HitboxTop:   -1,
	}
}

var robotBody = []string{
	"0VVV0",
	"VVVVV",
	"V0V0V",
	"VVVVV",
	"V000V",
	"VVVVV",
}

func robotFrame(legs ...string) core.Frame {
	return core.ParseFrame(append(append([]string(nil), robotBody...), legs...)...)
}

func robot() entity.Blueprint {
	return entity.Blueprint{
		Frames: core.FrameSet{
			robotFrame("0V0V0", "0V0V0", "VV0VV"),
			robotFrame("0V0V0", "VV0VV"),
			robotFrame("VV0VV"),
		},
		Offsets:   []core.Location{{Top: 0}, {Top: 1}, {Top: 2}},
		Color:     core.ColorCyan,
		Points:    100,
		Explosion: Explosion(),
		Motion:    motion.Config{Kind: motion.Wrap, Speed: 0.15, Angle: 5},
		Band:      entity.Band{TopRatio: 0, BottomRatio: 0.65},
		Animation: animation.Config{Kind: animation.BackAndForth, Interval: 12},
		HitboxTop: -1,
		Fire: entity.Fire{
			Angle:       entity.FireDown,
			Interval:    150,
			BulletSpeed: 0.7,
			Bullet:      EnemyBullet,
		},
	}
}

func orb() entity.Blueprint {
	return entity.Blueprint{
		Frames: core.FrameSet{
			core.ParseFrame("0VV0", "VWWV", "VWWV", "0VV0"),
			core.ParseFrame("0VV0", "VWVV", "VVWV", "0VV0"),
			core.ParseFrame("0VV0", "VVVV", "VVVV", "0VV0"),
			core.ParseFrame("0VV0", "VVWV", "VWVV", "0VV0"),
		},
		Color:     core.ColorBrightMagenta,
		Points:    150,
		Explosion: Explosion(),
		Motion: motion.Config{
			Kind:         motion.Orbit,
			Speed:        0.08,
			Angle:        90,
			Radius:       2,
			AngularSpeed: 6,
		},
		StartAngles: []float64{60, 80, 100, 120},
		Band:        entity.Band{TopRatio: 0, BottomRatio: 0.7},
		Animation:   animation.Config{Kind: animation.Circular, Interval: 12, RandomStart: true},
		Fire: entity.Fire{
			Angle:       entity.FireDiagonalAtPlayer,
			Interval:    180,
			BulletSpeed: 0.6,
			Bullet:      EnemyBullet,
		},
	}
}

func spinner() entity.Blueprint {
	return entity.Blueprint{
		Frames: core.FrameSet{
			core.ParseFrame("00V00", "00V00", "VVVVV", "00V00", "00V00"),
			core.ParseFrame("V000V", "0V0V0", "00V00", "0V0V0", "V000V"),
		},
		Color:       core.ColorBrightGreen,
		Points:      150,
		Explosion:   Explosion(),
		Motion:      motion.Config{Kind: motion.Bounce, Speed: 0.2},
		StartAngles: []float64{20, 160, 200, 340},
		Band:        entity.Band{AroundSpawn: 6},
		Animation:   animation.Config{Kind: animation.Circular, Interval: 5},
	}
}

func balloon() entity.Blueprint {
	return entity.Blueprint{
		Frames: core.FrameSet{
			core.ParseFrame("0VVV0", "VVWVV", "VVVVV", "0VVV0", "00a00", "00a00"),
			core.ParseFrame("0VVV0", "VWVVV", "VVVVV", "0VVV0", "00a00", "0a000"),
			core.ParseFrame("0VVV0", "VVWVV", "VVVVV", "0VVV0", "00a00", "000a0"),
		},
		Recolor:     entity.RecolorRandom,
		Points:      250,
		Explosion:   Explosion(),
		Motion:      motion.Config{Kind: motion.Wobble, Speed: 0.1, Radius: 3, AngularSpeed: 4},
		StartAngles: []float64{0, 180},
		Band:        entity.Band{TopRatio: 0.05, BottomRatio: 0.75},
		Animation:   animation.Config{Kind: animation.BackAndForth, Interval: 10, RandomStart: true},
	}
}

func asteroid() entity.Blueprint {
	return entity.Blueprint{
		Frames: core.FrameSet{
			core.ParseFrame("0VVVV0", "VVVVVV", "VVVVVV", "VVVVVV", "0VVVV0"),
			core.ParseFrame("0VVVV0", "VV0VVV", "VVVVVV", "VVVV0V", "0VVVV0"),
			core.ParseFrame("0VV0V0", "VV0VVV", "V0VVVV", "VVVV0V", "0V0VV0"),
			core.ParseFrame("0V00V0", "V00V0V", "V0V0VV", "0VV00V", "0V0V00"),
		},
		Color:     core.ColorGray,
		Points:    300,
		Hitpoints: 4,
		Explosion: Explosion(),
		Motion: motion.Config{
			Kind:   motion.Reappear,
			Speed:  0.2,
			Angle:  90,
			Angles: []float64{75, 85, 95, 105},
			Speeds: []float64{0.15, 0.2, 0.3},
		},
		StartAngles: []float64{80, 90, 100},
		Animation:   animation.Config{Kind: animation.Manual},
	}
}

// beacon stays where it spawns; only its light animates.
func beacon() entity.Blueprint {
	return entity.Blueprint{
		Frames: core.FrameSet{
			core.ParseFrame("0aVa0", "aVWVa", "0aVa0", "00a00"),
			core.ParseFrame("0aVa0", "aWVWa", "0aVa0", "00a00"),
			core.ParseFrame("0aaa0", "aaVaa", "0aaa0", "00a00"),
		},
		Color:     core.ColorBrightRed,
		Points:    120,
		Explosion: Explosion(),
		Motion:    motion.Config{Kind: motion.Immobile},
		Animation: animation.Config{Kind: animation.BackAndForth, Interval: 8, RandomStart: true},
		Fire: entity.Fire{
			Angle:       entity.FireDown,
			Interval:    200,
			BulletSpeed: 0.6,
			Bullet:      EnemyBullet,
		},
	}
}
