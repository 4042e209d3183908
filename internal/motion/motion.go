// Package motion moves entities across the playfield. A single Provider
// type covers every movement pattern; the pattern is selected by Kind and
// parameterised by Config. Each tick is computed by the pure Step function.
package motion

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-r42/internal/core"
)

// Kind selects the movement pattern.
type Kind int

const (
	// Immobile never moves.
	Immobile Kind = iota
	// Bounce moves along the angle and reflects off the field edges and the
	// vertical band.
	Bounce
	// Wrap moves along the angle; leaving on the right re-enters on the left,
	// falling below the band re-enters at its top.
	Wrap
	// Orbit circles an anchor that descends and bounces like Bounce.
	Orbit
	// Wobble bounces with a sinusoidal offset perpendicular to the heading.
	Wobble
	// Reappear moves along the angle and relocates to a random column once
	// it has left the field. An entity placed off the field that is heading
	// into it keeps its place until it has entered.
	Reappear
	// Accelerate multiplies its speed every tick; used by projectiles.
	Accelerate
)

var kindNames = map[Kind]string{
	Immobile:   "immobile",
	Bounce:     "bounce",
	Wrap:       "wrap",
	Orbit:      "orbit",
	Wobble:     "wobble",
	Reappear:   "reappear",
	Accelerate: "accelerate",
}

// String returns the lowercase kind name used in level files.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return Immobile, fmt.Errorf("motion: unknown kind %q", s)
}

// Config parameterises a provider. Width and Height are the entity size in
// pixels. MaxTop and MaxBottom bound the vertical band; when MaxBottom is
// not above MaxTop the field's own top and bottom are used.
type Config struct {
	Kind         Kind
	Speed        float64
	Angle        float64
	Acceleration float64
	Width        float64
	Height       float64
	Field        core.Rectangle
	MaxTop       float64
	MaxBottom    float64
	Radius       float64   // orbit radius or wobble amplitude
	AngularSpeed float64   // degrees of phase per tick
	Angles       []float64 // headings picked on reappear
	Speeds       []float64 // speeds picked on reappear
	Columns      []float64 // lefts picked on reappear
}

// State is everything that changes between ticks.
type State struct {
	Location    core.Location
	Anchor      core.Location
	Angle       float64
	Speed       float64
	Phase       float64
	SpeedFactor float64
	InFlight    bool
	Entered     bool // Reappear: has overlapped the field since its last placement
}

// Initial returns the state of an entity placed at start.
func Initial(cfg Config, start core.Location) State {
	s := State{
		Anchor:      start,
		Angle:       core.NormalizeAngle(cfg.Angle),
		Speed:       cfg.Speed,
		SpeedFactor: 1,
		InFlight:    true,
		Entered:     onField(cfg, start),
	}
	s.Location = s.Anchor
	if cfg.Kind == Orbit || cfg.Kind == Wobble {
		s.Location = offset(cfg, s)
	}
	return s
}

// Step advances the state by one tick. It only reads cfg and s; rng is
// consulted by Reappear and may be nil.
func Step(cfg Config, s State, rng *core.RNG) State {
	switch cfg.Kind {
	case Immobile:
		return s
	case Bounce:
		s = bounce(cfg, s, 0)
	case Wrap:
		s = wrap(cfg, s)
	case Orbit, Wobble:
		s = bounce(cfg, s, cfg.Radius)
		s.Phase = math.Mod(s.Phase+cfg.AngularSpeed*s.SpeedFactor, 360)
		s.Location = offset(cfg, s)
		return s
	case Reappear:
		s = reappear(cfg, s, rng)
	case Accelerate:
		s.Speed *= cfg.Acceleration
		s.Anchor = s.Anchor.Step(s.Angle, s.Speed)
		s.InFlight = onField(cfg, s.Anchor)
	}
	s.Location = s.Anchor
	return s
}

func band(cfg Config) (top, bottom float64) {
	if cfg.MaxBottom > cfg.MaxTop {
		return cfg.MaxTop, cfg.MaxBottom
	}
	return cfg.Field.Top, cfg.Field.Bottom
}

// bounce moves the anchor and reflects the heading at the edges, keeping
// margin pixels free on every side.
func bounce(cfg Config, s State, margin float64) State {
	next := s.Anchor.Step(s.Angle, s.Speed)

	left := cfg.Field.Left + margin
	right := max(cfg.Field.Right-cfg.Width-margin, left)
	switch {
	case next.Left < left:
		next.Left = left
		s.Angle = 180 - s.Angle
	case next.Left > right:
		next.Left = right
		s.Angle = 180 - s.Angle
	}

	bandTop, bandBottom := band(cfg)
	top := bandTop + margin
	bottom := max(bandBottom-cfg.Height-margin, top)
	switch {
	case next.Top < top:
		next.Top = top
		s.Angle = 360 - s.Angle
	case next.Top > bottom:
		next.Top = bottom
		s.Angle = 360 - s.Angle
	}

	s.Angle = core.NormalizeAngle(s.Angle)
	s.Anchor = next
	return s
}

// wrap teleports instead of moving on the tick after an edge was crossed.
func wrap(cfg Config, s State) State {
	bandTop, bandBottom := band(cfg)
	teleported := false
	if s.Anchor.Left+cfg.Width > cfg.Field.Right {
		s.Anchor.Left = cfg.Field.Left - cfg.Width
		teleported = true
	}
	if s.Anchor.Top > bandBottom {
		s.Anchor.Top = bandTop
		teleported = true
	}
	if !teleported {
		s.Anchor = s.Anchor.Step(s.Angle, s.Speed)
	}
	return s
}

func reappear(cfg Config, s State, rng *core.RNG) State {
	s.Anchor = s.Anchor.Step(s.Angle, s.Speed)
	if onField(cfg, s.Anchor) {
		s.Entered = true
		return s
	}
	if !s.Entered && approaching(cfg, s) {
		return s
	}

	if rng == nil {
		rng = core.NewRNG(1)
	}
	s.Angle = core.NormalizeAngle(rng.PickFloat(cfg.Angles, s.Angle))
	s.Speed = rng.PickFloat(cfg.Speeds, cfg.Speed) * s.SpeedFactor

	if len(cfg.Columns) > 0 {
		s.Anchor.Left = rng.PickFloat(cfg.Columns, cfg.Field.Left)
	} else {
		s.Anchor.Left = rng.Range(cfg.Field.Left, max(cfg.Field.Right-cfg.Width, cfg.Field.Left+1))
	}
	// Re-enter on the side the new heading comes from.
	if math.Sin(s.Angle*math.Pi/180) < 0 {
		s.Anchor.Top = cfg.Field.Bottom
	} else {
		s.Anchor.Top = cfg.Field.Top - cfg.Height
	}
	s.Entered = false
	return s
}

// approaching reports whether an entity above or below the field is
// heading towards it.
func approaching(cfg Config, s State) bool {
	down := math.Sin(s.Angle*math.Pi/180) > 0
	above := s.Anchor.Top+cfg.Height <= cfg.Field.Top
	below := s.Anchor.Top >= cfg.Field.Bottom
	return (above && down) || (below && !down)
}

func onField(cfg Config, l core.Location) bool {
	box := core.Rectangle{Left: l.Left, Top: l.Top, Right: l.Left + cfg.Width, Bottom: l.Top + cfg.Height}
	if cfg.Width == 0 || cfg.Height == 0 {
		return cfg.Field.Contains(l)
	}
	return box.Overlaps(cfg.Field)
}

func offset(cfg Config, s State) core.Location {
	rad := s.Phase * math.Pi / 180
	if cfg.Kind == Orbit {
		return s.Anchor.Add(cfg.Radius*math.Cos(rad), cfg.Radius*math.Sin(rad))
	}
	// Wobble: displace perpendicular to the heading.
	return s.Anchor.Step(s.Angle+90, cfg.Radius*math.Sin(rad))
}
