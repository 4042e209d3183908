package motion

import "github.com/vovakirdan/tui-r42/internal/core"

// Provider is the stateful wrapper around Step that entities hold.
type Provider struct {
	cfg      Config
	state    State
	rng      *core.RNG
	lastTick int
	stepped  bool
}

// New creates a provider for an entity placed at start.
func New(cfg Config, start core.Location, rng *core.RNG) *Provider {
	return &Provider{
		cfg:   cfg,
		state: Initial(cfg, start),
		rng:   rng,
	}
}

// UpdateState advances the provider once per tick; repeated calls with the
// same tick are ignored.
func (p *Provider) UpdateState(tick int) {
	if p.stepped && tick == p.lastTick {
		return
	}
	p.stepped = true
	p.lastTick = tick
	p.state = Step(p.cfg, p.state, p.rng)
}

// Location returns the current top-left location.
func (p *Provider) Location() core.Location {
	return p.state.Location
}

// IncreaseSpeed multiplies the per-tick displacement by factor.
func (p *Provider) IncreaseSpeed(factor float64) {
	if factor <= 0 {
		return
	}
	p.state.Speed *= factor
	p.state.SpeedFactor *= factor
}

// InFlight is false once an accelerating projectile has left the field.
func (p *Provider) InFlight() bool {
	return p.state.InFlight
}

// Angle returns the current heading in degrees.
func (p *Provider) Angle() float64 {
	return p.state.Angle
}

// Speed returns the current per-tick displacement.
func (p *Provider) Speed() float64 {
	return p.state.Speed
}

// State returns a copy of the provider state.
func (p *Provider) State() State {
	return p.state
}

// Kind returns the movement pattern.
func (p *Provider) Kind() Kind {
	return p.cfg.Kind
}
