// Package animation selects which frame of an entity's frame set is shown.
package animation

import (
	"fmt"

	"github.com/vovakirdan/tui-r42/internal/core"
)

// Kind selects how the frame index advances.
type Kind int

const (
	// BackAndForth ping-pongs: 0,1,2,1,0,1...
	BackAndForth Kind = iota
	// Circular cycles modulo the frame count: 0,1,2,0,1...
	Circular
	// Manual only advances on NextFrame and stops at the last frame.
	// Used for damage states.
	Manual
)

// ParseKind parses "backandforth", "circular" or "manual".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "backandforth", "pingpong":
		return BackAndForth, nil
	case "circular", "":
		return Circular, nil
	case "manual":
		return Manual, nil
	}
	return Circular, fmt.Errorf("animation: unknown kind %q", s)
}

// Config parameterises a provider.
type Config struct {
	Kind Kind
	// Interval is the number of ticks each frame is shown; 0 freezes timed kinds.
	Interval float64
	// RandomStart picks the initial index from the RNG.
	RandomStart bool
}

// Provider tracks the current frame of one entity.
type Provider struct {
	cfg       Config
	frames    core.FrameSet
	index     int
	direction int
	interval  float64
	elapsed   float64
	lastTick  int
	started   bool
}

// New creates a provider over frames.
func New(cfg Config, frames core.FrameSet, rng *core.RNG) *Provider {
	p := &Provider{
		cfg:       cfg,
		frames:    frames,
		direction: 1,
		interval:  cfg.Interval,
	}
	if cfg.RandomStart && rng != nil && len(frames) > 0 {
		p.index = rng.Intn(len(frames))
	}
	return p
}

// SetFrames replaces the frame set, keeping the index when it is still valid.
func (p *Provider) SetFrames(frames core.FrameSet) {
	p.frames = frames
	if p.index >= len(frames) {
		p.index = 0
	}
}

// Frames returns the frame set.
func (p *Provider) Frames() core.FrameSet {
	return p.frames
}

// CurrentIndex returns the index of the frame being shown.
func (p *Provider) CurrentIndex() int {
	return p.index
}

// CurrentFrame returns the frame being shown. ok is false when the frame set
// is empty.
func (p *Provider) CurrentFrame() (core.Frame, bool) {
	if p.index < 0 || p.index >= len(p.frames) || p.frames[p.index].Empty() {
		return nil, false
	}
	return p.frames[p.index], true
}

// NextFrame advances one step according to the kind and returns the new
// current frame.
func (p *Provider) NextFrame() (core.Frame, bool) {
	n := len(p.frames)
	if n > 1 {
		switch p.cfg.Kind {
		case BackAndForth:
			if p.index+p.direction >= n || p.index+p.direction < 0 {
				p.direction = -p.direction
			}
			p.index += p.direction
		case Circular:
			p.index = (p.index + 1) % n
		case Manual:
			if p.index < n-1 {
				p.index++
			}
		}
	}
	return p.CurrentFrame()
}

// UpdateState advances timed kinds once per elapsed interval. Manual
// providers ignore ticks.
func (p *Provider) UpdateState(tick int) {
	if p.cfg.Kind == Manual || p.interval <= 0 {
		return
	}
	if p.started && tick == p.lastTick {
		return
	}
	p.started = true
	p.lastTick = tick

	p.elapsed++
	for p.elapsed >= p.interval {
		p.elapsed -= p.interval
		p.NextFrame()
	}
}

// IncreaseSpeed shortens the frame interval by factor.
func (p *Provider) IncreaseSpeed(factor float64) {
	if factor <= 0 || p.interval <= 0 {
		return
	}
	p.interval /= factor
	if p.interval < 1 {
		p.interval = 1
	}
}
