// Package engine drives the simulation: a tick scheduler with a deferred
// draw pass, the per-level update pipeline, the player runner and the level
// progression that swaps levels as the store advances.
package engine

import "github.com/vovakirdan/tui-r42/internal/render"

// UpdateFunc runs once per tick.
type UpdateFunc func(tick int)

// DrawFunc paints onto the canvas during a draw pass.
type DrawFunc func(c *render.Canvas)

type registration[F any] struct {
	fn      F
	removed bool
}

type callbacks[F any] struct {
	entries []*registration[F]
}

func (r *callbacks[F]) add(fn F) func() {
	e := &registration[F]{fn: fn}
	r.entries = append(r.entries, e)
	return func() {
		if e.removed {
			return
		}
		e.removed = true
		for i, v := range r.entries {
			if v == e {
				r.entries = append(r.entries[:i], r.entries[i+1:]...)
				break
			}
		}
	}
}

// snapshot returns the entries registered right now. Callbacks registered
// during iteration run from the next pass on; removed ones are skipped.
func (r *callbacks[F]) snapshot() []*registration[F] {
	return append([]*registration[F](nil), r.entries...)
}

// Scheduler runs update callbacks once per frame, in registration order, and
// keeps at most one draw pass pending. All methods must be called from the
// goroutine that owns the game loop.
type Scheduler struct {
	updates     callbacks[UpdateFunc]
	draws       callbacks[DrawFunc]
	backgrounds callbacks[DrawFunc]

	tick        int
	running     bool
	drawPending bool
	drawing     bool
}

// NewScheduler creates a running scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{running: true}
}

// RegisterUpdateState adds an update callback and returns its unregister
// func.
func (s *Scheduler) RegisterUpdateState(fn UpdateFunc) func() {
	return s.updates.add(fn)
}

// RegisterDraw adds a foreground draw callback.
func (s *Scheduler) RegisterDraw(fn DrawFunc) func() {
	return s.draws.add(fn)
}

// RegisterBackgroundDrawing adds a callback painted before every foreground
// callback.
func (s *Scheduler) RegisterBackgroundDrawing(fn DrawFunc) func() {
	return s.backgrounds.add(fn)
}

// Frame runs every update callback for tick and marks a draw pending. A
// stopped scheduler ignores it.
func (s *Scheduler) Frame(tick int) {
	if !s.running {
		return
	}
	s.tick = tick
	for _, e := range s.updates.snapshot() {
		if e.removed {
			continue
		}
		e.fn(tick)
		if !s.running {
			break
		}
	}
	s.drawPending = true
}

// Tick returns the tick of the last frame.
func (s *Scheduler) Tick() int {
	return s.tick
}

// DrawPending reports whether a frame has run since the last draw pass.
func (s *Scheduler) DrawPending() bool {
	return s.drawPending
}

// Flush performs the pending draw pass: background callbacks, then draw
// callbacks. It reports false when nothing was pending or a pass is
// already in progress.
func (s *Scheduler) Flush(c *render.Canvas) bool {
	if !s.drawPending || s.drawing {
		return false
	}
	s.drawing = true
	defer func() { s.drawing = false }()

	c.Clear()
	for _, e := range s.backgrounds.snapshot() {
		if !e.removed {
			e.fn(c)
		}
	}
	for _, e := range s.draws.snapshot() {
		if !e.removed {
			e.fn(c)
		}
	}
	s.drawPending = false
	return true
}

// Start resumes a stopped scheduler.
func (s *Scheduler) Start() {
	s.running = true
}

// Stop makes the scheduler ignore further frames. A callback already
// running finishes normally.
func (s *Scheduler) Stop() {
	s.running = false
}

// Running reports whether frames are processed. The outer loop stops
// re-arming its tick once it is false.
func (s *Scheduler) Running() bool {
	return s.running
}
