package engine

import (
	"github.com/vovakirdan/tui-r42/internal/render"
	"github.com/vovakirdan/tui-r42/internal/store"
)

// PlayerRunner moves the ship, fires its bullet and brings it back after a
// death.
type PlayerRunner struct {
	world *World
	store *store.Store

	unregister []func()
}

// NewPlayerRunner creates the runner for the world's player.
func NewPlayerRunner(w *World, st *store.Store) *PlayerRunner {
	return &PlayerRunner{world: w, store: st}
}

// Register hooks the runner into the scheduler.
func (p *PlayerRunner) Register(s *Scheduler) {
	p.unregister = append(p.unregister,
		s.RegisterUpdateState(p.Update),
		s.RegisterDraw(p.Draw),
	)
}

// Dispose unregisters the runner.
func (p *PlayerRunner) Dispose() {
	for _, fn := range p.unregister {
		fn()
	}
	p.unregister = nil
}

// Update runs one tick. Nothing moves while the game is paused.
func (p *PlayerRunner) Update(tick int) {
	st := p.store.State()
	if st.Pause {
		return
	}
	w := p.world
	player := w.Player

	if w.respawn.due(tick) && !st.GameOver {
		player.Respawn(w.PlayerSpawn(player.Frame()))
	}

	kb := w.Keyboard
	player.Move(kb)
	player.UpdateBullet(tick)
	if player.Fire(kb) {
		p.store.Dispatch(store.Simple(store.BulletFired))
	}
}

// Draw paints the ship and its bullet.
func (p *PlayerRunner) Draw(c *render.Canvas) {
	w := p.world
	player := w.Player
	if player.Alive {
		c.DrawFrame(player.Frame(), player.Location, w.PixelSize)
	}
	if player.Bullet != nil {
		c.DrawFrame(player.Bullet.Frame, player.Bullet.Location(), w.PixelSize)
	}
}

// killPlayer explodes the ship, takes a life and schedules the respawn
// unless the game is over.
func killPlayer(w *World, st *store.Store, tick, respawnTicks int) {
	player := w.Player
	if !player.Alive {
		return
	}
	w.Particles.Queue(player.Center(), player.Explosion(), tick)
	player.Kill()
	if next := st.Dispatch(store.Simple(store.RemoveLife)); next.GameOver {
		return
	}
	w.respawn.schedule(tick + respawnTicks)
}
