package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-r42/internal/assets"
	"github.com/vovakirdan/tui-r42/internal/collision"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
	"github.com/vovakirdan/tui-r42/internal/levels"
	"github.com/vovakirdan/tui-r42/internal/registry"
	"github.com/vovakirdan/tui-r42/internal/render"
	"github.com/vovakirdan/tui-r42/internal/store"
)

// LevelConfig is what a level runner needs besides the world and store.
type LevelConfig struct {
	Level            levels.Level
	PhaserPauseTicks int
	MaxEnemyBullets  int
	RespawnTicks     int
	TimeLimitTicks   int     // KindTimeLimit only
	SpeedScale       float64 // difficulty multiplier for enemy base speed
}

type phaserShot struct {
	pending
	targetID int
}

// LevelRunner runs the per-tick pipeline of one level.
type LevelRunner struct {
	world *World
	store *store.Store
	debug *Debugging
	log   *log.Logger
	cfg   LevelConfig

	blueprint entity.Blueprint
	startTick int
	phaser    phaserShot
	completed bool
	disposed  bool

	// phaserArmed is set once the phaser key is seen released, paused
	// ticks included; a press fires only while armed.
	phaserArmed bool

	unregister []func()
}

// NewLevelRunner spawns the level's enemies into the world. An unknown enemy
// type fails before anything is installed.
func NewLevelRunner(w *World, st *store.Store, debug *Debugging, cfg LevelConfig, logger *log.Logger, tick int) (*LevelRunner, error) {
	bp, err := registry.Blueprint(cfg.Level.Enemy)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", cfg.Level.Number, err)
	}
	limit, err := entity.ParseMoveLimit(cfg.Level.MoveLimit)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", cfg.Level.Number, err)
	}
	if debug == nil {
		debug = &Debugging{}
	}
	if logger == nil {
		logger = log.Default()
	}

	r := &LevelRunner{
		world:     w,
		store:     st,
		debug:     debug,
		log:       logger,
		cfg:       cfg,
		blueprint: bp,
		startTick: tick,

		phaserArmed: true,
	}

	width, height := bp.Frames.MaxDimensions(w.PixelSize)
	locs := cfg.Level.Spawns(w.Field, width, height, w.RNG)
	enemies := make([]*entity.Enemy, 0, len(locs))
	for _, loc := range locs {
		enemies = append(enemies, r.spawn(loc, tick))
	}

	w.Clear()
	w.SetEnemies(enemies)
	w.Player.MoveLimit = limit
	w.Player.Bullet = nil

	r.log.Info("level started", "level", cfg.Level.Number, "enemy", cfg.Level.Enemy, "count", len(enemies), "kind", cfg.Level.Kind)
	return r, nil
}

func (r *LevelRunner) spawn(loc core.Location, tick int) *entity.Enemy {
	return entity.Spawn(r.blueprint, r.world.NextEnemyID(), loc, entity.SpawnEnv{
		Field:      r.world.Field,
		PixelSize:  r.world.PixelSize,
		SpeedScale: r.cfg.SpeedScale,
		Tick:       tick,
		RNG:        r.world.RNG,
	})
}

// Register hooks the runner into the scheduler.
func (r *LevelRunner) Register(s *Scheduler) {
	r.unregister = append(r.unregister,
		s.RegisterUpdateState(r.Update),
		s.RegisterDraw(r.Draw),
	)
}

// Dispose unregisters the runner. A pending phaser shot is dropped without
// resolving; the pause it set is lifted.
func (r *LevelRunner) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	for _, fn := range r.unregister {
		fn()
	}
	r.unregister = nil
	if r.phaser.active {
		r.phaser.active = false
		r.world.Beam = nil
		r.store.Dispatch(store.Pause(false))
	}
}

// Level returns the level being run.
func (r *LevelRunner) Level() levels.Level {
	return r.cfg.Level
}

// PhaserPending reports whether a phaser shot waits for resolution.
func (r *LevelRunner) PhaserPending() bool {
	return r.phaser.active
}

// Update runs one tick of the pipeline. While the game is paused only the
// pending phaser resolution runs.
func (r *LevelRunner) Update(tick int) {
	if r.disposed {
		return
	}
	if !r.world.Keyboard.Phaser {
		r.phaserArmed = true
	}
	r.resolvePhaser(tick)
	if r.store.State().Pause {
		return
	}

	kb := r.world.Keyboard
	r.selfDestruct(tick, kb)
	if r.firePhaser(tick, kb) {
		return
	}
	r.world.Particles.Update(tick)
	r.updateEnemies(tick)
	r.world.Particles.Sweep(tick)
	r.detectHits(tick)
	r.checkCompleted(tick)
}

func (r *LevelRunner) selfDestruct(tick int, kb core.KeyboardState) {
	w := r.world
	if !kb.SelfDestruct || !w.Player.Alive {
		return
	}
	for _, e := range w.Enemies {
		w.Particles.Queue(e.Center(), e.Explosion, tick)
	}
	w.Enemies = nil
	r.log.Debug("self destruct", "tick", tick)
	killPlayer(w, r.store, tick, r.cfg.RespawnTicks)
}

// firePhaser starts a phaser shot on a fresh key press. It reports whether
// the game was paused for the shot.
func (r *LevelRunner) firePhaser(tick int, kb core.KeyboardState) bool {
	pressed := kb.Phaser && r.phaserArmed
	if kb.Phaser {
		r.phaserArmed = false
	}

	w := r.world
	if !pressed || !w.Player.Alive || r.phaser.active || len(w.Enemies) == 0 {
		return false
	}
	if r.store.State().Phasers <= 0 {
		return false
	}

	target := w.Enemies[w.RNG.Intn(len(w.Enemies))]
	r.store.Dispatch(store.Simple(store.RemovePhaser))
	w.Beam = render.Beam(w.Player.Nozzle(), target.Center(), w.PixelSize)
	r.store.Dispatch(store.Pause(true))
	r.phaser.schedule(tick + r.cfg.PhaserPauseTicks)
	r.phaser.targetID = target.ID
	r.log.Debug("phaser fired", "target", target.ID, "resolve_at", r.phaser.at)
	return true
}

func (r *LevelRunner) resolvePhaser(tick int) {
	if !r.phaser.due(tick) {
		return
	}
	r.store.Dispatch(store.Pause(false))
	// The target may already be gone.
	if e, ok := r.world.EnemyByID(r.phaser.targetID); ok {
		r.destroyEnemy(e, tick)
	}
	r.world.Beam = nil
}

func (r *LevelRunner) updateEnemies(tick int) {
	w := r.world
	playerBox, _ := w.Player.Hitbox()
	bullets := w.Particles.Count(entity.EnemyBullet)

	for _, e := range w.Enemies {
		e.UpdateState(tick)
		if bullets >= r.cfg.MaxEnemyBullets {
			continue
		}
		if b, ok := e.TryFire(tick, playerBox, w.Player.Alive, len(w.Enemies), w.Field, w.RNG); ok {
			w.Particles.Add(b)
			bullets++
		}
	}

	if r.cfg.Level.Kind == levels.KindTimeLimit && !r.timeUp(tick) && len(w.Enemies) < r.cfg.Level.MinEnemies {
		width, height := r.blueprint.Frames.MaxDimensions(w.PixelSize)
		above := levels.Level{Layout: levels.LayoutAbove, Count: 1}
		for _, loc := range above.Spawns(w.Field, width, height, w.RNG) {
			w.AddEnemy(r.spawn(loc, tick))
		}
	}
}

func (r *LevelRunner) detectHits(tick int) {
	w := r.world
	player := w.Player

	playerBox, checkPlayer := player.Hitbox()
	checkPlayer = checkPlayer && !r.debug.PlayerImmortal

	var bulletBox core.Rectangle
	checkBullet := false
	if player.Bullet != nil {
		bulletBox, checkBullet = player.Bullet.Hitbox(w.PixelSize)
	}
	if !checkPlayer && !checkBullet {
		return
	}

	targets := collision.Targets(w.Enemies, w.Particles, w.PixelSize)
	res := collision.Scan(targets, playerBox, checkPlayer, bulletBox, checkBullet)

	if res.PlayerHit {
		killPlayer(w, r.store, tick, r.cfg.RespawnTicks)
	}
	if res.BulletHit {
		player.Bullet = nil
		r.store.Dispatch(store.Simple(store.EnemyHit))
		if e, ok := w.EnemyByID(res.BulletTarget.EnemyID); ok && e.Hit() {
			r.destroyEnemy(e, tick)
		}
	}
}

// destroyEnemy removes the enemy, scores it and multiplies the speed of
// every survivor by total/remaining. The factors compound over the wave.
func (r *LevelRunner) destroyEnemy(e *entity.Enemy, tick int) {
	w := r.world
	center := e.Center()
	if _, ok := w.RemoveEnemy(e.ID); !ok {
		return
	}
	w.Particles.Queue(center, e.Explosion, tick)
	r.store.Dispatch(store.Score(e.Points))

	remaining := len(w.Enemies)
	if remaining == 0 {
		return
	}
	factor := float64(w.TotalEnemies) / float64(remaining)
	for _, s := range w.Enemies {
		s.IncreaseSpeed(factor)
	}
	w.SpeedRamp *= factor
}

func (r *LevelRunner) timeUp(tick int) bool {
	return tick-r.startTick >= r.cfg.TimeLimitTicks
}

// TimeLeft returns the remaining ticks of a time-limit level.
func (r *LevelRunner) TimeLeft(tick int) int {
	if r.cfg.Level.Kind != levels.KindTimeLimit {
		return 0
	}
	return max(r.cfg.TimeLimitTicks-(tick-r.startTick), 0)
}

func (r *LevelRunner) checkCompleted(tick int) {
	if r.completed || !r.world.Player.Alive {
		return
	}
	switch r.cfg.Level.Kind {
	case levels.KindTimeLimit:
		if !r.timeUp(tick) {
			return
		}
	default:
		if len(r.world.Enemies) > 0 {
			return
		}
	}
	r.completed = true
	r.log.Info("level completed", "level", r.cfg.Level.Number, "tick", tick)
	r.store.Dispatch(store.Simple(store.NextLevel))
}

// Draw paints enemies, explosions, particles and the phaser beam.
func (r *LevelRunner) Draw(c *render.Canvas) {
	w := r.world
	px := w.PixelSize
	for _, e := range w.Enemies {
		if f, ok := e.CurrentFrame(); ok {
			c.DrawFrame(f, e.Location(), px)
		}
	}
	for _, ec := range w.Particles.Centers {
		c.DrawFrame(ec.Frame, ec.Location, px)
	}
	for _, p := range w.Particles.Particles {
		c.DrawFrame(p.Frame, p.Location(), px)
	}
	c.DrawPoints(w.Beam, px, assets.PhaserColor)

	if r.debug.RenderPhaser && w.Player.Alive && len(w.Enemies) > 0 {
		c.DrawPoints(render.Beam(w.Player.Nozzle(), w.Enemies[0].Center(), px), px, assets.PhaserColor)
	}
	if r.debug.DrawHitboxes {
		for _, t := range collision.Targets(w.Enemies, w.Particles, px) {
			c.StrokeRect(t.Box, core.ColorBrightGreen)
		}
	}
}
