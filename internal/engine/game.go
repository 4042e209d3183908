package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-r42/internal/assets"
	"github.com/vovakirdan/tui-r42/internal/config"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/levels"
	"github.com/vovakirdan/tui-r42/internal/registry"
	"github.com/vovakirdan/tui-r42/internal/render"
	"github.com/vovakirdan/tui-r42/internal/store"
)

const bannerMillis = 2000

// Options configures a game.
type Options struct {
	Config  config.ShooterConfig
	Runtime core.RuntimeConfig
	Levels  *levels.Table // embedded table when nil
	Logger  *log.Logger
}

// Game wires the scheduler, store, world and runners into one playable
// session. It is not safe for concurrent use; one goroutine drives Tick
// and Render.
type Game struct {
	opts   Options
	sched  *Scheduler
	store  *store.Store
	world  *World
	canvas *render.Canvas
	debug  *Debugging
	player *PlayerRunner
	levels *Progression
	log    *log.Logger

	tick int
}

// NewGame builds a game and starts its first level.
func NewGame(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Levels == nil {
		t, err := levels.Default()
		if err != nil {
			return nil, err
		}
		opts.Levels = t
	}
	if err := opts.Levels.CheckEnemies(registry.Exists); err != nil {
		return nil, err
	}

	cfg := opts.Config
	w, h := opts.Runtime.Field(cfg.Field.HUDRows)
	field := core.Rectangle{Right: float64(w), Bottom: float64(h)}
	rng := core.NewRNG(opts.Runtime.Seed)
	ship := assets.Player(cfg.Player.Speed, cfg.Player.BulletSpeed, cfg.Player.BulletAcceleration)

	g := &Game{
		opts:   opts,
		sched:  NewScheduler(),
		store:  store.New(initialState(cfg)),
		world:  NewWorld(field, cfg.Field.PixelSize, ship, rng),
		canvas: render.NewCanvas(w, h),
		debug:  DebuggingFrom(cfg.Debug),
		log:    opts.Logger,
	}
	g.sched.RegisterBackgroundDrawing(g.drawStars)
	g.player = NewPlayerRunner(g.world, g.store)
	g.player.Register(g.sched)
	g.levels = &Progression{
		sched:      g.sched,
		world:      g.world,
		store:      g.store,
		debug:      g.debug,
		log:        g.log,
		table:      opts.Levels,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		cfg:        cfg,
		runtime:    opts.Runtime,
	}
	if err := g.levels.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

func initialState(cfg config.ShooterConfig) store.GameState {
	s := store.Initial(cfg.Player.Lives, cfg.Player.Phasers)
	if cfg.Gameplay.StartLevel > 0 {
		s = store.Reduce(s, store.Level(cfg.Gameplay.StartLevel))
	}
	if cfg.Gameplay.ExtraLifeThreshold > 0 {
		s.ExtraLifeThreshold = cfg.Gameplay.ExtraLifeThreshold
	}
	return s
}

// Tick advances the simulation by one tick with the given input.
func (g *Game) Tick(kb core.KeyboardState) error {
	if !g.sched.Running() {
		return nil
	}
	g.tick++
	g.world.Keyboard = kb
	g.sched.Frame(g.tick)
	if err := g.levels.Err(); err != nil {
		g.sched.Stop()
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// Draw runs the pending draw pass and returns the canvas.
func (g *Game) Draw() *render.Canvas {
	g.sched.Flush(g.canvas)
	return g.canvas
}

// Render draws the playfield and scoreboard onto the screen.
func (g *Game) Render(s *core.Screen) {
	c := g.Draw()
	s.Clear()
	c.ToScreen(s, 0, 0)
	render.HUD(s, (c.Height()+1)/2, g.HUD())
}

// HUD returns the scoreboard values.
func (g *Game) HUD() render.HUDInfo {
	info := render.HUDInfo{State: g.store.State()}
	r := g.levels.Current()
	if r == nil {
		return info
	}
	lvl := r.Level()
	info.LevelName = lvl.Name
	if left := r.TimeLeft(g.tick); left > 0 {
		info.TimeLeft = (left + g.opts.Runtime.TickRate - 1) / g.opts.Runtime.TickRate
	}
	if g.tick-r.startTick < g.opts.Runtime.MillisToTicks(bannerMillis) {
		info.Banner = fmt.Sprintf("LEVEL %d", lvl.Number)
	}
	return info
}

// State returns the current store snapshot.
func (g *Game) State() store.GameState {
	return g.store.State()
}

// Store returns the game's state store.
func (g *Game) Store() *store.Store {
	return g.store
}

// World returns the live collections.
func (g *Game) World() *World {
	return g.world
}

// Debug returns the developer toggles.
func (g *Game) Debug() *Debugging {
	return g.debug
}

// CurrentTick returns the number of ticks run.
func (g *Game) CurrentTick() int {
	return g.tick
}

// TogglePause pauses or resumes the game. It is ignored during a phaser
// shot and after game over.
func (g *Game) TogglePause() {
	st := g.store.State()
	if st.GameOver {
		return
	}
	if r := g.levels.Current(); r != nil && r.PhaserPending() {
		return
	}
	g.store.Dispatch(store.Pause(!st.Pause))
}

// SpeedUpEnemies multiplies the speed of every live enemy.
func (g *Game) SpeedUpEnemies(factor float64) {
	for _, e := range g.world.Enemies {
		e.IncreaseSpeed(factor)
	}
}

// Reset starts a new game from the configured initial state.
func (g *Game) Reset() error {
	g.levels.Stop()
	g.world.Clear()
	g.world.respawn = pending{}
	player := g.world.Player
	player.Bullet = nil
	player.Respawn(g.world.PlayerSpawn(player.Frame()))
	g.store.Dispatch(store.ResetTo(initialState(g.opts.Config)))
	g.sched.Start()
	return g.levels.Start()
}

// Stop halts the simulation.
func (g *Game) Stop() {
	g.sched.Stop()
	g.levels.Stop()
}

// Running reports whether Tick still advances the simulation.
func (g *Game) Running() bool {
	return g.sched.Running()
}

func (g *Game) drawStars(c *render.Canvas) {
	for _, s := range g.world.Stars {
		c.Set(int(s.Left), int(s.Top), core.ColorGray)
	}
}
