package engine

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-r42/internal/animation"
	"github.com/vovakirdan/tui-r42/internal/assets"
	"github.com/vovakirdan/tui-r42/internal/config"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/entity"
	"github.com/vovakirdan/tui-r42/internal/levels"
	"github.com/vovakirdan/tui-r42/internal/motion"
	"github.com/vovakirdan/tui-r42/internal/registry"
	"github.com/vovakirdan/tui-r42/internal/render"
	"github.com/vovakirdan/tui-r42/internal/store"
)

const (
	blockTag   = "test-block"
	rockTag    = "test-rock"
	blinkerTag = "test-blinker"
)

func init() {
	registry.Register(blockTag, "Test block", func() entity.Blueprint {
		return entity.Blueprint{
			Frames:    core.FrameSet{core.ParseFrame("rr", "rr")},
			Points:    100,
			Hitpoints: 1,
			Explosion: assets.Explosion(),
			Motion:    motion.Config{Kind: motion.Bounce, Speed: 0.7, Angle: 0},
		}
	})
	registry.Register(blinkerTag, "Test blinker", func() entity.Blueprint {
		return entity.Blueprint{
			Frames:    core.FrameSet{core.ParseFrame("rr", "rr"), core.ParseFrame("aa", "aa")},
			Points:    100,
			Hitpoints: 1,
			Explosion: assets.Explosion(),
			Motion:    motion.Config{Kind: motion.Bounce, Speed: 0.7, Angle: 0},
			Animation: animation.Config{Kind: animation.Circular, Interval: 12},
		}
	})
	registry.Register(rockTag, "Test rock", func() entity.Blueprint {
		return entity.Blueprint{
			Frames: core.FrameSet{
				core.ParseFrame("aaaa", "aaaa"),
				core.ParseFrame("aa0a", "aaaa"),
				core.ParseFrame("a00a", "aaaa"),
				core.ParseFrame("a00a", "a00a"),
			},
			Points:    300,
			Hitpoints: 4,
			Explosion: assets.Explosion(),
			Motion:    motion.Config{Kind: motion.Immobile},
			Animation: animation.Config{Kind: animation.Manual},
		}
	})
}

var testField = core.Rectangle{Right: 400, Bottom: 120}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestWorld() *World {
	return NewWorld(testField, 1, assets.Player(1, 2, 1), core.NewRNG(3))
}

func newTestRunner(t *testing.T, w *World, st *store.Store, lvl levels.Level) *LevelRunner {
	t.Helper()
	cfg := LevelConfig{
		Level:            lvl,
		PhaserPauseTicks: 5,
		MaxEnemyBullets:  0,
		RespawnTicks:     10,
		TimeLimitTicks:   lvl.TimeLimit,
		SpeedScale:       1,
	}
	r, err := NewLevelRunner(w, st, &Debugging{}, cfg, quietLogger(), 0)
	if err != nil {
		t.Fatalf("NewLevelRunner() error = %v", err)
	}
	return r
}

func blockLevel(count int) levels.Level {
	return levels.Level{Number: 1, Kind: levels.KindEnemy, Enemy: blockTag, Layout: levels.LayoutRow, Count: count}
}

func TestSchedulerOrderAndUnregister(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.RegisterUpdateState(func(int) { calls = append(calls, "a") })
	unregB := s.RegisterUpdateState(func(int) { calls = append(calls, "b") })
	s.RegisterUpdateState(func(int) { calls = append(calls, "c") })

	s.Frame(1)
	unregB()
	unregB() // idempotent
	s.Frame(2)

	want := []string{"a", "b", "c", "a", "c"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, expected %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, expected %v", calls, want)
		}
	}
}

func TestSchedulerRegistrationDuringFrame(t *testing.T) {
	s := NewScheduler()
	late := 0
	s.RegisterUpdateState(func(int) {
		s.RegisterUpdateState(func(int) { late++ })
	})

	s.Frame(1)
	if late != 0 {
		t.Errorf("callback registered during a frame ran in that frame")
	}
	s.Frame(2)
	if late != 1 {
		t.Errorf("late callback ran %d times, expected 1", late)
	}
}

func TestSchedulerSinglePendingDraw(t *testing.T) {
	s := NewScheduler()
	c := render.NewCanvas(4, 4)
	var order []string
	s.RegisterDraw(func(*render.Canvas) { order = append(order, "draw") })
	s.RegisterBackgroundDrawing(func(*render.Canvas) { order = append(order, "background") })

	if s.Flush(c) {
		t.Error("flush without a frame should not draw")
	}
	s.Frame(1)
	s.Frame(2)
	if !s.DrawPending() {
		t.Fatal("frame should mark a draw pending")
	}
	if !s.Flush(c) {
		t.Fatal("pending draw was not flushed")
	}
	if s.Flush(c) {
		t.Error("two frames must produce a single draw pass")
	}
	if len(order) != 2 || order[0] != "background" || order[1] != "draw" {
		t.Errorf("draw order = %v", order)
	}
}

func TestSchedulerFlushNotReentrant(t *testing.T) {
	s := NewScheduler()
	c := render.NewCanvas(4, 4)
	nested := true
	s.RegisterDraw(func(c *render.Canvas) { nested = s.Flush(c) })

	s.Frame(1)
	s.Flush(c)
	if nested {
		t.Error("flush inside a draw pass should be refused")
	}
}

func TestSchedulerStop(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.RegisterUpdateState(func(int) { n++; s.Stop() })
	s.RegisterUpdateState(func(int) { n += 10 })

	s.Frame(1)
	if n != 1 {
		t.Errorf("callbacks after Stop ran: n = %d", n)
	}
	if s.Running() {
		t.Error("Running() should be false after Stop")
	}
	s.Frame(2)
	if n != 1 {
		t.Error("stopped scheduler ran a frame")
	}
	s.Start()
	if !s.Running() {
		t.Error("Running() should be true after Start")
	}
}

func TestPhaserPauseBlocksUntilResolve(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 2))
	r := newTestRunner(t, w, st, blockLevel(3))

	probe := entity.NewParticle(entity.Shrapnel, core.ParseFrame("o"), core.Location{Left: 50, Top: 10}, entity.AngleDown, 1, 1, w.Field, 1)
	w.Particles.Add(probe)

	w.Keyboard = core.KeyboardState{Phaser: true}
	r.Update(1)

	s := st.State()
	if !s.Pause || s.Phasers != 1 {
		t.Fatalf("after trigger: pause=%v phasers=%d", s.Pause, s.Phasers)
	}
	if len(w.Beam) == 0 {
		t.Error("beam should be shown")
	}
	top := probe.Location().Top

	for tick := 2; tick <= 5; tick++ {
		r.Update(tick)
		if !st.State().Pause {
			t.Fatalf("unpaused early at tick %d", tick)
		}
		if len(w.Enemies) != 3 {
			t.Fatalf("target destroyed early at tick %d", tick)
		}
	}
	if probe.Location().Top != top {
		t.Error("particles moved while paused")
	}

	r.Update(6)
	s = st.State()
	if s.Pause {
		t.Error("still paused after the resolve tick")
	}
	if len(w.Enemies) != 2 || s.Score != 100 {
		t.Errorf("after resolve: enemies=%d score=%d", len(w.Enemies), s.Score)
	}
	if w.Beam != nil {
		t.Error("beam should be cleared")
	}
	if s.Phasers != 1 {
		t.Error("held phaser key fired a second shot")
	}
}

func TestPhaserPressDuringPauseFiresOnResume(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 3))
	r := newTestRunner(t, w, st, blockLevel(4))

	w.Keyboard = core.KeyboardState{Phaser: true}
	r.Update(1)
	w.Keyboard = core.KeyboardState{}
	r.Update(2) // released while the beam is shown
	w.Keyboard = core.KeyboardState{Phaser: true}
	for tick := 3; tick <= 5; tick++ {
		r.Update(tick)
	}
	if st.State().Phasers != 2 {
		t.Fatalf("phasers = %d before resolve, expected 2", st.State().Phasers)
	}

	r.Update(6) // resolves the first shot, then sees the fresh press
	s := st.State()
	if len(w.Enemies) != 3 {
		t.Errorf("enemies = %d, expected 3", len(w.Enemies))
	}
	if s.Phasers != 1 || !r.PhaserPending() || !s.Pause {
		t.Errorf("phasers=%d pending=%v pause=%v, expected a second shot", s.Phasers, r.PhaserPending(), s.Pause)
	}
}

func TestPhaserPressDuringUserPause(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 3))
	r := newTestRunner(t, w, st, blockLevel(4))

	w.Keyboard = core.KeyboardState{Phaser: true}
	r.Update(1)
	for tick := 2; tick <= 6; tick++ {
		r.Update(tick)
	}
	if r.PhaserPending() || st.State().Phasers != 2 {
		t.Fatalf("held key refired: phasers=%d", st.State().Phasers)
	}

	st.Dispatch(store.Pause(true))
	w.Keyboard = core.KeyboardState{}
	r.Update(7)
	w.Keyboard = core.KeyboardState{Phaser: true}
	r.Update(8)
	st.Dispatch(store.Pause(false))
	r.Update(9)
	if !r.PhaserPending() || st.State().Phasers != 1 {
		t.Errorf("press made during the pause was lost: phasers=%d", st.State().Phasers)
	}
}

func TestPhaserVanishedTargetIsNoop(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 2))
	r := newTestRunner(t, w, st, blockLevel(3))

	w.Keyboard = core.KeyboardState{Phaser: true}
	r.Update(1)
	if _, ok := w.RemoveEnemy(r.phaser.targetID); !ok {
		t.Fatal("phaser target not found")
	}

	r.Update(6)
	s := st.State()
	if s.Pause || s.Score != 0 {
		t.Errorf("pause=%v score=%d, expected unpaused with no score", s.Pause, s.Score)
	}
	if len(w.Enemies) != 2 {
		t.Errorf("enemies = %d, expected 2", len(w.Enemies))
	}
}

func TestPhaserTriggerConditions(t *testing.T) {
	tests := []struct {
		name    string
		phasers int
		alive   bool
		enemies int
	}{
		{"no charges", 0, true, 3},
		{"player dead", 2, false, 3},
		{"no enemies", 2, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			st := store.New(store.Initial(2, tc.phasers))
			r := newTestRunner(t, w, st, blockLevel(3))
			w.Enemies = w.Enemies[:tc.enemies]
			w.Player.Alive = tc.alive

			w.Keyboard = core.KeyboardState{Phaser: true}
			r.Update(1)
			if r.PhaserPending() || st.State().Phasers != tc.phasers {
				t.Error("phaser should not trigger")
			}
		})
	}
}

func TestDisposeDropsPendingPhaser(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 2))
	r := newTestRunner(t, w, st, blockLevel(3))

	w.Keyboard = core.KeyboardState{Phaser: true}
	r.Update(1)
	r.Dispose()
	r.Update(6)

	if st.State().Pause {
		t.Error("dispose should lift the phaser pause")
	}
	if st.State().Score != 0 || len(w.Enemies) != 3 {
		t.Error("disposed runner resolved the phaser")
	}
}

func TestDestructionRamp(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	r := newTestRunner(t, w, st, blockLevel(8))

	displacement := func(e *entity.Enemy, tick int) float64 {
		before := e.Location().Left
		e.UpdateState(tick)
		return e.Location().Left - before
	}

	r.destroyEnemy(w.Enemies[0], 1)
	if got := w.SpeedRamp; math.Abs(got-8.0/7.0) > 1e-9 {
		t.Fatalf("ramp = %v, expected 8/7", got)
	}
	if d := displacement(w.Enemies[0], 2); math.Abs(d-0.7*8/7) > 1e-9 {
		t.Errorf("displacement = %v, expected %v", d, 0.7*8/7)
	}

	r.destroyEnemy(w.Enemies[0], 3)
	if got, want := w.SpeedRamp, 8.0/7.0*8.0/6.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("ramp = %v, expected %v", got, want)
	}
	if d, want := displacement(w.Enemies[0], 4), 0.7*8/7*8/6; math.Abs(d-want) > 1e-9 {
		t.Errorf("displacement = %v, expected %v", d, want)
	}
}

func TestDestructionRampCompoundsIntoAnimation(t *testing.T) {
	// Ticks until a blinker first changes frame.
	cadence := func(e *entity.Enemy) int {
		first, _ := e.CurrentFrame()
		for tick := 1; tick <= 50; tick++ {
			e.UpdateState(tick)
			if f, _ := e.CurrentFrame(); f[0][0] != first[0][0] {
				return tick
			}
		}
		return -1
	}

	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	lvl := blockLevel(8)
	lvl.Enemy = blinkerTag
	r := newTestRunner(t, w, st, lvl)

	if got := cadence(w.Enemies[7]); got != 12 {
		t.Fatalf("base cadence = %d ticks, expected 12", got)
	}

	r.destroyEnemy(w.Enemies[0], 1) // 8 -> 7
	r.destroyEnemy(w.Enemies[0], 1) // 7 -> 6

	factor := 8.0 / 7.0 * 8.0 / 6.0
	if math.Abs(w.SpeedRamp-factor) > 1e-9 {
		t.Fatalf("ramp = %v, expected %v", w.SpeedRamp, factor)
	}
	// Interval 12/factor = 7.875 ticks.
	if got := cadence(w.Enemies[0]); got != 8 {
		t.Errorf("ramped cadence = %d ticks, expected 8", got)
	}
	e := w.Enemies[1]
	before := e.Location().Left
	e.UpdateState(100)
	if d := e.Location().Left - before; math.Abs(d-0.7*factor) > 1e-9 {
		t.Errorf("displacement = %v, expected %v", d, 0.7*factor)
	}
}

func TestDestructionRampOnTimeLimitLevel(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	lvl := levels.Level{Number: 4, Kind: levels.KindTimeLimit, Enemy: blockTag, Layout: levels.LayoutRow, Count: 4, MinEnemies: 4, TimeLimit: 600}
	r := newTestRunner(t, w, st, lvl)

	r.destroyEnemy(w.Enemies[0], 1)
	if math.Abs(w.SpeedRamp-4.0/3.0) > 1e-9 {
		t.Errorf("ramp = %v, expected 4/3", w.SpeedRamp)
	}
}

func TestTimeLimitWaveEntersStaggered(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	lvl := levels.Level{Number: 4, Kind: levels.KindTimeLimit, Enemy: assets.Asteroid, Layout: levels.LayoutAbove, Count: 6, MinEnemies: 6, TimeLimit: 600}
	r := newTestRunner(t, w, st, lvl)

	before := make(map[int]float64, len(w.Enemies))
	for _, e := range w.Enemies {
		before[e.ID] = e.Location().Top
	}
	r.Update(1)

	distinct := map[float64]bool{}
	for _, e := range w.Enemies {
		top := e.Location().Top
		if d := top - before[e.ID]; d < 0 || d > 0.5 {
			t.Errorf("enemy %d moved from %v to %v on its first tick", e.ID, before[e.ID], top)
		}
		distinct[math.Round(top*100)] = true
	}
	if len(distinct) < 2 {
		t.Errorf("all %d asteroids share one row after the first tick", len(w.Enemies))
	}
}

func TestDestroyLastEnemyNoRamp(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	r := newTestRunner(t, w, st, blockLevel(1))

	r.destroyEnemy(w.Enemies[0], 1)
	if len(w.Enemies) != 0 || w.SpeedRamp != 1 {
		t.Errorf("enemies=%d ramp=%v", len(w.Enemies), w.SpeedRamp)
	}
	if math.IsNaN(w.SpeedRamp) || math.IsInf(w.SpeedRamp, 0) {
		t.Error("ramp is not finite")
	}
}

func TestMultiHitpointEnemyScoresOnce(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	lvl := levels.Level{Number: 1, Kind: levels.KindEnemy, Enemy: rockTag, Layout: levels.LayoutRow, Count: 1}
	r := newTestRunner(t, w, st, lvl)

	scoreChanges := 0
	last := 0
	st.Subscribe(func(s store.GameState) {
		if s.Score != last {
			scoreChanges++
			last = s.Score
		}
	})

	rock := w.Enemies[0]
	for hit := 1; hit <= 4; hit++ {
		loc := rock.Location()
		w.Player.Bullet = entity.NewParticle(entity.PlayerBullet, assets.PlayerBullet, loc, entity.AngleUp, 0, 1, w.Field, 1)
		r.Update(hit)

		if w.Player.Bullet != nil {
			t.Fatalf("hit %d: bullet not consumed", hit)
		}
		if hit < 4 {
			if len(w.Enemies) != 1 {
				t.Fatalf("hit %d destroyed the rock", hit)
			}
			if rock.Hitpoints != 4-hit {
				t.Errorf("hit %d: hitpoints = %d", hit, rock.Hitpoints)
			}
			if len(w.Particles.Centers) != 0 {
				t.Fatalf("hit %d: explosion queued early", hit)
			}
		}
	}

	if len(w.Enemies) != 0 {
		t.Fatal("rock survived four hits")
	}
	if len(w.Particles.Centers) != 1 {
		t.Errorf("explosions = %d, expected 1", len(w.Particles.Centers))
	}
	s := st.State()
	if scoreChanges != 1 || s.Score != 300 {
		t.Errorf("score changes = %d, score = %d", scoreChanges, s.Score)
	}
	if s.EnemiesHit != 4 {
		t.Errorf("EnemiesHit = %d, expected 4", s.EnemiesHit)
	}
	if s.Level != 2 {
		t.Errorf("clearing the wave should advance the level, got %d", s.Level)
	}
}

func enemyBulletOnPlayer(w *World) *entity.Particle {
	return entity.NewParticle(entity.EnemyBullet, assets.EnemyBullet, w.Player.Center(), entity.AngleDown, 0, 1, w.Field, 1)
}

func TestPlayerHitAndRespawn(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	r := newTestRunner(t, w, st, blockLevel(3))
	p := NewPlayerRunner(w, st)

	w.Particles.Add(enemyBulletOnPlayer(w))
	r.Update(1)

	if w.Player.Alive {
		t.Fatal("player should be dead")
	}
	if st.State().Lives != 1 {
		t.Errorf("lives = %d, expected 1", st.State().Lives)
	}
	if len(w.Particles.Centers) == 0 {
		t.Error("player explosion not queued")
	}

	p.Update(5)
	if w.Player.Alive {
		t.Error("respawned too early")
	}
	p.Update(11)
	if !w.Player.Alive {
		t.Error("player should respawn after the delay")
	}
	if w.Player.Location != w.PlayerSpawn(w.Player.Frame()) {
		t.Error("respawn should use the spawn location")
	}
}

func TestPlayerImmortal(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	r := newTestRunner(t, w, st, blockLevel(3))
	r.debug.PlayerImmortal = true

	w.Particles.Add(enemyBulletOnPlayer(w))
	r.Update(1)
	if !w.Player.Alive || st.State().Lives != 2 {
		t.Error("immortal player was hit")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(0, 0))
	r := newTestRunner(t, w, st, blockLevel(3))
	p := NewPlayerRunner(w, st)

	w.Particles.Add(enemyBulletOnPlayer(w))
	r.Update(1)
	if !st.State().GameOver {
		t.Fatal("game should be over")
	}
	p.Update(100)
	if w.Player.Alive {
		t.Error("no respawn after game over")
	}
}

func TestSelfDestruct(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	r := newTestRunner(t, w, st, blockLevel(3))

	w.Keyboard = core.KeyboardState{SelfDestruct: true}
	r.Update(1)

	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %d, expected 0", len(w.Enemies))
	}
	if w.Player.Alive || st.State().Lives != 1 {
		t.Error("self destruct should cost the ship and a life")
	}
	if got := len(w.Particles.Centers); got != 4 {
		t.Errorf("explosions = %d, expected 4", got)
	}
	if st.State().Score != 0 {
		t.Error("self destruct should not score")
	}
	if st.State().Level != 1 {
		t.Error("level must not complete while the player is dead")
	}
}

func TestTimeLimitLevel(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	lvl := levels.Level{Number: 1, Kind: levels.KindTimeLimit, Enemy: blockTag, Layout: levels.LayoutRow, Count: 1, MinEnemies: 3, TimeLimit: 10}
	r := newTestRunner(t, w, st, lvl)
	r.debug.PlayerImmortal = true

	r.Update(1)
	r.Update(2)
	if len(w.Enemies) != 3 {
		t.Errorf("enemies = %d, expected replenishment to 3", len(w.Enemies))
	}
	if r.TimeLeft(2) != 8 {
		t.Errorf("TimeLeft = %d, expected 8", r.TimeLeft(2))
	}
	if st.State().Level != 1 {
		t.Fatal("completed before the time limit")
	}

	for tick := 3; tick <= 10; tick++ {
		r.Update(tick)
	}
	if st.State().Level != 2 {
		t.Errorf("level = %d, expected 2 after the time limit", st.State().Level)
	}
}

func TestUnknownEnemyFailsWithoutPartialWave(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	newTestRunner(t, w, st, blockLevel(3))

	_, err := NewLevelRunner(w, st, nil, LevelConfig{Level: levels.Level{Number: 2, Enemy: "dragon", Count: 2}}, quietLogger(), 0)
	if !errors.Is(err, registry.ErrUnknownEnemy) {
		t.Fatalf("error = %v, expected ErrUnknownEnemy", err)
	}
	if len(w.Enemies) != 3 {
		t.Error("failed level start changed the live wave")
	}
}

func TestPlayerFiresAndCountsBullets(t *testing.T) {
	w := newTestWorld()
	st := store.New(store.Initial(2, 0))
	p := NewPlayerRunner(w, st)

	w.Keyboard = core.KeyboardState{Fire: true}
	p.Update(1)
	p.Update(2)
	if w.Player.Bullet == nil {
		t.Fatal("no bullet fired")
	}
	if st.State().BulletsFired != 1 {
		t.Errorf("BulletsFired = %d, expected 1", st.State().BulletsFired)
	}

	st.Dispatch(store.Pause(true))
	loc := w.Player.Bullet.Location()
	p.Update(3)
	if w.Player.Bullet.Location() != loc {
		t.Error("bullet moved while paused")
	}
}

func testGame(t *testing.T, table *levels.Table) *Game {
	t.Helper()
	g, err := NewGame(Options{
		Config:  config.DefaultShooterConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60, Seed: 7},
		Levels:  table,
		Logger:  quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return g
}

func TestGameProgression(t *testing.T) {
	table := &levels.Table{Levels: []levels.Level{
		{Number: 1, Kind: levels.KindEnemy, Enemy: blockTag, Layout: levels.LayoutRow, Count: 1},
		{Number: 2, Kind: levels.KindEnemy, Enemy: blockTag, Layout: levels.LayoutRow, Count: 4},
	}}
	g := testGame(t, table)
	g.Debug().PlayerImmortal = true

	if err := g.Tick(core.KeyboardState{Phaser: true}); err != nil {
		t.Fatal(err)
	}
	if !g.State().Pause {
		t.Fatal("phaser should pause the game")
	}
	for range 10 {
		if err := g.Tick(core.KeyboardState{}); err != nil {
			t.Fatal(err)
		}
	}

	s := g.State()
	if s.Level != 2 {
		t.Fatalf("level = %d, expected 2", s.Level)
	}
	if g.World().TotalEnemies != 4 {
		t.Errorf("level 2 wave = %d enemies, expected 4", g.World().TotalEnemies)
	}
	if s.Score != 100 {
		t.Errorf("score = %d, expected 100", s.Score)
	}

	if err := g.Reset(); err != nil {
		t.Fatal(err)
	}
	s = g.State()
	if s.Level != 1 || s.Score != 0 || s.Phasers != config.DefaultShooterConfig().Player.Phasers {
		t.Errorf("reset state = %+v", s)
	}
	if g.World().TotalEnemies != 1 {
		t.Errorf("reset wave = %d enemies, expected 1", g.World().TotalEnemies)
	}
}

func TestGameRender(t *testing.T) {
	g := testGame(t, nil)
	if err := g.Tick(core.KeyboardState{}); err != nil {
		t.Fatal(err)
	}
	screen := core.NewScreen(120, 40)
	g.Render(screen)

	painted := 0
	for y := 0; y < 38; y++ {
		for x := 0; x < 120; x++ {
			if screen.GetCell(x, y).Rune != ' ' {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("nothing drawn on the playfield")
	}
	if info := g.HUD(); info.Banner != "LEVEL 1" {
		t.Errorf("banner = %q, expected LEVEL 1", info.Banner)
	}
}

func TestTogglePause(t *testing.T) {
	g := testGame(t, nil)
	g.TogglePause()
	if !g.State().Pause {
		t.Fatal("TogglePause should pause")
	}
	g.TogglePause()
	if g.State().Pause {
		t.Error("TogglePause should resume")
	}
}

func TestNewGameRejectsUnknownEnemies(t *testing.T) {
	table := &levels.Table{Levels: []levels.Level{{Number: 1, Enemy: "dragon", Count: 1}}}
	_, err := NewGame(Options{Config: config.DefaultShooterConfig(), Runtime: core.DefaultConfig(), Levels: table, Logger: quietLogger()})
	if err == nil {
		t.Error("expected an error for an unknown enemy")
	}
}
