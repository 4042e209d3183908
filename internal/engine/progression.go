package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-r42/internal/config"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/levels"
	"github.com/vovakirdan/tui-r42/internal/store"
)

// Progression watches the store and swaps the level runner whenever the
// level number changes.
type Progression struct {
	sched      *Scheduler
	world      *World
	store      *store.Store
	debug      *Debugging
	log        *log.Logger
	table      *levels.Table
	difficulty *config.DifficultyManager
	cfg        config.ShooterConfig
	runtime    core.RuntimeConfig

	current     *LevelRunner
	level       int
	unsubscribe func()
	err         error
}

// Start begins the level in the store and follows level changes.
func (p *Progression) Start() error {
	p.level = 0
	p.err = nil
	p.unsubscribe = p.store.Subscribe(p.onState)
	p.begin(p.store.State())
	return p.err
}

// Stop disposes the running level and stops following the store.
func (p *Progression) Stop() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	if p.current != nil {
		p.current.Dispose()
		p.current = nil
	}
}

// Current returns the running level, nil when none could be started.
func (p *Progression) Current() *LevelRunner {
	return p.current
}

// Err returns the error of the last failed level start.
func (p *Progression) Err() error {
	return p.err
}

func (p *Progression) onState(s store.GameState) {
	if s.GameOver || s.Level == p.level {
		return
	}
	p.begin(s)
}

func (p *Progression) begin(s store.GameState) {
	p.level = s.Level
	if p.current != nil {
		p.current.Dispose()
		p.current = nil
	}

	lvl := p.table.For(s.Level)
	scale := 1.0
	if p.difficulty != nil {
		scale = p.difficulty.SpeedScale(s.Level, s.Score)
	}
	cfg := LevelConfig{
		Level:            lvl,
		PhaserPauseTicks: p.runtime.MillisToTicks(p.cfg.Phaser.PauseMillis),
		MaxEnemyBullets:  p.cfg.Gameplay.MaxEnemyBullets,
		RespawnTicks:     p.runtime.MillisToTicks(p.cfg.Player.RespawnMillis),
		TimeLimitTicks:   p.runtime.MillisToTicks(lvl.TimeLimit * 1000),
		SpeedScale:       scale,
	}

	r, err := NewLevelRunner(p.world, p.store, p.debug, cfg, p.log, p.sched.Tick())
	if err != nil {
		p.err = err
		p.log.Error("level start failed", "level", s.Level, "err", err)
		return
	}
	r.Register(p.sched)
	p.current = r
}
