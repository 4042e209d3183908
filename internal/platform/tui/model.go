package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/engine"
	"github.com/vovakirdan/tui-r42/internal/storage"
	"github.com/vovakirdan/tui-r42/internal/store"
)

// speedUpFactor is applied to every enemy by the speed-up debug key.
const speedUpFactor = 1.25

// GameOptions configures a game session.
type GameOptions struct {
	Engine engine.Options
	Store  *storage.Store // optional; finished runs are not saved without it
	Player string
}

// GameModel is the Bubble Tea model that drives one engine.Game.
type GameModel struct {
	opts    GameOptions
	game    *engine.Game
	screen  *core.Screen
	latch   *core.KeyLatch
	keys    GameKeyMap
	log     *log.Logger
	started time.Time
	loop    int64

	showHelp bool
	saved    bool // run saved for the current game over
	quitting bool
	back     bool
	err      error
}

// NewGameModel builds the game and its model.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if opts.Engine.Logger == nil {
		opts.Engine.Logger = log.Default()
	}
	// Use time-based seed if not specified
	if opts.Engine.Runtime.Seed == 0 {
		opts.Engine.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Engine.Runtime.TickRate <= 0 {
		opts.Engine.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	g, err := engine.NewGame(opts.Engine)
	if err != nil {
		return GameModel{}, err
	}

	rt := opts.Engine.Runtime
	return GameModel{
		opts:    opts,
		game:    g,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		latch:   core.NewKeyLatch(opts.Engine.Config.Player.KeyHoldTicks),
		keys:    DefaultGameKeyMap(),
		log:     opts.Engine.Logger,
		started: time.Now(),
		loop:    newLoopID(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Engine.Runtime.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.back = true
		m.game.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()
		m.latch.Clear()

	case key.Matches(msg, m.keys.Restart):
		if m.game.State().GameOver {
			return m.restart()
		}

	case key.Matches(msg, m.keys.Hitboxes):
		d := m.game.Debug()
		d.DrawHitboxes = !d.DrawHitboxes

	case key.Matches(msg, m.keys.Immortal):
		d := m.game.Debug()
		d.PlayerImmortal = !d.PlayerImmortal

	case key.Matches(msg, m.keys.SpeedUp):
		m.game.SpeedUpEnemies(speedUpFactor)

	default:
		if a := m.keys.Action(msg); a != core.ActionNone {
			m.latch.Press(a)
		}
	}

	return m, nil
}

func (m GameModel) restart() (tea.Model, tea.Cmd) {
	if err := m.game.Reset(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.latch.Clear()
	m.saved = false
	m.started = time.Now()
	return m, nil
}

// handleResize rebuilds the game for the new field size. Like any new
// session this restarts from the first configured level.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rt := &m.opts.Engine.Runtime
	if msg.Width == rt.ScreenW && msg.Height == rt.ScreenH {
		return m, nil
	}
	rt.ScreenW = msg.Width
	rt.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.game.State().GameOver {
		return m, nil
	}

	g, err := engine.NewGame(m.opts.Engine)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.game.Stop()
	m.game = g
	m.latch.Clear()
	m.started = time.Now()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	if err := m.game.Tick(m.latch.Snapshot()); err != nil {
		m.log.Error("simulation stopped", "err", err)
		m.err = err
		return m, tea.Quit
	}
	m.latch.Tick()

	// Save the run on game over (once)
	if st := m.game.State(); st.GameOver && !m.saved {
		m.saveRun(st)
		m.saved = true
	}

	return m, tickCmd(m.opts.Engine.Runtime.TickRate, m.loop)
}

func (m GameModel) saveRun(st store.GameState) {
	if m.opts.Store == nil || st.Score == 0 {
		return
	}
	run := storage.Run{
		Player:       m.opts.Player,
		Score:        st.Score,
		Level:        st.Level,
		BulletsFired: st.BulletsFired,
		EnemiesHit:   st.EnemiesHit,
		Duration:     int(time.Since(m.started).Seconds()),
		Seed:         m.opts.Engine.Runtime.Seed,
	}
	id, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.log.Warn("could not save run", "err", err)
		return
	}
	m.log.Info("run saved", "id", id, "player", run.Player, "score", run.Score, "level", run.Level)
}

// saveScreenshot saves the current screen to a text file.
func (m GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".r42", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("r42_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// draw renders the game and, while paused or asked for, the key help.
func (m GameModel) draw() {
	m.game.Render(m.screen)
	if m.showHelp || m.game.State().Pause {
		drawHelp(m.screen, helpLines(m.keys))
	}
}

func drawHelp(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	x := (s.Width() - width) / 2
	y := (s.Height() - len(lines)) / 2
	for i, l := range lines {
		s.DrawTextColored(x, y+i, padRight(l, width), core.ColorWhite)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// State returns the game's store snapshot.
func (m GameModel) State() store.GameState {
	return m.game.State()
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// Err returns the error that ended the session, if any.
func (m GameModel) Err() error {
	return m.err
}

// GameResult is how a game session ended.
type GameResult struct {
	BackToMenu bool
	State      store.GameState
}

// RunGame starts a Bubble Tea program for one game session.
func RunGame(opts GameOptions) (GameResult, error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return GameResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := final.(GameModel)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{BackToMenu: m.BackToMenu(), State: m.State()}, m.Err()
}
