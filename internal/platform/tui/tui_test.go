package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-r42/internal/config"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/engine"
	"github.com/vovakirdan/tui-r42/internal/storage"
	"github.com/vovakirdan/tui-r42/internal/store"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testOptions() engine.Options {
	return engine.Options{
		Config:  config.DefaultShooterConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Logger:  log.New(io.Discard),
	}
}

func newTestGame(t *testing.T, st *storage.Store) GameModel {
	t.Helper()
	m, err := NewGameModel(GameOptions{Engine: testOptions(), Store: st, Player: "ann"})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	if next == nil {
		t.Fatal("Update returned nil model")
	}
	return next, cmd
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runes("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{runes("f"), core.ActionPhaser},
		{runes("x"), core.ActionSelfDestruct},
		{runes("p"), core.ActionNone},
		{runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.SetCell(2, 0, core.Cell{Rune: '▀', Fg: core.ColorBlue, Bg: core.ColorGreen})
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), out)
	}
	for _, want := range []string{"ab", "▀"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("First line %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "cd") {
		t.Errorf("Second line %q missing %q", lines[1], "cd")
	}
}

func TestCellStylesCoverEveryPair(t *testing.T) {
	n := len(ansiColors) + 1
	if len(cellStyles) != n*n {
		t.Errorf("Expected %d styles, got %d", n*n, len(cellStyles))
	}
}

func TestGameModelTicks(t *testing.T) {
	m := newTestGame(t, nil)

	next, cmd := update(t, m, TickMsg{Loop: m.loop})
	m = next.(GameModel)
	if cmd == nil {
		t.Error("Expected the next tick to be scheduled")
	}
	if m.game.CurrentTick() != 1 {
		t.Errorf("Expected tick 1, got %d", m.game.CurrentTick())
	}

	// Ticks of another loop are ignored
	next, cmd = update(t, m, TickMsg{Loop: m.loop + 1000})
	m = next.(GameModel)
	if cmd != nil || m.game.CurrentTick() != 1 {
		t.Errorf("Stale tick advanced the game to %d", m.game.CurrentTick())
	}

	if view := m.View(); !strings.Contains(view, "SCORE") {
		t.Errorf("View is missing the scoreboard: %q", view)
	}
}

func TestGameModelKeys(t *testing.T) {
	m := newTestGame(t, nil)

	next, _ := update(t, m, runes("a"))
	m = next.(GameModel)
	if !m.latch.Held(core.ActionLeft) {
		t.Error("Expected left to be held after pressing a")
	}

	next, _ = update(t, m, runes("p"))
	m = next.(GameModel)
	if !m.State().Pause {
		t.Error("Expected pause after p")
	}
	if m.latch.Held(core.ActionLeft) {
		t.Error("Pausing should release held keys")
	}
	if view := m.View(); !strings.Contains(view, "phaser") {
		t.Error("Expected the key help while paused")
	}

	next, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	m = next.(GameModel)
	if !m.game.Debug().DrawHitboxes {
		t.Error("Expected f1 to toggle hitboxes")
	}

	next, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() || cmd == nil {
		t.Error("Expected esc to leave for the menu")
	}
	if m.View() != "" {
		t.Error("Expected an empty view after leaving")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	st, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer st.Close()

	m := newTestGame(t, st)
	m.game.Store().Dispatch(store.Score(1200))
	m.game.Store().Dispatch(store.Simple(store.GameOver))

	for range 3 {
		next, _ := update(t, m, TickMsg{Loop: m.loop})
		m = next.(GameModel)
	}

	runs, err := st.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Player != "ann" || runs[0].Score != 1200 || runs[0].Seed != 7 {
		t.Errorf("Unexpected run: %+v", runs[0])
	}

	// Restart clears the saved flag for the next game
	next, _ := update(t, m, runes("r"))
	m = next.(GameModel)
	if m.saved || m.State().GameOver || m.State().Score != 0 {
		t.Errorf("Expected a fresh game after restart, got %+v", m.State())
	}
}

func TestGameModelResizeRebuilds(t *testing.T) {
	m := newTestGame(t, nil)
	old := m.game

	next, _ := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(GameModel)
	if m.game != old {
		t.Error("Same size should keep the game")
	}

	next, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)
	if m.game == old {
		t.Error("Expected a new game for the new size")
	}
	if old.Running() {
		t.Error("Expected the old game to be stopped")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("Screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, MenuChoice{})
	if m.Choice().Difficulty != config.DifficultyNormal || m.Choice().StartLevel != 1 {
		t.Fatalf("Unexpected default choice: %+v", m.Choice())
	}

	steps := []tea.KeyMsg{
		{Type: tea.KeyDown},  // difficulty
		{Type: tea.KeyRight}, // hard
		{Type: tea.KeyDown},  // level
		{Type: tea.KeyLeft},  // wraps to the last level
		{Type: tea.KeyUp},
		{Type: tea.KeyUp}, // start
	}
	var model tea.Model = m
	for _, k := range steps {
		model, _ = update(t, model, k)
	}
	m = model.(MenuModel)
	if m.Choice().Difficulty != config.DifficultyHard {
		t.Errorf("Expected hard, got %s", m.Choice().Difficulty)
	}
	if m.Choice().StartLevel != store.MaxLevel {
		t.Errorf("Expected level %d, got %d", store.MaxLevel, m.Choice().StartLevel)
	}

	model, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(MenuModel)
	if !m.Started() || cmd == nil {
		t.Error("Expected enter on the first row to start a game")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	var model tea.Model = NewMenuModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, MenuChoice{})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyUp})
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if !model.(MenuModel).IsQuitting() {
		t.Error("Expected up from the first row to land on quit")
	}
}

func TestApplyChoice(t *testing.T) {
	opts := ApplyChoice(testOptions(), MenuChoice{Difficulty: config.DifficultyEasy, StartLevel: 5})
	if opts.Config.Player.Lives != 4 || opts.Config.Gameplay.StartLevel != 5 {
		t.Errorf("Choice not applied: %+v", opts.Config)
	}
	if testOptions().Config.Player.Lives == 4 {
		t.Error("Base options must not change")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "ann", 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("Expected empty message, got %q", m.View())
	}

	model, cmd := update(t, m, runes("b"))
	if !model.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("Expected b to go back")
	}
}

func TestScoreboardToggle(t *testing.T) {
	st, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer st.Close()
	st.SaveRun(storage.Run{Player: "ann", Score: 100, Level: 2})
	st.SaveRun(storage.Run{Player: "bob", Score: 300, Level: 4})

	m := NewScoreboardModel(st, "ann", 100, 30)
	if len(m.runs) != 2 || m.runs[0].Player != "bob" {
		t.Fatalf("Expected top runs, got %+v", m.runs)
	}
	if m.stats == nil || m.stats.GamesPlayed != 2 {
		t.Errorf("Unexpected stats: %+v", m.stats)
	}

	model, _ := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = model.(ScoreboardModel)
	if !m.mine || len(m.runs) != 1 || m.runs[0].Player != "ann" {
		t.Errorf("Expected ann's runs, got %+v", m.runs)
	}
}

func TestSessionFlow(t *testing.T) {
	var model tea.Model = NewSessionModel(nil, testOptions(), "ann")

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	s := model.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("Expected the game screen, got %v", s.screen)
	}
	if cmd == nil {
		t.Error("Expected the game tick loop to start")
	}

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	s = model.(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Errorf("Expected to be back in the menu, got screen %v quitting %v", s.screen, s.quitting)
	}

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	if model.(SessionModel).screen != screenScores {
		t.Error("Expected tab to open the scoreboard")
	}
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if model.(SessionModel).screen != screenMenu {
		t.Error("Expected esc to return from the scoreboard")
	}

	model, cmd = update(t, model, runes("q"))
	if !model.(SessionModel).quitting || cmd == nil {
		t.Error("Expected q to end the session")
	}
}
