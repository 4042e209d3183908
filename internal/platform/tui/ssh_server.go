package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/engine"
	"github.com/vovakirdan/tui-r42/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig describes the multi-seat server.
type SSHServerConfig struct {
	Address     string        // listen address, ":23234" by default
	HostKeyPath string        // generated under ~/.r42/host_key when empty
	DBPath      string        // shared scoreboard
	IdleTimeout time.Duration // idle sessions are dropped after this

	// Game is the template every session's game is built from. Its logger
	// also receives server events.
	Game engine.Options
}

// DefaultSSHServerConfig returns the server defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.r42/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one menu, scoreboard and game per SSH session. All
// sessions share the score store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the server. A scoreboard that cannot be opened is
// logged and the server runs without persistence.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Game.Logger == nil {
		cfg.Game.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "r42-ssh",
		})
	}
	srv := &SSHServer{config: cfg, logger: cfg.Game.Logger}

	st, err := storage.Open(cfg.DBPath)
	if err != nil {
		srv.logger.Warn("scoreboard disabled", "db", cfg.DBPath, "error", err)
	} else {
		srv.store = st
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, err
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("ssh: new server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: home directory: %w", err)
		}
		path = filepath.Join(home, ".r42", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: host key directory: %w", err)
	}
	return path, nil
}

// teaHandler sizes a fresh session model to the client's PTY.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("session without pty refused", "user", sess.User())
		return nil, nil
	}

	opts := s.config.Game
	opts.Runtime = core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: opts.Runtime.TickRate,
		Seed:     opts.Runtime.Seed,
	}
	opts.Logger = s.logger.With("user", sess.User())

	return NewSessionModel(s.store, opts, sess.User()), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		l.Info("session open")
		next(sess)
		l.Info("session closed", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe blocks until SIGINT/SIGTERM or a listener failure.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("listener failed", "error", err)
		s.closeStore()
		return err
	}
}

// Shutdown closes the listener and the store, waiting briefly for
// sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing scoreboard", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel manages the full session flow: menu -> game or scores ->
// menu. It is the top-level model of SSH sessions.
type SessionModel struct {
	store    *storage.Store
	base     engine.Options
	username string
	choice   MenuChoice
	screen   sessionScreen
	menu     MenuModel
	scores   ScoreboardModel
	game     GameModel
	err      error
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(st *storage.Store, base engine.Options, username string) SessionModel {
	choice := MenuChoice{StartLevel: base.Config.Gameplay.StartLevel}
	return SessionModel{
		store:    st,
		base:     base,
		username: username,
		choice:   choice,
		menu:     NewMenuModel(st, base.Levels, base.Runtime, choice),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.base.Runtime.ScreenW = wsm.Width
		m.base.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// Sub-models end themselves with tea.Quit; inside a session that command
// must not reach the program, so the session inspects the model flags
// instead of forwarding it.

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.store, m.username, m.base.Runtime.ScreenW, m.base.Runtime.ScreenH)
		return m, m.scores.Init()

	case m.menu.Started():
		m.choice = m.menu.Choice()
		game, err := NewGameModel(GameOptions{
			Engine: ApplyChoice(m.base, m.choice),
			Store:  m.store,
			Player: m.username,
		})
		if err != nil {
			m.base.Logger.Error("cannot start game", "err", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.game = game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	switch {
	case m.game.Err() != nil:
		m.err = m.game.Err()
		m.quitting = true
		return m, tea.Quit
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.base.Levels, m.base.Runtime, m.choice)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}
