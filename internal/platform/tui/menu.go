package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-r42/internal/config"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/engine"
	"github.com/vovakirdan/tui-r42/internal/levels"
	"github.com/vovakirdan/tui-r42/internal/storage"
	"github.com/vovakirdan/tui-r42/internal/store"
)

// Menu rows
const (
	rowStart = iota
	rowDifficulty
	rowLevel
	rowScores
	rowQuit
	rowCount
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuChoice is what the player picked before starting.
type MenuChoice struct {
	Difficulty config.DifficultyPreset
	StartLevel int
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	choice    MenuChoice
	table     *levels.Table
	highScore int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keys      MenuKeyMap
	help      help.Model

	quitting       bool
	start          bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The store may be nil.
func NewMenuModel(st *storage.Store, table *levels.Table, cfg core.RuntimeConfig, choice MenuChoice) MenuModel {
	if choice.Difficulty == "" {
		choice.Difficulty = config.DifficultyNormal
	}
	if choice.StartLevel < 1 {
		choice.StartLevel = 1
	}

	m := MenuModel{
		choice: choice,
		table:  table,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	if st != nil {
		if hs, err := st.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + rowCount - 1) % rowCount

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rowCount

	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Right):
		m.adjust(1)

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case rowStart:
			m.start = true
			return m, tea.Quit
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}
	}

	return m, nil
}

// adjust cycles the value on the current row.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case rowDifficulty:
		idx := 0
		for i, p := range presets {
			if p == m.choice.Difficulty {
				idx = i
			}
		}
		idx = (idx + delta + len(presets)) % len(presets)
		m.choice.Difficulty = presets[idx]
	case rowLevel:
		n := m.choice.StartLevel + delta
		if n < 1 {
			n = store.MaxLevel
		}
		if n > store.MaxLevel {
			n = 1
		}
		m.choice.StartLevel = n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R 4 2"), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("HIGH SCORE %06d", m.highScore)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for row := range rowCount {
		line := m.rowText(row)
		if row == m.cursor {
			line = menuCursor.Render("> " + line + " ")
		} else {
			line = menuItemStyle.Render("  " + line + " ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) rowText(row int) string {
	switch row {
	case rowStart:
		return "Start game"
	case rowDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", m.choice.Difficulty)
	case rowLevel:
		name := ""
		if m.table != nil {
			name = " " + m.table.For(m.choice.StartLevel).Name
		}
		return fmt.Sprintf("Start level < %d >%s", m.choice.StartLevel, name)
	case rowScores:
		return "High scores"
	case rowQuit:
		return "Quit"
	}
	return ""
}

// Choice returns the current selection.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Started returns true if the user chose to start a game.
func (m MenuModel) Started() bool {
	return m.start
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice          MenuChoice
	Config          core.RuntimeConfig
	Start           bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(st *storage.Store, table *levels.Table, cfg core.RuntimeConfig, choice MenuChoice) (MenuResult, error) {
	model := NewMenuModel(st, table, cfg, choice)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Choice: choice}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Choice: choice, Quit: true}, nil
	}

	result := MenuResult{
		Choice:          m.Choice(),
		Config:          m.Config(),
		Start:           m.Started(),
		WantsScoreboard: m.WantsScoreboard(),
	}
	result.Quit = !result.Start && !result.WantsScoreboard
	return result, nil
}

// ApplyChoice returns engine options for a new game with the menu choice
// applied on top of base.
func ApplyChoice(base engine.Options, choice MenuChoice) engine.Options {
	opts := base
	if choice.Difficulty != "" {
		config.ApplyPreset(&opts.Config, choice.Difficulty)
	}
	if choice.StartLevel > 0 {
		opts.Config.Gameplay.StartLevel = choice.StartLevel
	}
	return opts
}
