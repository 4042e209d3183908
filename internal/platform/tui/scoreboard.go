package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-r42/internal/storage"
)

const (
	boardRunLimit  = 100
	boardStatsCols = 24
	boardWideAt    = 90 // totals panel only from this width on
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up, Down, Toggle, Back, Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the stock scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return ScoreboardKeyMap{
		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Toggle: bind("tab", "top/mine", "tab"),
		Back:   bind("esc", "menu", "esc", "b"),
		Quit:   bind("q", "quit", "q", "ctrl+c"),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
)

// ScoreboardModel lists recorded runs, either the best of everyone or the
// latest of one player, next to the all-time totals.
type ScoreboardModel struct {
	store  *storage.Store
	player string
	mine   bool

	runs  []storage.Run
	stats *storage.Stats
	err   error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the top runs. A nil store shows an empty board.
func NewScoreboardModel(st *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  st,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(height)
	m.load()
	return m
}

func newRunTable(screenHeight int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Hit%", Width: 5},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(screenHeight-8, 3)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	return t
}

func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		m.runs, m.err = m.fetch()
		if m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func (m *ScoreboardModel) fetch() ([]storage.Run, error) {
	if m.mine && m.player != "" {
		return m.store.PlayerRuns(m.player, boardRunLimit)
	}
	return m.store.TopRuns(boardRunLimit)
}

func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		who := r.Player
		if who == "" {
			who = "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			who,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			strconv.FormatFloat(r.Accuracy(), 'f', 0, 64),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Leaving the board ends the program with
// tea.Quit; IsGoingBack tells the caller to reopen the menu.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunTable(msg.Height)
		m.table.SetRows(runRows(m.runs))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Back) {
			m.goingBack = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Toggle) {
			if m.player != "" {
				m.mine = !m.mine
				m.load()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.mine {
		title = "LAST RUNS OF " + m.player
	}

	body := boardPanelStyle.Render(m.runsPanel())
	if m.width >= boardWideAt {
		totals := boardPanelStyle.Width(boardStatsCols).Render(m.totalsPanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, totals, "  ", body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardTitleStyle.Render(centerText(title, m.width)),
		"",
		body,
		boardMutedStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) runsPanel() string {
	switch {
	case m.err != nil:
		return boardMutedStyle.Render("scores unavailable: " + m.err.Error())
	case len(m.runs) == 0:
		return boardMutedStyle.Italic(true).Padding(2, 4).Render("No runs recorded yet.\nFinish a game to get on the board.")
	}
	return m.table.View()
}

func (m ScoreboardModel) totalsPanel() string {
	if m.stats == nil || m.stats.GamesPlayed == 0 {
		return "TOTALS\n\n" + boardMutedStyle.Render("nothing yet")
	}
	st := m.stats
	hitRate := 0.0
	if st.TotalShots > 0 {
		hitRate = float64(st.TotalHits) * 100 / float64(st.TotalShots)
	}
	line := func(label string, value any) string {
		return boardLabelStyle.Render(label) + fmt.Sprint(value)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"TOTALS",
		"",
		line("games", st.GamesPlayed),
		line("best", st.HighScore),
		line("average", fmt.Sprintf("%.0f", st.AvgScore)),
		line("deepest", st.BestLevel),
		line("shots", st.TotalShots),
		line("hits", st.TotalHits),
		line("accuracy", fmt.Sprintf("%.0f%%", hitRate)),
	)
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the board in its own program. goBack is true when
// the player returned to the menu rather than quitting.
func RunScoreboard(st *storage.Store, player string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(st, player, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
