package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinypulse/arcade/internal/storage"
)

const maxScores = 100 // Max scores to load

// ScoreSource is the read side of the score store used by the scoreboard.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is a scrollable high score table for one game.
type ScoreboardModel struct {
	gameID   string
	title    string
	source   ScoreSource
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard and loads its scores.
func NewScoreboardModel(source ScoreSource, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 7},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for title, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores reads scores and stats from the source.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.stats, m.err = nil, nil, nil
	if m.source != nil {
		m.scores, m.err = m.source.TopScores(m.gameID, maxScores)
		if m.err == nil {
			m.stats, m.err = m.source.GetGameStats(m.gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Lines),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES - "+m.title, m.width)))
	b.WriteString("\n\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil && m.stats.GamesCount > 0 {
		b.WriteString(dim.Render(fmt.Sprintf("%d runs  best %d  avg %.0f  lines %d",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalLines)))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.err.Error())
	case len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(source ScoreSource, gameID, title string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, gameID, title, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
