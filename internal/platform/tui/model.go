package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig // full terminal size
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          KeyMap
	help          help.Model
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".arcade", "screenshots")
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config seen by the game: the terminal minus the help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.footerHeight(), 0)
	return cfg
}

func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// relayout resizes the screen buffer and tells the game about it.
// Games that cannot resize in place are restarted unless their run is over.
func (m *Model) relayout() {
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(gc)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state after the most recent tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
