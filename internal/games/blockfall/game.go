// Package blockfall implements a falling-block stacking game.
// Pieces drop onto a grid, full rows clear for points, and the run ends
// when a new piece has no room to spawn.
package blockfall

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tinypulse/arcade/internal/config"
	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/registry"
)

// GameID is the registry and score store identifier.
const GameID = "blockfall"

// Game adapts a Session to the arcade platform: fixed-tick stepping,
// pause, screen rendering and score reporting.
type Game struct {
	session  *Session
	cfg      config.BlockfallConfig
	runtime  core.RuntimeConfig
	reporter core.ScoreReporter
	logger   *log.Logger
	runID    string
	tick     uint64
	paused   bool
	tooSmall bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
// Unknown values fall back to the config file setting.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a Blockfall game. Call Reset before stepping it.
func New() *Game {
	return &Game{logger: log.Default()}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// SetScoreReporter sets where finished runs are reported.
func (g *Game) SetScoreReporter(r core.ScoreReporter) {
	g.reporter = r
}

// SetLogger sets where config problems are reported.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Reset loads the config and starts a new run.
// An unusable config file is logged and the defaults are played instead.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		g.logger.Warn("config not loaded, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultBlockfallConfig()
	}
	config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new run with an explicit config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.BlockfallConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.tick = 0
	g.paused = false
	g.runID = uuid.NewString()
	g.session = NewSession(
		WithConfig(cfg),
		WithSeed(runtime.Seed),
		WithReporter(ScoreReporterFunc(g.reportScore)),
	)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

// MinSize returns the smallest screen that fits the board and side panel.
func (g *Game) MinSize() (w, h int) {
	return g.cfg.Board.Cols*cellWidth + 2 + panelWidth, g.cfg.Board.Rows + 2
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(in, g.runtime.TickDelta())
}

// Advance applies one frame of input with an explicit time delta in seconds.
// Deltas are clamped to [0, max_delta].
func (g *Game) Advance(in core.InputFrame, dt float64) core.StepResult {
	g.tick++
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.cfg.Timing.MaxDelta > 0 {
		dt = core.ClampF(dt, 0, g.cfg.Timing.MaxDelta)
	}

	wasOver := g.session.GameOver()
	g.session.Update(inputFromFrame(in), dt)
	if wasOver && !g.session.GameOver() {
		g.runID = uuid.NewString()
	}

	return core.StepResult{State: g.State()}
}

// inputFromFrame maps platform actions to session input.
func inputFromFrame(in core.InputFrame) Input {
	return Input{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Rotate:    in.Has(core.ActionRotate),
		SoftDrop:  in.Has(core.ActionSoftDrop),
		Restart:   in.Has(core.ActionRestart),
	}
}

// reportScore forwards the session's final score with run metadata.
func (g *Game) reportScore(score int) {
	if g.reporter == nil {
		return
	}
	g.reporter.ReportScore(core.Result{
		GameID: GameID,
		RunID:  g.runID,
		Score:  score,
		Lines:  g.session.Lines(),
	})
}

// Session exposes the underlying engine.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lines:    g.session.Lines(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}
