package blockfall

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinypulse/arcade/internal/config"
	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	rt := core.DefaultConfig()
	rt.Seed = 42
	g.ResetWith(rt, config.DefaultBlockfallConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists(GameID))
	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, "Blockfall", g.Title())
}

func TestGameDeterministicWithSeed(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	for range 600 {
		a.Step(frame(core.ActionSoftDrop))
		b.Step(frame(core.ActionSoftDrop))
	}
	sa, sb := a.Snapshot(), b.Snapshot()
	assert.Equal(t, sa.Board, sb.Board)
	assert.Equal(t, sa.Active, sb.Active)
	assert.Equal(t, sa.Score, sb.Score)
	assert.NotEqual(t, a.runID, b.runID)
}

func TestGameGravityAtFixedTick(t *testing.T) {
	g := newTestGame(t)

	// 60 ticks per second with a 0.5s interval: one row every 30 ticks.
	for range 29 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.Session().Active().Row)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 1, g.Session().Active().Row)
}

func TestGameAdvanceClampsDelta(t *testing.T) {
	g := newTestGame(t)

	// A 10s stall counts as max_delta (0.1s), not twenty gravity steps.
	g.Advance(core.NewInputFrame(), 10)
	assert.Equal(t, 0, g.Session().Active().Row)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	assert.Equal(t, StatusPaused, g.Snapshot().Status)

	for range 120 {
		g.Step(frame(core.ActionSoftDrop))
	}
	assert.Equal(t, 0, g.Session().Active().Row)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	g.Step(frame(core.ActionSoftDrop))
	assert.Equal(t, 1, g.Session().Active().Row)
}

func TestGameMovesPiece(t *testing.T) {
	g := newTestGame(t)
	col := g.Session().Active().Col

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, col-1, g.Session().Active().Col)
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	assert.Equal(t, col+1, g.Session().Active().Col)
}

// forceGameOver blocks the spawn area and locks the active piece.
func forceGameOver(t *testing.T, g *Game) {
	t.Helper()
	s := g.Session()
	for col := range s.Board().Cols() {
		s.board.set(col, 1, ShapeZ)
	}
	s.board.set(0, 1, Empty)
	s.active = SpawnPiece(ShapeO, 0, 18)
	g.Step(frame(core.ActionSoftDrop))
	require.True(t, g.State().GameOver)
}

func TestGameReportsResultOnce(t *testing.T) {
	g := newTestGame(t)
	var results []core.Result
	g.SetScoreReporter(core.ReporterFunc(func(r core.Result) {
		results = append(results, r)
	}))

	g.Session().score = 1200
	g.Session().lines = 9
	firstRun := g.runID
	forceGameOver(t, g)

	for range 10 {
		g.Step(frame(core.ActionSoftDrop, core.ActionPause))
	}

	require.Len(t, results, 1)
	assert.Equal(t, core.Result{GameID: GameID, RunID: firstRun, Score: 1200, Lines: 9}, results[0])
	assert.False(t, g.State().Paused)
}

func TestGameRestartStartsNewRun(t *testing.T) {
	g := newTestGame(t)
	firstRun := g.runID
	forceGameOver(t, g)

	g.Step(frame(core.ActionRestart))

	st := g.State()
	assert.False(t, st.GameOver)
	assert.Equal(t, 0, st.Score)
	assert.NotEqual(t, firstRun, g.runID)
	assert.True(t, boardEmpty(g.Session().Board()))
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "BLOCKFALL")
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "000000")
	assert.Contains(t, out, string(BlockChar))
	assert.NotContains(t, out, "GAME OVER")
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	forceGameOver(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "R to restart")
}

func TestGameTooSmall(t *testing.T) {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, config.DefaultBlockfallConfig())

	g.Step(frame(core.ActionSoftDrop))
	assert.Equal(t, 0, g.Session().Active().Row)
	assert.Equal(t, StatusPausedSmall, g.Snapshot().Status)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))

	g.Resize(80, 24)
	g.Step(frame(core.ActionSoftDrop))
	assert.Equal(t, 1, g.Session().Active().Row)
}

func TestGameResetWarnsOnBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	var logs strings.Builder
	g := New()
	g.SetLogger(log.New(&logs))
	g.Reset(core.DefaultConfig())

	assert.Contains(t, logs.String(), "config not loaded")
	assert.Contains(t, logs.String(), path)
	assert.Equal(t, config.DefaultBlockfallConfig().Board, g.Session().Config().Board)
	assert.Equal(t, StatePlaying, g.Session().State())
}
