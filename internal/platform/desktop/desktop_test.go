package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinypulse/arcade/internal/config"
	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/games/blockfall"
)

func newTestWindow(t *testing.T, actions ...core.Action) *Window {
	t.Helper()
	game := blockfall.New()
	game.ResetWith(core.RuntimeConfig{ScreenW: 1, ScreenH: 1, TickRate: 60, Seed: 3}, config.DefaultBlockfallConfig())
	w := NewWindow(game)
	w.input = func() core.InputFrame {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		return in
	}
	return w
}

func TestWindowSize(t *testing.T) {
	w := newTestWindow(t)
	width, height := w.Size()

	assert.Equal(t, 10*CellSize+PanelWidth+2*margin, width)
	assert.Equal(t, 20*CellSize+2*margin, height)

	lw, lh := w.Layout(1920, 1080)
	assert.Equal(t, width, lw)
	assert.Equal(t, height, lh)
}

func TestWindowUpdateSoftDrop(t *testing.T) {
	w := newTestWindow(t, core.ActionSoftDrop)

	require.NoError(t, w.Update())
	// The tiny runtime screen would pause a terminal game; the window overrides it.
	assert.Equal(t, 1, w.game.Session().Active().Row)
}

func TestWindowQuit(t *testing.T) {
	w := newTestWindow(t, core.ActionQuit)
	assert.ErrorIs(t, w.Update(), ebiten.Termination)
}

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestMapInput(t *testing.T) {
	tests := []struct {
		name string
		d    devices
		want core.Action
	}{
		{"left click restarts", devices{justPressed: keySet(), held: keySet(), clicked: true}, core.ActionRestart},
		{"enter restarts", devices{justPressed: keySet(ebiten.KeyEnter), held: keySet()}, core.ActionRestart},
		{"held down soft drops", devices{justPressed: keySet(), held: keySet(ebiten.KeyDown)}, core.ActionSoftDrop},
		{"a moves left", devices{justPressed: keySet(ebiten.KeyA), held: keySet()}, core.ActionLeft},
		{"up rotates", devices{justPressed: keySet(ebiten.KeyUp), held: keySet()}, core.ActionRotate},
		{"escape quits", devices{justPressed: keySet(ebiten.KeyEscape), held: keySet()}, core.ActionQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mapInput(tt.d)
			assert.True(t, in.Has(tt.want))
		})
	}

	idle := mapInput(devices{justPressed: keySet(), held: keySet()})
	assert.False(t, idle.Has(core.ActionRestart))
	assert.False(t, idle.Has(core.ActionSoftDrop))
}
