// Package desktop runs Blockfall in a window with ebiten.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tinypulse/arcade/internal/core"
	"github.com/tinypulse/arcade/internal/games/blockfall"
)

// Layout in pixels.
const (
	CellSize   = 30
	PanelWidth = 180
	margin     = 10
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	gridColor       = core.ColorDarkGray.RGBA()
	frameColor      = core.ColorGray.RGBA()
	overlayColor    = color.RGBA{0, 0, 0, 180}
)

// Window adapts a blockfall.Game to ebiten.Game.
type Window struct {
	game  *blockfall.Game
	input Input
}

// Input reads the keyboard and mouse into a platform input frame.
// Tests replace it to drive the window without a display.
type Input func() core.InputFrame

// NewWindow wraps an already Reset game. Pixel layout replaces the
// character-cell size check, so the game is told it has exactly enough room.
func NewWindow(game *blockfall.Game) *Window {
	game.Resize(game.MinSize())
	return &Window{game: game, input: deviceInput}
}

// devices is one frame of raw keyboard and mouse state.
type devices struct {
	justPressed func(ebiten.Key) bool
	held        func(ebiten.Key) bool
	clicked     bool
}

// deviceInput reads the live keyboard and mouse.
func deviceInput() core.InputFrame {
	return mapInput(devices{
		justPressed: inpututil.IsKeyJustPressed,
		held:        ebiten.IsKeyPressed,
		clicked:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	})
}

// mapInput turns device state into actions. Soft drop follows the held key;
// a left click restarts like Enter.
func mapInput(d devices) core.InputFrame {
	in := core.NewInputFrame()
	anyKey := func(check func(ebiten.Key) bool, keys ...ebiten.Key) bool {
		for _, k := range keys {
			if check(k) {
				return true
			}
		}
		return false
	}

	if anyKey(d.justPressed, ebiten.KeyLeft, ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if anyKey(d.justPressed, ebiten.KeyRight, ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if anyKey(d.justPressed, ebiten.KeyUp, ebiten.KeyW) {
		in.Set(core.ActionRotate)
	}
	if anyKey(d.held, ebiten.KeyDown, ebiten.KeyS) {
		in.Set(core.ActionSoftDrop)
	}
	if d.clicked || anyKey(d.justPressed, ebiten.KeyEnter, ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if anyKey(d.justPressed, ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if anyKey(d.justPressed, ebiten.KeyQ, ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
	return in
}

// Update advances the game by one ebiten tick.
func (w *Window) Update() error {
	in := w.input()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	w.game.Advance(in, 1.0/float64(ebiten.TPS()))
	return nil
}

// Draw renders the board and side panel.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := w.game.Snapshot()

	rows, cols := len(snap.Board), 0
	if rows > 0 {
		cols = len(snap.Board[0])
	}
	boardW, boardH := float32(cols*CellSize), float32(rows*CellSize)
	vector.StrokeRect(screen, margin-1, margin-1, boardW+2, boardH+2, 2, frameColor, false)

	for row, cells := range snap.Board {
		for col, id := range cells {
			if id == blockfall.Empty {
				vector.StrokeRect(screen, cellX(col), cellY(row), CellSize, CellSize, 1, gridColor, false)
				continue
			}
			drawBlock(screen, cellX(col), cellY(row), id.Color().RGBA())
		}
	}

	if snap.State == blockfall.StatePlaying {
		c := snap.Active.Shape.Color().RGBA()
		for _, cell := range snap.Active.Cells() {
			if cell[1] >= 0 {
				drawBlock(screen, cellX(cell[0]), cellY(cell[1]), c)
			}
		}
	}

	panelX := margin*2 + cols*CellSize
	ebitenutil.DebugPrintAt(screen, "BLOCKFALL", panelX, margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), panelX, margin+30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), panelX, margin+50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), panelX, margin+70)
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, margin+100)
	if s, ok := blockfall.ShapeFor(snap.Next); ok {
		for _, b := range s.Layout.Blocks() {
			drawBlock(screen, float32(panelX+b[1]*CellSize), float32(margin+120+b[0]*CellSize), s.Color.RGBA())
		}
	}

	switch snap.Status {
	case blockfall.StatusGameOver:
		drawOverlay(screen, boardW, boardH, "GAME OVER", fmt.Sprintf("Score %d", snap.Score), "ENTER or click to restart")
	case blockfall.StatusPaused:
		drawOverlay(screen, boardW, boardH, "PAUSED", "", "P to resume")
	}
}

// Layout returns the fixed logical size derived from the board.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.Size()
}

// Size returns the window size in pixels for the game's board.
func (w *Window) Size() (int, int) {
	cfg := w.game.Session().Config()
	return cfg.Board.Cols*CellSize + PanelWidth + margin*2, cfg.Board.Rows*CellSize + margin*2
}

func cellX(col int) float32 { return float32(margin + col*CellSize) }
func cellY(row int) float32 { return float32(margin + row*CellSize) }

func drawBlock(dst *ebiten.Image, x, y float32, c color.RGBA) {
	vector.DrawFilledRect(dst, x+1, y+1, CellSize-2, CellSize-2, c, false)
}

func drawOverlay(dst *ebiten.Image, boardW, boardH float32, lines ...string) {
	vector.DrawFilledRect(dst, margin, margin, boardW, boardH, overlayColor, false)
	y := int(boardH)/2 - len(lines)*8
	for _, line := range lines {
		if line == "" {
			y += 16
			continue
		}
		x := margin + (int(boardW)-len(line)*6)/2
		ebitenutil.DebugPrintAt(dst, line, x, y)
		y += 16
	}
}

// Run opens the window and blocks until it is closed.
func Run(game *blockfall.Game) error {
	w := NewWindow(game)
	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	return ebiten.RunGame(w)
}
