package blockfall

import (
	"fmt"

	"github.com/tinypulse/arcade/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	EmptyChar = '·'
)

const (
	cellWidth  = 2  // Terminal columns per board cell
	panelWidth = 16 // Side panel including the gap to the board
)

// Render draws the board, the falling piece, the side panel and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		minW, minH := g.MinSize()
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	snap := g.Snapshot()
	minW, minH := g.MinSize()
	boardRect := core.NewRect((dst.Width()-minW)/2, (dst.Height()-minH)/2, g.cfg.Board.Cols*cellWidth+2, minH)

	g.renderBoard(dst, boardRect, snap)
	g.renderPanel(dst, boardRect.Right()+2, boardRect.Y, snap)

	switch snap.Status {
	case StatusGameOver:
		g.renderOverlay(dst, boardRect, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "R to restart")
	case StatusPaused:
		g.renderOverlay(dst, boardRect, "PAUSED", "", "P to resume")
	}
}

// renderBoard draws the frame, locked cells and the active piece.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect, snap Snapshot) {
	dst.DrawBox(frame, core.ColorGray)
	originX, originY := frame.X+1, frame.Y+1

	for row, cells := range snap.Board {
		for col, id := range cells {
			if id == Empty {
				dst.SetColored(originX+col*cellWidth+1, originY+row, EmptyChar, core.ColorDarkGray)
				continue
			}
			drawCell(dst, originX+col*cellWidth, originY+row, id.Color())
		}
	}

	if snap.State != StatePlaying {
		return
	}
	color := snap.Active.Shape.Color()
	for _, c := range snap.Active.Cells() {
		if c[1] < 0 {
			continue
		}
		drawCell(dst, originX+c[0]*cellWidth, originY+c[1], color)
	}
}

// renderPanel draws the title, counters and next-piece preview.
func (g *Game) renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawTextColored(x, y, "BLOCKFALL", core.ColorGold)
	dst.DrawText(x, y+2, "Score")
	dst.DrawTextColored(x, y+3, fmt.Sprintf("%06d", snap.Score), core.ColorWhite)
	dst.DrawText(x, y+5, fmt.Sprintf("Lines %d", snap.Lines))
	dst.DrawText(x, y+6, fmt.Sprintf("Level %d", snap.Level))

	dst.DrawText(x, y+8, "Next")
	preview := core.NewRect(x, y+9, 4*cellWidth+2, 4)
	dst.DrawBox(preview, core.ColorGray)
	if s, ok := ShapeFor(snap.Next); ok {
		// Only the first two rows of a base layout are ever filled.
		for _, b := range s.Layout.Blocks() {
			drawCell(dst, preview.X+1+b[1]*cellWidth, preview.Y+1+b[0], s.Color)
		}
	}

	help := []string{"←→ move", "↑ rotate", "↓ drop", "P pause", "Q quit"}
	for i, line := range help {
		dst.DrawTextColored(x, y+14+i, line, core.ColorGray)
	}
}

// renderOverlay draws a message box centered over the board.
func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect, title, detail, hint string) {
	boxW := max(len(title), len(detail), len(hint)) + 4
	box := frame.Centered(boxW, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorRed)
	if detail != "" {
		dst.DrawText(box.X+(boxW-len(detail))/2, box.Y+2, detail)
	}
	dst.DrawTextColored(box.X+(boxW-len(hint))/2, box.Y+3, hint, core.ColorGray)
}

func drawCell(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, BlockChar, c)
	}
}
