package minesweeper

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

const (
	hudRows    = 2
	footerRows = 1
)

// Glyphs used on the board.
const (
	hiddenChar   = '■'
	emptyChar    = '·'
	flagChar     = 'F'
	mineChar     = '*'
	wrongFlag    = 'X'
	cursorLeft   = '['
	cursorRight  = ']'
	controlsHint = "Arrows: Move  Space: Open  F: Flag  C: Chord  P: Pause  R: Restart  Q: Quit"
)

// numberColors follows the classic palette for neighbour counts 1..8.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// boardFootprint returns the size of the bordered board on screen.
// Each cell takes two columns so the cursor brackets fit between cells.
func boardFootprint(d Difficulty) (w, h int) {
	return d.Cols*2 + 3, d.Rows + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := boardFootprint(g.engine.Difficulty())
	area := core.CenteredRect(g.screenW, g.screenH-hudRows-footerRows, w, h)
	area.Y += hudRows

	g.renderHUD(dst, area)
	dst.DrawBox(area, core.ColorGray)
	g.renderCells(dst, area)
	g.renderCursor(dst, area)
	dst.DrawTextCentered(area.Bottom(), controlsHint)
	g.renderOverlays(dst, area)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := boardFootprint(g.engine.Difficulty())
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h+hudRows+footerRows))
}

func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	title := g.Title()
	dst.DrawTextColor(area.X+(area.W-len(title))/2, area.Y-hudRows, title, core.ColorBrightWhite)

	mines := fmt.Sprintf("Mines: %03d", g.engine.FlagsRemaining())
	dst.DrawTextColor(area.X, area.Y-1, mines, core.ColorRed)

	clock := "Time: " + formatClock(g.engine.Elapsed())
	dst.DrawTextColor(area.Right()-len(clock), area.Y-1, clock, core.ColorYellow)
}

// formatClock renders a duration as mm:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// cellPos returns where a cell's glyph goes. The extra column of padding
// leaves room for the cursor bracket left of column 0.
func cellPos(area core.Rect, row, col int) (x, y int) {
	return area.Inset(2, 1).GridCell(col, row, 2)
}

func (g *Game) renderCells(dst *core.Screen, area core.Rect) {
	b := g.engine.Board()
	status := g.engine.Status()
	exploded, hasExploded := g.engine.Exploded()

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell, _ := b.Cell(r, c)
			ch, color := glyph(cell, status)
			if hasExploded && exploded == (Pos{r, c}) {
				color = core.ColorBrightRed
			}
			x, y := cellPos(area, r, c)
			dst.SetColor(x, y, ch, color)
		}
	}
}

// glyph picks how a cell is drawn. A lost round uncovers every mine and
// marks flags that were wrong.
func glyph(cell Cell, status Status) (rune, core.Color) {
	switch {
	case cell.Flagged && status == StatusLost && !cell.Mine:
		return wrongFlag, core.ColorBrightRed
	case cell.Flagged:
		return flagChar, core.ColorBrightRed
	case cell.Mine && (cell.Revealed || status == StatusLost):
		return mineChar, core.ColorBrightWhite
	case !cell.Revealed:
		return hiddenChar, core.ColorGray
	case cell.NeighborMines == 0:
		return emptyChar, core.ColorGray
	default:
		return rune('0' + cell.NeighborMines), numberColors[cell.NeighborMines]
	}
}

func (g *Game) renderCursor(dst *core.Screen, area core.Rect) {
	if g.engine.Status().Terminal() {
		return
	}
	x, y := cellPos(area, g.cursorRow, g.cursorCol)
	dst.SetColor(x-1, y, cursorLeft, core.ColorBrightYellow)
	dst.SetColor(x+1, y, cursorRight, core.ColorBrightYellow)
}

func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	cx, cy := area.Center()

	switch {
	case g.paused:
		dst.DrawOverlay(cx, cy, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	case g.engine.Status() == StatusWon:
		dst.DrawOverlay(cx, cy, core.ColorBrightGreen,
			"CLEARED!", "Time: "+formatClock(g.engine.Elapsed()), "Press R to restart")
	case g.engine.Status() == StatusLost:
		dst.DrawOverlay(cx, cy, core.ColorBrightRed, "BOOM!", "Press R to restart")
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return controlsHint
}
