package tetris

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

const (
	cellW      = 2 // Screen columns per board cell
	panelW     = 16
	panelGap   = 2
	footerRows = 1

	controlsHint = "Arrows: Move  Up/X: Rotate  Space: Drop  P: Pause  Q: Quit"
)

const (
	blockChar = '█'
	ghostChar = '░'
	emptyChar = '·'
)

// layoutSize returns the smallest screen that fits the board and side panel.
func layoutSize(r Rules) (w, h int) {
	return r.Width*cellW + 2 + panelGap + panelW, r.Height + 2 + footerRows
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := layoutSize(g.engine.Rules())
		y := g.screenH / 2
		dst.DrawTextCentered(y-1, "Window too small")
		dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	rules := g.engine.Rules()
	totalW, totalH := layoutSize(rules)
	area := core.CenteredRect(g.screenW, g.screenH, totalW, totalH-footerRows)
	board := core.NewRect(area.X, area.Y, rules.Width*cellW+2, rules.Height+2)

	dst.DrawBox(board, core.ColorGray)
	g.renderBoard(dst, board)
	g.renderPanel(dst, board.Right()+panelGap, board.Y)
	dst.DrawTextCentered(board.Bottom(), controlsHint)
	g.renderOverlays(dst, board)
}

func (g *Game) drawBlock(dst *core.Screen, board core.Rect, x, y int, ch rune, c core.Color) {
	if y < 0 {
		return
	}
	sx, sy := board.Inset(1, 1).GridCell(x, y, cellW)
	for i := range cellW {
		dst.SetColor(sx+i, sy, ch, c)
	}
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	b := g.engine.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if k, ok := b.KindAt(x, y); ok {
				g.drawBlock(dst, board, x, y, blockChar, k.Color())
				continue
			}
			dst.SetColor(board.X+1+x*cellW, board.Y+1+y, emptyChar, core.ColorGray)
		}
	}

	if g.engine.State() == StateNotStarted || g.engine.State() == StateOver {
		return
	}

	cur := g.engine.Current()
	ghostY := g.engine.DropPosition()
	cur.Piece.eachCell(func(dx, dy int) {
		g.drawBlock(dst, board, cur.X+dx, ghostY+dy, ghostChar, core.ColorGray)
	})
	cur.Piece.eachCell(func(dx, dy int) {
		g.drawBlock(dst, board, cur.X+dx, cur.Y+dy, blockChar, cur.Piece.Kind.Color())
	})
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	e := g.engine
	dst.DrawTextColor(x, y, "T E T R I S", core.ColorBrightWhite)

	stats := []struct {
		label string
		value int
	}{
		{"Score", e.Score()},
		{"Lines", e.Lines()},
		{"Level", e.Level()},
	}
	for i, s := range stats {
		dst.DrawTextColor(x, y+2+i, fmt.Sprintf("%-6s%8d", s.label, s.value), core.ColorYellow)
	}

	dst.DrawText(x, y+6, "Next")
	next := e.Next()
	next.eachCell(func(dx, dy int) {
		for i := 0; i < cellW; i++ {
			dst.SetColor(x+2+dx*cellW+i, y+7+dy, blockChar, next.Kind.Color())
		}
	})

	dst.DrawText(x, y+10, "Pieces")
	counts := e.Stats()
	for i, k := range Kinds() {
		dst.DrawTextColor(x, y+11+i, fmt.Sprintf("%s %11d", k, counts[k]), k.Color())
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch g.engine.State() {
	case StateNotStarted:
		dst.DrawOverlay(cx, cy, core.ColorBrightCyan, "TETRIS", "Press any key")
	case StatePaused:
		dst.DrawOverlay(cx, cy, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	case StateOver:
		dst.DrawOverlay(cx, cy, core.ColorBrightRed,
			"GAME OVER", fmt.Sprintf("Score: %d", g.engine.Score()), "Press R to restart")
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return controlsHint
}
