package minesweeper

import (
	"fmt"
	"math/rand"
)

// Pos identifies a cell by row and column.
type Pos struct {
	Row, Col int
}

// Cell is a single square of the minefield.
type Cell struct {
	Row, Col      int
	Mine          bool
	Revealed      bool
	Flagged       bool
	NeighborMines int // Mines in the 8-neighbourhood, valid once mines are placed
}

// Board is a rectangular minefield. It owns its cells exclusively and
// mutates them in place.
type Board struct {
	rows, cols int
	cells      [][]Cell
	mines      int
	revealed   int
	flagged    int
}

// NewBoard creates an empty board: no mines, nothing revealed or flagged.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]Cell, rows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, cols)
		for c := range b.cells[r] {
			b.cells[r][c] = Cell{Row: r, Col: c}
		}
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row][col], true
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mines }

// RevealedCount returns the number of revealed cells, mines included.
func (b *Board) RevealedCount() int { return b.revealed }

// FlaggedCount returns the number of flagged cells.
func (b *Board) FlaggedCount() int { return b.flagged }

// PlaceMines marks count distinct random cells as mines, never the excluded
// cell, then computes neighbour counts. Cells are drawn uniformly and
// duplicates or the excluded cell are simply drawn again.
//
// count must be smaller than the number of cells; board presets are
// validated when the config is loaded.
func (b *Board) PlaceMines(rng *rand.Rand, exRow, exCol, count int) {
	if count >= b.rows*b.cols {
		panic(fmt.Sprintf("minesweeper: %d mines do not fit a %dx%d board with a safe cell", count, b.rows, b.cols))
	}

	for placed := 0; placed < count; {
		r, c := rng.Intn(b.rows), rng.Intn(b.cols)
		if (r == exRow && c == exCol) || b.cells[r][c].Mine {
			continue
		}
		b.cells[r][c].Mine = true
		placed++
	}
	b.mines += count
	b.countNeighbors()
}

// SetMines places mines at fixed positions, for replays and tests.
// Out-of-bounds and duplicate positions are ignored.
func (b *Board) SetMines(positions ...Pos) {
	for _, p := range positions {
		if !b.InBounds(p.Row, p.Col) || b.cells[p.Row][p.Col].Mine {
			continue
		}
		b.cells[p.Row][p.Col].Mine = true
		b.mines++
	}
	b.countNeighbors()
}

func (b *Board) countNeighbors() {
	for r := range b.cells {
		for c := range b.cells[r] {
			cell := &b.cells[r][c]
			cell.NeighborMines = 0
			if cell.Mine {
				continue
			}
			b.eachNeighbor(r, c, func(n *Cell) {
				if n.Mine {
					cell.NeighborMines++
				}
			})
		}
	}
}

// eachNeighbor calls fn for every on-board cell adjacent to (row, col).
func (b *Board) eachNeighbor(row, col int, fn func(*Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if b.InBounds(r, c) {
				fn(&b.cells[r][c])
			}
		}
	}
}

// Reveal opens the cell at (row, col). Out-of-bounds, revealed and flagged
// cells are left alone. Opening a cell with no neighbouring mines spreads to
// the whole connected empty region and its numbered border.
//
// It returns how many cells were opened and whether the cell was a mine.
func (b *Board) Reveal(row, col int) (opened int, hitMine bool) {
	if !b.InBounds(row, col) {
		return 0, false
	}
	cell := &b.cells[row][col]
	if cell.Revealed || cell.Flagged {
		return 0, false
	}

	b.open(cell)
	if cell.Mine {
		return 1, true
	}
	opened = 1
	if cell.NeighborMines > 0 {
		return opened, false
	}

	// Cells are marked revealed when pushed, so Revealed is the only
	// visited marker and nothing is pushed twice.
	stack := []*Cell{cell}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.eachNeighbor(cur.Row, cur.Col, func(n *Cell) {
			if n.Revealed || n.Flagged || n.Mine {
				return
			}
			b.open(n)
			opened++
			if n.NeighborMines == 0 {
				stack = append(stack, n)
			}
		})
	}
	return opened, false
}

func (b *Board) open(c *Cell) {
	c.Revealed = true
	b.revealed++
}

// ToggleFlag flips the flag on an unrevealed cell and returns the change in
// flag count: +1, -1, or 0 when the cell is revealed or off the board.
func (b *Board) ToggleFlag(row, col int) int {
	if !b.InBounds(row, col) {
		return 0
	}
	cell := &b.cells[row][col]
	if cell.Revealed {
		return 0
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		b.flagged++
		return 1
	}
	b.flagged--
	return -1
}

// AdjacentFlags counts flagged neighbours of (row, col).
func (b *Board) AdjacentFlags(row, col int) int {
	n := 0
	if b.InBounds(row, col) {
		b.eachNeighbor(row, col, func(c *Cell) {
			if c.Flagged {
				n++
			}
		})
	}
	return n
}

// Chord opens every unflagged neighbour of a revealed number once the
// player has flagged as many neighbours as the number shows. It stops at
// the first mine, which only happens when a flag is misplaced.
func (b *Board) Chord(row, col int) (opened int, hitMine bool) {
	cell, ok := b.Cell(row, col)
	if !ok || !cell.Revealed || cell.Mine || cell.NeighborMines == 0 {
		return 0, false
	}
	if b.AdjacentFlags(row, col) != cell.NeighborMines {
		return 0, false
	}

	var targets []Pos
	b.eachNeighbor(row, col, func(n *Cell) {
		if !n.Revealed && !n.Flagged {
			targets = append(targets, Pos{n.Row, n.Col})
		}
	})
	for _, p := range targets {
		o, hit := b.Reveal(p.Row, p.Col)
		opened += o
		if hit {
			return opened, true
		}
	}
	return opened, false
}

// Mines returns the positions of all mines in row-major order.
func (b *Board) Mines() []Pos {
	out := make([]Pos, 0, b.mines)
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c].Mine {
				out = append(out, Pos{r, c})
			}
		}
	}
	return out
}
