package tetris

// empty marks a free board cell. Filled cells store Kind+1.
const empty = 0

// Board is the playfield. Row 0 is the top.
type Board struct {
	width  int
	height int
	cells  [][]uint8
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height, cells: make([][]uint8, height)}
	for y := range b.cells {
		b.cells[y] = make([]uint8, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Filled reports whether (x, y) holds a locked cell. Cells off the board are
// never filled.
func (b *Board) Filled(x, y int) bool {
	_, ok := b.KindAt(x, y)
	return ok
}

// KindAt returns the kind of the piece that filled (x, y).
func (b *Board) KindAt(x, y int) (Kind, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || b.cells[y][x] == empty {
		return 0, false
	}
	return Kind(b.cells[y][x] - 1), true
}

// IsValidPosition reports whether p fits with its top-left corner at (x, y).
// Every filled cell must be inside the side walls and above the floor.
// Cells above the top edge are allowed and skip the occupancy check.
func (b *Board) IsValidPosition(p Piece, x, y int) bool {
	valid := true
	p.eachCell(func(dx, dy int) {
		cx, cy := x+dx, y+dy
		switch {
		case cx < 0 || cx >= b.width || cy >= b.height:
			valid = false
		case cy >= 0 && b.cells[cy][cx] != empty:
			valid = false
		}
	})
	return valid
}

// Merge writes p into the board. Cells above the top edge are dropped.
func (b *Board) Merge(p Piece, x, y int) {
	p.eachCell(func(dx, dy int) {
		cx, cy := x+dx, y+dy
		if cy >= 0 && cy < b.height && cx >= 0 && cx < b.width {
			b.cells[cy][cx] = uint8(p.Kind) + 1
		}
	})
}

// ClearLines removes every full row and returns how many were removed.
// Rows are scanned from the bottom; after a removal the same index is checked
// again because the row above has moved into it.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]uint8, b.width)
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == empty {
			return false
		}
	}
	return true
}

// FilledCount returns the number of locked cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != empty {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the board as Kind+1 values, 0 for empty.
func (b *Board) Rows() [][]int {
	out := make([][]int, b.height)
	for y, row := range b.cells {
		out[y] = make([]int, b.width)
		for x, c := range row {
			out[y][x] = int(c)
		}
	}
	return out
}
