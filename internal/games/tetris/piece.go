package tetris

import "github.com/vovakirdan/mini-arcade/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

const kindCount = 7

var kindNames = [kindCount]string{"I", "O", "T", "L", "J", "S", "Z"}

// String returns the single-letter name of the piece.
func (k Kind) String() string {
	if k < 0 || int(k) >= kindCount {
		return "?"
	}
	return kindNames[k]
}

// Kinds returns every piece kind in canonical order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Spawn orientations. Rows run top to bottom.
var shapes = [kindCount][]string{
	KindI: {"####"},
	KindO: {"##", "##"},
	KindT: {"###", ".#."},
	KindL: {"###", "#.."},
	KindJ: {"###", "..#"},
	KindS: {"##.", ".##"},
	KindZ: {".##", "##."},
}

var kindColors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindL: core.ColorOrange,
	KindJ: core.ColorBlue,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
}

// Color returns the colour locked cells of this kind are drawn in.
func (k Kind) Color() core.Color {
	if k < 0 || int(k) >= kindCount {
		return core.ColorDefault
	}
	return kindColors[k]
}

// Piece is a tetromino in a particular orientation.
type Piece struct {
	Kind  Kind
	Shape [][]bool
}

// NewPiece returns the piece in its spawn orientation.
func NewPiece(k Kind) Piece {
	rows := shapes[k]
	shape := make([][]bool, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, ch := range row {
			shape[y][x] = ch == '#'
		}
	}
	return Piece{Kind: k, Shape: shape}
}

// Width returns the number of columns in the shape matrix.
func (p Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the number of rows in the shape matrix.
func (p Piece) Height() int {
	return len(p.Shape)
}

// Rotated returns the piece turned 90 degrees clockwise.
// An R x C shape becomes C x R with r[i][j] = s[R-1-j][i].
func (p Piece) Rotated() Piece {
	rows, cols := p.Height(), p.Width()
	out := make([][]bool, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range out[i] {
			out[i][j] = p.Shape[rows-1-j][i]
		}
	}
	return Piece{Kind: p.Kind, Shape: out}
}

// eachCell calls fn with the offset of every filled cell.
func (p Piece) eachCell(fn func(dx, dy int)) {
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				fn(dx, dy)
			}
		}
	}
}
