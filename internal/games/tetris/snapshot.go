package tetris

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	State   State
	Score   int
	Lines   int
	Level   int
	Kind    Kind
	X, Y    int
	Shape   [][]bool
	Next    Kind
	Board   [][]int // Kind+1 per cell, 0 for empty
	Stats   map[Kind]int
	Elapsed time.Duration
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	cur := e.Current()
	return Snapshot{
		Tick:    g.tick,
		State:   e.State(),
		Score:   e.Score(),
		Lines:   e.Lines(),
		Level:   e.Level(),
		Kind:    cur.Piece.Kind,
		X:       cur.X,
		Y:       cur.Y,
		Shape:   cur.Piece.Shape,
		Next:    e.Next().Kind,
		Board:   e.Board().Rows(),
		Stats:   e.Stats(),
		Elapsed: e.Elapsed(),
	}
}
