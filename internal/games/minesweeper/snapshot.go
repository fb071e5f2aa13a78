package minesweeper

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Difficulty    string
	Status        string
	Cursor        Pos
	Mines         []Pos
	Revealed      int
	Flagged       int
	FlagsLeft     int
	Elapsed       time.Duration
	Paused        bool
	VisibleCounts [][]int // -1 hidden, -2 flagged, -3 mine, otherwise neighbour count
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	b := g.engine.Board()

	visible := make([][]int, b.Rows())
	for r := range visible {
		visible[r] = make([]int, b.Cols())
		for c := range visible[r] {
			cell, _ := b.Cell(r, c)
			switch {
			case cell.Flagged:
				visible[r][c] = -2
			case !cell.Revealed:
				visible[r][c] = -1
			case cell.Mine:
				visible[r][c] = -3
			default:
				visible[r][c] = cell.NeighborMines
			}
		}
	}

	return Snapshot{
		Tick:          g.tick,
		Difficulty:    string(g.preset),
		Status:        g.engine.Status().String(),
		Cursor:        g.Cursor(),
		Mines:         b.Mines(),
		Revealed:      b.RevealedCount(),
		Flagged:       b.FlaggedCount(),
		FlagsLeft:     g.engine.FlagsRemaining(),
		Elapsed:       g.engine.Elapsed(),
		Paused:        g.paused,
		VisibleCounts: visible,
	}
}
