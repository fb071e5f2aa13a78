package minesweeper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
)

// Status is the state of a Minesweeper round.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether the round is over.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// Difficulty is a named board layout.
type Difficulty struct {
	Name  config.DifficultyPreset
	Rows  int
	Cols  int
	Mines int
}

// NewDifficulty builds a difficulty from a config preset.
func NewDifficulty(name config.DifficultyPreset, p config.BoardPreset) Difficulty {
	return Difficulty{Name: name, Rows: p.Rows, Cols: p.Cols, Mines: p.Mines}
}

// DefaultDifficulty returns one of the built-in layouts.
func DefaultDifficulty(name config.DifficultyPreset) Difficulty {
	return NewDifficulty(name, config.DefaultMinesweeperConfig().Preset(name))
}

// Engine runs one round of Minesweeper on top of a Board. Mines are laid on
// the first reveal so the opening click is always safe. Once the round is won
// or lost every further action is ignored.
type Engine struct {
	diff   Difficulty
	board  *Board
	rng    *rand.Rand
	status Status

	started  bool
	flags    int
	exploded *Pos

	now       time.Duration
	startedAt time.Duration
	endedAt   time.Duration
}

// NewEngine creates a fresh round with an empty board.
func NewEngine(d Difficulty, rng *rand.Rand) *Engine {
	return &Engine{
		diff:  d,
		board: NewBoard(d.Rows, d.Cols),
		rng:   rng,
	}
}

// Board exposes the board for rendering and inspection.
func (e *Engine) Board() *Board { return e.board }

// Difficulty returns the layout this round was created with.
func (e *Engine) Difficulty() Difficulty { return e.diff }

// Status returns the current round status.
func (e *Engine) Status() Status { return e.status }

// Started reports whether mines have been placed.
func (e *Engine) Started() bool { return e.started }

// FlagsRemaining is the configured mine count minus placed flags.
// It goes negative when the player over-flags.
func (e *Engine) FlagsRemaining() int { return e.diff.Mines - e.flags }

// Exploded returns the mine that ended a lost round.
func (e *Engine) Exploded() (Pos, bool) {
	if e.exploded == nil {
		return Pos{}, false
	}
	return *e.exploded, true
}

// SafeRevealed counts revealed cells that are not mines.
func (e *Engine) SafeRevealed() int {
	n := e.board.RevealedCount()
	if e.exploded != nil {
		n--
	}
	return n
}

// Advance moves the engine clock. The clock only feeds Elapsed.
func (e *Engine) Advance(now time.Duration) {
	e.now = now
}

// Elapsed is the time from the first reveal until now, or until the round ended.
func (e *Engine) Elapsed() time.Duration {
	switch {
	case !e.started:
		return 0
	case e.status.Terminal():
		return e.endedAt - e.startedAt
	default:
		return e.now - e.startedAt
	}
}

// Reveal opens a cell. The first reveal of a round lays the mines around it.
func (e *Engine) Reveal(row, col int) Status {
	if e.status.Terminal() {
		return e.status
	}
	cell, ok := e.board.Cell(row, col)
	if !ok || cell.Flagged || cell.Revealed {
		return e.status
	}

	if !e.started {
		e.board.PlaceMines(e.rng, row, col, e.diff.Mines)
		e.started = true
		e.startedAt = e.now
	}

	_, hit := e.board.Reveal(row, col)
	e.settle(hit, Pos{row, col})
	return e.status
}

// Chord opens the neighbours of a satisfied number.
func (e *Engine) Chord(row, col int) Status {
	if e.status.Terminal() || !e.started {
		return e.status
	}
	_, hit := e.board.Chord(row, col)
	if hit {
		// The mine that went off is the one the wrong flag was hiding next to.
		for _, p := range e.neighbors(row, col) {
			if c, _ := e.board.Cell(p.Row, p.Col); c.Mine && c.Revealed {
				e.settle(true, p)
				return e.status
			}
		}
	}
	e.settle(false, Pos{})
	return e.status
}

// ToggleFlag flags or unflags a hidden cell and returns the flag count delta.
func (e *Engine) ToggleFlag(row, col int) int {
	if e.status.Terminal() {
		return 0
	}
	delta := e.board.ToggleFlag(row, col)
	e.flags += delta
	return delta
}

func (e *Engine) settle(hit bool, at Pos) {
	switch {
	case hit:
		e.status = StatusLost
		e.exploded = &at
	case e.board.RevealedCount() == e.diff.Rows*e.diff.Cols-e.board.MineCount():
		e.status = StatusWon
	default:
		return
	}
	e.endedAt = e.now
}

func (e *Engine) neighbors(row, col int) []Pos {
	var out []Pos
	e.board.eachNeighbor(row, col, func(c *Cell) {
		out = append(out, Pos{c.Row, c.Col})
	})
	return out
}
