package minesweeper

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mini-arcade/internal/config"
)

// riggedEngine returns a started engine with mines at fixed positions.
func riggedEngine(rows, cols int, mines ...Pos) *Engine {
	d := Difficulty{Name: config.DifficultyEasy, Rows: rows, Cols: cols, Mines: len(mines)}
	e := NewEngine(d, rand.New(rand.NewSource(1)))
	e.board.SetMines(mines...)
	e.started = true
	return e
}

func TestEngineFirstRevealIsSafe(t *testing.T) {
	d := DefaultDifficulty(config.DifficultyEasy)
	e := NewEngine(d, rand.New(rand.NewSource(42)))

	require.False(t, e.Started())
	require.Zero(t, e.Board().MineCount(), "mines are laid on the first reveal")

	status := e.Reveal(4, 4)

	assert.True(t, e.Started())
	assert.Equal(t, StatusPlaying, status)
	assert.Equal(t, 10, e.Board().MineCount())
	assert.Len(t, e.Board().Mines(), 10)

	cell, _ := e.Board().Cell(4, 4)
	assert.False(t, cell.Mine)
	assert.True(t, cell.Revealed)
}

func TestEngineFirstRevealSafeForEverySeed(t *testing.T) {
	d := DefaultDifficulty(config.DifficultyHard)
	for seed := int64(0); seed < 50; seed++ {
		e := NewEngine(d, rand.New(rand.NewSource(seed)))
		r, c := int(seed)%d.Rows, int(seed*7)%d.Cols

		status := e.Reveal(r, c)
		require.NotEqual(t, StatusLost, status, "seed %d at (%d,%d)", seed, r, c)
		require.Equal(t, d.Mines, e.Board().MineCount())
	}
}

func TestEngineRevealOnFlaggedCellDoesNotStart(t *testing.T) {
	e := NewEngine(DefaultDifficulty(config.DifficultyEasy), rand.New(rand.NewSource(1)))

	e.ToggleFlag(0, 0)
	e.Reveal(0, 0)

	assert.False(t, e.Started())
	assert.Zero(t, e.Board().MineCount())
}

func TestEngineWinWhenAllSafeCellsOpen(t *testing.T) {
	// 2x2 with one mine: every safe cell is a 1, so each reveal opens one cell.
	e := riggedEngine(2, 2, Pos{0, 0})

	assert.Equal(t, StatusPlaying, e.Reveal(0, 1))
	assert.Equal(t, StatusPlaying, e.Reveal(1, 0))
	assert.Equal(t, StatusWon, e.Reveal(1, 1))
	assert.Equal(t, 3, e.SafeRevealed())
}

func TestEngineWinByFloodFill(t *testing.T) {
	e := riggedEngine(3, 3, Pos{0, 0})

	assert.Equal(t, StatusWon, e.Reveal(2, 2))
	assert.Equal(t, 8, e.Board().RevealedCount())
}

func TestEngineWinIgnoresFlags(t *testing.T) {
	e := riggedEngine(2, 2, Pos{0, 0})

	// Flags are neither needed nor counted.
	e.ToggleFlag(1, 1)
	e.Reveal(0, 1)
	e.Reveal(1, 0)
	assert.Equal(t, StatusPlaying, e.Status())

	e.ToggleFlag(1, 1)
	assert.Equal(t, StatusWon, e.Reveal(1, 1))
}

func TestEngineLoss(t *testing.T) {
	e := riggedEngine(3, 3, Pos{0, 0})

	assert.Equal(t, StatusLost, e.Reveal(0, 0))

	at, ok := e.Exploded()
	require.True(t, ok)
	assert.Equal(t, Pos{0, 0}, at)
	assert.Zero(t, e.SafeRevealed())
}

func TestEngineTerminalRejectsActions(t *testing.T) {
	e := riggedEngine(3, 3, Pos{0, 0})
	e.Reveal(0, 0)
	require.Equal(t, StatusLost, e.Status())

	revealed := e.Board().RevealedCount()

	assert.Equal(t, StatusLost, e.Reveal(2, 2))
	assert.Zero(t, e.ToggleFlag(1, 1))
	assert.Equal(t, StatusLost, e.Chord(1, 1))
	assert.Equal(t, revealed, e.Board().RevealedCount())
	assert.Zero(t, e.Board().FlaggedCount())
}

func TestEngineFlagsRemaining(t *testing.T) {
	e := riggedEngine(3, 3, Pos{0, 0})

	assert.Equal(t, 1, e.FlagsRemaining())
	assert.Equal(t, 1, e.ToggleFlag(0, 0))
	assert.Zero(t, e.FlagsRemaining())
	assert.Equal(t, 1, e.ToggleFlag(2, 2))
	assert.Equal(t, -1, e.FlagsRemaining(), "over-flagging goes negative")
	assert.Equal(t, -1, e.ToggleFlag(2, 2))
	assert.Zero(t, e.FlagsRemaining())
}

func TestEngineChordLoss(t *testing.T) {
	e := riggedEngine(3, 3, Pos{0, 0})
	e.Reveal(1, 1)
	e.ToggleFlag(2, 2)

	assert.Equal(t, StatusLost, e.Chord(1, 1))
	at, ok := e.Exploded()
	require.True(t, ok)
	assert.Equal(t, Pos{0, 0}, at)
}

func TestEngineChordWin(t *testing.T) {
	e := riggedEngine(3, 3, Pos{0, 0})
	e.Reveal(1, 1)
	e.ToggleFlag(0, 0)

	assert.Equal(t, StatusWon, e.Chord(1, 1))
}

func TestEngineElapsed(t *testing.T) {
	e := NewEngine(DefaultDifficulty(config.DifficultyEasy), rand.New(rand.NewSource(5)))

	e.Advance(time.Second)
	assert.Zero(t, e.Elapsed(), "clock starts on the first reveal")

	e.Advance(2 * time.Second)
	e.Reveal(4, 4)
	e.Advance(5 * time.Second)
	assert.Equal(t, 3*time.Second, e.Elapsed())
}

func TestEngineElapsedFreezesWhenOver(t *testing.T) {
	e := riggedEngine(3, 3, Pos{0, 0})

	e.Advance(4 * time.Second)
	e.Reveal(0, 0)
	e.Advance(10 * time.Second)

	assert.Equal(t, 4*time.Second, e.Elapsed())
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		name     string
		terminal bool
	}{
		{StatusPlaying, "playing", false},
		{StatusWon, "won", true},
		{StatusLost, "lost", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.status.String())
		assert.Equal(t, tt.terminal, tt.status.Terminal())
	}
}
