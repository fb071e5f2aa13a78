// Package minesweeper implements classic Minesweeper: a pure board engine with
// safe first click and iterative flood fill, plus the arcade adapter that
// drives it with a cursor.
package minesweeper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// GameID is the registry ID of the easy board. Harder boards are variants.
const GameID = "minesweeper"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// IDFor returns the registry ID for a difficulty.
func IDFor(d config.DifficultyPreset) string {
	if d == config.DifficultyEasy || d == "" {
		return GameID
	}
	return GameID + "_" + string(d)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(config.DifficultyEasy)
	})
	for _, d := range config.Difficulties()[1:] {
		registry.RegisterVariant(GameID, IDFor(d), func() registry.Game {
			return New(d)
		})
	}
}

// Game adapts the Minesweeper engine to the arcade platform.
type Game struct {
	preset config.DifficultyPreset
	engine *Engine

	cursorRow int
	cursorCol int

	tick     uint64
	tickDur  time.Duration
	clock    time.Duration // Advances only while unpaused
	paused   bool
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Minesweeper game for the given difficulty.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDFor(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == config.DifficultyEasy {
		return "Minesweeper"
	}
	return "Minesweeper (" + g.preset.Title() + ")"
}

// Reset discards the current round and starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	msCfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		msCfg = config.DefaultMinesweeperConfig()
	}

	d := NewDifficulty(g.preset, msCfg.Preset(g.preset))
	g.engine = NewEngine(d, rand.New(rand.NewSource(cfg.Seed)))

	g.cursorRow = d.Rows / 2
	g.cursorCol = d.Cols / 2
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.clock = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Cursor returns the highlighted cell.
func (g *Game) Cursor() Pos {
	return Pos{g.cursorRow, g.cursorCol}
}

// Resize updates the screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := boardFootprint(g.engine.Difficulty())
	g.tooSmall = g.screenW < w || g.screenH < h+hudRows+footerRows
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.Status().Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock += g.tickDur
	g.engine.Advance(g.clock)

	if g.engine.Status().Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionPrimary), in.Has(core.ActionConfirm):
		g.engine.Reveal(g.cursorRow, g.cursorCol)
	case in.Has(core.ActionFlag):
		g.engine.ToggleFlag(g.cursorRow, g.cursorCol)
	case in.Has(core.ActionChord):
		g.engine.Chord(g.cursorRow, g.cursorCol)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	d := g.engine.Difficulty()
	if in.Has(core.ActionUp) {
		g.cursorRow--
	}
	if in.Has(core.ActionDown) {
		g.cursorRow++
	}
	if in.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, d.Rows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, d.Cols-1)
}

// State returns the current game state.
// The score is the number of safely opened cells.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:   g.engine.SafeRevealed(),
		Paused:  g.paused || g.tooSmall,
		Elapsed: g.engine.Elapsed(),
	}
	switch g.engine.Status() {
	case StatusWon:
		st.GameOver = true
		st.Outcome = core.OutcomeWon
	case StatusLost:
		st.GameOver = true
		st.Outcome = core.OutcomeLost
	}
	return st
}
