// Package tetris implements falling-block Tetris: a board and piece engine
// driven by explicit time, a looplab/fsm lifecycle, and the arcade adapter
// that feeds it ticks and keys.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// GameID is the registry ID.
const GameID = "tetris"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts the Tetris engine to the arcade platform.
type Game struct {
	engine *Engine

	tick     uint64
	tickDur  time.Duration
	clock    time.Duration // Advances only while playing
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Tetris game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset discards the current game and sets up a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tCfg, err := config.LoadTetris(configPath)
	if err != nil {
		tCfg = config.DefaultTetrisConfig()
	}

	source := NewRandomSource(rand.New(rand.NewSource(cfg.Seed)))
	g.engine = NewEngine(RulesFromConfig(tCfg), source)

	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.clock = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := layoutSize(g.engine.Rules())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.engine.State() {
	case StateNotStarted:
		// The key that starts the game does nothing else.
		if in.Any() {
			g.engine.Start(g.clock)
		}
	case StatePaused:
		if in.Has(core.ActionPause) {
			g.engine.Resume(g.clock)
		}
	case StatePlaying:
		g.clock += g.tickDur
		if in.Has(core.ActionPause) {
			g.engine.Pause()
			break
		}
		g.applyInput(in)
		g.engine.Advance(g.clock)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.engine.Move(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.engine.Move(1, 0)
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionRotate) {
		g.engine.Rotate()
	}
	if in.Has(core.ActionDown) {
		g.engine.Move(0, 1)
	}
	if in.Has(core.ActionPrimary) {
		g.engine.HardDrop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: st == StateOver,
		Paused:   st == StatePaused || g.tooSmall,
		Elapsed:  g.engine.Elapsed(),
	}
}
