package minesweeper

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

func newTestGame(t *testing.T, preset config.DifficultyPreset, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New(preset)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"minesweeper", "minesweeper_medium", "minesweeper_hard"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}

	info, ok := registry.Info("minesweeper_hard")
	if !ok || info.Parent != GameID {
		t.Errorf("minesweeper_hard should be a variant of %s, got %+v", GameID, info)
	}
}

func TestIDAndTitle(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		id     string
		title  string
	}{
		{config.DifficultyEasy, "minesweeper", "Minesweeper"},
		{config.DifficultyMedium, "minesweeper_medium", "Minesweeper (Medium)"},
		{config.DifficultyHard, "minesweeper_hard", "Minesweeper (Hard)"},
	}

	for _, tt := range tests {
		g := New(tt.preset)
		if g.ID() != tt.id {
			t.Errorf("ID() = %q, want %q", g.ID(), tt.id)
		}
		if g.Title() != tt.title {
			t.Errorf("Title() = %q, want %q", g.Title(), tt.title)
		}
	}
}

func TestResetCentersCursor(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy, 1)

	if g.Cursor() != (Pos{4, 4}) {
		t.Errorf("cursor = %v, want {4 4}", g.Cursor())
	}
	if g.Engine().Started() {
		t.Error("no mines should exist before the first reveal")
	}
}

func TestFirstOpenScenario(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy, 42)

	res := press(g, core.ActionPrimary)

	b := g.Engine().Board()
	if b.MineCount() != 10 {
		t.Fatalf("mine count = %d, want 10", b.MineCount())
	}
	cell, _ := b.Cell(4, 4)
	if cell.Mine || !cell.Revealed {
		t.Errorf("opening cell should be revealed and safe, got %+v", cell)
	}
	if res.State.GameOver {
		t.Error("game should still be running")
	}
	if res.State.Score != b.RevealedCount() {
		t.Errorf("score = %d, want revealed count %d", res.State.Score, b.RevealedCount())
	}
}

func TestCursorClamps(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy, 1)

	for i := 0; i < 20; i++ {
		press(g, core.ActionUp, core.ActionLeft)
	}
	if g.Cursor() != (Pos{0, 0}) {
		t.Errorf("cursor = %v, want {0 0}", g.Cursor())
	}

	for i := 0; i < 20; i++ {
		press(g, core.ActionDown, core.ActionRight)
	}
	if g.Cursor() != (Pos{8, 8}) {
		t.Errorf("cursor = %v, want {8 8}", g.Cursor())
	}
}

func TestFlagAction(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy, 1)

	press(g, core.ActionFlag)
	if g.Engine().FlagsRemaining() != 9 {
		t.Errorf("flags remaining = %d, want 9", g.Engine().FlagsRemaining())
	}

	// A flagged cell cannot be opened.
	press(g, core.ActionPrimary)
	if g.Engine().Started() {
		t.Error("opening a flagged cell should do nothing")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy, 3)

	press(g, core.ActionPrimary)
	for i := 0; i < 59; i++ {
		press(g)
	}
	before := g.State().Elapsed

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 120; i++ {
		press(g, core.ActionPrimary, core.ActionDown)
	}
	if g.State().Elapsed != before {
		t.Errorf("elapsed changed while paused: %v -> %v", before, g.State().Elapsed)
	}
	if g.Cursor() != (Pos{4, 4}) {
		t.Error("input should be ignored while paused")
	}

	press(g, core.ActionPause)
	press(g)
	if g.State().Elapsed <= before {
		t.Error("clock should run again after resume")
	}
}

func TestElapsedTracksTicks(t *testing.T) {
	g := newTestGame(t, config.DifficultyHard, 9)

	press(g, core.ActionPrimary)
	for i := 0; i < 60; i++ {
		press(g)
	}

	if got := g.State().Elapsed; got < 990*time.Millisecond || got > 1010*time.Millisecond {
		t.Errorf("elapsed = %v, want about 1s", got)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, config.DifficultyMedium, 777)
	g2 := newTestGame(t, config.DifficultyMedium, 777)

	script := []core.Action{
		core.ActionPrimary, core.ActionRight, core.ActionRight, core.ActionFlag,
		core.ActionDown, core.ActionPrimary, core.ActionLeft, core.ActionChord,
	}
	for i := 0; i < 200; i++ {
		a := script[i%len(script)]
		press(g1, a)
		press(g2, a)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed and inputs produced different games")
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t, config.DifficultyHard, 1)
	g2 := newTestGame(t, config.DifficultyHard, 2)

	press(g1, core.ActionPrimary)
	press(g2, core.ActionPrimary)

	if reflect.DeepEqual(g1.Snapshot().Mines, g2.Snapshot().Mines) {
		t.Error("different seeds should lay different mines")
	}
}

func TestTooSmallScreen(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := New(config.DifficultyHard)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 10})

	res := press(g, core.ActionPrimary)
	if !res.State.Paused {
		t.Error("a screen that is too small should pause the game")
	}
	if g.Engine().Started() {
		t.Error("input should be ignored on a small screen")
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected size warning")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Minesweeper", "Mines: 010", "Time: 00:00", string(hiddenChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderHardFits(t *testing.T) {
	g := newTestGame(t, config.DifficultyHard, 1)
	if g.tooSmall {
		t.Fatal("hard board should fit an 80x24 terminal")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Mines: 099") {
		t.Error("expected hard mine counter")
	}
}

func TestLostRoundEndsGame(t *testing.T) {
	g := newTestGame(t, config.DifficultyEasy, 1)
	g.engine = riggedEngine(9, 9, Pos{4, 4})

	res := press(g, core.ActionPrimary)
	if !res.State.GameOver || res.State.Outcome != core.OutcomeLost {
		t.Fatalf("expected lost game, got %+v", res.State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "BOOM!") {
		t.Error("expected loss overlay")
	}

	// Pause has no effect once the round is over.
	press(g, core.ActionPause)
	if g.State().Paused {
		t.Error("finished round should not pause")
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name   string
		cell   Cell
		status Status
		want   rune
	}{
		{"hidden", Cell{}, StatusPlaying, hiddenChar},
		{"empty", Cell{Revealed: true}, StatusPlaying, emptyChar},
		{"number", Cell{Revealed: true, NeighborMines: 3}, StatusPlaying, '3'},
		{"flag", Cell{Flagged: true}, StatusPlaying, flagChar},
		{"hidden mine while playing", Cell{Mine: true}, StatusPlaying, hiddenChar},
		{"hidden mine after loss", Cell{Mine: true}, StatusLost, mineChar},
		{"wrong flag after loss", Cell{Flagged: true}, StatusLost, wrongFlag},
		{"right flag after loss", Cell{Flagged: true, Mine: true}, StatusLost, flagChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := glyph(tt.cell, tt.status)
			if got != tt.want {
				t.Errorf("glyph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(125 * time.Second); got != "02:05" {
		t.Errorf("formatClock = %q, want 02:05", got)
	}
}
