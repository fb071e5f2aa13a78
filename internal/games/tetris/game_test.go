package tetris

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
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
	if !registry.Exists(GameID) {
		t.Fatal("tetris not registered")
	}
	g := New()
	if g.ID() != "tetris" || g.Title() != "Tetris" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestFirstKeyOnlyStarts(t *testing.T) {
	g := newTestGame(t, 1)

	press(g)
	if g.Engine().State() != StateNotStarted {
		t.Fatal("an empty frame should not start the game")
	}

	x := g.Engine().Current().X
	press(g, core.ActionLeft)
	if g.Engine().State() != StatePlaying {
		t.Fatalf("state = %s, want playing", g.Engine().State())
	}
	if g.Engine().Current().X != x {
		t.Error("the starting key should not move the piece")
	}

	press(g, core.ActionLeft)
	if g.Engine().Current().X != x-1 {
		t.Error("keys after the start should move the piece")
	}
}

func TestGravityFollowsTicks(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionConfirm)

	// 60 ticks at 60 per second fall a hair short of one second.
	for i := 0; i < 60; i++ {
		press(g)
	}
	if y := g.Engine().Current().Y; y != 0 {
		t.Fatalf("y = %d before the first interval elapsed", y)
	}

	press(g)
	if y := g.Engine().Current().Y; y != 1 {
		t.Errorf("y = %d, want 1 after one interval", y)
	}
}

func TestPauseAndResume(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionConfirm)

	res := press(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	for i := 0; i < 300; i++ {
		press(g, core.ActionDown)
	}
	if g.Engine().Current().Y != 0 {
		t.Error("piece moved while paused")
	}

	res = press(g, core.ActionPause)
	if res.State.Paused {
		t.Error("expected game to resume")
	}
	press(g, core.ActionDown)
	if g.Engine().Current().Y != 1 {
		t.Error("soft drop should work after resume")
	}
}

func TestHardDropKey(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionConfirm)

	press(g, core.ActionPrimary)
	if g.Engine().Board().FilledCount() != 4 {
		t.Errorf("filled = %d, want 4 after a hard drop", g.Engine().Board().FilledCount())
	}
	if g.State().Score == 0 {
		t.Error("hard drop should score")
	}
}

func TestRotateKeys(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionRotate} {
		g := newTestGame(t, 3)
		press(g, core.ActionConfirm)

		before := g.Engine().Current().Piece.Rotated()
		press(g, a)
		if !reflect.DeepEqual(g.Engine().Current().Piece.Shape, before.Shape) {
			t.Errorf("%s should rotate the piece", a)
		}
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionConfirm)

	var res core.StepResult
	for i := 0; i < 200 && !res.State.GameOver; i++ {
		res = press(g, core.ActionPrimary)
	}
	if !res.State.GameOver {
		t.Fatal("stacking pieces in one column should end the game")
	}
	if res.State.Outcome != core.OutcomeNone {
		t.Errorf("outcome = %q, tetris has no win condition", res.State.Outcome)
	}

	snap := g.Snapshot()
	press(g, core.ActionLeft, core.ActionPrimary)
	if !reflect.DeepEqual(snap.Board, g.Snapshot().Board) {
		t.Error("input after game over changed the board")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("expected game over overlay")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 2024)
	g2 := newTestGame(t, 2024)

	script := []core.Action{
		core.ActionConfirm, core.ActionLeft, core.ActionRotate, core.ActionDown,
		core.ActionRight, core.ActionRight, core.ActionPrimary, core.ActionNone,
	}
	for i := 0; i < 600; i++ {
		a := script[i%len(script)]
		press(g1, a)
		press(g2, a)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed and inputs produced different games")
	}
}

func TestElapsedState(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionConfirm)
	for i := 0; i < 120; i++ {
		press(g)
	}

	if got := g.State().Elapsed; got < 1990*time.Millisecond || got > 2010*time.Millisecond {
		t.Errorf("elapsed = %v, want about 2s", got)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Press any key", "Score", "Next", "Pieces"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	press(g, core.ActionConfirm)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, string(ghostChar)) {
		t.Error("expected ghost piece")
	}
	if !strings.Contains(out, string(blockChar)) {
		t.Error("expected falling piece")
	}
}

func TestTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 30, ScreenH: 10})

	res := press(g, core.ActionConfirm)
	if !res.State.Paused {
		t.Error("a screen that is too small should pause the game")
	}
	if g.Engine().State() != StateNotStarted {
		t.Error("input should be ignored on a small screen")
	}

	g.Resize(80, 24)
	press(g, core.ActionConfirm)
	if g.Engine().State() != StatePlaying {
		t.Error("growing the screen should let the game start")
	}
}
