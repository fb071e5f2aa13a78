package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPrimary) || f.Any() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionPrimary)
	if !f.Has(ActionPrimary) || !f.Any() {
		t.Error("Set should register the action")
	}

	clone := f.Clone()
	f.Clear()
	if f.Any() {
		t.Error("Clear should drop every action")
	}
	if !clone.Has(ActionPrimary) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameAnyIgnoresNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	if f.Any() {
		t.Error("ActionNone should not count as input")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionFlag, "Flag"},
		{ActionRotate, "Rotate"},
		{ActionChord, "Chord"},
		{Action(999), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
