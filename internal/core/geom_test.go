package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name         string
		areaW, areaH int
		w, h         int
		wantX, wantY int
	}{
		{"fits", 80, 24, 22, 22, 29, 1},
		{"exact", 10, 10, 10, 10, 0, 0},
		{"too small", 10, 5, 20, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.areaW, tc.areaH, tc.w, tc.h)
			if r.X != tc.wantX || r.Y != tc.wantY {
				t.Errorf("CenteredRect origin = (%d, %d), expected (%d, %d)", r.X, r.Y, tc.wantX, tc.wantY)
			}
			if r.W != tc.w || r.H != tc.h {
				t.Errorf("CenteredRect size = %dx%d, expected %dx%d", r.W, r.H, tc.w, tc.h)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampFloat(t *testing.T) {
	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		dx, dy int
		want   Rect
	}{
		{"box border", NewRect(4, 2, 22, 12), 1, 1, NewRect(5, 3, 20, 10)},
		{"padding", NewRect(0, 0, 21, 11), 2, 1, NewRect(2, 1, 17, 9)},
		{"collapses", NewRect(3, 3, 2, 1), 2, 2, NewRect(5, 5, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.dx, tc.dy); got != tc.want {
				t.Errorf("Inset(%d, %d) = %+v, expected %+v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestRectGridCell(t *testing.T) {
	r := NewRect(10, 4, 20, 20)

	tests := []struct {
		col, row, cellW int
		wantX, wantY    int
	}{
		{0, 0, 2, 10, 4},
		{3, 5, 2, 16, 9},
		{9, 19, 2, 28, 23},
		{4, 1, 1, 14, 5},
	}

	for _, tc := range tests {
		x, y := r.GridCell(tc.col, tc.row, tc.cellW)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("GridCell(%d, %d, %d) = (%d, %d), expected (%d, %d)",
				tc.col, tc.row, tc.cellW, x, y, tc.wantX, tc.wantY)
		}
	}
}
