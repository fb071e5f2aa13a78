// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "cmp"

// Rect is an axis-aligned area on the screen, used for layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by dx columns on each side and dy rows on
// top and bottom. The size never goes below zero.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: max(0, r.W-2*dx),
		H: max(0, r.H-2*dy),
	}
}

// GridCell returns the screen position of grid cell (col, row) inside r,
// where every cell is cellW columns wide and one row tall.
func (r Rect) GridCell(col, row, cellW int) (x, y int) {
	return r.X + col*cellW, r.Y + row
}

// CenteredRect returns a w×h rectangle centered inside an area of the given size.
// The origin is clamped to zero when the area is smaller than the rectangle.
func CenteredRect(areaW, areaH, w, h int) Rect {
	return NewRect(max(0, (areaW-w)/2), max(0, (areaH-h)/2), w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return min(max(val, lo), hi)
}
