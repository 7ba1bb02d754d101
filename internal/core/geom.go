// Package core provides platform-neutral types shared by the game and the
// terminal platform: the screen buffer, colors, input actions and clamps.
// It has no dependency on Bubble Tea so game code stays testable.
package core

import "cmp"

// Rect is a block of screen cells: origin at the top-left, size in cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered returns a w x h rectangle in the middle of an outerW x outerH area.
func Centered(outerW, outerH, w, h int) Rect {
	return Rect{X: (outerW - w) / 2, Y: (outerH - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Inset shrinks the rectangle by dx columns on each side and dy rows on
// top and bottom. Size never goes below zero.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: max(r.W-2*dx, 0),
		H: max(r.H-2*dy, 0),
	}
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
