// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is a continuous axis-aligned box in world units (runner phase).
// World units are logical pixels multiplied by the display scale.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the trailing (right) edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Viewport projects world units onto a region of screen cells.
type Viewport struct {
	Origin Rect    // Screen region the world is drawn into
	ScaleX float64 // Cells per world unit, horizontal
	ScaleY float64 // Cells per world unit, vertical
}

// FitViewport builds a viewport that stretches a worldW x worldH area over
// the given screen region.
func FitViewport(region Rect, worldW, worldH float64) Viewport {
	vp := Viewport{Origin: region}
	if worldW > 0 {
		vp.ScaleX = float64(region.W) / worldW
	}
	if worldH > 0 {
		vp.ScaleY = float64(region.H) / worldH
	}
	return vp
}

// Project converts a world box to the screen cells it covers.
// Any box with a visible extent covers at least one cell.
func (v Viewport) Project(b Box) Rect {
	x0 := v.Origin.X + int(math.Floor(b.X*v.ScaleX))
	y0 := v.Origin.Y + int(math.Floor(b.Y*v.ScaleY))
	x1 := v.Origin.X + int(math.Floor(b.Right()*v.ScaleX))
	y1 := v.Origin.Y + int(math.Floor(b.Bottom()*v.ScaleY))
	w := Max(1, x1-x0)
	h := Max(1, y1-y0)
	return NewRect(x0, y0, w, h)
}

// Unproject converts a screen cell back to world units (cell centre).
func (v Viewport) Unproject(x, y int) (float64, float64) {
	if v.ScaleX == 0 || v.ScaleY == 0 {
		return 0, 0
	}
	wx := (float64(x-v.Origin.X) + 0.5) / v.ScaleX
	wy := (float64(y-v.Origin.Y) + 0.5) / v.ScaleY
	return wx, wy
}

// ScaleRatio returns the display scale for a logical game area shown in a
// viewport: the limiting axis decides, so the whole game area stays visible.
func ScaleRatio(viewW, viewH, gameW, gameH float64) float64 {
	if viewW <= 0 || viewH <= 0 || gameW <= 0 || gameH <= 0 {
		return 1
	}
	if viewW/viewH < gameW/gameH {
		return viewW / gameW
	}
	return viewH / gameH
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
