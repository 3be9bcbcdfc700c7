package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("bottom-right edge is exclusive")
	}
}

func TestScaleRatio(t *testing.T) {
	tests := []struct {
		name                       string
		viewW, viewH, gameW, gameH float64
		expected                   float64
	}{
		{"width limited", 400, 400, 800, 200, 0.5},
		{"height limited", 1600, 200, 800, 200, 1},
		{"exact fit", 1600, 400, 800, 200, 2},
		{"degenerate viewport", 0, 100, 800, 200, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ScaleRatio(tc.viewW, tc.viewH, tc.gameW, tc.gameH)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("ScaleRatio() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestViewportProject(t *testing.T) {
	vp := FitViewport(NewRect(0, 2, 80, 20), 800, 200)

	r := vp.Project(Box{X: 100, Y: 100, W: 50, H: 40})
	if r.X != 10 || r.Y != 12 || r.W != 5 || r.H != 4 {
		t.Errorf("Project() = %+v, expected {10 12 5 4}", r)
	}

	// Tiny boxes still occupy a cell
	tiny := vp.Project(Box{X: 0, Y: 0, W: 1, H: 1})
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny box projected to %+v, expected 1x1", tiny)
	}
}

func TestViewportUnproject(t *testing.T) {
	vp := FitViewport(NewRect(10, 0, 40, 20), 20, 20)

	x, y := vp.Unproject(10, 0)
	if math.Abs(x-0.25) > 1e-9 || math.Abs(y-0.5) > 1e-9 {
		t.Errorf("Unproject(10, 0) = (%v, %v), expected (0.25, 0.5)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should clamp to [0, 1]")
	}
}
