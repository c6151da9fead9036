package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoundsSize(t *testing.T) {
	b := NewBounds(480, 640)
	if b.Width() != 480 || b.Height() != 640 {
		t.Errorf("size = %vx%v, expected 480x640", b.Width(), b.Height())
	}
}

func TestRectFClosestPoint(t *testing.T) {
	r := RectF{X: 10, Y: 10, W: 20, H: 10}

	tests := []struct {
		name   string
		px, py float64
		ex, ey float64
	}{
		{"inside", 15, 15, 15, 15},
		{"left of", 0, 15, 10, 15},
		{"above right", 40, 0, 30, 10},
		{"below", 20, 50, 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := r.ClosestPoint(tc.px, tc.py)
			if x != tc.ex || y != tc.ey {
				t.Errorf("ClosestPoint(%v, %v) = (%v, %v), expected (%v, %v)", tc.px, tc.py, x, y, tc.ex, tc.ey)
			}
		})
	}
}

func TestRectFIntersectsCircle(t *testing.T) {
	r := RectF{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name     string
		cx, cy   float64
		radius   float64
		expected bool
	}{
		{"center inside", 5, 5, 1, true},
		{"touching edge", 12, 5, 2, true},
		{"just outside edge", 12.01, 5, 2, false},
		{"corner within radius", 12, 12, 3, true},
		{"corner outside radius", 13, 13, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.IntersectsCircle(tc.cx, tc.cy, tc.radius); got != tc.expected {
				t.Errorf("IntersectsCircle() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecFromAngle(t *testing.T) {
	tests := []struct {
		angle  float64
		ex, ey float64
	}{
		{0, 300, 0},
		{-90, 0, -300},
		{90, 0, 300},
		{180, -300, 0},
	}

	for _, tc := range tests {
		v := VecFromAngle(tc.angle, 300)
		if math.Abs(v.X-tc.ex) > 1e-9 || math.Abs(v.Y-tc.ey) > 1e-9 {
			t.Errorf("VecFromAngle(%v) = %+v, expected (%v, %v)", tc.angle, v, tc.ex, tc.ey)
		}
		if math.Abs(v.Len()-300) > 1e-9 {
			t.Errorf("VecFromAngle(%v) length = %v, expected 300", tc.angle, v.Len())
		}
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
