package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"separate", NewRect(0, 0, 5, 5), NewRect(20, 20, 5, 5), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"same rect", NewRect(3, 3, 4, 4), NewRect(3, 3, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	if !r.Contains(10, 10) {
		t.Error("should contain top-left corner")
	}
	if !r.Contains(14, 14) {
		t.Error("should contain inner point")
	}
	if r.Contains(15, 15) {
		t.Error("should not contain bottom-right edge (exclusive)")
	}
	if r.Contains(9, 10) {
		t.Error("should not contain point left of rect")
	}
}

func TestBoxIntersects(t *testing.T) {
	a := NewBox(0, 0, 60, 10)
	b := NewBox(30, 5, 60, 10)
	if !a.Intersects(b) {
		t.Error("overlapping boxes should intersect")
	}

	c := NewBox(60, 0, 10, 10)
	if a.Intersects(c) {
		t.Error("edge-touching boxes should not intersect")
	}
}

func TestDist(t *testing.T) {
	if got := Dist(0, 0, 3, 4); math.Abs(got-5) > 1e-9 {
		t.Errorf("Dist(0,0,3,4) = %f, want 5", got)
	}
	if got := Dist(10, 10, 10, 10); got != 0 {
		t.Errorf("Dist to self = %f, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, want 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, want 0.5", got)
	}
	if got := ClampF(-1, 0, 1); got != 0 {
		t.Errorf("ClampF(-1, 0, 1) = %f, want 0", got)
	}
	if got := ClampF(2, 0, 1); got != 1 {
		t.Errorf("ClampF(2, 0, 1) = %f, want 1", got)
	}
}
