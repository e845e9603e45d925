package core

import (
	"math"
	"testing"
)

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(10, 10, 20, 10)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"interior", Vec2{X: 15, Y: 15}, true},
		{"min corner inclusive", Vec2{X: 10, Y: 10}, true},
		{"max corner exclusive", Vec2{X: 30, Y: 20}, false},
		{"right edge exclusive", Vec2{X: 30, Y: 15}, false},
		{"left of rect", Vec2{X: 9.9, Y: 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%v)=%v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Intersect(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	disjoint := a.Intersect(NewRect(20, 20, 5, 5))
	if !disjoint.IsEmpty() {
		t.Errorf("disjoint intersection should be empty, got %+v", disjoint)
	}
}

func TestRectIntersectUnbounded(t *testing.T) {
	r := NewRect(3, 4, 10, 10)
	if got := r.Intersect(Unbounded); got != r {
		t.Errorf("intersect with Unbounded = %+v, want %+v", got, r)
	}
}

func TestRectInflate(t *testing.T) {
	r := NewRect(5, 5, 10, 10).Inflate(2)
	if r.Min.X != 3 || r.Min.Y != 3 || r.Max.X != 17 || r.Max.Y != 17 {
		t.Errorf("Inflate(2) = %+v", r)
	}
}

func TestVec2Helpers(t *testing.T) {
	v := Vec2{X: 3, Y: -4}

	if got := v.Add(Vec2{X: 1, Y: 1}); got != (Vec2{X: 4, Y: -3}) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.ClampMin(); got != (Vec2{X: 3, Y: 0}) {
		t.Errorf("ClampMin = %+v", got)
	}
	if (Vec2{X: math.NaN(), Y: 0}).IsFinite() {
		t.Error("NaN vector should not be finite")
	}
	if !(Vec2{X: 1, Y: 2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
}
