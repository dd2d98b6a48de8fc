package smoke

import (
	"math"
	"testing"
)

func TestEmptyRect(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Fatalf("EmptyRect not empty")
	}
	if !math.IsInf(r.Min.X, 1) || !math.IsInf(r.Max.X, -1) {
		t.Errorf("sentinel corners = %+v, want +Inf min, -Inf max", r)
	}
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("empty extent = %v x %v, want 0 x 0", r.Width(), r.Height())
	}
}

func TestRect_Union(t *testing.T) {
	a := RectOf(0, 0, 10, 10)
	b := RectOf(5, -5, 20, 8)

	got := a.Union(b)
	want := RectOf(0, -5, 20, 10)
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	// Empty rect is the identity element on both sides.
	if a.Union(EmptyRect()) != a {
		t.Errorf("Union with empty (right) changed rect")
	}
	if EmptyRect().Union(a) != a {
		t.Errorf("Union with empty (left) changed rect")
	}
}

func TestRect_UnionPoint(t *testing.T) {
	r := RectOf(0, 0, 10, 10)
	got := r.UnionPoint(Pt(-3, 15))
	want := RectOf(-3, 0, 10, 15)
	if got != want {
		t.Errorf("UnionPoint = %+v, want %+v", got, want)
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectOf(0, 0, 10, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(10, 10), true},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
