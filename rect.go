package smoke

import "math"

// Rect represents an axis-aligned rectangle defined by min/max corners.
// It is used both for trail bounding boxes (in local coordinates) and
// for texture UV regions (in [0,1] texture space).
type Rect struct {
	Min, Max Point
}

// EmptyRect returns the empty bounds sentinel: an inverted rectangle
// whose min corner is +Inf and max corner is -Inf. Widening an empty
// rect with any point produces valid bounds; see Trail bounds handling
// for the exact widening rule.
func EmptyRect() Rect {
	return Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
}

// RectOf creates a rectangle from explicit corner coordinates.
func RectOf(minX, minY, maxX, maxY float64) Rect {
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}
}

// IsEmpty returns true if the rectangle is inverted on either axis.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the horizontal extent, or 0 for an empty rect.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent, or 0 for an empty rect.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}

// Contains reports whether the point lies inside the rectangle
// (inclusive on all edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both r and s.
// An empty rect is the identity element.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		Min: Pt(math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)),
		Max: Pt(math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)),
	}
}

// UnionPoint returns the smallest rectangle containing r and p.
// Unlike the trail's widening rule this is a symmetric min/max clamp.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: Pt(math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)),
		Max: Pt(math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)),
	}
}
