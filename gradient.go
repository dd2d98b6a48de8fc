package smoke

import (
	"math"
	"sort"

	"github.com/gogpu/smoke/internal/colorspace"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns a copy of stops sorted by offset.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// interpolateColorLinear performs linear interpolation between two
// colors in linear sRGB space, which blends perceptually better than
// interpolating gamma-encoded values.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	l1 := colorspace.SRGBToLinearColor(colorspace.Color{
		R: float32(c1.R), G: float32(c1.G), B: float32(c1.B), A: float32(c1.A),
	})
	l2 := colorspace.SRGBToLinearColor(colorspace.Color{
		R: float32(c2.R), G: float32(c2.G), B: float32(c2.B), A: float32(c2.A),
	})

	t32 := float32(t)
	mixed := colorspace.Color{
		R: l1.R + t32*(l2.R-l1.R),
		G: l1.G + t32*(l2.G-l1.G),
		B: l1.B + t32*(l2.B-l1.B),
		A: l1.A + t32*(l2.A-l1.A),
	}

	out := colorspace.LinearToSRGBColor(mixed)
	return RGBA{
		R: float64(out.R),
		G: float64(out.G),
		B: float64(out.B),
		A: float64(out.A),
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
// Callers should pre-sort stops; unsorted input is sorted defensively.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := stops
	if !sort.SliceIsSorted(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	}) {
		sorted = sortStops(stops)
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}
	// Exact stop hits bypass interpolation so stop colors come back
	// bit-exact rather than through the float32 sRGB round-trip.
	if sorted[idx].Offset == t {
		return sorted[idx].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}
