package smoke

import (
	"math"
	"testing"
)

func TestColorAtOffset_EdgeCases(t *testing.T) {
	two := []ColorStop{
		{Offset: 0, Color: Black},
		{Offset: 1, Color: White},
	}

	tests := []struct {
		name  string
		stops []ColorStop
		t     float64
		want  RGBA
	}{
		{"no stops", nil, 0.5, Transparent},
		{"single stop", []ColorStop{{Offset: 0.3, Color: Red}}, 0.9, Red},
		{"at first", two, 0, Black},
		{"at last", two, 1, White},
		{"below range pads", two, -1, Black},
		{"above range pads", two, 2, White},
		{"exact interior stop", []ColorStop{
			{Offset: 0, Color: Black},
			{Offset: 0.25, Color: Green},
			{Offset: 1, Color: White},
		}, 0.25, Green},
		{"coincident stops", []ColorStop{
			{Offset: 0.5, Color: Red},
			{Offset: 0.5, Color: Blue},
			{Offset: 1, Color: White},
		}, 0.5, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorAtOffset(tt.stops, tt.t, ExtendPad); got != tt.want {
				t.Errorf("colorAtOffset(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColorAtOffset_MidpointMonotone(t *testing.T) {
	stops := []ColorStop{
		{Offset: 0, Color: Black},
		{Offset: 1, Color: White},
	}
	// Linear-space interpolation is not a straight ramp in sRGB, but it
	// must stay strictly between the endpoints and be monotone.
	prev := -1.0
	for _, x := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		c := colorAtOffset(stops, x, ExtendPad)
		if c.R <= 0 || c.R >= 1 {
			t.Errorf("at %v: R = %v, want in (0, 1)", x, c.R)
		}
		if c.R <= prev {
			t.Errorf("at %v: R = %v not increasing (prev %v)", x, c.R, prev)
		}
		if math.Abs(c.R-c.G) > 1e-6 || math.Abs(c.R-c.B) > 1e-6 {
			t.Errorf("at %v: gray ramp has tinted components %+v", x, c)
		}
		prev = c.R
	}
}

func TestApplyExtendMode(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		mode ExtendMode
		want float64
	}{
		{"pad below", -0.5, ExtendPad, 0},
		{"pad above", 1.5, ExtendPad, 1},
		{"pad inside", 0.25, ExtendPad, 0.25},
		{"repeat", 1.25, ExtendRepeat, 0.25},
		{"repeat negative", -0.25, ExtendRepeat, 0.75},
		{"reflect forward", 0.25, ExtendReflect, 0.25},
		{"reflect mirrored", 1.25, ExtendReflect, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyExtendMode(tt.t, tt.mode); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("applyExtendMode(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}
