package smoke

// TimeColorFunc is the color-by-time policy: it maps a sample's
// timestamp and the current render-clock time to a color, typically a
// white with decaying alpha so older samples fade out. The result is
// multiplied component-wise with the position color.
type TimeColorFunc func(sampleTime, now float64) RGBA

// PositionColorFunc is the color-by-position policy: it maps a
// sample's local position, normalized by the draw-area size to
// (u, v) in [0, 1], to a color.
type PositionColorFunc func(u, v float64) RGBA

// uniformTimeColor returns a time policy that ignores age.
func uniformTimeColor(c RGBA) TimeColorFunc {
	return func(_, _ float64) RGBA { return c }
}

// UniformColor returns a position policy with a single flat color, for
// trails without a color gradient.
func UniformColor(c RGBA) PositionColorFunc {
	return func(_, _ float64) RGBA { return c }
}

// AgeFade returns a time policy whose alpha decays linearly with
// sample age: full at age 0, transparent once the age reaches
// fadeDuration. This is the afterlife fade — pair it with
// WithAfterlife(fadeDuration) so samples finish fading right as the
// trail expires. A non-positive duration yields a constant white.
func AgeFade(fadeDuration float64) TimeColorFunc {
	if fadeDuration <= 0 {
		return uniformTimeColor(White)
	}
	return func(sampleTime, now float64) RGBA {
		age := now - sampleTime
		return White.WithAlpha(clamp01(1 - age/fadeDuration))
	}
}

// GradientAxis selects which normalized coordinate drives a gradient.
type GradientAxis int

const (
	// AxisX samples the gradient by the horizontal coordinate.
	AxisX GradientAxis = iota
	// AxisY samples the gradient by the vertical coordinate.
	AxisY
)

// GradientAcross returns a position policy that samples a gradient
// along one axis of the draw area. Stops are sorted by offset;
// interpolation happens in linear sRGB space. Out-of-range coordinates
// are padded with the edge colors.
func GradientAcross(stops []ColorStop, axis GradientAxis) PositionColorFunc {
	sorted := sortStops(stops)
	return func(u, v float64) RGBA {
		t := u
		if axis == AxisY {
			t = v
		}
		return colorAtOffset(sorted, t, ExtendPad)
	}
}
