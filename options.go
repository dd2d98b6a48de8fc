package smoke

// Defaults for trail style parameters. Any malformed value passed
// through an Option is normalized to these at construction; the core
// never reports configuration errors.
const (
	// DefaultRadius is the sample point radius used when none is configured.
	DefaultRadius = 30.0

	// DefaultSpacingScale is the point-spacing multiplier: consecutive
	// samples are radius × DefaultSpacingScale apart along the path.
	DefaultSpacingScale = 7.0 / 8.0

	// DefaultMaxDuration is the watchdog limit in milliseconds. A trail
	// active for longer than this is force-ended at the next move.
	DefaultMaxDuration = 60_000.0

	// endBuffer is the fixed grace period in milliseconds added after
	// afterlife when computing a trail's expiry.
	endBuffer = 100.0
)

// style holds the immutable per-trail rendering parameters.
// It is fixed at trail construction and copied into every snapshot.
type style struct {
	radius        float64
	spacingScale  float64
	maxDuration   float64
	afterlife     float64
	seed          int64
	texture       *Texture
	drawSize      Point
	origin        Point
	timeColor     TimeColorFunc
	positionColor PositionColorFunc
}

// defaultStyle returns the baseline style before options are applied.
func defaultStyle() style {
	return style{
		radius:       DefaultRadius,
		spacingScale: DefaultSpacingScale,
		maxDuration:  DefaultMaxDuration,
		afterlife:    0,
		seed:         1,
	}
}

// normalize clamps malformed style values back to safe defaults.
// Configuration mistakes degrade to defaults instead of surfacing as
// errors (there is no error path in the core).
func (s *style) normalize() {
	if s.radius <= 0 {
		s.radius = DefaultRadius
	}
	if s.spacingScale <= 0 {
		s.spacingScale = DefaultSpacingScale
	}
	if s.maxDuration <= 0 {
		s.maxDuration = DefaultMaxDuration
	}
	if s.afterlife < 0 {
		s.afterlife = 0
	}
	if s.drawSize.X <= 0 {
		s.drawSize.X = 1
	}
	if s.drawSize.Y <= 0 {
		s.drawSize.Y = 1
	}
	if s.texture == nil {
		s.texture = DefaultTexture()
	}
	if s.timeColor == nil {
		s.timeColor = uniformTimeColor(White)
	}
	if s.positionColor == nil {
		s.positionColor = UniformColor(White)
	}
}

// interval returns the spacing between consecutive sample points.
func (s *style) interval() float64 {
	return s.radius * s.spacingScale
}

// Option configures a Trail during creation.
//
// Example:
//
//	trail := smoke.NewTrail(now,
//	    smoke.WithRadius(12),
//	    smoke.WithAfterlife(1500),
//	    smoke.WithTimeColor(smoke.AgeFade(1500)),
//	)
type Option func(*style)

// WithRadius sets the sample point radius (half the quad edge length).
// Non-positive values fall back to DefaultRadius.
func WithRadius(r float64) Option {
	return func(s *style) { s.radius = r }
}

// WithSpacingScale sets the point-spacing multiplier. The distance
// between consecutive samples is radius × scale. Non-positive values
// fall back to DefaultSpacingScale.
func WithSpacingScale(scale float64) Option {
	return func(s *style) { s.spacingScale = scale }
}

// WithMaxDuration sets the watchdog limit in milliseconds.
func WithMaxDuration(d float64) Option {
	return func(s *style) { s.maxDuration = d }
}

// WithAfterlife sets the grace period in milliseconds during which an
// ended trail still renders while fading, before it expires.
func WithAfterlife(d float64) Option {
	return func(s *style) { s.afterlife = d }
}

// WithRotationSeed sets the seed for per-frame quad orientations.
// The same seed and point sequence reproduce identical geometry.
func WithRotationSeed(seed int64) Option {
	return func(s *style) { s.seed = seed }
}

// WithTexture sets the texture mapped onto each quad.
// A nil texture falls back to DefaultTexture().
func WithTexture(tex *Texture) Option {
	return func(s *style) { s.texture = tex }
}

// WithDrawSize sets the trail's draw-area size, used to normalize local
// positions when sampling the position color policy.
func WithDrawSize(w, h float64) Option {
	return func(s *style) { s.drawSize = Pt(w, h) }
}

// WithOrigin sets the trail's local origin. Quad corners are offset by
// the origin so geometry is emitted in the trail's local space.
func WithOrigin(o Point) Option {
	return func(s *style) { s.origin = o }
}

// WithTimeColor sets the color-by-time policy (fade/age behavior).
func WithTimeColor(f TimeColorFunc) Option {
	return func(s *style) { s.timeColor = f }
}

// WithPositionColor sets the color-by-position policy.
func WithPositionColor(f PositionColorFunc) Option {
	return func(s *style) { s.positionColor = f }
}
