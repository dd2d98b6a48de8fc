package smoke

// Sample is one discrete time+position sample along a trail.
type Sample struct {
	Pos  Point
	Time float64
}

// Trail is the mutable per-pointer-session state: the committed sample
// sequence, its lifecycle, timing, and bounding box. A Trail is owned
// by the update phase; the render phase only ever sees Snapshots.
//
// Lifecycle: Uninitialized (zero value, drops all events) → Active
// (NewTrail) → Ending (End or watchdog) → Expired (once the render
// clock passes endTime + afterlife + a fixed buffer).
type Trail struct {
	style style

	samples []Sample
	bounds  Rect

	startTime float64
	endTime   float64
	active    bool
	ended     bool

	// sampling state
	carry   float64
	last    Point
	lastT   float64
	hasLast bool
}

// NewTrail attaches a new trail at the given render-clock time and
// transitions it to Active. Malformed option values are normalized to
// defaults, never reported.
func NewTrail(now float64, opts ...Option) *Trail {
	s := defaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	s.normalize()
	return &Trail{
		style:     s,
		bounds:    EmptyRect(),
		startTime: now,
		active:    true,
	}
}

// Active reports whether the trail still accepts move events.
func (t *Trail) Active() bool {
	return t.active
}

// Ended reports whether the trail has been ended (explicitly or by the
// watchdog).
func (t *Trail) Ended() bool {
	return t.ended
}

// StartTime returns the render-clock time the trail was attached.
func (t *Trail) StartTime() float64 {
	return t.startTime
}

// EndTime returns the render-clock time the trail ended, or 0 if it is
// still active.
func (t *Trail) EndTime() float64 {
	return t.endTime
}

// Len returns the number of committed sample points.
func (t *Trail) Len() int {
	return len(t.samples)
}

// Bounds returns the current bounding box of the committed samples.
// The box is empty until the first point is committed. Hosts use it to
// size and position the trail's drawable region.
func (t *Trail) Bounds() Rect {
	return t.bounds
}

// End transitions the trail out of the Active state. The first call
// records endTime; repeated calls and calls on an inactive trail are
// no-ops, so End is idempotent.
func (t *Trail) End(now float64) {
	if !t.active {
		return
	}
	t.active = false
	t.ended = true
	t.endTime = now
	Logger().Debug("smoke: trail ended",
		"endTime", now, "points", len(t.samples))
}

// expiry returns the render-clock time after which the trail is
// eligible for reclamation. Only meaningful once ended.
func (t *Trail) expiry() float64 {
	return t.endTime + t.style.afterlife + endBuffer
}

// Expired reports whether the trail has ended and its afterlife plus
// the fixed post-end buffer have elapsed. Hosts reclaim expired trails
// lazily on a later update tick.
func (t *Trail) Expired(now float64) bool {
	return t.ended && now > t.expiry()
}
