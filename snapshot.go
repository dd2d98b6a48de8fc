package smoke

// Snapshot is the immutable per-frame copy of a trail used to build
// geometry. It is the single synchronization boundary between the
// mutable Trail (update phase) and the render path: the sample slice is
// a full value copy, never shared, so the render phase can never
// observe a partially mutated sequence. A frame's geometry is fully
// determined by its snapshot.
type Snapshot struct {
	Samples []Sample

	Radius   float64
	DrawSize Point
	Origin   Point
	Texture  *Texture

	StartTime float64
	EndTime   float64
	Ended     bool

	Seed int64
	Now  float64

	TimeColor     TimeColorFunc
	PositionColor PositionColorFunc
}

// Snapshot captures the trail's current state for rendering at the
// given render-clock time. Call once per frame, before geometry
// generation; geometry builders read exclusively from the returned
// value and never touch live trail state.
func (t *Trail) Snapshot(now float64) Snapshot {
	samples := make([]Sample, len(t.samples))
	copy(samples, t.samples)
	return Snapshot{
		Samples:       samples,
		Radius:        t.style.radius,
		DrawSize:      t.style.drawSize,
		Origin:        t.style.origin,
		Texture:       t.style.texture,
		StartTime:     t.startTime,
		EndTime:       t.endTime,
		Ended:         t.ended,
		Seed:          t.style.seed,
		Now:           now,
		TimeColor:     t.style.timeColor,
		PositionColor: t.style.positionColor,
	}
}
