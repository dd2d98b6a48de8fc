package smoke

import (
	"math"
	"sort"
)

// Move ingests one pointer-move event at the given render-clock time.
// It accumulates distance along the path and commits evenly spaced
// sample points once enough distance has been covered. The spacing is
// radius × spacing scale.
//
// Move returns true iff the committed sample sequence changed (points
// were appended or truncated); hosts use this as their redraw signal.
// Events arriving while the trail is not Active are silently dropped.
func (t *Trail) Move(pos Point, now float64) bool {
	if !t.active {
		return false
	}
	if !t.hasLast {
		t.last = pos
		t.lastT = now
		t.hasLast = true
	}

	delta := pos.Distance(t.last)
	t.carry += delta
	interval := t.style.interval()

	// carry stays below interval between emissions, so delta == 0
	// implies count == 0 and the division by delta below is safe.
	count := int(math.Floor(t.carry / interval))
	changed := false
	if count > 0 {
		dir := pos.Sub(t.last).Normalize()
		firstOffset := interval - (t.carry - delta)
		p := t.last.Add(dir.Mul(firstOffset))
		step := dir.Mul(interval)

		if t.truncateAfter(now) {
			changed = true
		}

		// Sample times interpolate along the segment from the previous
		// event time. The base is clamped into [last committed time,
		// now]: an out-of-order event leaves it above now, and a
		// non-emitting out-of-order event can rewind it below the last
		// committed sample. Either way appended times must keep the
		// sequence non-decreasing and never exceed the event time.
		baseT := t.lastT
		if baseT > now {
			baseT = now
		}
		if n := len(t.samples); n > 0 && t.samples[n-1].Time > baseT {
			baseT = t.samples[n-1].Time
		}
		for i := 0; i < count; i++ {
			offset := firstOffset + float64(i)*interval
			st := baseT + (offset/delta)*(now-baseT)
			t.samples = append(t.samples, Sample{Pos: p, Time: st})
			t.adaptBounds(p)
			p = p.Add(step)
		}
		changed = true
		t.carry = math.Mod(t.carry, interval)
	}

	t.last = pos
	t.lastT = now

	if now-t.startTime > t.style.maxDuration {
		Logger().Debug("smoke: watchdog ending trail",
			"elapsed", now-t.startTime, "max", t.style.maxDuration)
		t.End(now)
	}
	return changed
}

// truncateAfter repairs out-of-order timestamps: if the last committed
// sample is newer than now, every sample strictly newer than now is
// discarded and the bounding box is rebuilt from empty by replaying the
// survivors. Removal can only shrink the box, which an incremental
// update cannot detect, so the replay always starts from EmptyRect.
// Returns true if any samples were discarded.
func (t *Trail) truncateAfter(now float64) bool {
	n := len(t.samples)
	if n == 0 || t.samples[n-1].Time <= now {
		return false
	}
	idx := sort.Search(n, func(i int) bool {
		return t.samples[i].Time > now
	})
	t.samples = t.samples[:idx]

	t.bounds = EmptyRect()
	for _, s := range t.samples {
		t.adaptBounds(s.Pos)
	}
	return true
}

// adaptBounds widens the bounding box toward pos, at most one direction
// per axis per call. The else-if chain is deliberate: a point below the
// min is never also checked against the max in the same call. With the
// empty (inverted) bounds sentinel this means the first committed point
// only establishes the min corner; the max corner follows on a later
// point. Replacing this with independent min/max clamps would change
// observable layout.
func (t *Trail) adaptBounds(pos Point) {
	if pos.X < t.bounds.Min.X {
		t.bounds.Min.X = pos.X
	} else if pos.X > t.bounds.Max.X {
		t.bounds.Max.X = pos.X
	}
	if pos.Y < t.bounds.Min.Y {
		t.bounds.Min.Y = pos.Y
	} else if pos.Y > t.bounds.Max.Y {
		t.bounds.Max.Y = pos.Y
	}
}
