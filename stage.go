package smoke

import "sync"

// Stage is the visual-effects container: it broadcasts pointer events
// to its subscribed trails and drives the per-frame update/render
// split. Subscription is explicit — StartTrail subscribes a trail and
// the reclamation sweep in Update unsubscribes it once expired.
//
// The mutex guards only the subscriber list and the snapshot-copy
// boundary. Hosts whose scheduler never runs update and render
// concurrently pay a handful of uncontended lock operations per frame;
// hosts that do render concurrently get a safe hand-off, since all
// geometry work downstream of Snapshots operates on copies.
type Stage struct {
	mu     sync.Mutex
	trails []*Trail
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// StartTrail attaches a new trail at the given render-clock time and
// subscribes it to the stage's pointer events. Each pointer session
// gets its own trail; concurrent sessions coexist with independent
// styles.
func (s *Stage) StartTrail(now float64, opts ...Option) *Trail {
	t := NewTrail(now, opts...)
	s.mu.Lock()
	s.trails = append(s.trails, t)
	s.mu.Unlock()
	Logger().Debug("smoke: trail attached", "startTime", now)
	return t
}

// Unsubscribe detaches a trail from the stage without waiting for
// expiry. The trail itself is untouched; it simply stops receiving
// broadcast events.
func (s *Stage) Unsubscribe(t *Trail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.trails {
		if st == t {
			s.trails = append(s.trails[:i], s.trails[i+1:]...)
			return
		}
	}
}

// Move broadcasts a pointer-move event to every subscribed trail.
// Returns true if any trail's committed sequence changed (the stage's
// redraw signal).
func (s *Stage) Move(pos Point, now float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for _, t := range s.trails {
		if t.Move(pos, now) {
			changed = true
		}
	}
	return changed
}

// End broadcasts a pointer-end event to every subscribed trail.
// Ending is idempotent per trail.
func (s *Stage) End(now float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trails {
		t.End(now)
	}
}

// Update runs the update-phase housekeeping for one frame: expired
// trails are unsubscribed (lazy reclamation). Returns the number of
// trails reclaimed.
func (s *Stage) Update(now float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.trails[:0]
	reclaimed := 0
	for _, t := range s.trails {
		if t.Expired(now) {
			reclaimed++
			continue
		}
		kept = append(kept, t)
	}
	// Drop references past the kept prefix so reclaimed trails can be
	// collected.
	for i := len(kept); i < len(s.trails); i++ {
		s.trails[i] = nil
	}
	s.trails = kept
	if reclaimed > 0 {
		Logger().Debug("smoke: trails reclaimed", "count", reclaimed, "live", len(kept))
	}
	return reclaimed
}

// Snapshots captures the render-phase input for one frame: one
// snapshot per live trail, in subscription order. The copies are the
// only state the render phase may touch.
func (s *Stage) Snapshots(now float64) []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snaps := make([]Snapshot, 0, len(s.trails))
	for _, t := range s.trails {
		snaps = append(snaps, t.Snapshot(now))
	}
	return snaps
}

// Bounds returns the union of all live trails' bounding boxes, for
// hosts sizing a single drawable region around every trail.
func (s *Stage) Bounds() Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	bounds := EmptyRect()
	for _, t := range s.trails {
		bounds = bounds.Union(t.Bounds())
	}
	return bounds
}

// Len returns the number of subscribed trails.
func (s *Stage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trails)
}
