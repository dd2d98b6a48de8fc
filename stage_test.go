package smoke

import "testing"

func TestStage_BroadcastMove(t *testing.T) {
	stage := NewStage()
	a := stage.StartTrail(0, WithRadius(8))
	b := stage.StartTrail(0, WithRadius(8))

	stage.Move(Pt(0, 0), 0)
	if changed := stage.Move(Pt(20, 0), 20); !changed {
		t.Fatalf("broadcast Move changed = false, want true")
	}
	if a.Len() == 0 || b.Len() == 0 {
		t.Errorf("trails got %d and %d points, want both > 0", a.Len(), b.Len())
	}
}

func TestStage_EndIsBroadcastAndIdempotent(t *testing.T) {
	stage := NewStage()
	a := stage.StartTrail(0)
	b := stage.StartTrail(0)

	stage.End(30)
	stage.End(99)

	for i, tr := range []*Trail{a, b} {
		if !tr.Ended() {
			t.Errorf("trail %d not ended", i)
		}
		if tr.EndTime() != 30 {
			t.Errorf("trail %d endTime = %v, want 30", i, tr.EndTime())
		}
	}
}

func TestStage_UpdateReclaimsExpired(t *testing.T) {
	stage := NewStage()
	short := stage.StartTrail(0, WithAfterlife(100))
	long := stage.StartTrail(0, WithAfterlife(10_000))

	short.End(50)
	long.End(50)

	// short expires at 50+100+100 = 250; long at 50+10000+100.
	if n := stage.Update(200); n != 0 {
		t.Fatalf("Update(200) reclaimed %d, want 0", n)
	}
	if n := stage.Update(300); n != 1 {
		t.Fatalf("Update(300) reclaimed %d, want 1", n)
	}
	if stage.Len() != 1 {
		t.Errorf("live trails = %d, want 1", stage.Len())
	}

	// Reclaimed trails no longer receive broadcasts.
	if changed := stage.Move(Pt(100, 0), 310); changed {
		t.Errorf("Move after reclamation changed = true, want false (ended trail)")
	}
}

func TestStage_Unsubscribe(t *testing.T) {
	stage := NewStage()
	a := stage.StartTrail(0, WithRadius(8))
	stage.StartTrail(0, WithRadius(8))

	stage.Unsubscribe(a)
	if stage.Len() != 1 {
		t.Fatalf("trails = %d, want 1 after unsubscribe", stage.Len())
	}

	stage.Move(Pt(0, 0), 0)
	stage.Move(Pt(20, 0), 20)
	if a.Len() != 0 {
		t.Errorf("unsubscribed trail received %d points, want 0", a.Len())
	}
}

func TestStage_Snapshots(t *testing.T) {
	stage := NewStage()
	stage.StartTrail(0, WithRadius(8))
	stage.StartTrail(0, WithRadius(8))

	stage.Move(Pt(0, 0), 0)
	stage.Move(Pt(15, 0), 15)

	snaps := stage.Snapshots(20)
	if len(snaps) != 2 {
		t.Fatalf("snapshots = %d, want 2", len(snaps))
	}
	for i, s := range snaps {
		if s.Now != 20 {
			t.Errorf("snapshot %d Now = %v, want 20", i, s.Now)
		}
		if len(s.Samples) == 0 {
			t.Errorf("snapshot %d has no samples", i)
		}
	}
}

func TestStage_BoundsUnion(t *testing.T) {
	stage := NewStage()
	if !stage.Bounds().IsEmpty() {
		t.Errorf("empty stage bounds not empty")
	}

	a := stage.StartTrail(0, WithRadius(8))
	b := stage.StartTrail(0, WithRadius(8))

	// Drive the trails apart so their boxes differ.
	a.Move(Pt(0, 0), 0)
	a.Move(Pt(30, 0), 30)
	b.Move(Pt(100, 100), 0)
	b.Move(Pt(100, 130), 30)

	got := stage.Bounds()
	want := a.Bounds().Union(b.Bounds())
	if got != want {
		t.Errorf("stage bounds = %+v, want union %+v", got, want)
	}
}
