package smoke

import (
	"math"
	"testing"
)

func testSnapshot(samples []Sample, seed int64) Snapshot {
	return Snapshot{
		Samples:  samples,
		Radius:   10,
		DrawSize: Pt(100, 100),
		Seed:     seed,
		Now:      100,
	}
}

func TestQuadBuilder_EmptySnapshot(t *testing.T) {
	snap := testSnapshot(nil, 1)
	batch := NewBatch()
	NewQuadBuilder().Build(&snap, Identity(), batch)
	if batch.Len() != 0 {
		t.Errorf("vertices = %d, want 0 for empty snapshot", batch.Len())
	}
}

func TestQuadBuilder_OneQuadPerPoint(t *testing.T) {
	snap := testSnapshot([]Sample{
		{Pos: Pt(10, 10), Time: 1},
		{Pos: Pt(20, 10), Time: 2},
		{Pos: Pt(30, 10), Time: 3},
	}, 1)
	batch := NewBatch()
	NewQuadBuilder().Build(&snap, Identity(), batch)

	if batch.QuadCount() != 3 {
		t.Fatalf("quads = %d, want 3", batch.QuadCount())
	}
	if batch.Len() != 12 {
		t.Errorf("vertices = %d, want 12", batch.Len())
	}
}

// TestQuadBuilder_Determinism: identical snapshot point lists and seed
// produce bit-identical geometry, across frames and across builders.
func TestQuadBuilder_Determinism(t *testing.T) {
	samples := []Sample{
		{Pos: Pt(5, 5), Time: 1},
		{Pos: Pt(15, 8), Time: 2},
		{Pos: Pt(25, 3), Time: 3},
		{Pos: Pt(40, 19), Time: 4},
	}
	snap := testSnapshot(samples, 12345)

	builder := NewQuadBuilder()
	frame1 := NewBatch()
	builder.Build(&snap, Identity(), frame1)
	frame2 := NewBatch()
	builder.Build(&snap, Identity(), frame2)

	other := NewBatch()
	NewQuadBuilder().Build(&snap, Identity(), other)

	if frame1.Len() != frame2.Len() || frame1.Len() != other.Len() {
		t.Fatalf("vertex counts differ: %d, %d, %d",
			frame1.Len(), frame2.Len(), other.Len())
	}
	for i := range frame1.Vertices() {
		if frame1.Vertices()[i] != frame2.Vertices()[i] {
			t.Fatalf("vertex %d differs between frames: %+v != %+v",
				i, frame1.Vertices()[i], frame2.Vertices()[i])
		}
		if frame1.Vertices()[i] != other.Vertices()[i] {
			t.Fatalf("vertex %d differs between builders", i)
		}
	}
}

func TestQuadBuilder_SeedChangesOrientation(t *testing.T) {
	samples := []Sample{{Pos: Pt(50, 50), Time: 1}}

	a := testSnapshot(samples, 1)
	b := testSnapshot(samples, 2)

	batchA := NewBatch()
	batchB := NewBatch()
	builder := NewQuadBuilder()
	builder.Build(&a, Identity(), batchA)
	builder.Build(&b, Identity(), batchB)

	same := true
	for i := range batchA.Vertices() {
		if batchA.Vertices()[i].Pos != batchB.Vertices()[i].Pos {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced identical corner positions")
	}
}

// TestQuadBuilder_QuadShape: regardless of the random orientation, the
// four corners form a square of side 2r centered on the (origin-offset)
// point, each corner at distance r*sqrt(2) from the center.
func TestQuadBuilder_QuadShape(t *testing.T) {
	origin := Pt(3, 4)
	snap := testSnapshot([]Sample{{Pos: Pt(50, 60), Time: 1}}, 77)
	snap.Origin = origin

	batch := NewBatch()
	NewQuadBuilder().Build(&snap, Identity(), batch)
	tl, tr, bl, br := batch.Quad(0)

	center := Pt(
		(tl.Pos.X+tr.Pos.X+bl.Pos.X+br.Pos.X)/4,
		(tl.Pos.Y+tr.Pos.Y+bl.Pos.Y+br.Pos.Y)/4,
	)
	wantCenter := Pt(50, 60).Sub(origin)
	if !center.Approx(wantCenter, 1e-9) {
		t.Errorf("quad center = %v, want %v", center, wantCenter)
	}

	wantDist := snap.Radius * math.Sqrt2
	for i, v := range []Vertex{tl, tr, bl, br} {
		d := v.Pos.Distance(center)
		if math.Abs(d-wantDist) > 1e-9 {
			t.Errorf("corner %d distance = %v, want %v", i, d, wantDist)
		}
	}

	// Opposite corners are diagonal: tl+br == tr+bl.
	if !tl.Pos.Add(br.Pos).Approx(tr.Pos.Add(bl.Pos), 1e-9) {
		t.Errorf("corners not a parallelogram: tl+br=%v tr+bl=%v",
			tl.Pos.Add(br.Pos), tr.Pos.Add(bl.Pos))
	}
}

func TestQuadBuilder_AppliesTransform(t *testing.T) {
	snap := testSnapshot([]Sample{{Pos: Pt(10, 10), Time: 1}}, 5)

	plain := NewBatch()
	moved := NewBatch()
	builder := NewQuadBuilder()
	builder.Build(&snap, Identity(), plain)
	builder.Build(&snap, Translate(100, -50), moved)

	for i := range plain.Vertices() {
		want := plain.Vertices()[i].Pos.Add(Pt(100, -50))
		got := moved.Vertices()[i].Pos
		if !got.Approx(want, 1e-9) {
			t.Errorf("vertex %d = %v, want %v", i, got, want)
		}
	}
}

// TestQuadBuilder_ColorCombine: vertex color is the component-wise
// product of the position and time policies.
func TestQuadBuilder_ColorCombine(t *testing.T) {
	snap := testSnapshot([]Sample{{Pos: Pt(10, 10), Time: 40}}, 5)
	snap.TimeColor = func(sampleTime, now float64) RGBA {
		if sampleTime != 40 || now != 100 {
			t.Errorf("time policy got (%v, %v), want (40, 100)", sampleTime, now)
		}
		return RGBAOf(1, 1, 1, 0.5)
	}
	snap.PositionColor = func(u, v float64) RGBA {
		if math.Abs(u-0.1) > 1e-9 || math.Abs(v-0.1) > 1e-9 {
			t.Errorf("position policy got (%v, %v), want (0.1, 0.1)", u, v)
		}
		return RGBAOf(0.5, 1, 0.25, 1)
	}

	batch := NewBatch()
	NewQuadBuilder().Build(&snap, Identity(), batch)
	want := RGBAOf(0.5, 1, 0.25, 0.5)
	for i, v := range batch.Vertices() {
		if v.Color != want {
			t.Errorf("vertex %d color = %+v, want %+v", i, v.Color, want)
		}
	}
}

// TestQuadBuilder_UVCorners: each corner maps to the matching corner of
// the texture's UV region.
func TestQuadBuilder_UVCorners(t *testing.T) {
	tex := NewTexture(NewPixmap(4, 4)).SubRegion(RectOf(0.25, 0.5, 0.75, 1.0))
	snap := testSnapshot([]Sample{{Pos: Pt(10, 10), Time: 1}}, 5)
	snap.Texture = tex

	batch := NewBatch()
	NewQuadBuilder().Build(&snap, Identity(), batch)
	tl, tr, bl, br := batch.Quad(0)

	checks := []struct {
		name string
		got  Point
		want Point
	}{
		{"tl", tl.UV, Pt(0.25, 0.5)},
		{"tr", tr.UV, Pt(0.75, 0.5)},
		{"bl", bl.UV, Pt(0.25, 1.0)},
		{"br", br.UV, Pt(0.75, 1.0)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s UV = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestQuadBuilder_NilTextureFallsBack(t *testing.T) {
	snap := testSnapshot([]Sample{{Pos: Pt(10, 10), Time: 1}}, 5)
	snap.Texture = nil

	batch := NewBatch()
	NewQuadBuilder().Build(&snap, Identity(), batch)
	if batch.QuadCount() != 1 {
		t.Fatalf("quads = %d, want 1 (missing texture must not fail)", batch.QuadCount())
	}
	tl, _, _, br := batch.Quad(0)
	if tl.UV != Pt(0, 0) || br.UV != Pt(1, 1) {
		t.Errorf("default texture UV region = %v..%v, want (0,0)..(1,1)", tl.UV, br.UV)
	}
}
