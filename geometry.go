package smoke

import (
	"math"
	"math/rand"
)

// QuadBuilder converts snapshot sample points into textured, colored
// quads. It owns an explicit pseudo-random generator that is reseeded
// from the snapshot's rotation seed once per Build, so the same seed
// and unchanged point sequence reproduce bit-identical orientations
// frame to frame. Never uses the global rand source.
//
// A QuadBuilder is not safe for concurrent use; give each render
// goroutine its own.
type QuadBuilder struct {
	src rand.Source
	rng *rand.Rand
}

// NewQuadBuilder creates a quad builder with its own generator.
func NewQuadBuilder() *QuadBuilder {
	src := rand.NewSource(1)
	return &QuadBuilder{
		src: src,
		rng: rand.New(src),
	}
}

// Build emits one quad per snapshot sample, in original sequence
// order, into the batch. The draw transform is applied to every corner
// before it is pushed. An empty snapshot emits no geometry.
//
// Build does not reset the batch, so several snapshots can be
// accumulated into a single batch per frame.
func (q *QuadBuilder) Build(snap *Snapshot, transform Matrix, batch *Batch) {
	if len(snap.Samples) == 0 {
		return
	}

	// Reseed once per frame. One draw per point, in order, keeps
	// orientations stable across frames for an unchanged sequence.
	q.src.Seed(snap.Seed)

	tex := snap.Texture
	if tex == nil {
		Logger().Warn("smoke: snapshot has no texture, using default")
		tex = DefaultTexture()
	}
	uv := tex.Region()

	timeColor := snap.TimeColor
	if timeColor == nil {
		timeColor = uniformTimeColor(White)
	}
	posColor := snap.PositionColor
	if posColor == nil {
		posColor = UniformColor(White)
	}
	drawSize := snap.DrawSize
	if drawSize.X <= 0 {
		drawSize.X = 1
	}
	if drawSize.Y <= 0 {
		drawSize.Y = 1
	}

	r := snap.Radius
	for _, s := range snap.Samples {
		angle := q.rng.Float64() * 2 * math.Pi
		dir := V2(math.Sin(angle), -math.Cos(angle))
		ortho := dir.Perp()

		p := s.Pos.Sub(snap.Origin)
		tl := p.Add(ortho.Neg().Sub(dir).Mul(r).ToPoint())
		tr := p.Add(ortho.Neg().Add(dir).Mul(r).ToPoint())
		bl := p.Add(ortho.Sub(dir).Mul(r).ToPoint())
		br := p.Add(ortho.Add(dir).Mul(r).ToPoint())

		tc := timeColor(s.Time, snap.Now)
		pc := posColor(p.X/drawSize.X, p.Y/drawSize.Y)
		color := pc.Mul(tc)

		batch.PushQuad(
			Vertex{Pos: transform.TransformPoint(tl), UV: uv.Min, Color: color},
			Vertex{Pos: transform.TransformPoint(tr), UV: Pt(uv.Max.X, uv.Min.Y), Color: color},
			Vertex{Pos: transform.TransformPoint(bl), UV: Pt(uv.Min.X, uv.Max.Y), Color: color},
			Vertex{Pos: transform.TransformPoint(br), UV: uv.Max, Color: color},
		)
	}
}
