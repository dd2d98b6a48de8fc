// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/smoke"
)

// Software is the CPU rasterizer for smoke vertex batches. Each quad is
// split into two triangles and filled with edge-function coverage; UV
// and color are interpolated barycentrically, the texture is sampled
// with nearest filtering, and the result is composited source-over.
//
// Software is stateless and safe for concurrent use on distinct
// destination pixmaps.
type Software struct{}

// NewSoftware creates a software renderer.
func NewSoftware() *Software {
	return &Software{}
}

// Draw rasterizes the batch into dst. The texture is the one the
// batch's UVs address; nil falls back to the default opaque texture.
// An empty batch draws nothing.
func (r *Software) Draw(dst *smoke.Pixmap, batch *smoke.Batch, tex *smoke.Texture) {
	if batch == nil || batch.QuadCount() == 0 {
		return
	}
	if tex == nil {
		tex = smoke.DefaultTexture()
	}
	for i := 0; i < batch.QuadCount(); i++ {
		tl, tr, bl, br := batch.Quad(i)
		r.fillTriangle(dst, tex, tl, tr, bl)
		r.fillTriangle(dst, tex, tr, br, bl)
	}
}

// fillTriangle rasterizes one triangle with inclusive edge functions.
// Degenerate (zero-area) triangles are skipped.
func (r *Software) fillTriangle(dst *smoke.Pixmap, tex *smoke.Texture, v0, v1, v2 smoke.Vertex) {
	area := edge(v0.Pos, v1.Pos, v2.Pos)
	if area == 0 {
		return
	}
	// Keep a consistent winding so the edge tests below are sign-free.
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	minX := int(math.Floor(min3(v0.Pos.X, v1.Pos.X, v2.Pos.X)))
	maxX := int(math.Ceil(max3(v0.Pos.X, v1.Pos.X, v2.Pos.X)))
	minY := int(math.Floor(min3(v0.Pos.Y, v1.Pos.Y, v2.Pos.Y)))
	maxY := int(math.Ceil(max3(v0.Pos.Y, v1.Pos.Y, v2.Pos.Y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > dst.Width()-1 {
		maxX = dst.Width() - 1
	}
	if maxY > dst.Height()-1 {
		maxY = dst.Height() - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := smoke.Pt(float64(x)+0.5, float64(y)+0.5)
			w0 := edge(v1.Pos, v2.Pos, p)
			w1 := edge(v2.Pos, v0.Pos, p)
			w2 := edge(v0.Pos, v1.Pos, p)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			w0 /= area
			w1 /= area
			w2 /= area

			u := w0*v0.UV.X + w1*v1.UV.X + w2*v2.UV.X
			v := w0*v0.UV.Y + w1*v1.UV.Y + w2*v2.UV.Y
			texel := tex.Sample(u, v)

			c := smoke.RGBA{
				R: w0*v0.Color.R + w1*v1.Color.R + w2*v2.Color.R,
				G: w0*v0.Color.G + w1*v1.Color.G + w2*v2.Color.G,
				B: w0*v0.Color.B + w1*v1.Color.B + w2*v2.Color.B,
				A: w0*v0.Color.A + w1*v1.Color.A + w2*v2.Color.A,
			}
			dst.BlendPixel(x, y, texel.Mul(c))
		}
	}
}

// edge is the signed area of the parallelogram (b-a, c-a); its sign
// tells which side of edge ab the point c lies on.
func edge(a, b, c smoke.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
