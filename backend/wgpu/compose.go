package wgpu

import "github.com/gogpu/smoke"

// GPUVertex is the GPU-compatible layout of smoke.Vertex.
// Must match the Vertex struct in smoke.wgsl (32 bytes).
type GPUVertex struct {
	X, Y float32 // Position
	U, V float32 // Texture coordinate
	R, G float32 // Color red/green
	B, A float32 // Color blue/alpha
}

// GPUComposeConfig contains GPU compositing configuration.
// Must match Config in smoke.wgsl (32 bytes).
type GPUComposeConfig struct {
	Width     uint32 // Output width in pixels
	Height    uint32 // Output height in pixels
	QuadCount uint32 // Number of quads in the vertex buffer
	TexWidth  uint32 // Texture width in texels
	TexHeight uint32 // Texture height in texels
	Padding1  uint32 // Padding for alignment
	Padding2  uint32 // Padding for alignment
	Padding3  uint32 // Padding for alignment
}

// convertVertices flattens a batch into the GPU vertex layout.
func convertVertices(batch *smoke.Batch) []GPUVertex {
	src := batch.Vertices()
	out := make([]GPUVertex, len(src))
	for i, v := range src {
		out[i] = GPUVertex{
			X: float32(v.Pos.X), Y: float32(v.Pos.Y),
			U: float32(v.UV.X), V: float32(v.UV.Y),
			R: float32(v.Color.R), G: float32(v.Color.G),
			B: float32(v.Color.B), A: float32(v.Color.A),
		}
	}
	return out
}

// textureTexels returns the texture's pixel data as the packed RGBA8
// layout the shader reads, plus its dimensions.
func textureTexels(tex *smoke.Texture) ([]uint8, int, int) {
	pm := tex.Pixmap()
	if pm == nil || pm.Width() == 0 || pm.Height() == 0 {
		return []uint8{0xFF, 0xFF, 0xFF, 0xFF}, 1, 1
	}
	return pm.Data(), pm.Width(), pm.Height()
}

// composeCPU mirrors the cs_clear + cs_compose kernels on the CPU.
// It serves as the reference implementation and fallback, and lets the
// compositing algorithm be tested without a GPU.
func composeCPU(cfg GPUComposeConfig, verts []GPUVertex, texels []uint8) []uint8 {
	out := make([]uint8, int(cfg.Width)*int(cfg.Height)*4)
	if cfg.QuadCount == 0 {
		return out
	}

	for y := uint32(0); y < cfg.Height; y++ {
		for x := uint32(0); x < cfg.Width; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			var acc [4]float32
			for q := uint32(0); q < cfg.QuadCount; q++ {
				base := q * 4
				if int(base)+3 >= len(verts) {
					break
				}
				tl := verts[base]
				tr := verts[base+1]
				bl := verts[base+2]
				br := verts[base+3]
				acc = shadeTriangle(px, py, tl, tr, bl, acc, cfg, texels)
				acc = shadeTriangle(px, py, tr, br, bl, acc, cfg, texels)
			}

			idx := (int(y)*int(cfg.Width) + int(x)) * 4
			out[idx+0] = packComponent(acc[0])
			out[idx+1] = packComponent(acc[1])
			out[idx+2] = packComponent(acc[2])
			out[idx+3] = packComponent(acc[3])
		}
	}
	return out
}

// shadeTriangle mirrors shade_triangle in smoke.wgsl: edge-function
// coverage, barycentric UV/color interpolation, nearest texture sample,
// source-over blend onto dst.
func shadeTriangle(px, py float32, v0, v1, v2 GPUVertex, dst [4]float32, cfg GPUComposeConfig, texels []uint8) [4]float32 {
	area := edgeF32(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area == 0 {
		return dst
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}
	w0 := edgeF32(v1.X, v1.Y, v2.X, v2.Y, px, py)
	w1 := edgeF32(v2.X, v2.Y, v0.X, v0.Y, px, py)
	w2 := edgeF32(v0.X, v0.Y, v1.X, v1.Y, px, py)
	if w0 < 0 || w1 < 0 || w2 < 0 {
		return dst
	}
	w0 /= area
	w1 /= area
	w2 /= area

	u := w0*v0.U + w1*v1.U + w2*v2.U
	v := w0*v0.V + w1*v1.V + w2*v2.V
	texel := sampleTexels(u, v, cfg, texels)

	col := [4]float32{
		(w0*v0.R + w1*v1.R + w2*v2.R) * texel[0],
		(w0*v0.G + w1*v1.G + w2*v2.G) * texel[1],
		(w0*v0.B + w1*v1.B + w2*v2.B) * texel[2],
		(w0*v0.A + w1*v1.A + w2*v2.A) * texel[3],
	}

	outA := col[3] + dst[3]*(1-col[3])
	if outA == 0 {
		return [4]float32{}
	}
	return [4]float32{
		(col[0]*col[3] + dst[0]*dst[3]*(1-col[3])) / outA,
		(col[1]*col[3] + dst[1]*dst[3]*(1-col[3])) / outA,
		(col[2]*col[3] + dst[2]*dst[3]*(1-col[3])) / outA,
		outA,
	}
}

// sampleTexels mirrors sample_texture in smoke.wgsl.
func sampleTexels(u, v float32, cfg GPUComposeConfig, texels []uint8) [4]float32 {
	u = clampF32(u, 0, 1)
	v = clampF32(v, 0, 1)
	x := uint32(u * float32(cfg.TexWidth))
	y := uint32(v * float32(cfg.TexHeight))
	if x >= cfg.TexWidth {
		x = cfg.TexWidth - 1
	}
	if y >= cfg.TexHeight {
		y = cfg.TexHeight - 1
	}
	idx := (int(y)*int(cfg.TexWidth) + int(x)) * 4
	if idx+3 >= len(texels) {
		return [4]float32{1, 1, 1, 1}
	}
	return [4]float32{
		float32(texels[idx+0]) / 255,
		float32(texels[idx+1]) / 255,
		float32(texels[idx+2]) / 255,
		float32(texels[idx+3]) / 255,
	}
}

func edgeF32(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

func packComponent(c float32) uint8 {
	s := clampF32(c, 0, 1)*255 + 0.5
	if s > 255 {
		s = 255
	}
	return uint8(s)
}

func clampF32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
