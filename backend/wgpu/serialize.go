package wgpu

import "math"

// Byte serialization for GPU buffer upload. Layouts are little-endian
// and must match the struct declarations in smoke.wgsl.

// gpuVertexStride is the byte size of one GPUVertex.
const gpuVertexStride = 32

// verticesToBytes serializes vertices for the storage buffer.
func verticesToBytes(verts []GPUVertex) []byte {
	buf := make([]byte, len(verts)*gpuVertexStride)
	for i, v := range verts {
		off := i * gpuVertexStride
		writeFloat32(buf, off+0, v.X)
		writeFloat32(buf, off+4, v.Y)
		writeFloat32(buf, off+8, v.U)
		writeFloat32(buf, off+12, v.V)
		writeFloat32(buf, off+16, v.R)
		writeFloat32(buf, off+20, v.G)
		writeFloat32(buf, off+24, v.B)
		writeFloat32(buf, off+28, v.A)
	}
	return buf
}

// configToBytes serializes the config for the uniform buffer.
func configToBytes(cfg GPUComposeConfig) []byte {
	buf := make([]byte, 32)
	writeUint32(buf, 0, cfg.Width)
	writeUint32(buf, 4, cfg.Height)
	writeUint32(buf, 8, cfg.QuadCount)
	writeUint32(buf, 12, cfg.TexWidth)
	writeUint32(buf, 16, cfg.TexHeight)
	writeUint32(buf, 20, cfg.Padding1)
	writeUint32(buf, 24, cfg.Padding2)
	writeUint32(buf, 28, cfg.Padding3)
	return buf
}

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}
