// Package wgpu provides GPU-accelerated trail compositing using WebGPU.
//
// The Rasterizer compiles an embedded WGSL compute shader with naga,
// builds the pipelines and layouts at construction, and composites
// smoke vertex batches into RGBA8 frames. Hosts inject the shared
// device and queue (see render.DeviceHandle); the package never
// creates a device of its own.
//
// Build with the nogpu tag to exclude this backend entirely.
package wgpu
