// Package smoke renders decaying pointer trails.
//
// # Overview
//
// smoke converts a stream of pointer-move events into a continuously
// updated visual trail: evenly spaced sample points placed along the
// pointer's path, each rendered as a camera-facing textured quad with a
// deterministic per-frame orientation. It is designed as a satellite
// library of the GoGPU ecosystem and follows the same conventions as
// github.com/gogpu/gg.
//
// # Quick Start
//
//	import "github.com/gogpu/smoke"
//
//	stage := smoke.NewStage()
//	trail := stage.StartTrail(0, smoke.WithRadius(8))
//
//	// Feed pointer events (positions in local coordinates, times in ms).
//	trail.Move(smoke.Pt(10, 0), 10)
//	trail.Move(smoke.Pt(20, 0), 20)
//	trail.End(30)
//
//	// Once per frame: capture a snapshot and build geometry from it.
//	snap := trail.Snapshot(30)
//	batch := smoke.NewBatch()
//	smoke.NewQuadBuilder().Build(&snap, smoke.Identity(), batch)
//
// # Architecture
//
// The update phase mutates Trail state (sampling, lifecycle, bounds);
// the render phase reads only an immutable per-frame Snapshot. The
// snapshot copy is the sole hand-off between the two phases, so a
// frame's geometry is fully determined by its snapshot.
//
// Renderers live in sub-packages:
//   - render/ — CPU rasterizer for Batch output, GPU device injection
//   - backend/wgpu/ — WebGPU compute rasterizer
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin at top-left,
// X increases right, Y increases down, angles in radians.
// Timestamps and durations are float64 milliseconds on the host's
// render clock.
package smoke

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
