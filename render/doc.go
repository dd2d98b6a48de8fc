// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides renderers for smoke vertex batches.
//
// Software rasterizes batches on the CPU into a smoke.Pixmap; it is
// the reference path and needs no GPU. DeviceHandle is the injection
// seam for hosts that share a GPU device with the WebGPU backend in
// backend/wgpu.
package render
