// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
	if handle.AdapterInfo().Type != gpucontext.AdapterTypeUnknown {
		t.Error("NullDeviceHandle.AdapterInfo() should report an unknown adapter")
	}
}

func TestDeviceHandleAlias(t *testing.T) {
	// DeviceHandle is an alias for gpucontext.DeviceProvider; this is
	// a compile-time compatibility check.
	handle := NullDeviceHandle{}

	var dh DeviceHandle = handle
	if dh.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}

	acceptProvider := func(_ gpucontext.DeviceProvider) {}
	acceptProvider(handle)
}
