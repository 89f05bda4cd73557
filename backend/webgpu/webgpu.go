// Copyright 2026 Forge ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU device backend.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via Dawn/D3D12)
//   - macOS (via Dawn/Metal)
//   - Linux (via Dawn/Vulkan)
//
// Example:
//
//	import (
//	    "github.com/forge-ml/forge/backend/webgpu"
//	    "github.com/forge-ml/forge/tensor"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    x := tensor.Zeros[float32](tensor.Shape{1024, 1024}, gpu)
//	}
package webgpu

import (
	internalwebgpu "github.com/forge-ml/forge/internal/backend/webgpu"
	"github.com/forge-ml/forge/tensor"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// This function acquires the WebGPU instance, adapter and device. Call
// Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// This function attempts to initialize a WebGPU adapter to verify that a
// compatible GPU and drivers are present. It's useful for graceful fallback
// to the CPU backend when no GPU is available.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    defer gpu.Release()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
