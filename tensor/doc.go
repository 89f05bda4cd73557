// Copyright 2026 Forge ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor storage for the Forge ML framework.
//
// # Overview
//
// Tensors are the fundamental data structure in Forge. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Untyped strided storage (RawTensor) with zero-copy views
//   - Device abstraction (CPU, WebGPU)
//
// # Basic Usage
//
//	import (
//	    "github.com/forge-ml/forge/tensor"
//	    "github.com/forge-ml/forge/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Rand[float64](tensor.Shape{4}, backend)
//	    v := x.At(1, 2)
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - float16, bfloat16 (16-bit floating-point formats)
//   - int8, int16, int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//   - complex64, complex128 (complex numbers)
//
// # Memory Layout
//
// RawTensor storage is described by shape, per-dimension strides and an
// offset. Freshly allocated tensors are contiguous (row-major); Narrow and
// Select produce zero-copy views whose strides deviate from that pattern.
// IsContiguous reports which case holds, and Contiguous materializes any
// view back into row-major storage.
//
// # Memory Management
//
// The underlying data is reference-counted and shared between views and
// copy-on-write clones; it is freed when the last reference is released.
package tensor
