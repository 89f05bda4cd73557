// Copyright 2026 Forge ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/forge-ml/forge/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, stride and type information via Shape(), Strides(), DType(), Device()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Zero-copy views via Narrow() and Select(), with IsContiguous() reporting
//     whether the logical element order still matches the memory layout
//   - Layout-independent element access via FloatAt() and ComplexAt()
//   - Copy-on-Write semantics via Clone() and reference counting
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()      // Type-safe access
//	row, _ := raw.Select(0, 1)   // Zero-copy view of row 1
type RawTensor = tensor.RawTensor
