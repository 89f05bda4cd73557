// Copyright 2026 Forge ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/forge-ml/forge/internal/tensor"

// Backend identifies the device a tensor's storage lives on.
//
// Implementations:
//   - backend/cpu: host memory, always available
//   - backend/webgpu: GPU adapter via zero-CGO WebGPU bindings
//
// Example:
//
//	import (
//	    "github.com/forge-ml/forge/tensor"
//	    "github.com/forge-ml/forge/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
type Backend = tensor.Backend
