// Copyright 2026 Forge ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/forge-ml/forge/internal/backend/cpu"
	"github.com/forge-ml/forge/tensor"
)

// Backend represents the CPU backend implementation.
//
// Tensors created on this backend live in host memory; it is always available
// and carries no state.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/forge-ml/forge/backend/cpu"
//	    "github.com/forge-ml/forge/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
