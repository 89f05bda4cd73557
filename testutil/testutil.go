// Copyright 2026 Forge ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package testutil provides test-support helpers for the Forge tensor library.
//
// The package reduces boilerplate in tensor test suites:
//
//   - AssertClose / CheckClose: elementwise approximate-equality with
//     per-dtype default tolerances and a diagnostic naming the
//     worst-offending element
//   - MakeNonContiguous: same values, deliberately non-contiguous layout,
//     for exercising stride-aware code paths
//   - RandLike / RandnLike: random tensors shaped like an existing one
//   - IntDTypes, FloatDTypes, ComplexDTypes, AllDTypes, MathDTypes,
//     AllDeviceTypes: fixed lists for parametrized test matrices
//
// Example:
//
//	func TestAddCommutes(t *testing.T) {
//	    backend := cpu.New()
//	    for _, dt := range testutil.FloatDTypes(false, false) {
//	        x, _ := tensor.NewRaw(tensor.Shape{3, 4}, dt, backend.Device())
//	        y := testutil.MakeNonContiguous(x)
//	        testutil.AssertClose(t, y, x)
//	    }
//	}
package testutil

import (
	"testing"

	"github.com/forge-ml/forge/internal/testutil"
	"github.com/forge-ml/forge/tensor"
)

// Option adjusts the behavior of CheckClose and the assertion wrappers.
type Option = testutil.Option

// RTol sets the relative tolerance. ATol must be set in the same call;
// supplying only one of the two is a usage error.
func RTol(v float64) Option { return testutil.RTol(v) }

// ATol sets the absolute tolerance. RTol must be set in the same call;
// supplying only one of the two is a usage error.
func ATol(v float64) Option { return testutil.ATol(v) }

// EqualNaN controls whether NaN values at the same location compare as equal.
// The default is true.
func EqualNaN(equal bool) Option { return testutil.EqualNaN(equal) }

// Message replaces the generated failure diagnostic with a custom one.
func Message(msg string) Option { return testutil.Message(msg) }

// CheckClose compares two tensors elementwise within a relative/absolute
// tolerance (explicit via RTol/ATol, or derived from the dtypes) and returns
// a descriptive error when they differ beyond it.
func CheckClose(actual, expected *tensor.RawTensor, opts ...Option) error {
	return testutil.CheckClose(actual, expected, opts...)
}

// AssertClose fails the test when the tensors differ beyond tolerance.
// See CheckClose for the comparison semantics.
func AssertClose(t testing.TB, actual, expected *tensor.RawTensor, opts ...Option) {
	t.Helper()
	testutil.AssertClose(t, actual, expected, opts...)
}

// AssertTensorsClose is the typed-tensor form of AssertClose.
func AssertTensorsClose[T tensor.DType, B tensor.Backend](t testing.TB, actual, expected *tensor.Tensor[T, B], opts ...Option) {
	t.Helper()
	testutil.AssertTensorsClose(t, actual, expected, opts...)
}

// AssertSliceClose coerces two slices into 1-D CPU tensors and compares them
// within tolerance.
func AssertSliceClose[T tensor.DType](t testing.TB, actual, expected []T, opts ...Option) {
	t.Helper()
	testutil.AssertSliceClose(t, actual, expected, opts...)
}

// DefaultTolerance returns the rtol/atol pair used when the caller supplies
// neither, derived from the two operand dtypes.
func DefaultTolerance(a, b tensor.DataType) (rtol, atol float64) {
	return testutil.DefaultTolerance(a, b)
}

// MakeNonContiguous returns a tensor with the same shape and values as src
// but a non-contiguous memory layout. Inputs with at most one element are
// returned as contiguous deep copies.
func MakeNonContiguous(src *tensor.RawTensor) *tensor.RawTensor {
	return testutil.MakeNonContiguous(src)
}

// RandLike returns a fresh tensor with src's shape, dtype and device, filled
// with uniform random values in [0, 1). Floating-point dtypes only.
func RandLike(src *tensor.RawTensor) (*tensor.RawTensor, error) {
	return testutil.RandLike(src)
}

// RandnLike returns a fresh tensor with src's shape, dtype and device, filled
// with standard normal random values. Floating-point dtypes only.
func RandnLike(src *tensor.RawTensor) (*tensor.RawTensor, error) {
	return testutil.RandnLike(src)
}

// IntDTypes returns the integer element types, in stable order.
func IntDTypes() []tensor.DataType { return testutil.IntDTypes() }

// FloatDTypes returns the floating-point element types, in stable order,
// optionally including the 16-bit formats.
func FloatDTypes(includeHalf, includeBFloat16 bool) []tensor.DataType {
	return testutil.FloatDTypes(includeHalf, includeBFloat16)
}

// ComplexDTypes returns the complex element types, in stable order.
func ComplexDTypes() []tensor.DataType { return testutil.ComplexDTypes() }

// AllDTypes returns every supported element type, filtered by the inclusion
// flags.
func AllDTypes(includeHalf, includeBFloat16, includeBool, includeComplex bool) []tensor.DataType {
	return testutil.AllDTypes(includeHalf, includeBFloat16, includeBool, includeComplex)
}

// MathDTypes returns the element types arithmetic tests should cover on the
// given device.
func MathDTypes(device tensor.Device) []tensor.DataType {
	return testutil.MathDTypes(device)
}

// AllDeviceTypes returns the devices available for test parametrization:
// always CPU, plus WebGPU when the native runtime is present.
func AllDeviceTypes() []tensor.Device { return testutil.AllDeviceTypes() }
