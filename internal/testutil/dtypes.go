package testutil

import (
	"github.com/forge-ml/forge/internal/backend/webgpu"
	"github.com/forge-ml/forge/internal/tensor"
)

// IntDTypes returns the integer element types, in stable order.
func IntDTypes() []tensor.DataType {
	return []tensor.DataType{tensor.Uint8, tensor.Int8, tensor.Int16, tensor.Int32, tensor.Int64}
}

// FloatDTypes returns the floating-point element types, in stable order.
// The 16-bit formats are appended only when requested: not every device
// kernel set supports them.
func FloatDTypes(includeHalf, includeBFloat16 bool) []tensor.DataType {
	dtypes := []tensor.DataType{tensor.Float32, tensor.Float64}
	if includeHalf {
		dtypes = append(dtypes, tensor.Float16)
	}
	if includeBFloat16 {
		dtypes = append(dtypes, tensor.BFloat16)
	}
	return dtypes
}

// ComplexDTypes returns the complex element types, in stable order.
func ComplexDTypes() []tensor.DataType {
	return []tensor.DataType{tensor.Complex64, tensor.Complex128}
}

// AllDTypes returns every supported element type, filtered by the inclusion
// flags. With all flags enabled the result covers the full dtype taxonomy;
// the groups it is assembled from are disjoint.
func AllDTypes(includeHalf, includeBFloat16, includeBool, includeComplex bool) []tensor.DataType {
	dtypes := append(IntDTypes(), FloatDTypes(includeHalf, includeBFloat16)...)
	if includeBool {
		dtypes = append(dtypes, tensor.Bool)
	}
	if includeComplex {
		dtypes = append(dtypes, ComplexDTypes()...)
	}
	return dtypes
}

// MathDTypes returns the element types arithmetic tests should cover on the
// given device: integers, floats and complex types. Half precision is only
// included off-CPU, matching the kernels that actually exist there; bfloat16
// is excluded everywhere.
func MathDTypes(device tensor.Device) []tensor.DataType {
	dtypes := append(IntDTypes(), FloatDTypes(device != tensor.CPU, false)...)
	return append(dtypes, ComplexDTypes()...)
}

// AllDeviceTypes returns the devices available for test parametrization.
// CPU is always present; WebGPU is appended when the native runtime probe
// succeeds.
func AllDeviceTypes() []tensor.Device {
	devices := []tensor.Device{tensor.CPU}
	if webgpu.IsAvailable() {
		devices = append(devices, tensor.WebGPU)
	}
	return devices
}
