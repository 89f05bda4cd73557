package tensor

import (
	"math"
	"math/rand"

	"github.com/x448/float16"

	"github.com/forge-ml/forge/internal/bfloat16"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// oneValue returns the multiplicative-identity value for T
// (true for bool, 1+0i for complex types).
func oneValue[T DType]() T {
	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case float16.Float16:
		one = float16.Fromfloat32(1)
	case bfloat16.BFloat16:
		one = bfloat16.FromFloat32(1)
	case int8:
		one = int8(1)
	case int16:
		one = int16(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case uint8:
		one = uint8(1)
	case bool:
		one = true
	case complex64:
		one = complex64(1)
	case complex128:
		one = complex128(1)
	default:
		panic("unsupported type")
	}
	return one.(T)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, oneValue[T](), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
// Only works with float32 and float64.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	t := tensor.Randn[float32](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := 0; i < len(dataF32); i += 2 {
			u1 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
			u2 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
			z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
			z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
			dataF32[i] = float32(z0)
			if i+1 < len(dataF32) {
				dataF32[i+1] = float32(z1)
			}
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := 0; i < len(dataF64); i += 2 {
			u1 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
			u2 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
			z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
			z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
			dataF64[i] = z0
			if i+1 < len(dataF64) {
				dataF64[i+1] = z1
			}
		}
	default:
		panic("Randn only supports float32 and float64 types")
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float32 and float64.
//
// Example:
//
//	t := tensor.Rand[float32](Shape{10, 10}, backend)
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = float32(rand.Float64()) //nolint:gosec // G404: ML uses math/rand intentionally
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive).
// Only works with the native numeric types (not bool, complex or 16-bit floats).
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
//
//nolint:gocyclo,cyclop // Type-specific logic for each supported numeric type
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	var numElements int
	switch any(start).(type) {
	case float32:
		numElements = int(any(end).(float32) - any(start).(float32))
	case float64:
		numElements = int(any(end).(float64) - any(start).(float64))
	case int8:
		numElements = int(any(end).(int8) - any(start).(int8))
	case int16:
		numElements = int(any(end).(int16) - any(start).(int16))
	case int32:
		numElements = int(any(end).(int32) - any(start).(int32))
	case int64:
		numElements = int(any(end).(int64) - any(start).(int64))
	case uint8:
		numElements = int(any(end).(uint8) - any(start).(uint8))
	default:
		panic("Arange not supported for this type")
	}

	if numElements <= 0 {
		panic("end must be greater than start")
	}

	t := Zeros[T, B](Shape{numElements}, b)

	switch any(start).(type) {
	case float32:
		data := any(t.Data()).([]float32)
		s := any(start).(float32)
		for i := range data {
			data[i] = s + float32(i)
		}
	case float64:
		data := any(t.Data()).([]float64)
		s := any(start).(float64)
		for i := range data {
			data[i] = s + float64(i)
		}
	case int8:
		data := any(t.Data()).([]int8)
		s := any(start).(int8)
		for i := range data {
			data[i] = s + int8(i) //nolint:gosec // G115: i is within valid range.
		}
	case int16:
		data := any(t.Data()).([]int16)
		s := any(start).(int16)
		for i := range data {
			data[i] = s + int16(i) //nolint:gosec // G115: i is within valid range.
		}
	case int32:
		data := any(t.Data()).([]int32)
		s := any(start).(int32)
		for i := range data {
			data[i] = s + int32(i) //nolint:gosec // G115: i is within valid range.
		}
	case int64:
		data := any(t.Data()).([]int64)
		s := any(start).(int64)
		for i := range data {
			data[i] = s + int64(i)
		}
	case uint8:
		data := any(t.Data()).([]uint8)
		s := any(start).(uint8)
		for i := range data {
			data[i] = s + uint8(i) //nolint:gosec // G115: i is within valid range.
		}
	}
	return t
}
