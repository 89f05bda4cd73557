package tensor

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"

	"github.com/forge-ml/forge/internal/bfloat16"
)

// checkIndices panics if the indices do not address a valid element.
func (r *RawTensor) checkIndices(indices []int) {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	for d, idx := range indices {
		if idx < 0 || idx >= r.shape[d] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, d, r.shape[d]))
		}
	}
}

// FloatAt returns the element at the given indices as a float64, regardless of
// layout. Integer dtypes are converted; bool maps to 0/1. Panics for complex
// dtypes (use ComplexAt) and for out-of-bounds indices.
func (r *RawTensor) FloatAt(indices ...int) float64 {
	r.checkIndices(indices)
	pos := r.elemBytePos(indices)
	p := unsafe.Pointer(&r.buffer.data[pos])

	switch r.dtype {
	case Float32:
		return float64(*(*float32)(p))
	case Float64:
		return *(*float64)(p)
	case Float16:
		return float64((*(*float16.Float16)(p)).Float32())
	case BFloat16:
		return float64((*(*bfloat16.BFloat16)(p)).Float32())
	case Int8:
		return float64(*(*int8)(p))
	case Int16:
		return float64(*(*int16)(p))
	case Int32:
		return float64(*(*int32)(p))
	case Int64:
		return float64(*(*int64)(p))
	case Uint8:
		return float64(*(*uint8)(p))
	case Bool:
		if *(*bool)(p) {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("FloatAt: unsupported dtype %s", r.dtype))
	}
}

// IntAt returns the element at the given indices as an int64, regardless of
// layout. Bool maps to 0/1. Panics for float and complex dtypes, which cannot
// be read without loss into an integer.
func (r *RawTensor) IntAt(indices ...int) int64 {
	r.checkIndices(indices)
	pos := r.elemBytePos(indices)
	p := unsafe.Pointer(&r.buffer.data[pos])

	switch r.dtype {
	case Int8:
		return int64(*(*int8)(p))
	case Int16:
		return int64(*(*int16)(p))
	case Int32:
		return int64(*(*int32)(p))
	case Int64:
		return *(*int64)(p)
	case Uint8:
		return int64(*(*uint8)(p))
	case Bool:
		if *(*bool)(p) {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("IntAt: unsupported dtype %s", r.dtype))
	}
}

// ComplexAt returns the element at the given indices as a complex128. Real
// dtypes are returned with a zero imaginary part.
func (r *RawTensor) ComplexAt(indices ...int) complex128 {
	switch r.dtype {
	case Complex64:
		r.checkIndices(indices)
		pos := r.elemBytePos(indices)
		return complex128(*(*complex64)(unsafe.Pointer(&r.buffer.data[pos])))
	case Complex128:
		r.checkIndices(indices)
		pos := r.elemBytePos(indices)
		return *(*complex128)(unsafe.Pointer(&r.buffer.data[pos]))
	default:
		return complex(r.FloatAt(indices...), 0)
	}
}

// SetFloat stores a float64 at the given indices, converting to the tensor's
// dtype. Bool stores v != 0. Panics for complex dtypes (use SetComplex).
func (r *RawTensor) SetFloat(v float64, indices ...int) {
	r.checkIndices(indices)
	pos := r.elemBytePos(indices)
	p := unsafe.Pointer(&r.buffer.data[pos])

	switch r.dtype {
	case Float32:
		*(*float32)(p) = float32(v)
	case Float64:
		*(*float64)(p) = v
	case Float16:
		*(*float16.Float16)(p) = float16.Fromfloat32(float32(v))
	case BFloat16:
		*(*bfloat16.BFloat16)(p) = bfloat16.FromFloat64(v)
	case Int8:
		*(*int8)(p) = int8(v)
	case Int16:
		*(*int16)(p) = int16(v)
	case Int32:
		*(*int32)(p) = int32(v)
	case Int64:
		*(*int64)(p) = int64(v)
	case Uint8:
		*(*uint8)(p) = uint8(v)
	case Bool:
		*(*bool)(p) = v != 0
	default:
		panic(fmt.Sprintf("SetFloat: unsupported dtype %s", r.dtype))
	}
}

// SetComplex stores a complex128 at the given indices.
// Panics unless the tensor's dtype is complex.
func (r *RawTensor) SetComplex(v complex128, indices ...int) {
	r.checkIndices(indices)
	pos := r.elemBytePos(indices)
	p := unsafe.Pointer(&r.buffer.data[pos])

	switch r.dtype {
	case Complex64:
		*(*complex64)(p) = complex64(v)
	case Complex128:
		*(*complex128)(p) = v
	default:
		panic(fmt.Sprintf("SetComplex: unsupported dtype %s", r.dtype))
	}
}
