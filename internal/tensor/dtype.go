package tensor

import (
	"github.com/x448/float16"

	"github.com/forge-ml/forge/internal/bfloat16"
)

// DType is a constraint for supported tensor data types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~bool |
		~complex64 | ~complex128 | float16.Float16 | bfloat16.BFloat16
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Float16
	BFloat16
	Int8
	Int16
	Int32
	Int64
	Uint8
	Bool
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64, Complex64:
		return 8
	case Float16, BFloat16, Int16:
		return 2
	case Int8, Uint8, Bool:
		return 1
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type
// (including the 16-bit formats).
func (dt DataType) IsFloat() bool {
	switch dt {
	case Float32, Float64, Float16, BFloat16:
		return true
	default:
		return false
	}
}

// IsInt reports whether the data type is an integer type.
func (dt DataType) IsInt() bool {
	switch dt {
	case Int8, Int16, Int32, Int64, Uint8:
		return true
	default:
		return false
	}
}

// IsComplex reports whether the data type is a complex type.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}
