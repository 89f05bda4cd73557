// Package bfloat16 implements the bfloat16 (brain floating point) type.
//
// BFloat16 is the 32-bit IEEE 754 single-precision format truncated to its
// upper 16 bits: same 8-bit exponent, 7-bit mantissa. Conversions to and from
// float32 are therefore plain bit shifts.
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 holds the raw 16-bit representation.
type BFloat16 uint16

// Float32 expands the value back to float32.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// FromFloat32 converts a float32 to BFloat16, truncating the mantissa.
func FromFloat32(x float32) BFloat16 {
	return BFloat16(math.Float32bits(x) >> 16)
}

// FromFloat64 converts a float64 to BFloat16.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits reinterprets a raw uint16 as BFloat16.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits returns the raw 16-bit representation.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// String implements fmt.Stringer.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}

// Inf returns positive infinity for sign >= 0, negative infinity otherwise.
func Inf(sign int) BFloat16 {
	return FromFloat32(float32(math.Inf(sign)))
}
