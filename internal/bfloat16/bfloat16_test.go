package bfloat16

import (
	"math"
	"testing"
)

func TestRoundtripExact(t *testing.T) {
	// Values whose mantissa fits in 7 bits survive the roundtrip exactly.
	values := []float32{0, 1, -1, 0.5, 2, -4, 256, 0.25, 1.5}

	for _, v := range values {
		if got := FromFloat32(v).Float32(); got != v {
			t.Errorf("FromFloat32(%v).Float32() = %v, want %v", v, got, v)
		}
	}
}

func TestTruncation(t *testing.T) {
	// 1.001 needs more than 7 mantissa bits, so conversion loses precision
	// but stays within one bfloat16 ulp (2^-7 at this magnitude).
	got := FromFloat32(1.001).Float32()
	if diff := math.Abs(float64(got) - 1.001); diff > 1.0/128 {
		t.Errorf("FromFloat32(1.001).Float32() = %v, off by %v", got, diff)
	}
}

func TestBits(t *testing.T) {
	// 1.0 in bfloat16 is the upper half of the float32 pattern 0x3F800000.
	if got := FromFloat32(1).Bits(); got != 0x3F80 {
		t.Errorf("FromFloat32(1).Bits() = %#04x, want 0x3f80", got)
	}
	if got := FromBits(0x3F80).Float32(); got != 1 {
		t.Errorf("FromBits(0x3f80).Float32() = %v, want 1", got)
	}
}

func TestSpecialValues(t *testing.T) {
	if got := Inf(1).Float32(); !math.IsInf(float64(got), 1) {
		t.Errorf("Inf(1).Float32() = %v, want +Inf", got)
	}
	if got := Inf(-1).Float32(); !math.IsInf(float64(got), -1) {
		t.Errorf("Inf(-1).Float32() = %v, want -Inf", got)
	}
	if got := FromFloat32(float32(math.NaN())).Float32(); !math.IsNaN(float64(got)) {
		t.Errorf("NaN roundtrip = %v, want NaN", got)
	}
}

func TestFromFloat64(t *testing.T) {
	if got := FromFloat64(2.0).Float32(); got != 2 {
		t.Errorf("FromFloat64(2).Float32() = %v, want 2", got)
	}
}

func TestString(t *testing.T) {
	if got := FromFloat32(1.5).String(); got != "1.5" {
		t.Errorf("String() = %q, want \"1.5\"", got)
	}
}
