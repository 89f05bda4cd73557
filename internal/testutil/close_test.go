package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-ml/forge/internal/backend/cpu"
	"github.com/forge-ml/forge/internal/bfloat16"
	"github.com/forge-ml/forge/internal/tensor"
)

func rawFromFloats(t *testing.T, values []float64, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	require.NoError(t, err)

	idx := make([]int, len(shape))
	for _, v := range values {
		raw.SetFloat(v, idx...)
		if !incIndex(idx, shape) {
			break
		}
	}
	return raw
}

func TestCheckCloseIdentical(t *testing.T) {
	for _, dtype := range AllDTypes(true, true, true, false) {
		raw := rawFromFloats(t, []float64{1, 0, 1, 1, 0, 1}, tensor.Shape{2, 3}, dtype)
		assert.NoError(t, CheckClose(raw, raw), "dtype %s", dtype)

		clone := raw.Contiguous()
		assert.NoError(t, CheckClose(raw, clone), "dtype %s", dtype)
	}
}

func TestCheckCloseIdenticalComplex(t *testing.T) {
	for _, dtype := range ComplexDTypes() {
		raw, err := tensor.NewRaw(tensor.Shape{3}, dtype, tensor.CPU)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			raw.SetComplex(complex(float64(i), -float64(i)), i)
		}
		assert.NoError(t, CheckClose(raw, raw), "dtype %s", dtype)
	}
}

func TestCheckCloseNonContiguousOperands(t *testing.T) {
	raw := rawFromFloats(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Float64)
	strided := MakeNonContiguous(raw)

	assert.NoError(t, CheckClose(strided, raw))
	assert.NoError(t, CheckClose(raw, strided))
}

func TestCheckCloseWithinTolerance(t *testing.T) {
	actual := rawFromFloats(t, []float64{1.0001}, tensor.Shape{1}, tensor.Float64)
	expected := rawFromFloats(t, []float64{1.0}, tensor.Shape{1}, tensor.Float64)

	// Well outside the float64 defaults, fine with explicit slack.
	assert.Error(t, CheckClose(actual, expected))
	assert.NoError(t, CheckClose(actual, expected, RTol(1e-3), ATol(1e-3)))
}

func TestCheckCloseMismatchMessage(t *testing.T) {
	actual := rawFromFloats(t, []float64{0, 5, 0, 9}, tensor.Shape{2, 2}, tensor.Float64)
	expected := rawFromFloats(t, []float64{0, 0, 0, 0}, tensor.Shape{2, 2}, tensor.Float64)

	err := CheckClose(actual, expected)
	require.Error(t, err)
	// Worst offender is the 9 at [1 1]; the 5 counts as the one other location.
	assert.Contains(t, err.Error(), "at index [1 1]")
	assert.Contains(t, err.Error(), "9 vs. 0")
	assert.Contains(t, err.Error(), "1 other locations")
	assert.Contains(t, err.Error(), "50.00%")
}

func TestCheckCloseCustomMessage(t *testing.T) {
	actual := rawFromFloats(t, []float64{1}, tensor.Shape{1}, tensor.Float64)
	expected := rawFromFloats(t, []float64{2}, tensor.Shape{1}, tensor.Float64)

	err := CheckClose(actual, expected, Message("gradients diverged"))
	require.Error(t, err)
	assert.EqualError(t, err, "gradients diverged")
}

func TestCheckCloseTolerancePairRequired(t *testing.T) {
	raw := rawFromFloats(t, []float64{1}, tensor.Shape{1}, tensor.Float64)

	err := CheckClose(raw, raw, RTol(1e-3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both")

	err = CheckClose(raw, raw, ATol(1e-3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both")
}

func TestCheckCloseNil(t *testing.T) {
	raw := rawFromFloats(t, []float64{1}, tensor.Shape{1}, tensor.Float64)

	assert.Error(t, CheckClose(nil, raw))
	assert.Error(t, CheckClose(raw, nil))
}

func TestCheckCloseBroadcast(t *testing.T) {
	actual := rawFromFloats(t, []float64{1, 2, 3, 1, 2, 3}, tensor.Shape{2, 3}, tensor.Float64)
	expected := rawFromFloats(t, []float64{1, 2, 3}, tensor.Shape{1, 3}, tensor.Float64)

	assert.NoError(t, CheckClose(actual, expected))

	// A row that breaks the broadcast pattern is reported against the
	// broadcast value.
	actual.SetFloat(99, 1, 1)
	assert.Error(t, CheckClose(actual, expected))
}

func TestCheckCloseShapeMismatch(t *testing.T) {
	a := rawFromFloats(t, []float64{1, 2}, tensor.Shape{2}, tensor.Float64)
	b := rawFromFloats(t, []float64{1, 2, 3}, tensor.Shape{3}, tensor.Float64)

	err := CheckClose(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not comparable")
}

func TestCheckCloseNaN(t *testing.T) {
	nan := math.NaN()
	a := rawFromFloats(t, []float64{1, nan}, tensor.Shape{2}, tensor.Float64)
	b := rawFromFloats(t, []float64{1, nan}, tensor.Shape{2}, tensor.Float64)

	assert.NoError(t, CheckClose(a, b))
	assert.Error(t, CheckClose(a, b, EqualNaN(false)))

	// NaN against a number always mismatches.
	c := rawFromFloats(t, []float64{1, 2}, tensor.Shape{2}, tensor.Float64)
	assert.Error(t, CheckClose(a, c))
	assert.Error(t, CheckClose(c, a))
}

func TestCheckCloseInf(t *testing.T) {
	inf := math.Inf(1)
	a := rawFromFloats(t, []float64{inf, 1}, tensor.Shape{2}, tensor.Float64)
	b := rawFromFloats(t, []float64{inf, 1}, tensor.Shape{2}, tensor.Float64)

	assert.NoError(t, CheckClose(a, b))

	c := rawFromFloats(t, []float64{math.Inf(-1), 1}, tensor.Shape{2}, tensor.Float64)
	assert.Error(t, CheckClose(a, c))
}

func TestCheckCloseBFloat16Inf(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{2}, tensor.BFloat16, tensor.CPU)
	require.NoError(t, err)

	a.AsBFloat16()[0] = bfloat16.Inf(1)
	a.AsBFloat16()[1] = bfloat16.FromFloat32(1.5)

	b := a.Contiguous()
	assert.NoError(t, CheckClose(a, b))

	// Opposite infinities mismatch regardless of tolerance.
	b.AsBFloat16()[0] = bfloat16.Inf(-1)
	assert.Error(t, CheckClose(a, b, RTol(1e3), ATol(1e3)))
}

func TestCheckCloseScalar(t *testing.T) {
	a := rawFromFloats(t, []float64{1.5}, tensor.Shape{}, tensor.Float64)
	b := rawFromFloats(t, []float64{1.5}, tensor.Shape{}, tensor.Float64)

	assert.NoError(t, CheckClose(a, b))

	b.SetFloat(2.5)
	err := CheckClose(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 other locations")
}

func TestCheckCloseComplexTolerance(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{1}, tensor.Complex128, tensor.CPU)
	require.NoError(t, err)
	b, err := tensor.NewRaw(tensor.Shape{1}, tensor.Complex128, tensor.CPU)
	require.NoError(t, err)

	a.SetComplex(complex(1, 1), 0)
	b.SetComplex(complex(1, 1.001), 0)

	// |a-e| = 0.001, judged against atol + rtol*|e|
	assert.Error(t, CheckClose(a, b))
	assert.NoError(t, CheckClose(a, b, RTol(0), ATol(0.01)))
}

func TestDefaultTolerance(t *testing.T) {
	tests := []struct {
		a, b tensor.DataType
		rtol float64
		atol float64
	}{
		{tensor.Float64, tensor.Float64, 1e-5, 1e-8},
		{tensor.Float32, tensor.Float32, 1e-4, 1e-5},
		{tensor.Float16, tensor.Float16, 1e-3, 1e-3},
		{tensor.Float32, tensor.Float64, 1e-4, 1e-5}, // Componentwise max
		{tensor.Float16, tensor.Float64, 1e-3, 1e-3},
		{tensor.Int32, tensor.Int32, 0, 0}, // Integers compare exactly
		{tensor.Int64, tensor.Float64, 1e-5, 1e-8},
	}

	for _, tt := range tests {
		rtol, atol := DefaultTolerance(tt.a, tt.b)
		assert.Equal(t, tt.rtol, rtol, "%s vs %s rtol", tt.a, tt.b)
		assert.Equal(t, tt.atol, atol, "%s vs %s atol", tt.a, tt.b)
	}
}

func TestCheckCloseInt64FullPrecision(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	b, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)

	// Adjacent int64 values above 2^53 collide after float64 rounding; the
	// integer comparison must still see them as different.
	const huge = int64(1) << 53
	a.AsInt64()[0], a.AsInt64()[1] = huge, -huge
	b.AsInt64()[0], b.AsInt64()[1] = huge+1, -huge

	err = CheckClose(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at index [0]")
	assert.Contains(t, err.Error(), "0 other locations")

	// An explicit tolerance covers the off-by-one.
	assert.NoError(t, CheckClose(a, b, RTol(0), ATol(1)))

	b.AsInt64()[0] = huge
	assert.NoError(t, CheckClose(a, b))
}

func TestCheckCloseInt64Extremes(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{1}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	b, err := tensor.NewRaw(tensor.Shape{1}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)

	// The |a-e| computation must not overflow across the full int64 range.
	a.AsInt64()[0] = math.MaxInt64
	b.AsInt64()[0] = math.MinInt64
	assert.Error(t, CheckClose(a, b))

	b.AsInt64()[0] = math.MaxInt64
	assert.NoError(t, CheckClose(a, b))
}

func TestCheckCloseIntegerExact(t *testing.T) {
	a := rawFromFloats(t, []float64{1, 2, 3}, tensor.Shape{3}, tensor.Int32)
	b := rawFromFloats(t, []float64{1, 2, 3}, tensor.Shape{3}, tensor.Int32)

	assert.NoError(t, CheckClose(a, b))

	b.SetFloat(4, 2)
	assert.Error(t, CheckClose(a, b))
}

func TestAssertClose(t *testing.T) {
	a := rawFromFloats(t, []float64{1, 2, 3}, tensor.Shape{3}, tensor.Float32)
	AssertClose(t, a, a)
}

func TestAssertTensorsClose(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{1, 2, 3, 4.000001}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	AssertTensorsClose(t, a, b)
}

func TestAssertSliceClose(t *testing.T) {
	AssertSliceClose(t, []float64{1, 2, 3}, []float64{1, 2, 3})
	AssertSliceClose(t, []float32{0.5}, []float32{0.5})
	AssertSliceClose[float64](t, nil, nil)
	AssertSliceClose(t, []float64{1}, []float64{1.5}, RTol(1), ATol(1))
}

func TestIncIndex(t *testing.T) {
	shape := tensor.Shape{2, 3}
	idx := []int{0, 0}

	var visited [][]int
	for {
		visited = append(visited, append([]int(nil), idx...))
		if !incIndex(idx, shape) {
			break
		}
	}

	require.Len(t, visited, 6)
	assert.Equal(t, []int{0, 0}, visited[0])
	assert.Equal(t, []int{0, 2}, visited[2])
	assert.Equal(t, []int{1, 0}, visited[3])
	assert.Equal(t, []int{1, 2}, visited[5])
}
