package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/forge-ml/forge/internal/backend/cpu"
	"github.com/forge-ml/forge/internal/tensor"
)

// config collects the comparison knobs. equalNaN defaults to true: two NaNs at
// the same location compare as equal unless the caller opts out.
type config struct {
	rtol    float64
	atol    float64
	rtolSet bool
	atolSet bool

	equalNaN bool
	msg      string
}

// Option adjusts the behavior of CheckClose and the assertion wrappers.
type Option func(*config)

// RTol sets the relative tolerance. ATol must be set in the same call;
// supplying only one of the two is a usage error.
func RTol(v float64) Option {
	return func(c *config) {
		c.rtol = v
		c.rtolSet = true
	}
}

// ATol sets the absolute tolerance. RTol must be set in the same call;
// supplying only one of the two is a usage error.
func ATol(v float64) Option {
	return func(c *config) {
		c.atol = v
		c.atolSet = true
	}
}

// EqualNaN controls whether NaN values at the same location compare as equal.
// The default is true.
func EqualNaN(equal bool) Option {
	return func(c *config) {
		c.equalNaN = equal
	}
}

// Message replaces the generated failure diagnostic with a custom one.
func Message(msg string) Option {
	return func(c *config) {
		c.msg = msg
	}
}

// DefaultTolerance returns the rtol/atol pair used when the caller supplies
// neither. Each component is the maximum over the two dtypes' defaults, so
// comparing a float32 against a float64 uses the float32 tolerances.
func DefaultTolerance(a, b tensor.DataType) (rtol, atol float64) {
	ra, aa := dtypeTolerance(a)
	rb, ab := dtypeTolerance(b)
	return math.Max(ra, rb), math.Max(aa, ab)
}

// dtype default tolerances; everything not listed compares exactly.
func dtypeTolerance(dt tensor.DataType) (rtol, atol float64) {
	switch dt {
	case tensor.Float64:
		return 1e-5, 1e-8 // NumPy default
	case tensor.Float32:
		return 1e-4, 1e-5
	case tensor.Float16:
		return 1e-3, 1e-3
	default:
		return 0, 0
	}
}

// CheckClose compares two tensors elementwise within a relative/absolute
// tolerance and returns a descriptive error when they differ.
//
// Semantics:
//   - expected is broadcast to actual's shape when the shapes differ.
//   - When neither RTol nor ATol is given, tolerances derive from the dtypes
//     of both operands (see DefaultTolerance). Supplying exactly one of the
//     two is a usage error.
//   - An element pair is close when |a-e| <= atol + rtol*|e|. Identical
//     values (including matching infinities) are always close; NaN pairs are
//     close unless EqualNaN(false). Complex dtypes compare via the complex
//     modulus of the difference. When both operands are integer dtypes the
//     difference is computed in the integer domain, so 64-bit values keep
//     full precision.
//
// The error identifies the worst-offending element by its coordinates, the
// two values there, and the count and percentage of mismatched elements.
func CheckClose(actual, expected *tensor.RawTensor, opts ...Option) error {
	if actual == nil || expected == nil {
		return fmt.Errorf("CheckClose: tensors must not be nil")
	}

	cfg := config{equalNaN: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rtolSet != cfg.atolSet {
		return fmt.Errorf("CheckClose: rtol and atol must both be specified or both be unspecified")
	}

	rtol, atol := cfg.rtol, cfg.atol
	if !cfg.rtolSet {
		rtol, atol = DefaultTolerance(actual.DType(), expected.DType())
	}

	if !expected.Shape().Equal(actual.Shape()) {
		expanded, err := expected.Expand(actual.Shape())
		if err != nil {
			return fmt.Errorf("CheckClose: shapes %v and %v are not comparable: %w",
				actual.Shape(), expected.Shape(), err)
		}
		defer expanded.Release()
		expected = expanded
	}

	isComplex := actual.DType().IsComplex() || expected.DType().IsComplex()
	isInt := actual.DType().IsInt() && expected.DType().IsInt()

	shape := actual.Shape()
	idx := make([]int, len(shape))

	var (
		mismatches int
		worstDelta = math.Inf(-1)
		worstIdx   []int
		worstAct   string
		worstExp   string
	)

	for {
		ok, delta, av, ev := closeAt(actual, expected, idx, rtol, atol, cfg.equalNaN, isComplex, isInt)
		if !ok {
			mismatches++
			if delta > worstDelta {
				worstDelta = delta
				worstIdx = append(worstIdx[:0], idx...)
				worstAct, worstExp = av, ev
			}
		}
		if !incIndex(idx, shape) {
			break
		}
	}

	if mismatches == 0 {
		return nil
	}
	if cfg.msg != "" {
		return fmt.Errorf("%s", cfg.msg)
	}

	total := shape.NumElements()
	return fmt.Errorf("not within tolerance rtol=%v atol=%v at index %v (%s vs. %s) and %d other locations (%.2f%%)",
		rtol, atol, worstIdx, worstAct, worstExp, mismatches-1, 100*float64(mismatches)/float64(total))
}

// closeAt compares a single element pair. It returns whether the pair is
// within tolerance, how far past the allowed error it is (used to rank the
// worst offender), and printable renderings of both values.
func closeAt(actual, expected *tensor.RawTensor, idx []int, rtol, atol float64, equalNaN, isComplex, isInt bool) (ok bool, delta float64, av, ev string) {
	if isInt {
		a := actual.IntAt(idx...)
		e := expected.IntAt(idx...)
		av, ev = fmt.Sprint(a), fmt.Sprint(e)
		if a == e {
			return true, 0, av, ev
		}
		diff := float64(intAbsDiff(a, e))
		allowed := atol + rtol*math.Abs(float64(e))
		delta = excess(diff, allowed)
		return diff <= allowed, delta, av, ev
	}

	if isComplex {
		a := actual.ComplexAt(idx...)
		e := expected.ComplexAt(idx...)
		av, ev = fmt.Sprint(a), fmt.Sprint(e)
		if a == e {
			return true, 0, av, ev
		}
		if equalNaN && cmplx.IsNaN(a) && cmplx.IsNaN(e) {
			return true, 0, av, ev
		}
		diff := cmplx.Abs(a - e)
		allowed := atol + rtol*cmplx.Abs(e)
		delta = excess(diff, allowed)
		return diff <= allowed, delta, av, ev
	}

	a := actual.FloatAt(idx...)
	e := expected.FloatAt(idx...)
	av, ev = fmt.Sprint(a), fmt.Sprint(e)
	if a == e {
		return true, 0, av, ev
	}
	if equalNaN && math.IsNaN(a) && math.IsNaN(e) {
		return true, 0, av, ev
	}
	diff := math.Abs(a - e)
	allowed := atol + rtol*math.Abs(e)
	delta = excess(diff, allowed)
	return diff <= allowed, delta, av, ev
}

// intAbsDiff returns |a-e| without overflowing near the int64 extremes.
func intAbsDiff(a, e int64) uint64 {
	if a < e {
		a, e = e, a
	}
	return uint64(a) - uint64(e) //nolint:gosec // G115: wraparound conversion computes the exact difference
}

// excess ranks mismatches. NaN or infinite differences (NaN vs. number,
// opposite infinities) rank above every finite excess.
func excess(diff, allowed float64) float64 {
	d := diff - allowed
	if math.IsNaN(d) || math.IsInf(d, 1) {
		return math.Inf(1)
	}
	return d
}

// incIndex advances a multi-dimensional index in row-major order.
// Returns false once the index wraps past the final element.
// A zero-length index (scalar shape) never advances.
func incIndex(idx []int, shape tensor.Shape) bool {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return true
		}
		idx[d] = 0
	}
	return false
}

// AssertClose fails the test when the tensors differ beyond tolerance.
// See CheckClose for the comparison semantics.
func AssertClose(t testing.TB, actual, expected *tensor.RawTensor, opts ...Option) {
	t.Helper()
	if err := CheckClose(actual, expected, opts...); err != nil {
		t.Fatal(err)
	}
}

// AssertTensorsClose is the typed-tensor form of AssertClose.
func AssertTensorsClose[T tensor.DType, B tensor.Backend](t testing.TB, actual, expected *tensor.Tensor[T, B], opts ...Option) {
	t.Helper()
	if actual == nil || expected == nil {
		t.Fatal("AssertTensorsClose: tensors must not be nil")
	}
	AssertClose(t, actual.Raw(), expected.Raw(), opts...)
}

// AssertSliceClose coerces two slices into 1-D CPU tensors and compares them.
// Mirrors the tensor coercion the raw assertion cannot do itself.
func AssertSliceClose[T tensor.DType](t testing.TB, actual, expected []T, opts ...Option) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("slice length mismatch: %d vs. %d", len(actual), len(expected))
	}
	if len(actual) == 0 {
		return
	}

	backend := cpu.New()
	at, err := tensor.FromSlice(actual, tensor.Shape{len(actual)}, backend)
	if err != nil {
		t.Fatalf("coercing actual: %v", err)
	}
	et, err := tensor.FromSlice(expected, tensor.Shape{len(expected)}, backend)
	if err != nil {
		t.Fatalf("coercing expected: %v", err)
	}
	AssertClose(t, at.Raw(), et.Raw(), opts...)
}
