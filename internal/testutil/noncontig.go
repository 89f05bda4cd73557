package testutil

import (
	"math/rand"

	"github.com/forge-ml/forge/internal/tensor"
)

// MakeNonContiguous returns a tensor with the same shape and values as src but
// backed by memory laid out in a non-contiguous stride pattern.
//
// The synthesis over-allocates: two random dimensions are inflated, an extra
// trailing dimension is appended, and the result is carved back out of the
// oversized buffer with Select and Narrow. Selecting away the trailing
// dimension leaves a stride gap behind every element, so even 1-D inputs come
// back non-contiguous.
//
// Tensors with at most one element cannot be made non-contiguous and are
// returned as contiguous deep copies.
func MakeNonContiguous(src *tensor.RawTensor) *tensor.RawTensor {
	if src.NumElements() <= 1 {
		return src.Contiguous()
	}

	osize := src.Shape().Clone()

	// Inflate a few dimensions so the copy sits inside unused memory.
	for i := 0; i < 2; i++ {
		dim := rand.Intn(len(osize)) //nolint:gosec // G404: layout fuzzing, not crypto
		osize[dim] += 4 + rand.Intn(12)
	}

	// Narrowing alone cannot break contiguity when only the leading dimension
	// shrinks (always the case for 1-D tensors), so allocate an extra
	// right-most dimension and cut it off.
	extra := 2 + rand.Intn(2)
	big, err := tensor.NewRaw(append(osize.Clone(), extra), src.DType(), src.Device())
	if err != nil {
		panic(err) // Inflated shape of a valid tensor is always valid
	}

	view, err := big.Select(len(osize), rand.Intn(2))
	if err != nil {
		panic(err)
	}

	// Carve the window of the original size out of the inflated dimensions.
	for i := range osize {
		if view.Shape()[i] == src.Shape()[i] {
			continue
		}
		start := 1 + rand.Intn(view.Shape()[i]-src.Shape()[i])
		view, err = view.Narrow(i, start, src.Shape()[i])
		if err != nil {
			panic(err)
		}
	}

	if err := view.CopyFrom(src); err != nil {
		panic(err) // Shapes and dtypes match by construction
	}
	return view
}
