package testutil

import (
	"fmt"
	"math/rand"

	"github.com/forge-ml/forge/internal/tensor"
)

// RandLike returns a fresh contiguous tensor with src's shape, dtype and
// device, filled with uniform random values in [0, 1). Only floating-point
// dtypes are supported, including the 16-bit formats.
func RandLike(src *tensor.RawTensor) (*tensor.RawTensor, error) {
	return fillLike("RandLike", src, rand.Float64) //nolint:gosec // G404: test data, not crypto
}

// RandnLike returns a fresh contiguous tensor with src's shape, dtype and
// device, filled with standard normal random values. Only floating-point
// dtypes are supported, including the 16-bit formats.
func RandnLike(src *tensor.RawTensor) (*tensor.RawTensor, error) {
	return fillLike("RandnLike", src, rand.NormFloat64) //nolint:gosec // G404: test data, not crypto
}

func fillLike(op string, src *tensor.RawTensor, next func() float64) (*tensor.RawTensor, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: tensor must not be nil", op)
	}
	if !src.DType().IsFloat() {
		return nil, fmt.Errorf("%s: dtype %s is not floating-point", op, src.DType())
	}

	out, err := tensor.NewRaw(src.Shape(), src.DType(), src.Device())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := make([]int, len(out.Shape()))
	for {
		out.SetFloat(next(), idx...)
		if !incIndex(idx, out.Shape()) {
			break
		}
	}
	return out, nil
}
