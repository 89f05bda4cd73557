package tensor

import "fmt"

// Narrow returns a view of the tensor restricted to [start, start+length) along
// the given dimension. The view shares the underlying buffer; no data is copied.
func (r *RawTensor) Narrow(dim, start, length int) (*RawTensor, error) {
	if dim < 0 {
		dim = len(r.shape) + dim
	}
	if dim < 0 || dim >= len(r.shape) {
		return nil, fmt.Errorf("Narrow: dimension %d out of range for %d dimensions", dim, len(r.shape))
	}
	if length <= 0 {
		return nil, fmt.Errorf("Narrow: length must be > 0, got %d", length)
	}
	if start < 0 || start+length > r.shape[dim] {
		return nil, fmt.Errorf("Narrow: window [%d, %d) out of range for dimension %d (size %d)",
			start, start+length, dim, r.shape[dim])
	}

	view := r.Clone()
	view.shape[dim] = length
	view.offset += start * r.stride[dim] * r.dtype.Size()
	return view, nil
}

// Select returns a view of the tensor with the given dimension removed, fixed
// at the given index. The view shares the underlying buffer.
func (r *RawTensor) Select(dim, index int) (*RawTensor, error) {
	if dim < 0 {
		dim = len(r.shape) + dim
	}
	if dim < 0 || dim >= len(r.shape) {
		return nil, fmt.Errorf("Select: dimension %d out of range for %d dimensions", dim, len(r.shape))
	}
	if index < 0 || index >= r.shape[dim] {
		return nil, fmt.Errorf("Select: index %d out of range for dimension %d (size %d)", index, dim, r.shape[dim])
	}

	view := r.Clone()
	view.offset += index * r.stride[dim] * r.dtype.Size()
	view.shape = append(view.shape[:dim], view.shape[dim+1:]...)
	view.stride = append(view.stride[:dim], view.stride[dim+1:]...)
	return view, nil
}

// Contiguous materializes the tensor into fresh row-major storage.
// The result never shares memory with the receiver.
func (r *RawTensor) Contiguous() *RawTensor {
	result, err := NewRaw(r.shape, r.dtype, r.device)
	if err != nil {
		panic(err) // Receiver shape is always valid
	}
	if err := result.CopyFrom(r); err != nil {
		panic(err) // Shapes and dtypes match by construction
	}
	return result
}

// CopyFrom copies all elements of src into the receiver, honoring the strides
// of both tensors. Shapes and dtypes must match exactly. The copy is
// dtype-agnostic: each element is moved as a block of dtype.Size() bytes.
func (r *RawTensor) CopyFrom(src *RawTensor) error {
	if !r.shape.Equal(src.shape) {
		return fmt.Errorf("CopyFrom: shape mismatch: %v vs %v", r.shape, src.shape)
	}
	if r.dtype != src.dtype {
		return fmt.Errorf("CopyFrom: dtype mismatch: %s vs %s", r.dtype, src.dtype)
	}

	size := r.dtype.Size()
	total := r.NumElements()
	idx := make([]int, len(r.shape))
	for i := 0; i < total; i++ {
		unravelIndex(i, r.shape, idx)
		dstPos := r.elemBytePos(idx)
		srcPos := src.elemBytePos(idx)
		copy(r.buffer.data[dstPos:dstPos+size], src.buffer.data[srcPos:srcPos+size])
	}
	return nil
}

// Expand materializes a broadcast of the tensor to the target shape following
// NumPy broadcasting rules. Dimensions of size 1 (and missing leading
// dimensions) are repeated; all other dimensions must match.
func (r *RawTensor) Expand(target Shape) (*RawTensor, error) {
	if len(target) < len(r.shape) {
		return nil, fmt.Errorf("Expand: target shape %v has fewer dimensions than %v", target, r.shape)
	}

	// Pad the source shape and strides with leading 1s / 0s.
	diff := len(target) - len(r.shape)
	padShape := make(Shape, len(target))
	padStride := make([]int, len(target))
	for i := 0; i < diff; i++ {
		padShape[i] = 1
	}
	copy(padShape[diff:], r.shape)
	copy(padStride[diff:], r.stride)

	for i := range target {
		if padShape[i] != 1 && padShape[i] != target[i] {
			return nil, fmt.Errorf("Expand: cannot expand dimension %d from %d to %d", i, padShape[i], target[i])
		}
	}

	result, err := NewRaw(target, r.dtype, r.device)
	if err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}

	size := r.dtype.Size()
	total := result.NumElements()
	idx := make([]int, len(target))
	for i := 0; i < total; i++ {
		unravelIndex(i, target, idx)

		srcPos := r.offset
		for d := range target {
			if padShape[d] == 1 {
				continue // Broadcast: always element 0
			}
			srcPos += idx[d] * padStride[d] * size
		}

		dstPos := result.elemBytePos(idx)
		copy(result.buffer.data[dstPos:dstPos+size], r.buffer.data[srcPos:srcPos+size])
	}
	return result, nil
}

// elemBytePos returns the byte position of the element at the given
// multi-dimensional index, honoring strides and the view offset.
// Indices are not bounds-checked; callers iterate within the shape.
func (r *RawTensor) elemBytePos(indices []int) int {
	pos := r.offset
	size := r.dtype.Size()
	for d, idx := range indices {
		pos += idx * r.stride[d] * size
	}
	return pos
}

// unravelIndex decomposes a flat row-major index into a multi-dimensional
// index, writing the result into idx (which must have len(shape) entries).
func unravelIndex(flat int, shape Shape, idx []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d] = flat % shape[d]
		flat /= shape[d]
	}
}
