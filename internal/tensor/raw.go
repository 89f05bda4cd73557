package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/x448/float16"

	"github.com/forge-ml/forge/internal/bfloat16"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted shared buffer for Copy-on-Write semantics.
// Views created by Narrow/Select share the buffer and keep it alive.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone and view operations).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level tensor representation.
//
// Storage is a reference-counted byte buffer interpreted through shape,
// per-dimension strides (in elements) and a byte offset. A freshly allocated
// tensor is contiguous (row-major); Narrow and Select produce views whose
// strides no longer match the row-major pattern.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride []int         // Memory strides in elements
	dtype  DataType      // Runtime type information
	device Device        // Compute device
	offset int           // Byte offset into the buffer, for views
}

// NewRaw creates a new contiguous RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides in elements.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes of the logical elements.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsContiguous reports whether the logical element order matches a row-major
// stride pattern. Dimensions of size 1 are ignored since their stride never
// contributes to element addressing.
func (r *RawTensor) IsContiguous() bool {
	expected := 1
	for i := len(r.shape) - 1; i >= 0; i-- {
		if r.shape[i] == 1 {
			continue
		}
		if r.stride[i] != expected {
			return false
		}
		expected *= r.shape[i]
	}
	return true
}

// requireContiguous panics when a zero-copy slice accessor is called on a
// strided view. Callers holding a view must go through FloatAt/ComplexAt or
// Contiguous() first.
func (r *RawTensor) requireContiguous(op string) {
	if !r.IsContiguous() {
		panic(op + " requires a contiguous tensor; call Contiguous() first")
	}
}

// Data returns the raw byte slice of the logical elements.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	r.requireContiguous("Data")
	return r.buffer.data[r.offset : r.offset+r.ByteSize()]
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32 or the layout is not contiguous.
func (r *RawTensor) AsFloat32() []float32 {
	r.checkAccess(Float32, "float32")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64 or the layout is not contiguous.
func (r *RawTensor) AsFloat64() []float64 {
	r.checkAccess(Float64, "float64")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16 or the layout is not contiguous.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	r.checkAccess(Float16, "float16")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float16.Float16)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsBFloat16 interprets the data as []bfloat16.BFloat16.
// Panics if the tensor's dtype is not BFloat16 or the layout is not contiguous.
func (r *RawTensor) AsBFloat16() []bfloat16.BFloat16 {
	r.checkAccess(BFloat16, "bfloat16")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*bfloat16.BFloat16)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt8 interprets the data as []int8.
// Panics if the tensor's dtype is not Int8 or the layout is not contiguous.
func (r *RawTensor) AsInt8() []int8 {
	r.checkAccess(Int8, "int8")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int8)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt16 interprets the data as []int16.
// Panics if the tensor's dtype is not Int16 or the layout is not contiguous.
func (r *RawTensor) AsInt16() []int16 {
	r.checkAccess(Int16, "int16")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int16)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32 or the layout is not contiguous.
func (r *RawTensor) AsInt32() []int32 {
	r.checkAccess(Int32, "int32")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64 or the layout is not contiguous.
func (r *RawTensor) AsInt64() []int64 {
	r.checkAccess(Int64, "int64")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8 or the layout is not contiguous.
func (r *RawTensor) AsUint8() []uint8 {
	r.checkAccess(Uint8, "uint8")
	return r.buffer.data[r.offset : r.offset+r.NumElements()] // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool or the layout is not contiguous.
func (r *RawTensor) AsBool() []bool {
	r.checkAccess(Bool, "bool")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsComplex64 interprets the data as []complex64.
// Panics if the tensor's dtype is not Complex64 or the layout is not contiguous.
func (r *RawTensor) AsComplex64() []complex64 {
	r.checkAccess(Complex64, "complex64")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*complex64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsComplex128 interprets the data as []complex128.
// Panics if the tensor's dtype is not Complex128 or the layout is not contiguous.
func (r *RawTensor) AsComplex128() []complex128 {
	r.checkAccess(Complex128, "complex128")
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*complex128)(unsafe.Pointer(&data[0])), r.NumElements())
}

func (r *RawTensor) checkAccess(want DataType, name string) {
	if r.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, name))
	}
	r.requireContiguous("As" + name)
}

// Clone creates a shallow copy of the RawTensor (shares buffer with reference counting).
// The buffer is reference-counted and will be deallocated only when the last
// reference is released.
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer, // Share the same buffer
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...), // Copy strides
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}
