package tensor

// Backend identifies the device a tensor's storage lives on.
//
// Forge tensors are generic over their backend so that test code can be
// parametrized across devices. The test-support surface needs no compute
// dispatch: all helper operations read and write storage directly, so the
// interface carries device identity only.
//
// Implementations:
//   - cpu.CPUBackend: host memory, always available
//   - webgpu.Backend: GPU adapter via WebGPU, when the native runtime is present
type Backend interface {
	// Device returns the device tensors created on this backend reside on.
	Device() Device

	// Name returns the backend name, e.g. "CPU" or "WebGPU".
	Name() string
}
