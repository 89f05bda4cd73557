// Package cpu implements the host-memory CPU backend.
package cpu

import (
	"github.com/forge-ml/forge/internal/tensor"
)

// CPUBackend identifies host memory as the storage device for tensors.
// It is always available and carries no state.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}
