package webgpu

import (
	"testing"

	"github.com/forge-ml/forge/internal/tensor"
)

func TestIsAvailable(t *testing.T) {
	available := IsAvailable()
	t.Logf("WebGPU available: %v", available)
	// Note: This test doesn't fail if WebGPU is unavailable
	// It just reports the status
}

func TestNew(t *testing.T) {
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	defer backend.Release()

	if backend.Name() != "WebGPU" {
		t.Errorf("Expected name 'WebGPU', got '%s'", backend.Name())
	}
	if backend.Device() != tensor.WebGPU {
		t.Errorf("Expected device WebGPU, got %v", backend.Device())
	}

	info := backend.AdapterInfo()
	if info == nil {
		t.Log("Note: Adapter info unavailable")
	} else {
		t.Logf("Using GPU: %s (%s)", info.Device, info.Vendor)
	}
}

func TestBackendInterface(t *testing.T) {
	backend, err := New()
	if err != nil {
		t.Skip("WebGPU not available on this system")
	}
	defer backend.Release()

	var _ tensor.Backend = backend
}
