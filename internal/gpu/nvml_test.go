//go:build linux && cuda

package gpu

import (
	"context"
	"errors"
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpuinfo/internal/logging"
)

const mockDriverVersion = "535.104.05"

func rtx4090() MockDevice {
	return MockDevice{
		Name:              "NVIDIA GeForce RTX 4090",
		NameReturn:        nvml.SUCCESS,
		PciDeviceID:       0x268410DE,
		PciInfoReturn:     nvml.SUCCESS,
		MemoryTotal:       24 * 1024 * 1024 * 1024,
		MemoryInfoReturn:  nvml.SUCCESS,
		GPUUtil:           42,
		UtilizationReturn: nvml.SUCCESS,
		Temperature:       61,
		TemperatureReturn: nvml.SUCCESS,
	}
}

func TestNVMLSource_Enumerate(t *testing.T) {
	mock := NewMockNVML()
	mock.DriverVersion = mockDriverVersion
	mock.DeviceCount = 1
	mock.Devices = []MockDevice{rtx4090()}

	source := NewNVMLSource(mock, logging.NewLogger(logging.LevelError))
	descs, err := source.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}

	if len(descs) != 1 {
		t.Fatalf("Expected 1 device, got %d", len(descs))
	}

	d := descs[0]
	if d.Name != "NVIDIA GeForce RTX 4090" {
		t.Errorf("Name = %s", d.Name)
	}
	if d.VendorID != VendorIDNVIDIA || d.DeviceID != 0x2684 {
		t.Errorf("PCI IDs = %#x/%#x, want 0x10de/0x2684", d.VendorID, d.DeviceID)
	}
	if d.DriverVersion != mockDriverVersion {
		t.Errorf("DriverVersion = %s, want %s", d.DriverVersion, mockDriverVersion)
	}
	if BytesToGB(d.DedicatedMemoryBytes) != 24 {
		t.Errorf("memory = %d bytes, want 24 GB", d.DedicatedMemoryBytes)
	}
	if d.UsagePercent == nil || *d.UsagePercent != 42 {
		t.Errorf("UsagePercent = %v, want 42", d.UsagePercent)
	}
	if d.TemperatureC == nil || *d.TemperatureC != 61 {
		t.Errorf("TemperatureC = %v, want 61", d.TemperatureC)
	}
	if mock.ShutdownCalls != 1 {
		t.Errorf("Expected NVML shutdown once, got %d", mock.ShutdownCalls)
	}
}

func TestNVMLSource_InitFailed(t *testing.T) {
	mock := NewMockNVML()
	mock.InitReturn = nvml.ERROR_LIBRARY_NOT_FOUND

	descs, err := NewNVMLSource(mock, logging.NewLogger(logging.LevelError)).Enumerate(context.Background())

	if !errors.Is(err, ErrFactoryUnavailable) {
		t.Errorf("Expected ErrFactoryUnavailable, got %v", err)
	}
	if descs == nil || len(descs) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", descs)
	}
	if mock.ShutdownCalls != 0 {
		t.Error("Shutdown must not run when init failed")
	}
}

func TestNVMLSource_NoDevices(t *testing.T) {
	mock := NewMockNVML()
	mock.DeviceCount = 0

	descs, err := NewNVMLSource(mock, logging.NewLogger(logging.LevelError)).Enumerate(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for zero devices, got %v", err)
	}
	if len(descs) != 0 {
		t.Errorf("Expected 0 devices, got %d", len(descs))
	}
}

func TestNVMLSource_HandleFailureTruncates(t *testing.T) {
	mock := NewMockNVML()
	mock.DeviceCount = 2
	mock.Devices = []MockDevice{rtx4090(), rtx4090()}
	mock.FailHandleAt = 1

	descs, err := NewNVMLSource(mock, logging.NewLogger(logging.LevelError)).Enumerate(context.Background())

	if !errors.Is(err, ErrEnumeration) {
		t.Errorf("Expected ErrEnumeration, got %v", err)
	}
	if len(descs) != 1 {
		t.Errorf("Expected list truncated to 1 device, got %d", len(descs))
	}
}

func TestNVMLSource_PartialDeviceData(t *testing.T) {
	device := rtx4090()
	device.UtilizationReturn = nvml.ERROR_NOT_SUPPORTED
	device.TemperatureReturn = nvml.ERROR_NOT_SUPPORTED
	device.PciInfoReturn = nvml.ERROR_UNKNOWN

	mock := NewMockNVML()
	mock.DeviceCount = 1
	mock.Devices = []MockDevice{device}
	mock.DriverVersionReturn = nvml.ERROR_UNKNOWN

	descs, err := NewNVMLSource(mock, logging.NewLogger(logging.LevelError)).Enumerate(context.Background())
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}

	d := descs[0]
	if d.UsagePercent != nil || d.TemperatureC != nil {
		t.Error("Unsupported telemetry should stay nil so the detector can fall back to probes")
	}
	if d.VendorID != VendorIDNVIDIA {
		t.Errorf("VendorID = %#x, want NVIDIA default", d.VendorID)
	}
	if d.DriverVersion != "" {
		t.Errorf("DriverVersion = %q, want empty", d.DriverVersion)
	}
}
