//go:build linux && cuda

package gpu

import (
	"context"
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpuinfo/internal/logging"
)

// DeviceInterface defines the NVML device calls used here (for mocking)
type DeviceInterface interface {
	GetName() (string, nvml.Return)
	GetPciInfo() (nvml.PciInfo, nvml.Return)
	GetMemoryInfo() (nvml.Memory, nvml.Return)
	GetUtilizationRates() (nvml.Utilization, nvml.Return)
	GetTemperature(sensor nvml.TemperatureSensors) (uint32, nvml.Return)
}

// NVMLInterface defines the NVML library calls used here (for mocking)
type NVMLInterface interface {
	Init() nvml.Return
	Shutdown() nvml.Return
	DeviceGetCount() (int, nvml.Return)
	DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return)
	SystemGetDriverVersion() (string, nvml.Return)
}

// deviceWrapper wraps nvml.Device to implement DeviceInterface
type deviceWrapper struct {
	device nvml.Device
}

func (w deviceWrapper) GetName() (string, nvml.Return) {
	return w.device.GetName()
}

func (w deviceWrapper) GetPciInfo() (nvml.PciInfo, nvml.Return) {
	return w.device.GetPciInfo()
}

func (w deviceWrapper) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return w.device.GetMemoryInfo()
}

func (w deviceWrapper) GetUtilizationRates() (nvml.Utilization, nvml.Return) {
	return w.device.GetUtilizationRates()
}

func (w deviceWrapper) GetTemperature(sensor nvml.TemperatureSensors) (uint32, nvml.Return) {
	return w.device.GetTemperature(sensor)
}

// RealNVML implements NVMLInterface using the NVML shared library
type RealNVML struct{}

// Init initializes NVML
func (r *RealNVML) Init() nvml.Return {
	return nvml.Init()
}

// Shutdown shuts down NVML
func (r *RealNVML) Shutdown() nvml.Return {
	return nvml.Shutdown()
}

// DeviceGetCount returns the number of GPU devices
func (r *RealNVML) DeviceGetCount() (int, nvml.Return) {
	return nvml.DeviceGetCount()
}

// DeviceGetHandleByIndex returns a handle to a GPU device
func (r *RealNVML) DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return deviceWrapper{device: device}, ret
}

// SystemGetDriverVersion returns the driver version
func (r *RealNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return nvml.SystemGetDriverVersion()
}

// NVMLSource enumerates NVIDIA devices through NVML. Utilization and
// temperature are read per device, so the counter probe is not consulted.
type NVMLSource struct {
	nvml   NVMLInterface
	logger *logging.Logger
}

func newNVMLSource(logger *logging.Logger) AdapterSource {
	return NewNVMLSource(&RealNVML{}, logger)
}

// NewNVMLSource creates a source over a custom NVML implementation (for testing).
func NewNVMLSource(nvmlInterface NVMLInterface, logger *logging.Logger) *NVMLSource {
	return &NVMLSource{nvml: nvmlInterface, logger: logger}
}

// Name identifies the source in reports.
func (s *NVMLSource) Name() string { return "linux/nvml" }

// Enumerate lists devices in index order. A device handle failure truncates the list.
func (s *NVMLSource) Enumerate(ctx context.Context) ([]Description, error) {
	descs := make([]Description, 0)

	if ret := s.nvml.Init(); ret != nvml.SUCCESS {
		return descs, fmt.Errorf("%w: NVML init: %s", ErrFactoryUnavailable, nvml.ErrorString(ret))
	}
	defer func() {
		if ret := s.nvml.Shutdown(); ret != nvml.SUCCESS {
			s.logger.Warn("gpu.nvml.shutdown.failed", "NVML shutdown reported an error", map[string]interface{}{
				"error": nvml.ErrorString(ret),
			})
		}
	}()

	driverVersion, ret := s.nvml.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		s.logger.Debug("gpu.driver.version.failed", "Failed to get driver version", map[string]interface{}{
			"error": nvml.ErrorString(ret),
		})
		driverVersion = ""
	}

	count, ret := s.nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return descs, fmt.Errorf("%w: device count: %s", ErrEnumeration, nvml.ErrorString(ret))
	}

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return descs, fmt.Errorf("%w: %w", ErrEnumeration, err)
		}

		device, ret := s.nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return descs, fmt.Errorf("%w: device %d: %s", ErrEnumeration, i, nvml.ErrorString(ret))
		}

		descs = append(descs, describeDevice(device, driverVersion))
	}

	return descs, nil
}

func describeDevice(device DeviceInterface, driverVersion string) Description {
	desc := Description{
		VendorID:      VendorIDNVIDIA,
		DriverVersion: driverVersion,
	}

	if name, ret := device.GetName(); ret == nvml.SUCCESS {
		desc.Name = name
	}

	// PciDeviceId packs the device ID in the high word and the vendor ID in the low word.
	if pci, ret := device.GetPciInfo(); ret == nvml.SUCCESS && pci.PciDeviceId != 0 {
		desc.VendorID = pci.PciDeviceId & 0xFFFF
		desc.DeviceID = pci.PciDeviceId >> 16
	}

	if mem, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
		desc.DedicatedMemoryBytes = mem.Total
	}

	if util, ret := device.GetUtilizationRates(); ret == nvml.SUCCESS {
		usage := float64(util.Gpu)
		desc.UsagePercent = &usage
	}

	if temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		celsius := float64(temp)
		desc.TemperatureC = &celsius
	}

	return desc
}
