//go:build linux && cuda

package gpu

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// MockNVML is a mock implementation of NVMLInterface for testing
type MockNVML struct {
	InitReturn                   nvml.Return
	ShutdownReturn               nvml.Return
	ShutdownCalls                int
	DeviceCount                  int
	DeviceCountReturn            nvml.Return
	DriverVersion                string
	DriverVersionReturn          nvml.Return
	Devices                      []MockDevice
	DeviceGetHandleByIndexReturn nvml.Return
	FailHandleAt                 int
}

// MockDevice represents a mock GPU device
type MockDevice struct {
	Name              string
	NameReturn        nvml.Return
	PciDeviceID       uint32
	PciInfoReturn     nvml.Return
	MemoryTotal       uint64
	MemoryInfoReturn  nvml.Return
	GPUUtil           uint32
	UtilizationReturn nvml.Return
	Temperature       uint32
	TemperatureReturn nvml.Return
}

// NewMockNVML creates a new mock NVML instance
func NewMockNVML() *MockNVML {
	return &MockNVML{
		InitReturn:                   nvml.SUCCESS,
		ShutdownReturn:               nvml.SUCCESS,
		DeviceCountReturn:            nvml.SUCCESS,
		DriverVersionReturn:          nvml.SUCCESS,
		DeviceGetHandleByIndexReturn: nvml.SUCCESS,
		Devices:                      make([]MockDevice, 0),
		FailHandleAt:                 -1,
	}
}

// Init mocks NVML initialization
func (m *MockNVML) Init() nvml.Return {
	return m.InitReturn
}

// Shutdown mocks NVML shutdown
func (m *MockNVML) Shutdown() nvml.Return {
	m.ShutdownCalls++
	return m.ShutdownReturn
}

// DeviceGetCount mocks getting device count
func (m *MockNVML) DeviceGetCount() (int, nvml.Return) {
	return m.DeviceCount, m.DeviceCountReturn
}

// DeviceGetHandleByIndex mocks getting device handle
func (m *MockNVML) DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return) {
	if index == m.FailHandleAt {
		return nil, nvml.ERROR_GPU_IS_LOST
	}
	if index < 0 || index >= len(m.Devices) {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	return MockDeviceImpl{device: &m.Devices[index]}, m.DeviceGetHandleByIndexReturn
}

// SystemGetDriverVersion mocks getting driver version
func (m *MockNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return m.DriverVersion, m.DriverVersionReturn
}

// MockDeviceImpl implements DeviceInterface for testing
type MockDeviceImpl struct {
	device *MockDevice
}

// GetName returns the mock device name
func (m MockDeviceImpl) GetName() (string, nvml.Return) {
	return m.device.Name, m.device.NameReturn
}

// GetPciInfo returns the mock PCI identifiers
func (m MockDeviceImpl) GetPciInfo() (nvml.PciInfo, nvml.Return) {
	return nvml.PciInfo{PciDeviceId: m.device.PciDeviceID}, m.device.PciInfoReturn
}

// GetMemoryInfo returns the mock memory info
func (m MockDeviceImpl) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return nvml.Memory{Total: m.device.MemoryTotal}, m.device.MemoryInfoReturn
}

// GetUtilizationRates returns the mock utilization rates
func (m MockDeviceImpl) GetUtilizationRates() (nvml.Utilization, nvml.Return) {
	return nvml.Utilization{Gpu: m.device.GPUUtil}, m.device.UtilizationReturn
}

// GetTemperature returns the mock temperature
func (m MockDeviceImpl) GetTemperature(nvml.TemperatureSensors) (uint32, nvml.Return) {
	return m.device.Temperature, m.device.TemperatureReturn
}
