//go:build windows

package gpu

import (
	"context"
	"fmt"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"gpuinfo/internal/logging"
)

const dxgiErrorNotFound = 0x887A0002

var (
	modDXGI                = windows.NewLazySystemDLL("dxgi.dll")
	procCreateDXGIFactory1 = modDXGI.NewProc("CreateDXGIFactory1")

	iidIDXGIFactory1 = ole.NewGUID("{770aae78-f26f-4dba-a829-253c83d1b387}")
)

// adapterDesc1 mirrors DXGI_ADAPTER_DESC1.
type adapterDesc1 struct {
	Description           [128]uint16
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           windows.LUID
	Flags                 uint32
}

type dxgiFactory1 struct {
	ole.IUnknown
}

type dxgiFactory1Vtbl struct {
	ole.IUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
	EnumAdapters            uintptr
	MakeWindowAssociation   uintptr
	GetWindowAssociation    uintptr
	CreateSwapChain         uintptr
	CreateSoftwareAdapter   uintptr
	EnumAdapters1           uintptr
	IsCurrent               uintptr
}

func (f *dxgiFactory1) vtbl() *dxgiFactory1Vtbl {
	return (*dxgiFactory1Vtbl)(unsafe.Pointer(f.RawVTable))
}

func (f *dxgiFactory1) enumAdapters1(index uint32) (*dxgiAdapter1, uintptr) {
	var adapter *dxgiAdapter1
	hr := comCall(f.vtbl().EnumAdapters1, unsafe.Pointer(f), uintptr(index), uintptr(unsafe.Pointer(&adapter)))
	return adapter, hr
}

type dxgiAdapter1 struct {
	ole.IUnknown
}

type dxgiAdapter1Vtbl struct {
	ole.IUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
	EnumOutputs             uintptr
	GetDesc                 uintptr
	CheckInterfaceSupport   uintptr
	GetDesc1                uintptr
}

func (a *dxgiAdapter1) vtbl() *dxgiAdapter1Vtbl {
	return (*dxgiAdapter1Vtbl)(unsafe.Pointer(a.RawVTable))
}

func (a *dxgiAdapter1) getDesc1() (adapterDesc1, uintptr) {
	var desc adapterDesc1
	hr := comCall(a.vtbl().GetDesc1, unsafe.Pointer(a), uintptr(unsafe.Pointer(&desc)))
	return desc, hr
}

func createDXGIFactory1() (*dxgiFactory1, error) {
	if err := procCreateDXGIFactory1.Find(); err != nil {
		return nil, err
	}

	var factory *dxgiFactory1
	hr, _, _ := procCreateDXGIFactory1.Call(
		uintptr(unsafe.Pointer(iidIDXGIFactory1)),
		uintptr(unsafe.Pointer(&factory)),
	)
	if failed(hr) {
		return nil, hresultError("CreateDXGIFactory1", hr)
	}
	return factory, nil
}

// dxgiSource enumerates adapters through IDXGIFactory1.
type dxgiSource struct {
	logger  *logging.Logger
	drivers func() (map[string]string, error)
}

func (s *dxgiSource) Name() string { return "windows/dxgi" }

func (s *dxgiSource) Enumerate(ctx context.Context) ([]Description, error) {
	descs := make([]Description, 0)

	factory, err := createDXGIFactory1()
	if err != nil {
		return descs, fmt.Errorf("%w: %w", ErrFactoryUnavailable, err)
	}
	defer factory.Release()

	drivers := s.driverVersions()

	for i := uint32(0); ; i++ {
		if err := ctx.Err(); err != nil {
			return descs, fmt.Errorf("%w: %w", ErrEnumeration, err)
		}

		adapter, hr := factory.enumAdapters1(i)
		if uint32(hr) == dxgiErrorNotFound {
			return descs, nil
		}
		if failed(hr) {
			return descs, fmt.Errorf("%w: adapter %d: %w", ErrEnumeration, i, hresultError("EnumAdapters1", hr))
		}

		raw, hr := adapter.getDesc1()
		adapter.Release()
		if failed(hr) {
			return descs, fmt.Errorf("%w: adapter %d: %w", ErrEnumeration, i, hresultError("GetDesc1", hr))
		}

		descs = append(descs, Description{
			Name:                 windows.UTF16ToString(raw.Description[:]),
			VendorID:             raw.VendorID,
			DeviceID:             raw.DeviceID,
			DedicatedMemoryBytes: uint64(raw.DedicatedVideoMemory),
			DriverVersion:        drivers[pciKey(raw.VendorID, raw.DeviceID)],
		})
	}
}

// driverVersions is a best-effort lookup; without it adapters report DriverVersionUnknown.
func (s *dxgiSource) driverVersions() map[string]string {
	if s.drivers == nil {
		return nil
	}
	versions, err := s.drivers()
	if err != nil {
		s.logger.Debug("gpu.driver.lookup.failed", "Driver version lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return versions
}
