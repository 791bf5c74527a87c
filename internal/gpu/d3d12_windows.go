//go:build windows

package gpu

import (
	"context"
	"fmt"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

const (
	d3dFeatureLevel11_0      = 0xb000
	d3d12FeatureD3D12Options = 0
)

var (
	modD3D12              = windows.NewLazySystemDLL("d3d12.dll")
	procD3D12CreateDevice = modD3D12.NewProc("D3D12CreateDevice")

	iidID3D12Device = ole.NewGUID("{189819f1-1db6-4b57-be54-1821339b85f7}")
)

// d3d12Options mirrors D3D12_FEATURE_DATA_D3D12_OPTIONS.
type d3d12Options struct {
	DoublePrecisionFloatShaderOps        int32
	OutputMergerLogicOp                  int32
	MinPrecisionSupport                  uint32
	TiledResourcesTier                   uint32
	ResourceBindingTier                  uint32
	PSSpecifiedStencilRefSupported       int32
	TypedUAVLoadAdditionalFormats        int32
	ROVsSupported                        int32
	ConservativeRasterizationTier        uint32
	MaxGPUVirtualAddressBitsPerResource  uint32
	StandardSwizzle64KBSupported         int32
	CrossNodeSharingTier                 uint32
	CrossAdapterRowMajorTextureSupported int32
	VPAndRTArrayIndexWithoutGSEmulation  int32
	ResourceHeapTier                     uint32
}

type d3d12Device struct {
	ole.IUnknown
}

type d3d12DeviceVtbl struct {
	ole.IUnknownVtbl
	GetPrivateData              uintptr
	SetPrivateData              uintptr
	SetPrivateDataInterface     uintptr
	SetName                     uintptr
	GetNodeCount                uintptr
	CreateCommandQueue          uintptr
	CreateCommandAllocator      uintptr
	CreateGraphicsPipelineState uintptr
	CreateComputePipelineState  uintptr
	CreateCommandList           uintptr
	CheckFeatureSupport         uintptr
}

func (d *d3d12Device) vtbl() *d3d12DeviceVtbl {
	return (*d3d12DeviceVtbl)(unsafe.Pointer(d.RawVTable))
}

// d3d12Estimator opens a D3D12 device on adapter 0 and, when the options
// feature query succeeds, reports a fixed placeholder. D3D12 exposes no
// shader-core count, so nothing is measured.
type d3d12Estimator struct {
	placeholder int
}

func (e *d3d12Estimator) EstimateCores(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	factory, err := createDXGIFactory1()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFactoryUnavailable, err)
	}
	defer factory.Release()

	adapter, hr := factory.enumAdapters1(0)
	if failed(hr) {
		return 0, fmt.Errorf("%w: adapter 0: %w", ErrEnumeration, hresultError("EnumAdapters1", hr))
	}
	defer adapter.Release()

	if err := procD3D12CreateDevice.Find(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFeatureUnsupported, err)
	}

	var device *d3d12Device
	hr, _, _ = procD3D12CreateDevice.Call(
		uintptr(unsafe.Pointer(adapter)),
		d3dFeatureLevel11_0,
		uintptr(unsafe.Pointer(iidID3D12Device)),
		uintptr(unsafe.Pointer(&device)),
	)
	if failed(hr) {
		return 0, fmt.Errorf("%w: %w", ErrFeatureUnsupported, hresultError("D3D12CreateDevice", hr))
	}
	defer device.Release()

	var opts d3d12Options
	hr = comCall(device.vtbl().CheckFeatureSupport, unsafe.Pointer(device),
		d3d12FeatureD3D12Options,
		uintptr(unsafe.Pointer(&opts)),
		unsafe.Sizeof(opts),
	)
	if failed(hr) {
		return 0, fmt.Errorf("%w: %w", ErrFeatureUnsupported, hresultError("CheckFeatureSupport", hr))
	}

	return e.placeholder, nil
}
