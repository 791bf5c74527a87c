//go:build windows

package gpu

import (
	"fmt"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

// failed reports whether an HRESULT carries the severity bit.
func failed(hr uintptr) bool {
	return int32(hr) < 0
}

func hresultError(op string, hr uintptr) error {
	return fmt.Errorf("%s: %w", op, ole.NewError(hr))
}

// comCall invokes a vtable slot with this as the implicit first argument.
func comCall(fn uintptr, this unsafe.Pointer, args ...uintptr) uintptr {
	hr, _, _ := syscall.SyscallN(fn, append([]uintptr{uintptr(this)}, args...)...)
	return hr
}
