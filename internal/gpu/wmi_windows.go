//go:build windows

package gpu

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on the thread.
const sFalse = 0x00000001

// wmiProbe runs WQL queries through the WbemScripting automation objects.
// COM is initialized and torn down inside every call on a locked OS thread.
type wmiProbe struct{}

func (p *wmiProbe) QueryFloat(ctx context.Context, q Query) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || (oleErr.Code() != ole.S_OK && oleErr.Code() != sFalse) {
			return 0, fmt.Errorf("%w: CoInitializeEx: %w", ErrQueryFailed, err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return 0, fmt.Errorf("%w: create locator: %w", ErrQueryFailed, err)
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return 0, fmt.Errorf("%w: locator dispatch: %w", ErrQueryFailed, err)
	}
	defer locator.Release()

	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, q.Namespace)
	if err != nil {
		return 0, fmt.Errorf("%w: connect %s: %w", ErrQueryFailed, q.Namespace, err)
	}
	service := serviceRaw.ToIDispatch()
	defer clearVariant(serviceRaw)

	resultRaw, err := oleutil.CallMethod(service, "ExecQuery", q.WQL)
	if err != nil {
		return 0, fmt.Errorf("%w: exec query: %w", ErrQueryFailed, err)
	}
	result := resultRaw.ToIDispatch()
	defer clearVariant(resultRaw)

	countVar, err := oleutil.GetProperty(result, "Count")
	if err != nil {
		return 0, fmt.Errorf("%w: enumerate results: %w", ErrQueryFailed, err)
	}
	count := int(countVar.Val)
	clearVariant(countVar)

	for i := 0; i < count; i++ {
		v, ok, err := itemField(result, i, q.Field)
		if err != nil {
			return 0, fmt.Errorf("%w: item %d: %w", ErrQueryFailed, i, err)
		}
		if ok {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrNoResult, q)
}

// itemField reads field from the i-th object of a result set. ok is false
// when the property exists but holds no numeric value.
func itemField(result *ole.IDispatch, i int, field string) (float64, bool, error) {
	itemRaw, err := oleutil.CallMethod(result, "ItemIndex", i)
	if err != nil {
		return 0, false, err
	}
	defer clearVariant(itemRaw)

	prop, err := oleutil.GetProperty(itemRaw.ToIDispatch(), field)
	if err != nil {
		return 0, false, err
	}
	defer clearVariant(prop)

	v, ok := numericValue(prop.Value())
	return v, ok, nil
}

func clearVariant(v *ole.VARIANT) {
	if v != nil {
		_ = v.Clear()
	}
}
