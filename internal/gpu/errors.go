package gpu

import "errors"

var (
	// ErrFactoryUnavailable means the platform graphics factory could not be created.
	ErrFactoryUnavailable = errors.New("graphics factory unavailable")
	// ErrEnumeration means adapter enumeration stopped early; the list is truncated.
	ErrEnumeration = errors.New("adapter enumeration failed")
	// ErrQueryFailed means a counter query could not be initialized, connected or executed.
	ErrQueryFailed = errors.New("counter query failed")
	// ErrNoResult means a counter query ran but returned no numeric value for the field.
	ErrNoResult = errors.New("counter query returned no numeric value")
	// ErrFeatureUnsupported means the compute device or its feature query failed.
	ErrFeatureUnsupported = errors.New("compute feature query failed")
	// ErrUnsupported means the operation has no implementation on this platform/build.
	ErrUnsupported = errors.New("not supported on this platform")
)
