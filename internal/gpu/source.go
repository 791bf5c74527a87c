package gpu

import (
	"context"
	"fmt"
)

// AdapterSource enumerates the adapters exposed by a platform graphics API.
//
// Enumerate returns a non-nil slice in adapter-index order. A factory failure
// yields an empty slice and an error wrapping ErrFactoryUnavailable; a failure
// part-way through yields the adapters read so far and an error wrapping
// ErrEnumeration. Zero adapters is an empty slice and a nil error.
type AdapterSource interface {
	Name() string
	Enumerate(ctx context.Context) ([]Description, error)
}

// CounterProbe runs one management-instrumentation query and returns the first
// numeric value of the query's field. Every call is a full
// connect/query/teardown cycle.
type CounterProbe interface {
	QueryFloat(ctx context.Context, q Query) (float64, error)
}

// CoreEstimator returns a shader-core estimate for the first adapter.
type CoreEstimator interface {
	EstimateCores(ctx context.Context) (int, error)
}

// unsupportedSource reports a factory failure on builds without a graphics API.
type unsupportedSource struct {
	name   string
	reason string
}

func (s unsupportedSource) Name() string { return s.name }

func (s unsupportedSource) Enumerate(context.Context) ([]Description, error) {
	return []Description{}, fmt.Errorf("%w: %s: %w", ErrFactoryUnavailable, s.reason, ErrUnsupported)
}

type unsupportedEstimator struct{}

func (unsupportedEstimator) EstimateCores(context.Context) (int, error) {
	return 0, fmt.Errorf("%w: no compute device API: %w", ErrFeatureUnsupported, ErrUnsupported)
}
