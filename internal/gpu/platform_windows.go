//go:build windows

package gpu

import "gpuinfo/internal/logging"

func newPlatformSource(logger *logging.Logger) AdapterSource {
	return &dxgiSource{logger: logger, drivers: lookupDriverVersions}
}

func newPlatformProbe() CounterProbe {
	return &wmiProbe{}
}

func newPlatformEstimator(placeholder int) CoreEstimator {
	return &d3d12Estimator{placeholder: placeholder}
}
