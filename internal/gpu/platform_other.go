//go:build !windows

package gpu

import "gpuinfo/internal/logging"

func newPlatformSource(logger *logging.Logger) AdapterSource {
	return newNVMLSource(logger)
}

func newPlatformProbe() CounterProbe {
	return newSensorProbe()
}

func newPlatformEstimator(int) CoreEstimator {
	return unsupportedEstimator{}
}
