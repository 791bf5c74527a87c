//go:build !(linux && cuda)

package gpu

import "gpuinfo/internal/logging"

func newNVMLSource(*logging.Logger) AdapterSource {
	return unsupportedSource{name: "nvml", reason: "NVML disabled: rebuild with -tags cuda"}
}
