package configdir

import (
	"os"
	"path/filepath"
)

const defaultConfigDir = "/etc/gpuinfo"

// ConfigDir resolves the system configuration directory, honoring GPUINFO_CONFIG_DIR.
func ConfigDir() string {
	if env := os.Getenv("GPUINFO_CONFIG_DIR"); env != "" {
		if abs, err := filepath.Abs(env); err == nil {
			return abs
		}
	}
	return defaultConfigDir
}
