package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"gpuinfo/internal/logging"
)

const (
	// DefaultStateDir is the default location for saved reports and samples
	DefaultStateDir = "/var/lib/gpuinfo"
	// DefaultStatePermissions is the default permission for state directories
	DefaultStatePermissions = 0o750
	// DefaultFilePermissions is the default permission for state files
	DefaultFilePermissions = 0o600

	reportFileName  = "gpu_report.json"
	samplesFileName = "gpu_samples.jsonl"
)

// GetStateDir returns GPUINFO_STATE_DIR when set, otherwise defaultDir.
func GetStateDir(defaultDir string) string {
	if env := os.Getenv("GPUINFO_STATE_DIR"); env != "" {
		if abs, err := filepath.Abs(env); err == nil {
			return abs
		}
		return env
	}
	return defaultDir
}

// DefaultReportPath is where `gpus --save` writes without an explicit path.
func DefaultReportPath() string {
	return filepath.Join(GetStateDir(DefaultStateDir), reportFileName)
}

// DefaultSamplesPath is where `sample` appends without an explicit path.
func DefaultSamplesPath() string {
	return filepath.Join(GetStateDir(DefaultStateDir), samplesFileName)
}

// EnsureStateDirectory creates the directory with DefaultStatePermissions.
func EnsureStateDirectory(path string) error {
	if err := os.MkdirAll(path, DefaultStatePermissions); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return nil
}

// AtomicWriteFile writes data to a temp file next to path and renames it into
// place, so readers never see a partial file. The parent directory is created.
func AtomicWriteFile(path string, data []byte, perm os.FileMode, logger *logging.Logger) error {
	if err := EnsureStateDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			if logger != nil {
				logger.Warn("fsutil.cleanup.failed", "Failed to remove temp file", map[string]interface{}{
					"path":  tmpPath,
					"error": removeErr.Error(),
				})
			}
		}
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// CloseWithError closes a resource and logs any error if a logger is provided.
func CloseWithError(closer func() error, logger *logging.Logger, resource string) {
	if err := closer(); err != nil {
		if logger != nil {
			logger.Warn("fsutil.close.failed", fmt.Sprintf("Failed to close %s", resource), map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
