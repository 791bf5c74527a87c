package metrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gpuinfo/internal/fsutil"
	"gpuinfo/internal/logging"
)

// Writer handles writing adapter samples to JSONL format
type Writer struct {
	logger *logging.Logger
}

// NewWriter creates a new sample writer
func NewWriter(logger *logging.Logger) *Writer {
	return &Writer{
		logger: logger,
	}
}

// Write appends samples to a JSONL file, one object per line.
// All lines are encoded before the file is touched, so a marshal failure
// leaves the file unchanged.
func (w *Writer) Write(samples []AdapterSample, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, sample := range samples {
		if err := enc.Encode(sample); err != nil {
			return fmt.Errorf("failed to marshal sample: %w", err)
		}
	}

	if err := fsutil.EnsureStateDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Clean(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, fsutil.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open samples log: %w", err)
	}
	defer fsutil.CloseWithError(file.Close, w.logger, "samples log")

	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}

	return nil
}
