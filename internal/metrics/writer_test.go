package metrics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gpuinfo/internal/logging"
)

func TestWriter_Write(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError)
	writer := NewWriter(logger)

	tmpFile := filepath.Join(t.TempDir(), "samples.jsonl")

	usage := 50.0
	samples := []AdapterSample{{
		Timestamp:    time.Now().UTC(),
		Index:        0,
		Name:         "NVIDIA GeForce RTX 4090",
		UsagePercent: &usage,
	}}

	if err := writer.Write(samples, tmpFile); err != nil {
		t.Fatalf("Expected successful write, got error: %v", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, `"usage_pct":50`) {
		t.Errorf("Expected file to contain usage_pct, got %s", content)
	}
	if strings.Contains(content, "temp_c") {
		t.Error("Missing temperature must be omitted, not written as zero")
	}

	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 1 {
		t.Errorf("Expected 1 line, got %d", len(lines))
	}

	var readSample AdapterSample
	if err := json.Unmarshal([]byte(lines[0]), &readSample); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if readSample.Name != "NVIDIA GeForce RTX 4090" {
		t.Errorf("Name = %s", readSample.Name)
	}
}

func TestWriter_Write_Appends(t *testing.T) {
	writer := NewWriter(logging.NewLogger(logging.LevelError))
	tmpFile := filepath.Join(t.TempDir(), "nested", "samples.jsonl")

	for i := 0; i < 3; i++ {
		samples := []AdapterSample{{Timestamp: time.Now().UTC(), Index: 0}, {Timestamp: time.Now().UTC(), Index: 1}}
		if err := writer.Write(samples, tmpFile); err != nil {
			t.Fatalf("Failed to write batch %d: %v", i, err)
		}
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 6 {
		t.Errorf("Expected 6 lines, got %d", len(lines))
	}

	info, err := os.Stat(tmpFile)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected 0600 permissions, got %o", perm)
	}
}
