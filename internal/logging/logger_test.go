package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogger_ShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		minLevel Level
		logLevel Level
		want     bool
	}{
		{"debug logs when min is debug", LevelDebug, LevelDebug, true},
		{"error logs when min is debug", LevelDebug, LevelError, true},
		{"debug does not log when min is info", LevelInfo, LevelDebug, false},
		{"warn logs when min is info", LevelInfo, LevelWarn, true},
		{"info does not log when min is error", LevelError, LevelInfo, false},
		{"error logs when min is error", LevelError, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.minLevel)
			if got := logger.shouldLog(tt.logLevel); got != tt.want {
				t.Errorf("shouldLog() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogger_JSONEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LevelInfo, FormatJSON, &buf)

	logger.Info("gpu.adapter.detected", "Adapter detected", map[string]interface{}{
		"index":  0,
		"vendor": "NVIDIA",
	})

	var event Event
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("Failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}

	if event.Level != LevelInfo {
		t.Errorf("Expected level %s, got %s", LevelInfo, event.Level)
	}
	if event.Type != "gpu.adapter.detected" {
		t.Errorf("Expected type 'gpu.adapter.detected', got %s", event.Type)
	}
	if event.Payload["vendor"] != "NVIDIA" {
		t.Errorf("Expected payload vendor NVIDIA, got %v", event.Payload["vendor"])
	}
	if event.Timestamp == "" {
		t.Error("Expected timestamp to be set")
	}
}

func TestLogger_TextEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LevelDebug, FormatText, &buf)

	logger.Warn("gpu.probe.failed", "Usage probe failed", map[string]interface{}{
		"probe": "usage",
		"error": "no result",
	})

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, "WARN") {
		t.Errorf("Expected upper-case level in text line, got: %s", line)
	}
	if !strings.Contains(line, "gpu.probe.failed: Usage probe failed") {
		t.Errorf("Expected type and message in text line, got: %s", line)
	}
	// payload keys are sorted
	if !strings.HasSuffix(line, "error=no result probe=usage") {
		t.Errorf("Expected sorted payload suffix, got: %s", line)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LevelWarn, FormatJSON, &buf)

	logger.Debug("test.debug", "Debug message", nil)
	logger.Info("test.info", "Info message", nil)
	logger.Error("test.error", "Error message", map[string]interface{}{"code": 500})

	output := buf.String()
	if strings.Contains(output, "test.debug") || strings.Contains(output, "test.info") {
		t.Errorf("Expected debug/info events to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "500") {
		t.Errorf("Expected error payload in output, got: %s", output)
	}
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "gpuinfo", "gpuinfo.log")

	logger, err := NewFileLogger(LevelInfo, FormatJSON, logPath)
	if err != nil {
		t.Fatalf("Failed to create file logger: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestFileLogger_Append(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gpuinfo.log")

	for _, eventType := range []string{"test.first", "test.second"} {
		logger, err := NewFileLogger(LevelInfo, FormatJSON, logPath)
		if err != nil {
			t.Fatalf("Failed to create file logger: %v", err)
		}
		logger.Info(eventType, "message", nil)
		if closeErr := logger.Close(); closeErr != nil {
			t.Fatalf("Failed to close logger: %v", closeErr)
		}
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), content)
	}
	if !strings.Contains(lines[1], "test.second") {
		t.Error("Second event was not appended")
	}
}
