package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gpuinfo/internal/config"
	"gpuinfo/internal/gpu"
	"gpuinfo/internal/logging"
)

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// newLogger builds the event logger from configuration. A non-empty
// levelOverride replaces logging.level.
func newLogger(lc config.LoggingConfig, levelOverride string) (*logging.Logger, error) {
	levelName := lc.Level
	if levelOverride != "" {
		levelName = levelOverride
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	format := logging.Format(lc.Format)
	if lc.File != "" {
		l, err := logging.NewFileLogger(level, format, lc.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return l, nil
	}
	return logging.NewLoggerWithWriter(level, format, os.Stderr), nil
}

// probeSettings maps the probes section onto detector settings. Disabled
// queries become nil so the detector skips them.
func probeSettings(p config.ProbesConfig) gpu.ProbeSettings {
	settings := gpu.ProbeSettings{
		CoresEnabled:    p.Cores.Enabled,
		CorePlaceholder: p.Cores.Placeholder,
	}
	if p.Usage.Enabled {
		settings.Usage = &gpu.Query{Namespace: p.Usage.Namespace, WQL: p.Usage.Query, Field: p.Usage.Field}
	}
	if p.Temperature.Enabled {
		settings.Temperature = &gpu.Query{Namespace: p.Temperature.Namespace, WQL: p.Temperature.Query, Field: p.Temperature.Field}
	}
	return settings
}

func newDetector() *gpu.Detector {
	return gpu.NewDetector(logger, probeSettings(cfg.Probes))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
