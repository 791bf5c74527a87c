package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gpuinfo/internal/configdir"
)

const (
	systemConfigFile = "config.yaml"
	userConfigDir    = ".gpuinfo"
	userConfigFile   = "config.yaml"
)

// Load loads and merges configuration from system and user files
// Priority: defaults < system config < user config
func Load() (Config, error) {
	cfg := DefaultConfig()

	if err := mergeConfigFile(&cfg, SystemConfigPath()); err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to load system config: %w", err)
		}
	}

	if userPath := UserConfigPath(); userPath != "" {
		if err := mergeConfigFile(&cfg, userPath); err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if validationErrors := cfg.Validate(); len(validationErrors) > 0 {
		return cfg, fmt.Errorf("config.validation.error: %v", formatValidationErrors(validationErrors))
	}

	return cfg, nil
}

// LoadFrom loads configuration from a specific file path on top of the defaults
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := mergeConfigFile(&cfg, path); err != nil {
		return cfg, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if validationErrors := cfg.Validate(); len(validationErrors) > 0 {
		return cfg, fmt.Errorf("config.validation.error: %v", formatValidationErrors(validationErrors))
	}

	return cfg, nil
}

// mergeConfigFile decodes a YAML file over cfg. Keys absent from the file keep
// their current value; cfg is left untouched when parsing fails.
func mergeConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is constructed from trusted sources
	if err != nil {
		return err
	}

	merged := *cfg
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	*cfg = merged
	return nil
}

// formatValidationErrors formats validation errors for display
func formatValidationErrors(errors []ValidationError) string {
	if len(errors) == 0 {
		return ""
	}
	if len(errors) == 1 {
		return errors[0].Error()
	}
	result := fmt.Sprintf("%d validation errors:\n", len(errors))
	for _, err := range errors {
		result += "  - " + err.Error() + "\n"
	}
	return result
}

// SystemConfigPath returns the path to the system configuration file
func SystemConfigPath() string {
	return filepath.Join(configdir.ConfigDir(), systemConfigFile)
}

// UserConfigPath returns the path to the user configuration file
func UserConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, userConfigDir, userConfigFile)
}
