package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLogging()...)
	errors = append(errors, validateQuery("probes.usage", c.Probes.Usage)...)
	errors = append(errors, validateQuery("probes.temperature", c.Probes.Temperature)...)
	errors = append(errors, c.validateCores()...)
	errors = append(errors, c.validateDemo()...)

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		errors = append(errors, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validLevels, c.Logging.Level),
		})
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, c.Logging.Format) {
		errors = append(errors, ValidationError{
			Path:    "logging.format",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validFormats, c.Logging.Format),
		})
	}

	return errors
}

// validateQuery only checks enabled probes; a disabled probe may be left blank.
func validateQuery(path string, q QueryConfig) []ValidationError {
	if !q.Enabled {
		return nil
	}

	var errors []ValidationError
	if strings.TrimSpace(q.Query) == "" {
		errors = append(errors, ValidationError{Path: path + ".query", Message: "must not be empty when enabled"})
	}
	if strings.TrimSpace(q.Field) == "" {
		errors = append(errors, ValidationError{Path: path + ".field", Message: "must not be empty when enabled"})
	} else if lower := strings.ToLower(q.Query); !strings.Contains(lower, "select *") && !strings.Contains(lower, strings.ToLower(q.Field)) {
		errors = append(errors, ValidationError{
			Path:    path + ".field",
			Message: fmt.Sprintf("field '%s' is not selected by the query", q.Field),
		})
	}
	return errors
}

func (c *Config) validateCores() []ValidationError {
	if c.Probes.Cores.Placeholder >= 0 {
		return nil
	}

	return []ValidationError{{
		Path:    "probes.cores.placeholder",
		Message: fmt.Sprintf("must be non-negative, got %d", c.Probes.Cores.Placeholder),
	}}
}

func (c *Config) validateDemo() []ValidationError {
	validModes := []string{"always", "never", "auto"}
	if contains(validModes, c.Demo.ColorMode) {
		return nil
	}

	return []ValidationError{{
		Path:    "demo.color_mode",
		Message: fmt.Sprintf("must be one of %v, got '%s'", validModes, c.Demo.ColorMode),
	}}
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
