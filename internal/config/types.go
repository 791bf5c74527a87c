package config

// Config represents the complete gpuinfo configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Probes  ProbesConfig  `yaml:"probes"`
	Report  ReportConfig  `yaml:"report"`
	Demo    DemoConfig    `yaml:"demo"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ProbesConfig configures the best-effort telemetry probes run per adapter.
type ProbesConfig struct {
	Usage       QueryConfig `yaml:"usage"`
	Temperature QueryConfig `yaml:"temperature"`
	Cores       CoresConfig `yaml:"cores"`
}

// QueryConfig describes one management-instrumentation counter query.
type QueryConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Query     string `yaml:"query"`
	Field     string `yaml:"field"`
}

// CoresConfig configures the core-count estimator.
type CoresConfig struct {
	Enabled     bool `yaml:"enabled"`
	Placeholder int  `yaml:"placeholder"`
}

// ReportConfig controls where `gpus --save` writes when no path is given.
type ReportConfig struct {
	Path string `yaml:"path"`
}

// DemoConfig holds the color labels used by the color demo.
type DemoConfig struct {
	Heading   string `yaml:"heading"`
	Title     string `yaml:"title"`
	Info      string `yaml:"info"`
	Art       string `yaml:"art"`
	ColorMode string `yaml:"color_mode"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}
