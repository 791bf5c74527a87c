package config

const (
	// DefaultUsageQuery reads the 3D engine utilization of the GPU performance counters.
	DefaultUsageQuery = "SELECT UtilizationPercentage FROM Win32_PerfFormattedData_GPUPerformanceCounters_GPUEngine WHERE Name LIKE '%_3D%'"
	// DefaultTemperatureQuery reads the ACPI thermal zone (tenths of Kelvin).
	DefaultTemperatureQuery = "SELECT CurrentTemperature FROM MSAcpi_ThermalZoneTemperature"
	// DefaultCorePlaceholder is reported when the compute feature query succeeds.
	DefaultCorePlaceholder = 2560
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Probes: ProbesConfig{
			Usage: QueryConfig{
				Enabled:   true,
				Namespace: `ROOT\CIMV2`,
				Query:     DefaultUsageQuery,
				Field:     "UtilizationPercentage",
			},
			Temperature: QueryConfig{
				Enabled:   true,
				Namespace: `ROOT\WMI`,
				Query:     DefaultTemperatureQuery,
				Field:     "CurrentTemperature",
			},
			Cores: CoresConfig{
				Enabled:     true,
				Placeholder: DefaultCorePlaceholder,
			},
		},
		Demo: DemoConfig{
			Heading:   "cyan",
			Title:     "yellow",
			Info:      "green",
			Art:       "blue",
			ColorMode: "always",
		},
	}
}
