package gpu

import (
	"strconv"
	"strings"
)

const (
	// thermalKelvinThreshold is 273.2 K in tenths; raw thermal-zone readings
	// above it are taken to be tenths of Kelvin.
	thermalKelvinThreshold = 2732.0

	bytesPerGB = 1024 * 1024 * 1024
)

// ThermalToCelsius converts an ACPI thermal-zone reading to Celsius. Values
// above the tenths-of-Kelvin threshold are converted; others pass through.
func ThermalToCelsius(raw float64) float64 {
	if raw > thermalKelvinThreshold {
		return raw/10.0 - 273.15
	}
	return raw
}

// BytesToGB returns whole gigabytes, truncating any remainder.
func BytesToGB(bytes uint64) int {
	return int(bytes / bytesPerGB)
}

// numericValue converts a counter value to float64. Management APIs hand back
// 64-bit integers as decimal strings, so numeric strings are accepted as well.
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
