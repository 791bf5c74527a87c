package gpu

import (
	"fmt"
	"time"
)

// DriverVersionUnknown is reported when no driver version could be resolved.
const DriverVersionUnknown = "N/A"

// Adapter describes one display adapter as reported by the platform.
// Best-effort metrics are pointers: nil means the probe failed or was disabled,
// which keeps "0% usage" distinguishable from "no reading".
type Adapter struct {
	Index         int      `json:"index"`
	Name          string   `json:"name"`
	MemoryGB      int      `json:"memory_gb"`
	DriverVersion string   `json:"driver_version"`
	Vendor        string   `json:"vendor"`
	VendorID      uint32   `json:"vendor_id"`
	DeviceID      uint32   `json:"device_id"`
	UsagePercent  *float64 `json:"usage_percent,omitempty"`
	TemperatureC  *float64 `json:"temperature_c,omitempty"`
	CoreCount     *int     `json:"core_count,omitempty"`
	ProbeErrors   []string `json:"probe_errors,omitempty"`
}

// Memory formats the dedicated memory size as "<n> GB".
func (a Adapter) Memory() string {
	return fmt.Sprintf("%d GB", a.MemoryGB)
}

// NotAvailable is shown in place of a metric that has no reading.
const NotAvailable = "n/a"

// Usage formats the utilization reading, or NotAvailable.
func (a Adapter) Usage() string {
	if a.UsagePercent == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.0f%%", *a.UsagePercent)
}

// Temperature formats the temperature reading, or NotAvailable.
func (a Adapter) Temperature() string {
	if a.TemperatureC == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f °C", *a.TemperatureC)
}

// Cores formats the core estimate, or NotAvailable.
func (a Adapter) Cores() string {
	if a.CoreCount == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d", *a.CoreCount)
}

// Report is the result of one enumeration pass.
type Report struct {
	Platform     string    `json:"platform"`
	GeneratedAt  time.Time `json:"generated_at"`
	FactoryOK    bool      `json:"factory_ok"`
	Adapters     []Adapter `json:"adapters"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// Description is the raw adapter data produced by an AdapterSource.
// Sources that read telemetry per device fill UsagePercent/TemperatureC;
// the detector only falls back to the counter probe when they are nil.
type Description struct {
	Name                 string
	VendorID             uint32
	DeviceID             uint32
	DedicatedMemoryBytes uint64
	DriverVersion        string
	UsagePercent         *float64
	TemperatureC         *float64
}

// Query is a single management-instrumentation counter query.
type Query struct {
	Namespace string
	WQL       string
	Field     string
}

func (q Query) String() string {
	return q.Namespace + ":" + q.Field
}
