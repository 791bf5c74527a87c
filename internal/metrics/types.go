package metrics

import (
	"time"

	"gpuinfo/internal/gpu"
)

// AdapterSample is one line of gpu_samples.jsonl.
// Metrics that could not be read are omitted rather than written as zero.
type AdapterSample struct {
	Timestamp    time.Time `json:"ts"`
	Platform     string    `json:"platform"`
	Index        int       `json:"index"`
	Name         string    `json:"name"`
	Vendor       string    `json:"vendor"`
	MemoryGB     int       `json:"memory_gb"`
	UsagePercent *float64  `json:"usage_pct,omitempty"`
	TemperatureC *float64  `json:"temp_c,omitempty"`
	CoreCount    *int      `json:"cores,omitempty"`
	ProbeErrors  int       `json:"probe_errors,omitempty"`
}

// SamplesFromReport flattens a report into one sample per adapter, all
// stamped with the report's generation time.
func SamplesFromReport(report gpu.Report) []AdapterSample {
	samples := make([]AdapterSample, 0, len(report.Adapters))
	for _, a := range report.Adapters {
		samples = append(samples, AdapterSample{
			Timestamp:    report.GeneratedAt,
			Platform:     report.Platform,
			Index:        a.Index,
			Name:         a.Name,
			Vendor:       a.Vendor,
			MemoryGB:     a.MemoryGB,
			UsagePercent: a.UsagePercent,
			TemperatureC: a.TemperatureC,
			CoreCount:    a.CoreCount,
			ProbeErrors:  len(a.ProbeErrors),
		})
	}
	return samples
}
