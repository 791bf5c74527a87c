package gpu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gpuinfo/internal/fsutil"
	"gpuinfo/internal/logging"
)

// ProbeSettings selects which best-effort probes run for each adapter.
// A nil query disables that probe.
type ProbeSettings struct {
	Usage           *Query
	Temperature     *Query
	CoresEnabled    bool
	CorePlaceholder int
}

// Detector assembles adapter records from a source, a counter probe and a
// core estimator.
type Detector struct {
	source    AdapterSource
	probe     CounterProbe
	estimator CoreEstimator
	settings  ProbeSettings
	logger    *logging.Logger
	now       func() time.Time
}

// NewDetector creates a detector backed by this platform's graphics and
// management APIs.
func NewDetector(logger *logging.Logger, settings ProbeSettings) *Detector {
	return NewDetectorWith(
		newPlatformSource(logger),
		newPlatformProbe(),
		newPlatformEstimator(settings.CorePlaceholder),
		settings,
		logger,
	)
}

// NewDetectorWith creates a detector with explicit collaborators (for testing).
func NewDetectorWith(source AdapterSource, probe CounterProbe, estimator CoreEstimator, settings ProbeSettings, logger *logging.Logger) *Detector {
	return &Detector{
		source:    source,
		probe:     probe,
		estimator: estimator,
		settings:  settings,
		logger:    logger,
		now:       time.Now,
	}
}

// DetectAdapters enumerates adapters and fills their best-effort metrics.
// Probe failures are recorded on the adapter and never abort the report.
func (d *Detector) DetectAdapters(ctx context.Context) Report {
	d.logger.Info("gpu.detect.start", "Starting adapter detection", map[string]interface{}{
		"source": d.source.Name(),
	})

	report := Report{
		Platform:    d.source.Name(),
		GeneratedAt: d.now().UTC(),
		FactoryOK:   true,
		Adapters:    make([]Adapter, 0),
	}

	descs, err := d.source.Enumerate(ctx)
	if err != nil {
		report.ErrorMessage = err.Error()
		if errors.Is(err, ErrFactoryUnavailable) {
			report.FactoryOK = false
			d.logger.Warn("gpu.factory.failed", "Graphics factory unavailable", map[string]interface{}{
				"error": report.ErrorMessage,
			})
			return report
		}
		d.logger.Warn("gpu.enumerate.truncated", "Adapter enumeration stopped early", map[string]interface{}{
			"error":    report.ErrorMessage,
			"adapters": len(descs),
		})
	}

	for i, desc := range descs {
		if ctxErr := ctx.Err(); ctxErr != nil {
			report.ErrorMessage = fmt.Sprintf("detection interrupted: %v", ctxErr)
			break
		}

		adapter := d.buildAdapter(ctx, i, desc)
		report.Adapters = append(report.Adapters, adapter)

		d.logger.Info("gpu.adapter.detected", "Adapter detected", map[string]interface{}{
			"index":     adapter.Index,
			"name":      adapter.Name,
			"vendor":    adapter.Vendor,
			"memory_gb": adapter.MemoryGB,
		})
	}

	d.logger.Info("gpu.detect.done", "Adapter detection finished", map[string]interface{}{
		"count": len(report.Adapters),
	})

	return report
}

func (d *Detector) buildAdapter(ctx context.Context, index int, desc Description) Adapter {
	adapter := Adapter{
		Index:         index,
		Name:          desc.Name,
		MemoryGB:      BytesToGB(desc.DedicatedMemoryBytes),
		DriverVersion: desc.DriverVersion,
		Vendor:        ClassifyVendor(desc.VendorID),
		VendorID:      desc.VendorID,
		DeviceID:      desc.DeviceID,
	}
	if adapter.DriverVersion == "" {
		adapter.DriverVersion = DriverVersionUnknown
	}

	adapter.UsagePercent = desc.UsagePercent
	if adapter.UsagePercent == nil && d.settings.Usage != nil {
		if v, err := d.probe.QueryFloat(ctx, *d.settings.Usage); err != nil {
			d.recordProbeError(&adapter, "usage", err)
		} else {
			adapter.UsagePercent = &v
		}
	}

	adapter.TemperatureC = desc.TemperatureC
	if adapter.TemperatureC == nil && d.settings.Temperature != nil {
		if raw, err := d.probe.QueryFloat(ctx, *d.settings.Temperature); err != nil {
			d.recordProbeError(&adapter, "temperature", err)
		} else {
			celsius := ThermalToCelsius(raw)
			adapter.TemperatureC = &celsius
		}
	}

	if d.settings.CoresEnabled {
		if cores, err := d.estimator.EstimateCores(ctx); err != nil {
			d.recordProbeError(&adapter, "cores", err)
		} else {
			adapter.CoreCount = &cores
		}
	}

	return adapter
}

func (d *Detector) recordProbeError(adapter *Adapter, probe string, err error) {
	adapter.ProbeErrors = append(adapter.ProbeErrors, probe+": "+err.Error())
	d.logger.Debug("gpu.probe.failed", "Best-effort probe failed", map[string]interface{}{
		"index": adapter.Index,
		"probe": probe,
		"error": err.Error(),
	})
}

// SaveReport writes the report as indented JSON, replacing any previous file atomically.
func (d *Detector) SaveReport(report Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := fsutil.AtomicWriteFile(path, data, fsutil.DefaultFilePermissions, d.logger); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	d.logger.Info("gpu.report.saved", "GPU report saved", map[string]interface{}{
		"filepath": path,
	})

	return nil
}
