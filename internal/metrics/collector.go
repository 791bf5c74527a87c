package metrics

import (
	"context"

	"gpuinfo/internal/gpu"
	"gpuinfo/internal/logging"
)

// ReportSource produces a fresh adapter report. *gpu.Detector satisfies it.
type ReportSource interface {
	DetectAdapters(ctx context.Context) gpu.Report
}

// Collector takes one-shot adapter samples and appends them to a log.
type Collector struct {
	logger *logging.Logger
	source ReportSource
	writer *Writer
}

// NewCollector creates a new sample collector
func NewCollector(source ReportSource, logger *logging.Logger) *Collector {
	return &Collector{
		logger: logger,
		source: source,
		writer: NewWriter(logger),
	}
}

// CollectSample runs one detection pass and converts it into samples.
// The report is returned too so callers can surface its error message.
func (c *Collector) CollectSample(ctx context.Context) ([]AdapterSample, gpu.Report) {
	report := c.source.DetectAdapters(ctx)
	if !report.FactoryOK {
		c.logger.Warn("metrics.collect.unavailable", "No adapters available for sampling", map[string]interface{}{
			"error": report.ErrorMessage,
		})
	}
	return SamplesFromReport(report), report
}

// Sample collects one set of samples and appends it to logPath.
// It returns the number of lines written.
func (c *Collector) Sample(ctx context.Context, logPath string) (int, error) {
	samples, report := c.CollectSample(ctx)
	if report.FactoryOK && report.ErrorMessage != "" {
		c.logger.Warn("metrics.collect.partial", "Sampling an incomplete adapter list", map[string]interface{}{
			"error":    report.ErrorMessage,
			"adapters": len(samples),
		})
	}
	if len(samples) == 0 {
		c.logger.Info("metrics.sample.empty", "Nothing to write", map[string]interface{}{
			"log_path": logPath,
		})
		return 0, nil
	}

	if err := c.writer.Write(samples, logPath); err != nil {
		c.logger.Error("metrics.write.failed", "Failed to write samples", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}

	c.logger.Info("metrics.sample.written", "Adapter samples appended", map[string]interface{}{
		"count":    len(samples),
		"log_path": logPath,
	})
	return len(samples), nil
}
