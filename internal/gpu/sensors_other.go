//go:build !windows

package gpu

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// fallbackSensorKeys are tried in order when the query field matches no sensor.
var fallbackSensorKeys = []string{"acpitz", "thermal_zone", "amdgpu", "nouveau", "k10temp", "coretemp"}

// sensorProbe answers temperature queries from hardware sensors. Readings are
// already Celsius. Non-temperature fields have no sensor equivalent.
type sensorProbe struct {
	read func(ctx context.Context) ([]host.TemperatureStat, error)
}

func newSensorProbe() *sensorProbe {
	return &sensorProbe{read: host.SensorsTemperaturesWithContext}
}

func (p *sensorProbe) QueryFloat(ctx context.Context, q Query) (float64, error) {
	field := strings.ToLower(q.Field)
	if !strings.Contains(field, "temp") {
		return 0, fmt.Errorf("%w: %s: %w", ErrQueryFailed, q, ErrUnsupported)
	}

	temps, err := p.read(ctx)
	if len(temps) == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w: read sensors: %w", ErrQueryFailed, err)
		}
		return 0, fmt.Errorf("%w: no sensors", ErrNoResult)
	}

	for _, key := range append([]string{field}, fallbackSensorKeys...) {
		for _, t := range temps {
			if strings.Contains(strings.ToLower(t.SensorKey), key) && t.Temperature > 0 {
				return t.Temperature, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrNoResult, q)
}
