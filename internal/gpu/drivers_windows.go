//go:build windows

package gpu

import (
	"fmt"

	"github.com/StackExchange/wmi"
)

const videoControllerQuery = "SELECT Name, PNPDeviceID, DriverVersion FROM Win32_VideoController"

// win32VideoController holds the Win32_VideoController columns we read.
type win32VideoController struct {
	Name          string
	PNPDeviceID   string
	DriverVersion string
}

// lookupDriverVersions maps "VEN_xxxx&DEV_xxxx" to the installed driver version.
func lookupDriverVersions() (map[string]string, error) {
	var controllers []win32VideoController
	if err := wmi.Query(videoControllerQuery, &controllers); err != nil {
		return nil, fmt.Errorf("query Win32_VideoController: %w", err)
	}
	return driverVersionIndex(controllers), nil
}

func driverVersionIndex(controllers []win32VideoController) map[string]string {
	versions := make(map[string]string, len(controllers))
	for _, c := range controllers {
		key := pciKeyFromPNP(c.PNPDeviceID)
		if key == "" || c.DriverVersion == "" {
			continue
		}
		versions[key] = c.DriverVersion
	}
	return versions
}
