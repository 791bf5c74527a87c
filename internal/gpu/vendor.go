package gpu

import (
	"fmt"
	"strconv"
	"strings"
)

// PCI vendor IDs recognized by ClassifyVendor.
const (
	VendorIDNVIDIA uint32 = 0x10DE
	VendorIDAMD    uint32 = 0x1002
	VendorIDAMDAlt uint32 = 0x1022
	VendorIDIntel  uint32 = 0x8086
)

// Vendor names returned by ClassifyVendor.
const (
	VendorNVIDIA  = "NVIDIA"
	VendorAMD     = "AMD"
	VendorIntel   = "Intel"
	VendorUnknown = "Unknown"
)

// ClassifyVendor maps a PCI vendor ID to a vendor name.
func ClassifyVendor(vendorID uint32) string {
	switch vendorID {
	case VendorIDNVIDIA:
		return VendorNVIDIA
	case VendorIDAMD, VendorIDAMDAlt:
		return VendorAMD
	case VendorIDIntel:
		return VendorIntel
	default:
		return VendorUnknown
	}
}

// pciKey builds the "VEN_xxxx&DEV_xxxx" fragment used in PnP device IDs.
func pciKey(vendorID, deviceID uint32) string {
	return fmt.Sprintf("VEN_%04X&DEV_%04X", vendorID, deviceID)
}

// pciKeyFromPNP extracts the vendor/device fragment from a PnP device ID such
// as `PCI\VEN_10DE&DEV_2684&SUBSYS_...`. It returns "" when either part is missing.
func pciKeyFromPNP(pnpDeviceID string) string {
	upper := strings.ToUpper(pnpDeviceID)

	vendor, ok := hexAfter(upper, "VEN_")
	if !ok {
		return ""
	}
	device, ok := hexAfter(upper, "DEV_")
	if !ok {
		return ""
	}
	return pciKey(vendor, device)
}

func hexAfter(s, marker string) (uint32, bool) {
	idx := strings.Index(s, marker)
	if idx < 0 || len(s) < idx+len(marker)+4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[idx+len(marker):idx+len(marker)+4], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
