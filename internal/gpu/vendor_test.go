package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVendor(t *testing.T) {
	tests := []struct {
		name     string
		vendorID uint32
		want     string
	}{
		{"nvidia", 0x10DE, VendorNVIDIA},
		{"amd", 0x1002, VendorAMD},
		{"amd alternate id", 0x1022, VendorAMD},
		{"intel", 0x8086, VendorIntel},
		{"microsoft basic render driver", 0x1414, VendorUnknown},
		{"zero", 0, VendorUnknown},
		{"qualcomm", 0x5143, VendorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVendor(tt.vendorID))
		})
	}
}

func TestPCIKeyFromPNP(t *testing.T) {
	tests := []struct {
		pnp  string
		want string
	}{
		{`PCI\VEN_10DE&DEV_2684&SUBSYS_16F310DE&REV_A1\4&2B1B9C3F&0&0008`, "VEN_10DE&DEV_2684"},
		{`pci\ven_1002&dev_73bf&subsys_0e3a1002`, "VEN_1002&DEV_73BF"},
		{`ROOT\BasicRender\0000`, ""},
		{`PCI\VEN_8086`, ""},
		{`PCI\VEN_ZZZZ&DEV_0001`, ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.pnp, func(t *testing.T) {
			assert.Equal(t, tt.want, pciKeyFromPNP(tt.pnp))
		})
	}
}

func TestPCIKey(t *testing.T) {
	assert.Equal(t, "VEN_8086&DEV_4680", pciKey(0x8086, 0x4680))
	assert.Equal(t, "VEN_10DE&DEV_0001", pciKey(0x10DE, 0x1))
}
