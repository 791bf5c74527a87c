package colorprint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// DemoColors names the palette entry used for each part of the demo.
type DemoColors struct {
	Heading string
	Title   string
	Info    string
	Art     string
}

// DemoInfo is the text shown by the demo.
type DemoInfo struct {
	Heading string
	Art     string
	OS      string
	CPU     string
}

// DefaultDemoInfo returns the fixed demo text.
func DefaultDemoInfo() DemoInfo {
	return DemoInfo{
		Heading: "coffee~@Maruf",
		Art:     "/// ASCII ART ///",
		OS:      "Windows 11 Pro x86_64",
		CPU:     "AMD Ryzen 5 5600G",
	}
}

// LiveDemoInfo replaces the fixed heading, OS and CPU values with the ones of
// this machine. Values that cannot be read keep their defaults and the
// failures are joined into the returned error.
func LiveDemoInfo(ctx context.Context) (DemoInfo, error) {
	info := DefaultDemoInfo()
	var errs []error

	if h, err := host.InfoWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("host info: %w", err))
	} else {
		if osName := describeOS(h); osName != "" {
			info.OS = osName
		}
		if h.Hostname != "" {
			info.Heading = currentUser() + "~@" + h.Hostname
		}
	}

	if cpus, err := cpu.InfoWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("cpu info: %w", err))
	} else if len(cpus) > 0 && strings.TrimSpace(cpus[0].ModelName) != "" {
		info.CPU = strings.TrimSpace(cpus[0].ModelName)
	}

	return info, errors.Join(errs...)
}

func describeOS(h *host.InfoStat) string {
	name := h.Platform
	if name == "" {
		name = h.OS
	}
	if h.PlatformVersion != "" && !strings.Contains(name, h.PlatformVersion) {
		name += " " + h.PlatformVersion
	}
	return strings.TrimSpace(name + " " + h.KernelArch)
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Windows usernames come back as DOMAIN\user.
		if i := strings.LastIndex(u.Username, `\`); i >= 0 {
			return u.Username[i+1:]
		}
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "user"
}

// Demo prints the heading, the art banner and the OS and CPU lines.
func Demo(p *Printer, colors DemoColors, info DemoInfo) error {
	parts := []struct {
		text  string
		color string
	}{
		{info.Heading + "\n", colors.Heading},
		{info.Art + "\n", colors.Art},
		{"OS: ", colors.Title},
		{info.OS + "\n", colors.Info},
		{"CPU: ", colors.Title},
		{info.CPU + "\n", colors.Info},
	}

	for _, part := range parts {
		if err := p.Print(part.text, part.color); err != nil {
			return fmt.Errorf("failed to write demo: %w", err)
		}
	}
	return nil
}
