package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gpuinfo/internal/gpu"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff")).MarginBottom(1)
	itemStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	itemSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#00d7ff")).Bold(true)
	descStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).PaddingLeft(2)
	sectionStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")).MarginTop(1)
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af")).Width(16)
	valueStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	keyStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af")).Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff")).MarginTop(1)
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true).MarginTop(1)
)

// renderList renders the adapter list screen
func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gpuinfo: Display Adapters"))
	b.WriteString("\n\n")

	switch {
	case !m.hasReport:
		b.WriteString(descStyle.Render("Detecting adapters..."))
		b.WriteString("\n")
	case !m.report.FactoryOK:
		b.WriteString(descStyle.Render("Graphics API unavailable on this system"))
		b.WriteString("\n")
	case len(m.report.Adapters) == 0:
		b.WriteString(descStyle.Render("No adapters found"))
		b.WriteString("\n")
	}

	for i, a := range m.report.Adapters {
		line := fmt.Sprintf("[%d] %s", a.Index, a.Name)
		if i == m.selection {
			b.WriteString(itemSelectedStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(descStyle.Render(fmt.Sprintf("%s · %s · usage %s · temp %s", a.Vendor, a.Memory(), a.Usage(), a.Temperature())))
		b.WriteString("\n")
	}

	if m.loading && m.hasReport {
		b.WriteString(descStyle.Render("Refreshing..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Navigate: ↑/↓ | Details: Enter | Refresh: r | Help: ? | Quit: q"))
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("⚠ " + m.lastError))
		b.WriteString("\n")
	}

	return b.String()
}

// renderDetail renders every field of the selected adapter
func (m Model) renderDetail() string {
	if m.selection < 0 || m.selection >= len(m.report.Adapters) {
		return m.renderList()
	}
	a := m.report.Adapters[m.selection]

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Name))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Index", fmt.Sprintf("%d", a.Index)},
		{"Vendor", fmt.Sprintf("%s (0x%04X)", a.Vendor, a.VendorID)},
		{"Device ID", fmt.Sprintf("0x%04X", a.DeviceID)},
		{"Memory", a.Memory()},
		{"Driver", a.DriverVersion},
		{"Usage", a.Usage()},
		{"Temperature", a.Temperature()},
		{"Cores", a.Cores()},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if len(a.ProbeErrors) > 0 {
		b.WriteString(sectionStyle.Render("Probe errors"))
		b.WriteString("\n")
		for _, e := range a.ProbeErrors {
			b.WriteString(descStyle.Render(e))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Prev/Next: ↑/↓ | Back: Esc | Refresh: r | Quit: q"))
	b.WriteString("\n")

	return b.String()
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Help: Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keys := []struct{ key, desc string }{
		{"↑ / ↓, k / j", "Select adapter"},
		{"Enter/Space", "Show adapter details"},
		{"r", "Run detection again"},
		{"Esc", "Return to adapter list"},
		{"q / Ctrl+C", "Quit"},
	}
	for _, k := range keys {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-14s", k.key)))
		b.WriteString(valueStyle.Render(k.desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("Platform: %s", platformLabel(m.report))))
	b.WriteString("\n")

	return b.String()
}

func platformLabel(r gpu.Report) string {
	if r.Platform == "" {
		return "unknown"
	}
	return r.Platform
}

// navigateUp moves selection up, wrapping to the last adapter
func (m Model) navigateUp() Model {
	n := len(m.report.Adapters)
	if n == 0 {
		return m
	}
	if m.selection > 0 {
		m.selection--
	} else {
		m.selection = n - 1
	}
	return m
}

// navigateDown moves selection down, wrapping to the first adapter
func (m Model) navigateDown() Model {
	n := len(m.report.Adapters)
	if n == 0 {
		return m
	}
	if m.selection < n-1 {
		m.selection++
	} else {
		m.selection = 0
	}
	return m
}
