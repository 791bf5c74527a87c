package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gpuinfo/internal/fsutil"
	"gpuinfo/internal/gpu"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af")).Width(14)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

var gpusCmd = &cobra.Command{
	Use:   "gpus",
	Short: "Enumerate display adapters",
	Long:  "Enumerate display adapters through the platform graphics API and fill best-effort usage, temperature and core-count values.",
	Args:  cobra.NoArgs,
	RunE:  runGPUs,
}

func init() {
	gpusCmd.Flags().Bool("json", false, "print the report as JSON")
	gpusCmd.Flags().String("save", "", "also write the report to this path (empty: report.path or the state dir)")
	rootCmd.AddCommand(gpusCmd)
}

func runGPUs(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")

	detector := newDetector()
	report := detector.DetectAdapters(cmd.Context())

	out := cmd.OutOrStdout()
	if jsonOut {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		renderReport(out, report)
	}

	if cmd.Flags().Changed("save") {
		path := reportPath(savePath, cfg.Report.Path)
		if err := detector.SaveReport(report, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to: %s\n", path)
	}

	return nil
}

// reportPath resolves --save: an explicit path wins, then report.path,
// then the state directory default.
func reportPath(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	if configured != "" {
		return configured
	}
	return fsutil.DefaultReportPath()
}

func renderReport(w io.Writer, report gpu.Report) {
	if !report.FactoryOK {
		fmt.Fprintln(w, warnStyle.Render("Graphics API unavailable: "+report.ErrorMessage))
		return
	}
	if len(report.Adapters) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No display adapters found"))
	}

	for _, a := range report.Adapters {
		fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("GPU %d: %s", a.Index, a.Name)))
		rows := [][2]string{
			{"Memory", a.Memory()},
			{"Driver", a.DriverVersion},
			{"Vendor", a.Vendor},
			{"Usage", a.Usage()},
			{"Temperature", a.Temperature()},
			{"Cores", a.Cores()},
		}
		for _, row := range rows {
			fmt.Fprintln(w, "  "+labelStyle.Render(row[0]+":")+row[1])
		}
		if len(a.ProbeErrors) > 0 {
			fmt.Fprintln(w, "  "+mutedStyle.Render(strings.Join(a.ProbeErrors, "; ")))
		}
		fmt.Fprintln(w)
	}

	if report.ErrorMessage != "" {
		fmt.Fprintln(w, warnStyle.Render("Warning: "+report.ErrorMessage))
	}
}
