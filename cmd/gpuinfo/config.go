package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpuinfo/internal/colorprint"
	"gpuinfo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configTestCmd = &cobra.Command{
	Use:         "test [path]",
	Short:       "Test configuration file for validity",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipConfig: "true"},
	RunE:        runConfigTest,
}

func init() {
	configCmd.AddCommand(configTestCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := configPath
	if len(args) > 0 {
		path = args[0]
	}

	if path != "" {
		fmt.Fprintf(out, "Testing configuration file: %s\n", path)
	} else {
		fmt.Fprintln(out, "Testing configuration (system + user merge):")
		fmt.Fprintf(out, "  System config: %s\n", config.SystemConfigPath())
		if userPath := config.UserConfigPath(); userPath != "" {
			fmt.Fprintf(out, "  User config:   %s\n", userPath)
		}
		fmt.Fprintln(out)
	}

	loaded, err := loadConfig(path)
	if err != nil {
		logger.Error("config.validation.error", "Configuration validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("configuration validation FAILED: %w", err)
	}

	fmt.Fprintln(out, "✓ Configuration is VALID")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration Summary:")
	fmt.Fprintf(out, "  Log Level:            %s\n", loaded.Logging.Level)
	fmt.Fprintf(out, "  Log Format:           %s\n", loaded.Logging.Format)
	fmt.Fprintf(out, "  Usage Probe:          %s\n", probeSummary(loaded.Probes.Usage))
	fmt.Fprintf(out, "  Temperature Probe:    %s\n", probeSummary(loaded.Probes.Temperature))
	fmt.Fprintf(out, "  Core Estimate:        %t (placeholder %d)\n", loaded.Probes.Cores.Enabled, loaded.Probes.Cores.Placeholder)
	fmt.Fprintf(out, "  Demo Color Mode:      %s\n", loaded.Demo.ColorMode)

	for _, name := range unknownDemoColors(loaded.Demo) {
		fmt.Fprintf(out, "  Warning: demo color %q is not in the palette and prints unstyled\n", name)
	}

	logger.Info("config.validation.ok", "Configuration validation passed", map[string]interface{}{
		"log_level": loaded.Logging.Level,
	})
	return nil
}

func probeSummary(q config.QueryConfig) string {
	if !q.Enabled {
		return "disabled"
	}
	return q.Namespace + " " + q.Field
}

// unknownDemoColors lists demo color names outside the palette, in field order.
func unknownDemoColors(d config.DemoConfig) []string {
	var unknown []string
	for _, name := range []string{d.Heading, d.Title, d.Info, d.Art} {
		if !colorprint.Known(name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
