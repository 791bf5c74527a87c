package main

import (
	"github.com/spf13/cobra"

	"gpuinfo/internal/colorprint"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print the console color demo",
	Args:  cobra.NoArgs,
	RunE:  runColors,
}

func init() {
	colorsCmd.Flags().String("color", "", "color mode: always, never or auto (default: demo.color_mode)")
	colorsCmd.Flags().Bool("live", false, "show this machine's OS and CPU instead of the fixed lines")
	rootCmd.AddCommand(colorsCmd)
}

func runColors(cmd *cobra.Command, args []string) error {
	modeName, _ := cmd.Flags().GetString("color")
	live, _ := cmd.Flags().GetBool("live")

	if modeName == "" {
		modeName = cfg.Demo.ColorMode
	}
	mode, err := colorprint.ParseMode(modeName)
	if err != nil {
		return err
	}

	info := colorprint.DefaultDemoInfo()
	if live {
		liveInfo, err := colorprint.LiveDemoInfo(cmd.Context())
		if err != nil {
			logger.Warn("colors.live.partial", "Some system details could not be read", map[string]interface{}{
				"error": err.Error(),
			})
		}
		info = liveInfo
	}

	printer := colorprint.NewPrinter(cmd.OutOrStdout(), mode)
	colors := colorprint.DemoColors{
		Heading: cfg.Demo.Heading,
		Title:   cfg.Demo.Title,
		Info:    cfg.Demo.Info,
		Art:     cfg.Demo.Art,
	}
	return colorprint.Demo(printer, colors, info)
}
