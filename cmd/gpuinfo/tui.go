package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gpuinfo/internal/fsutil"
	"gpuinfo/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse display adapters interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		logger.Info("app.started", "Application started", map[string]interface{}{
			"version": version,
			"ts":      startTime.UTC().Format(time.RFC3339),
		})

		stateDir := fsutil.GetStateDir(fsutil.DefaultStateDir)
		model := tui.NewModel(cmd.Context(), logger, newDetector(), stateDir)

		if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
			logger.Error("app.error", "Application error", map[string]interface{}{
				"error": err.Error(),
			})
			return fmt.Errorf("error running TUI: %w", err)
		}

		logger.Info("app.exited", "Application exited", map[string]interface{}{
			"ts":       time.Now().UTC().Format(time.RFC3339),
			"duration": time.Since(startTime).String(),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
