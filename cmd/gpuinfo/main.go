package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"gpuinfo/internal/config"
	"gpuinfo/internal/logging"
)

const version = "0.1.0-dev"

// skipConfig marks commands that must run without loading configuration.
const skipConfig = "skip-config"

var (
	configPath string
	logLevel   string

	cfg    config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:           "gpuinfo",
	Short:         "Display adapter query helper and console color demo",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfig] == "true" {
			logger = logging.NewLogger(logging.LevelError)
			return nil
		}

		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := newLogger(cfg.Logging, logLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default: system + user merge)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute(ctx context.Context) error {
	defer closeLogger()
	return rootCmd.ExecuteContext(ctx)
}

// closeLogger must also run when a command fails; cobra skips post-run
// hooks in that case.
func closeLogger() {
	if logger == nil {
		return
	}
	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
}
