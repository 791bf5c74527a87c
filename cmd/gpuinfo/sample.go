package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpuinfo/internal/fsutil"
	"gpuinfo/internal/metrics"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Append one telemetry sample per adapter to a JSONL log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fsutil.DefaultSamplesPath()
		}

		collector := metrics.NewCollector(newDetector(), logger)
		n, err := collector.Sample(cmd.Context(), out)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sample(s) to %s\n", n, out)
		return nil
	},
}

func init() {
	sampleCmd.Flags().String("out", "", "JSONL file to append to (default: state dir gpu_samples.jsonl)")
	rootCmd.AddCommand(sampleCmd)
}
