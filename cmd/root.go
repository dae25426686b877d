// Package cmd implements the tilesched command-line entry point,
// following the cobra + logrus convention used elsewhere in this
// codebase's lineage.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	userStatePath string
	startIdx      int
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "tilesched",
	Short: "Predictive prefetch scheduler for a tile-based gallery client",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling round and print the resulting plan",
	RunE:  runRound,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "path to the scheduler config YAML (required)")
	runCmd.Flags().StringVar(&userStatePath, "userstate", "", "path to the client user-state JSON payload (required)")
	runCmd.Flags().IntVar(&startIdx, "start-idx", 0, "next available slot index in the client cache")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	_ = runCmd.MarkFlagRequired("config")
	_ = runCmd.MarkFlagRequired("userstate")

	rootCmd.AddCommand(runCmd)
}

func configureLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}
