package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "manifest-migrator",
	Short:         "Upgrade O3DE object manifests and schemas",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(*cobra.Command, []string) {
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(licenseToSchemaCmd)
	rootCmd.AddCommand(gitgetCmd)
}
