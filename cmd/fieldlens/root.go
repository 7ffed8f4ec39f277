package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldlens",
		Short: "Fieldlens - compare document field-extraction models",
		Long: `Fieldlens evaluates how well automated field-extraction results match
reference values and ranks competing extraction models by aggregate quality.

It compares each model's extracted values against the reference value per
field, reduces the verdicts to accuracy/precision/recall/F1, and produces a
deterministically tie-broken model ranking.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newCheckCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
