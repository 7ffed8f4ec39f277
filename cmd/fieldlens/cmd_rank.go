package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldlens/fieldlens/internal/compare"
	"github.com/fieldlens/fieldlens/internal/evaluation"
	"github.com/fieldlens/fieldlens/internal/normalize"
	"github.com/fieldlens/fieldlens/internal/projectconfig"
	"github.com/fieldlens/fieldlens/internal/runfile"
)

var (
	rankOutputFormat string
	rankWorkers      int
)

func newRankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <run.yaml>",
		Short: "Evaluate a run file and rank the models in it",
		Long: `Rank compares every model's extracted values against the reference values
in a run file, computes per-field accuracy/precision/recall/F1, and prints
the resulting model ranking.`,
		Args: cobra.ExactArgs(1),
		RunE: rankCommandE,
	}

	cmd.Flags().StringVarP(&rankOutputFormat, "format", "f", "", "Output format: table or json (default from .fieldlens.yaml)")
	cmd.Flags().IntVar(&rankWorkers, "workers", 0, "Concurrent file evaluations (default from .fieldlens.yaml)")

	return cmd
}

func rankCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	format := rankOutputFormat
	if format == "" {
		format = cfg.Defaults.Format
	}
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}

	workers := rankWorkers
	if workers <= 0 {
		workers = cfg.Defaults.Workers
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading run file: %w", err)
	}
	doc, err := runfile.Parse(data)
	if err != nil {
		return &InvalidRunFileError{Message: err.Error()}
	}

	comparator := compare.New(compare.Options{
		MinSubstringRunes: cfg.Compare.MinSubstringRunes,
		DayRatios: normalize.DayRatios{
			Week:  cfg.Compare.DaysPerWeek,
			Month: cfg.Compare.DaysPerMonth,
			Year:  cfg.Compare.DaysPerYear,
		},
		Separators: cfg.Compare.Separators,
	})

	result, err := evaluation.Evaluate(cmd.Context(), doc.ToInput(), evaluation.Options{
		Workers:    workers,
		Comparator: comparator,
	})
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Summaries)
	}

	fmt.Print(formatRankingTable(doc.Name, result.Summaries, terminalWidth()))
	return nil
}
