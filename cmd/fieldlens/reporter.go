package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fieldlens/fieldlens/internal/models"
)

// tablePrinter formats metric percentages with locale-aware digits.
var tablePrinter = message.NewPrinter(language.English)

// terminalWidth returns the usable stdout width, or a conservative default
// when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// formatRankingTable renders the ranked summaries as a text table. Model
// names are padded by display width, not byte length, so names with wide
// runes keep the columns aligned.
func formatRankingTable(runName string, summaries []models.ModelSummary, width int) string {
	var b strings.Builder

	title := "Model Ranking"
	if runName != "" {
		title = fmt.Sprintf("Model Ranking: %s", runName)
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", runewidth.StringWidth(title)) + "\n\n")

	if len(summaries) == 0 {
		b.WriteString("(no models)\n")
		return b.String()
	}

	nameWidth := runewidth.StringWidth("Model")
	for _, s := range summaries {
		if w := runewidth.StringWidth(s.ModelName); w > nameWidth {
			nameWidth = w
		}
	}
	// Leave room for the fixed columns; truncate very long model names on
	// narrow terminals.
	if maxName := width - 52; nameWidth > maxName && maxName > 8 {
		nameWidth = maxName
	}

	header := fmt.Sprintf("%4s  %s  %8s  %8s  %8s  %8s  %6s",
		"Rank", runewidth.FillRight("Model", nameWidth),
		"Acc", "Prec", "Rec", "F1", "Won")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", runewidth.StringWidth(header)) + "\n")

	for _, s := range summaries {
		name := runewidth.Truncate(s.ModelName, nameWidth, "…")
		b.WriteString(tablePrinter.Sprintf("%4d  %s  %7.1f%%  %7.1f%%  %7.1f%%  %7.1f%%  %6.2f\n",
			s.Rank,
			runewidth.FillRight(name, nameWidth),
			s.OverallAccuracy*100,
			s.OverallPrecision*100,
			s.OverallRecall*100,
			s.OverallF1*100,
			s.FieldsWon))
	}

	b.WriteString("\n")
	b.WriteString(formatFieldWinners(summaries))
	return b.String()
}

// formatFieldWinners lists, per included field, which model(s) won it.
func formatFieldWinners(summaries []models.ModelSummary) string {
	if len(summaries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Field winners:\n")

	// Field order follows the first summary; all summaries carry the same
	// field list.
	for _, perf := range summaries[0].FieldPerformance {
		if !perf.IsIncludedInMetrics {
			continue
		}

		var winners []string
		shared := false
		for _, s := range summaries {
			for _, p := range s.FieldPerformance {
				if p.FieldKey == perf.FieldKey && p.IsWinner {
					winners = append(winners, s.ModelName)
					shared = shared || p.IsSharedVictory
				}
			}
		}

		label := strings.Join(winners, ", ")
		if label == "" {
			label = "-"
		} else if shared {
			label += " (shared)"
		}
		b.WriteString(fmt.Sprintf("  %-24s %s\n", perf.FieldName, label))
	}

	return b.String()
}
