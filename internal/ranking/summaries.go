// Package ranking aggregates per-field accuracy/precision/recall/F1 into a
// deterministically tie-broken ordering of competing models.
//
// The pipeline has three pure stages, each returning a fresh slice derived
// from the previous one:
//
//	summaries := ranking.CalculateModelSummaries(models, fields, averages, settings)
//	summaries = ranking.DetermineFieldWinners(summaries, fields, settings)
//	summaries = ranking.AssignRanks(summaries)
//
// No stage mutates its input, and no stage ever fails: empty model lists,
// empty field lists, and missing metrics all produce degenerate but
// well-defined output.
package ranking

import (
	"github.com/fieldlens/fieldlens/internal/metrics"
	"github.com/fieldlens/fieldlens/internal/models"
)

// Averages holds the per-field, per-model metrics produced by the corpus
// aggregation step, keyed by field key and then model name.
type Averages map[string]map[string]models.FieldMetrics

// Settings holds the optional per-field evaluation settings, keyed by
// field key. A missing entry means the field is included in metrics.
type Settings map[string]models.FieldSettings

// fieldIncluded resolves the inclusion flag for one field. Settings
// entries for unknown fields are tolerated and simply never consulted.
func fieldIncluded(settings Settings, fieldKey string) bool {
	s, ok := settings[fieldKey]
	if !ok {
		return true
	}
	return s.Included()
}

// CalculateModelSummaries builds one ModelSummary per model. Overall
// metrics are macro-averages over included fields only, so a rare field
// counts as much as a common one; missing (field, model) entries score
// zero, so a model that was never run on a field is scored as having
// failed it. FieldsWon and Rank are placeholders for the later stages.
func CalculateModelSummaries(modelNames []string, fields []models.Field, averages Averages, settings Settings) []models.ModelSummary {
	summaries := make([]models.ModelSummary, 0, len(modelNames))

	for _, modelName := range modelNames {
		var (
			perf                                     []models.FieldPerformance
			accuracies, precisions, recalls, f1Score []float64
			included                                 int
		)

		for _, field := range fields {
			fieldMetrics := averages[field.Key][modelName]
			isIncluded := fieldIncluded(settings, field.Key)

			perf = append(perf, models.FieldPerformance{
				FieldKey:            field.Key,
				FieldName:           field.Name,
				Accuracy:            fieldMetrics.Accuracy,
				Precision:           fieldMetrics.Precision,
				Recall:              fieldMetrics.Recall,
				F1:                  fieldMetrics.F1,
				IsIncludedInMetrics: isIncluded,
			})

			if isIncluded {
				included++
				accuracies = append(accuracies, fieldMetrics.Accuracy)
				precisions = append(precisions, fieldMetrics.Precision)
				recalls = append(recalls, fieldMetrics.Recall)
				f1Score = append(f1Score, fieldMetrics.F1)
			}
		}

		summaries = append(summaries, models.ModelSummary{
			ModelName:        modelName,
			OverallAccuracy:  metrics.Mean(accuracies),
			OverallPrecision: metrics.Mean(precisions),
			OverallRecall:    metrics.Mean(recalls),
			OverallF1:        metrics.Mean(f1Score),
			TotalFields:      included,
			FieldPerformance: perf,
		})
	}

	return summaries
}
