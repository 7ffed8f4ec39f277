package ranking

import "github.com/fieldlens/fieldlens/internal/models"

// DetermineFieldWinners decides, for every included field, which model (or
// models) performed best, and credits FieldsWon accordingly. Ties on
// accuracy are broken by precision, then recall; models still tied after
// that share the victory, splitting the field's single point of credit
// evenly so that every included field contributes exactly 1 to the sum of
// FieldsWon across all models.
//
// The input is not mutated; a fresh slice with fresh FieldPerformance
// slices is returned.
func DetermineFieldWinners(summaries []models.ModelSummary, fields []models.Field, settings Settings) []models.ModelSummary {
	out := cloneSummaries(summaries)

	for _, field := range fields {
		if !fieldIncluded(settings, field.Key) {
			continue
		}

		// Indexes into out paired with that model's performance index for
		// this field.
		type contender struct {
			model int
			perf  int
		}

		var contenders []contender
		for i := range out {
			for j := range out[i].FieldPerformance {
				if out[i].FieldPerformance[j].FieldKey == field.Key {
					contenders = append(contenders, contender{model: i, perf: j})
					break
				}
			}
		}
		if len(contenders) == 0 {
			continue
		}

		metric := func(c contender, pick func(models.FieldPerformance) float64) float64 {
			return pick(out[c.model].FieldPerformance[c.perf])
		}

		winners := filterMax(contenders, func(c contender) float64 {
			return metric(c, func(p models.FieldPerformance) float64 { return p.Accuracy })
		})
		if len(winners) > 1 {
			winners = filterMax(winners, func(c contender) float64 {
				return metric(c, func(p models.FieldPerformance) float64 { return p.Precision })
			})
		}
		if len(winners) > 1 {
			winners = filterMax(winners, func(c contender) float64 {
				return metric(c, func(p models.FieldPerformance) float64 { return p.Recall })
			})
		}

		shared := len(winners) > 1
		credit := 1.0 / float64(len(winners))
		for _, w := range winners {
			out[w.model].FieldPerformance[w.perf].IsWinner = true
			out[w.model].FieldPerformance[w.perf].IsSharedVictory = shared
			out[w.model].FieldsWon += credit
		}
	}

	return out
}

// filterMax keeps the items whose value is within Epsilon of the maximum.
func filterMax[T any](items []T, value func(T) float64) []T {
	best := value(items[0])
	for _, item := range items[1:] {
		if v := value(item); v > best {
			best = v
		}
	}

	var kept []T
	for _, item := range items {
		if nearlyEqual(value(item), best) {
			kept = append(kept, item)
		}
	}
	return kept
}

// cloneSummaries deep-copies the summaries so winner flags and credit can
// be filled in without touching the caller's slice.
func cloneSummaries(summaries []models.ModelSummary) []models.ModelSummary {
	out := make([]models.ModelSummary, len(summaries))
	for i, s := range summaries {
		out[i] = s
		out[i].FieldPerformance = make([]models.FieldPerformance, len(s.FieldPerformance))
		copy(out[i].FieldPerformance, s.FieldPerformance)
	}
	return out
}
