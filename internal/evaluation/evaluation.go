// Package evaluation runs the value comparator across every (file, field,
// model) triple of a corpus and reduces the verdicts into the per-field,
// per-model metrics consumed by the ranking engine.
package evaluation

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/fieldlens/fieldlens/internal/compare"
	"github.com/fieldlens/fieldlens/internal/metrics"
	"github.com/fieldlens/fieldlens/internal/models"
	"github.com/fieldlens/fieldlens/internal/ranking"
)

// DefaultWorkers bounds concurrent file evaluation when no override is
// given.
const DefaultWorkers = 4

// FileRecord is one document's values: the reference value per field and
// each model's extracted value per field. A missing entry means the side
// produced no value for that field.
type FileRecord struct {
	ID        string                       `json:"id" yaml:"id"`
	Reference map[string]string            `json:"reference" yaml:"reference"`
	Extracted map[string]map[string]string `json:"extracted" yaml:"extracted"`
}

// Input is everything one evaluation run needs.
type Input struct {
	Fields        []models.Field
	Configs       map[string]models.CompareConfig
	Models        []string
	Files         []FileRecord
	FieldSettings ranking.Settings
}

// Options tunes an evaluation run.
type Options struct {
	// Workers bounds concurrent file evaluation. Defaults to
	// DefaultWorkers when <= 0.
	Workers int
	// Comparator overrides the default comparator, e.g. to attach a judge
	// or tune the containment floor.
	Comparator *compare.Comparator
}

// Verdict is one comparator decision, kept for detail rendering.
type Verdict struct {
	FileID    string             `json:"fileId"`
	FieldKey  string             `json:"fieldKey"`
	Model     string             `json:"model"`
	Extracted string             `json:"extracted"`
	Reference string             `json:"reference"`
	Result    models.MatchResult `json:"result"`
}

// Result is the terminal artifact of a run: the raw verdicts, the reduced
// per-(field, model) metrics, and the ranked model summaries.
type Result struct {
	Verdicts  []Verdict                            `json:"verdicts"`
	Counts    map[string]map[string]metrics.Counts `json:"counts"`
	Averages  ranking.Averages                     `json:"averages"`
	Summaries []models.ModelSummary                `json:"summaries"`
}

// Evaluate compares every (file, field, model) triple, reduces the
// verdicts to metrics, and runs the ranking pipeline. Files are evaluated
// concurrently but reduced in input order, so the result is deterministic
// for fixed inputs. Malformed values never fail a run; judge failures are
// logged and degrade to non-matches. The only error source is context
// cancellation.
func Evaluate(ctx context.Context, input Input, opts Options) (*Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	comparator := opts.Comparator
	if comparator == nil {
		comparator = compare.New(compare.Options{})
	}

	perFile := make([][]Verdict, len(input.Files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, file := range input.Files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			perFile[i] = evaluateFile(groupCtx, comparator, input, file)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Counts:   make(map[string]map[string]metrics.Counts, len(input.Fields)),
		Averages: make(ranking.Averages, len(input.Fields)),
	}

	for _, verdicts := range perFile {
		result.Verdicts = append(result.Verdicts, verdicts...)
		for _, v := range verdicts {
			byModel := result.Counts[v.FieldKey]
			if byModel == nil {
				byModel = make(map[string]metrics.Counts, len(input.Models))
				result.Counts[v.FieldKey] = byModel
			}
			counts := byModel[v.Model]
			counts.Observe(v.Extracted != "", v.Reference != "", v.Result.IsMatch)
			byModel[v.Model] = counts
		}
	}

	for fieldKey, byModel := range result.Counts {
		result.Averages[fieldKey] = make(map[string]models.FieldMetrics, len(byModel))
		for model, counts := range byModel {
			result.Averages[fieldKey][model] = counts.Metrics()
		}
	}

	summaries := ranking.CalculateModelSummaries(input.Models, input.Fields, result.Averages, input.FieldSettings)
	summaries = ranking.DetermineFieldWinners(summaries, input.Fields, input.FieldSettings)
	result.Summaries = ranking.AssignRanks(summaries)

	return result, nil
}

// evaluateFile produces the verdicts for one document in deterministic
// field-major, model-minor order.
func evaluateFile(ctx context.Context, comparator *compare.Comparator, input Input, file FileRecord) []Verdict {
	verdicts := make([]Verdict, 0, len(input.Fields)*len(input.Models))

	for _, field := range input.Fields {
		cfg, ok := input.Configs[field.Key]
		if !ok {
			cfg = models.CompareConfig{CompareType: models.CompareNearExact}
		}
		reference := file.Reference[field.Key]

		for _, model := range input.Models {
			extracted := file.Extracted[model][field.Key]

			result, err := comparator.Compare(ctx, cfg, extracted, reference)
			if err != nil {
				// Degraded verdict, not a failed run.
				slog.Warn("comparison degraded to non-match",
					"file", file.ID,
					"field", field.Key,
					"model", model,
					"error", err)
			}

			verdicts = append(verdicts, Verdict{
				FileID:    file.ID,
				FieldKey:  field.Key,
				Model:     model,
				Extracted: extracted,
				Reference: reference,
				Result:    result,
			})
		}
	}

	return verdicts
}
