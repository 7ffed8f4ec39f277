package ranking

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldlens/fieldlens/internal/models"
)

// buildSummaries is a helper that runs the first pipeline stage over one
// field per entry of perField, keyed model -> fieldKey -> metrics.
func buildSummaries(t *testing.T, fields []models.Field, perField map[string]map[string]models.FieldMetrics, settings Settings) []models.ModelSummary {
	t.Helper()

	averages := make(Averages)
	var modelNames []string
	seen := map[string]bool{}
	for model, byField := range perField {
		if !seen[model] {
			seen[model] = true
			modelNames = append(modelNames, model)
		}
		for fieldKey, m := range byField {
			if averages[fieldKey] == nil {
				averages[fieldKey] = make(map[string]models.FieldMetrics)
			}
			averages[fieldKey][model] = m
		}
	}
	// Map iteration order must not leak into the test.
	sort.Strings(modelNames)
	return CalculateModelSummaries(modelNames, fields, averages, settings)
}

func fieldPerf(t *testing.T, s models.ModelSummary, fieldKey string) models.FieldPerformance {
	t.Helper()
	for _, p := range s.FieldPerformance {
		if p.FieldKey == fieldKey {
			return p
		}
	}
	t.Fatalf("no performance entry for field %q", fieldKey)
	return models.FieldPerformance{}
}

func TestDetermineFieldWinners_SingleWinner(t *testing.T) {
	fields := testFields[:1]
	summaries := buildSummaries(t, fields, map[string]map[string]models.FieldMetrics{
		"model-a": {"party": {Accuracy: 0.9, Precision: 0.95, Recall: 0.9}},
		"model-b": {"party": {Accuracy: 0.9, Precision: 0.85, Recall: 0.9}},
	}, nil)

	out := DetermineFieldWinners(summaries, fields, nil)

	var a, b models.ModelSummary
	for _, s := range out {
		switch s.ModelName {
		case "model-a":
			a = s
		case "model-b":
			b = s
		}
	}

	// Accuracy ties; precision breaks the tie in model-a's favor.
	perfA := fieldPerf(t, a, "party")
	require.True(t, perfA.IsWinner)
	require.False(t, perfA.IsSharedVictory)
	require.InDelta(t, 1.0, a.FieldsWon, 1e-9)

	perfB := fieldPerf(t, b, "party")
	require.False(t, perfB.IsWinner)
	require.Zero(t, b.FieldsWon)
}

func TestDetermineFieldWinners_RecallTieBreak(t *testing.T) {
	fields := testFields[:1]
	summaries := buildSummaries(t, fields, map[string]map[string]models.FieldMetrics{
		"model-a": {"party": {Accuracy: 0.9, Precision: 0.9, Recall: 0.8}},
		"model-b": {"party": {Accuracy: 0.9, Precision: 0.9, Recall: 0.9}},
	}, nil)

	out := DetermineFieldWinners(summaries, fields, nil)

	for _, s := range out {
		perf := fieldPerf(t, s, "party")
		if s.ModelName == "model-b" {
			require.True(t, perf.IsWinner)
			require.False(t, perf.IsSharedVictory)
			require.InDelta(t, 1.0, s.FieldsWon, 1e-9)
		} else {
			require.False(t, perf.IsWinner)
		}
	}
}

func TestDetermineFieldWinners_ThreeWayShare(t *testing.T) {
	fields := testFields[:1]
	perfect := models.FieldMetrics{Accuracy: 1.0, Precision: 1.0, Recall: 1.0, F1: 1.0}
	summaries := buildSummaries(t, fields, map[string]map[string]models.FieldMetrics{
		"model-a": {"party": perfect},
		"model-b": {"party": perfect},
		"model-c": {"party": perfect},
	}, nil)

	out := DetermineFieldWinners(summaries, fields, nil)
	require.Len(t, out, 3)

	total := 0.0
	for _, s := range out {
		perf := fieldPerf(t, s, "party")
		require.True(t, perf.IsWinner)
		require.True(t, perf.IsSharedVictory)
		require.InDelta(t, 1.0/3.0, s.FieldsWon, 1e-9)
		total += s.FieldsWon
	}
	require.InDelta(t, 1.0, total, 1e-9)
}

// TestDetermineFieldWinners_CreditConservation checks that
// every included field hands out exactly one point of credit in total,
// whatever the tie structure, and excluded fields hand out none.
func TestDetermineFieldWinners_CreditConservation(t *testing.T) {
	perField := map[string]map[string]models.FieldMetrics{
		"model-a": {
			"party":          {Accuracy: 0.9, Precision: 0.9, Recall: 0.9},
			"effective_date": {Accuracy: 0.4, Precision: 0.4, Recall: 0.4},
		},
		"model-b": {
			"party":          {Accuracy: 0.9, Precision: 0.9, Recall: 0.9},
			"effective_date": {Accuracy: 0.8, Precision: 0.7, Recall: 0.6},
		},
		"model-c": {
			"party":          {Accuracy: 0.1, Precision: 0.2, Recall: 0.3},
			"effective_date": {Accuracy: 0.8, Precision: 0.7, Recall: 0.6},
		},
	}

	t.Run("all fields included", func(t *testing.T) {
		summaries := buildSummaries(t, testFields, perField, nil)
		out := DetermineFieldWinners(summaries, testFields, nil)

		total := 0.0
		for _, s := range out {
			total += s.FieldsWon
		}
		require.InDelta(t, float64(len(testFields)), total, 1e-9)
	})

	t.Run("excluded field awards nothing", func(t *testing.T) {
		settings := Settings{"party": {IncludeInMetrics: boolPtr(false)}}
		summaries := buildSummaries(t, testFields, perField, settings)
		out := DetermineFieldWinners(summaries, testFields, settings)

		total := 0.0
		for _, s := range out {
			total += s.FieldsWon
			require.False(t, fieldPerf(t, s, "party").IsWinner)
		}
		require.InDelta(t, 1.0, total, 1e-9)
	})
}

func TestDetermineFieldWinners_EpsilonTolerance(t *testing.T) {
	fields := testFields[:1]
	summaries := buildSummaries(t, fields, map[string]map[string]models.FieldMetrics{
		// 0.8995 vs 0.9 differ by less than Epsilon: a true tie.
		"model-a": {"party": {Accuracy: 0.9, Precision: 0.9, Recall: 0.9}},
		"model-b": {"party": {Accuracy: 0.8995, Precision: 0.9, Recall: 0.9}},
	}, nil)

	out := DetermineFieldWinners(summaries, fields, nil)
	for _, s := range out {
		perf := fieldPerf(t, s, "party")
		require.True(t, perf.IsWinner, s.ModelName)
		require.True(t, perf.IsSharedVictory)
		require.InDelta(t, 0.5, s.FieldsWon, 1e-9)
	}
}

func TestDetermineFieldWinners_DoesNotMutateInput(t *testing.T) {
	fields := testFields[:1]
	summaries := buildSummaries(t, fields, map[string]map[string]models.FieldMetrics{
		"model-a": {"party": {Accuracy: 1.0}},
	}, nil)

	_ = DetermineFieldWinners(summaries, fields, nil)

	require.Zero(t, summaries[0].FieldsWon)
	require.False(t, summaries[0].FieldPerformance[0].IsWinner)
}

func TestDetermineFieldWinners_Degenerate(t *testing.T) {
	t.Run("no summaries", func(t *testing.T) {
		require.Empty(t, DetermineFieldWinners(nil, testFields, nil))
	})

	t.Run("no fields", func(t *testing.T) {
		summaries := buildSummaries(t, nil, map[string]map[string]models.FieldMetrics{"model-a": {}}, nil)
		out := DetermineFieldWinners(summaries, nil, nil)
		require.Len(t, out, 1)
		require.Zero(t, out[0].FieldsWon)
	})

	t.Run("all-zero metrics still award the field", func(t *testing.T) {
		fields := testFields[:1]
		summaries := buildSummaries(t, fields, map[string]map[string]models.FieldMetrics{
			"model-a": {"party": {}},
			"model-b": {"party": {}},
		}, nil)
		out := DetermineFieldWinners(summaries, fields, nil)

		total := 0.0
		for _, s := range out {
			require.True(t, fieldPerf(t, s, "party").IsSharedVictory)
			total += s.FieldsWon
		}
		require.InDelta(t, 1.0, total, 1e-9)
	})
}
