package ranking

import (
	"sort"
	"strings"

	"github.com/fieldlens/fieldlens/internal/models"
)

// AssignRanks orders the summaries by the five-level tie-break hierarchy
// and assigns competition ("skip-style") ranks: models tied on every
// numeric criterion share a rank, and the next distinct model's rank is
// its 1-based position, so three models tied at rank 1 are followed by
// rank 4, not rank 2.
//
// The hierarchy is accuracy-first: overall accuracy, then precision, then
// recall, then fields won (all descending, compared within Epsilon), with
// the model name as the final alphabetical fallback that guarantees a
// deterministic total order even for exact numeric ties. The name decides
// ordering only, never rank: numerically tied models share a rank whatever
// they are called. The input slice is not mutated.
func AssignRanks(summaries []models.ModelSummary) []models.ModelSummary {
	out := cloneSummaries(summaries)

	sort.SliceStable(out, func(i, j int) bool {
		if c := compareMetrics(out[i], out[j]); c != 0 {
			return c < 0
		}
		return strings.Compare(out[i].ModelName, out[j].ModelName) < 0
	})

	for i := range out {
		if i > 0 && compareMetrics(out[i-1], out[i]) == 0 {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}

	return out
}

// compareMetrics orders two summaries by the numeric tie-break levels.
// Returns a negative value when a ranks ahead of b, positive when behind,
// and 0 when the two are tied on every level within Epsilon.
func compareMetrics(a, b models.ModelSummary) int {
	levels := []struct{ a, b float64 }{
		{a.OverallAccuracy, b.OverallAccuracy},
		{a.OverallPrecision, b.OverallPrecision},
		{a.OverallRecall, b.OverallRecall},
		{a.FieldsWon, b.FieldsWon},
	}

	for _, level := range levels {
		if nearlyEqual(level.a, level.b) {
			continue
		}
		if level.a > level.b {
			return -1
		}
		return 1
	}
	return 0
}
