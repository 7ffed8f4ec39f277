package compare

import (
	"strings"
	"unicode/utf8"

	"github.com/fieldlens/fieldlens/internal/models"
	"github.com/fieldlens/fieldlens/internal/normalize"
)

// durationTolerance absorbs the floating-point noise introduced by the
// fractional days-per-month ratio when two durations reduce to the same
// day count.
const durationTolerance = 1e-6

// compareNearExact is the richest comparison path. Each rung of the ladder
// is tried in order until one produces a verdict:
//
//  1. byte equality
//  2. case/whitespace-folded equality
//  3. duration normalization ("2 years" vs "24 months")
//  4. multi-value containment ("A; B" vs "B")
//  5. substring containment ("Supply Agreement - FUSION" vs "Supply Agreement")
func (c *Comparator) compareNearExact(extracted, reference string) models.MatchResult {
	if extracted == reference {
		return models.Match(models.MatchExact)
	}

	foldedE := normalize.Fold(extracted)
	foldedR := normalize.Fold(reference)
	if foldedE == foldedR && foldedE != "" {
		return models.Match(models.MatchNormalized)
	}

	if de, okE := normalize.ParseDurationDaysIn(extracted, c.dayRatios); okE {
		if dr, okR := normalize.ParseDurationDaysIn(reference, c.dayRatios); okR {
			if diff := de - dr; diff < durationTolerance && diff > -durationTolerance {
				return models.Match(models.MatchNormalized)
			}
			// Both are durations of different lengths; the weaker rungs
			// below would only produce false positives like "1 year"
			// containing "1".
			return models.Match(models.MatchNone)
		}
	}

	if cls, ok := c.subValueMatch(extracted, reference); ok {
		return models.Match(cls)
	}

	if c.substringContained(foldedE, foldedR) {
		return models.Match(models.MatchPartial)
	}

	return models.Match(models.MatchNone)
}

// subValueMatch splits both sides on the common delimiters and looks for a
// cross match between one side's whole value and the other side's parts.
// A case/whitespace-identical pair is normalized; a folded pair is partial.
func (c *Comparator) subValueMatch(extracted, reference string) (models.MatchClassification, bool) {
	subsE := normalize.SubValues(extracted)
	subsR := normalize.SubValues(reference)
	if len(subsE) == 1 && len(subsR) == 1 {
		// Neither side is multi-valued; byte and folded equality were
		// already ruled out upstream.
		return "", false
	}

	found := false
	for _, e := range subsE {
		for _, r := range subsR {
			if !normalize.FoldEqual(e, r) {
				continue
			}
			if normalize.TrimEqual(e, r) {
				return models.MatchNormalized, true
			}
			found = true
		}
	}
	if found {
		return models.MatchPartial, true
	}
	return "", false
}

// substringContained reports whether the shorter folded string is contained
// in the longer one and is long enough to be meaningful.
func (c *Comparator) substringContained(foldedA, foldedB string) bool {
	shorter, longer := foldedA, foldedB
	if utf8.RuneCountInString(shorter) > utf8.RuneCountInString(longer) {
		shorter, longer = longer, shorter
	}
	if utf8.RuneCountInString(shorter) < c.minSubstringRunes {
		return false
	}
	return strings.Contains(longer, shorter)
}
