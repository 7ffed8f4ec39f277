package compare

import (
	"github.com/fieldlens/fieldlens/internal/models"
	"github.com/fieldlens/fieldlens/internal/normalize"
)

// itemMatchLevel describes how strongly two list items matched.
type itemMatchLevel int

const (
	itemNoMatch itemMatchLevel = iota
	// itemContained: one item is contained in the other after folding,
	// e.g. "Jeffrey D. Fox (Managing Director)" vs "Jeffrey D. Fox".
	itemContained
	// itemFoldEqual: full token-for-token equality after folding.
	itemFoldEqual
)

// matchItems compares two individual list items with the same containment
// logic the near-exact path uses.
func (c *Comparator) matchItems(a, b string) itemMatchLevel {
	if normalize.FoldEqual(a, b) {
		return itemFoldEqual
	}
	if c.substringContained(normalize.Fold(a), normalize.Fold(b)) {
		return itemContained
	}
	return itemNoMatch
}

// compareList splits both sides into items and compares them as sequences
// (ordered) or sets (unordered). Classification reflects how much work the
// match required: byte-identical raw strings are exact; fully fold-equal
// item sets that differ only in order, case, or spacing are
// different-format; matches that needed decoration stripped are
// normalized; incomplete matches are partial.
func (c *Comparator) compareList(extracted, reference, separator string, ordered bool) models.MatchResult {
	if extracted == reference {
		return models.Match(models.MatchExact)
	}

	if separator == "" {
		separator = normalize.DetectSeparatorIn(extracted, reference, c.separators)
	}
	itemsE := normalize.SplitList(extracted, separator)
	itemsR := normalize.SplitList(reference, separator)

	if len(itemsE) == 0 || len(itemsR) == 0 {
		return models.Match(models.MatchNone)
	}

	var matched, contained int
	if ordered {
		matched, contained = c.matchOrdered(itemsE, itemsR)
	} else {
		matched, contained = c.matchUnordered(itemsE, itemsR)
	}

	required := len(itemsR)
	if len(itemsE) > required {
		required = len(itemsE)
	}

	switch {
	case matched == 0:
		return models.Match(models.MatchNone)
	case matched < required:
		return models.Match(models.MatchPartial)
	case contained > 0:
		return models.Match(models.MatchNormalized)
	default:
		return models.Match(models.MatchDifferentFormat)
	}
}

// matchOrdered compares position by position. Items past the shorter side's
// length are unmatched.
func (c *Comparator) matchOrdered(itemsE, itemsR []string) (matched, contained int) {
	n := len(itemsE)
	if len(itemsR) < n {
		n = len(itemsR)
	}
	for i := 0; i < n; i++ {
		switch c.matchItems(itemsE[i], itemsR[i]) {
		case itemFoldEqual:
			matched++
		case itemContained:
			matched++
			contained++
		}
	}
	return matched, contained
}

// matchUnordered greedily pairs each reference item with the best unused
// extracted item, preferring full fold equality over containment.
func (c *Comparator) matchUnordered(itemsE, itemsR []string) (matched, contained int) {
	used := make([]bool, len(itemsE))

	for _, r := range itemsR {
		best := -1
		bestLevel := itemNoMatch
		for i, e := range itemsE {
			if used[i] {
				continue
			}
			level := c.matchItems(e, r)
			if level > bestLevel {
				best, bestLevel = i, level
				if level == itemFoldEqual {
					break
				}
			}
		}
		if best >= 0 {
			used[best] = true
			matched++
			if bestLevel == itemContained {
				contained++
			}
		}
	}
	return matched, contained
}
