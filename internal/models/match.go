package models

// MatchClassification describes why two values were judged equal or unequal.
type MatchClassification string

const (
	// MatchExact means the raw strings were byte-identical.
	MatchExact MatchClassification = "exact"
	// MatchNormalized means the values were equal after canonicalization
	// (case/whitespace folding, duration conversion, decoration stripping).
	MatchNormalized MatchClassification = "normalized"
	// MatchPartial means one value was contained in the other, or only a
	// subset of list items matched.
	MatchPartial MatchClassification = "partial"
	// MatchDifferentFormat means the values denote the same fact rendered
	// differently (date layouts, number formatting, boolean spellings).
	MatchDifferentFormat MatchClassification = "different-format"
	// MatchNone means the values do not represent the same fact.
	MatchNone MatchClassification = "none"
)

// MatchResult is the verdict of one value comparison. Produced fresh per
// comparison, never mutated.
type MatchResult struct {
	IsMatch             bool                `json:"isMatch"`
	MatchClassification MatchClassification `json:"matchClassification"`
}

// Match builds a MatchResult for the given classification. IsMatch is true
// for every classification except MatchNone.
func Match(c MatchClassification) MatchResult {
	return MatchResult{
		IsMatch:             c != MatchNone,
		MatchClassification: c,
	}
}
