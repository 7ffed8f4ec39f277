package compare

import (
	"strings"

	"github.com/fieldlens/fieldlens/internal/models"
	"github.com/fieldlens/fieldlens/internal/normalize"
)

// compareExactString is byte-for-byte equality. Whitespace and case
// differences are mismatches for fields configured this strictly.
func compareExactString(extracted, reference string) models.MatchResult {
	if extracted == reference {
		return models.Match(models.MatchExact)
	}
	return models.Match(models.MatchNone)
}

// compareExactNumber matches when both sides denote the same numeric value
// after stripping currency symbols and thousands separators. "1,500.00" and
// "$1500" are the same number in different formats.
func compareExactNumber(extracted, reference string) models.MatchResult {
	if extracted == reference {
		return models.Match(models.MatchExact)
	}

	ev, okE := normalize.ParseNumber(extracted)
	rv, okR := normalize.ParseNumber(reference)
	if okE && okR && ev == rv {
		return models.Match(models.MatchDifferentFormat)
	}
	return models.Match(models.MatchNone)
}

// booleanTokens maps the accepted spellings to a truth value.
var booleanTokens = map[string]bool{
	"yes": true, "true": true, "1": true,
	"no": false, "false": false, "0": false,
}

// compareBoolean maps each side through the yes/true/1 and no/false/0 token
// sets. Matching truth values with different (or differently cased)
// spellings are a different-format match.
func compareBoolean(extracted, reference string) models.MatchResult {
	if extracted == reference {
		if _, ok := booleanTokens[strings.ToLower(strings.TrimSpace(extracted))]; ok {
			return models.Match(models.MatchExact)
		}
		return models.Match(models.MatchNone)
	}

	ev, okE := booleanTokens[strings.ToLower(strings.TrimSpace(extracted))]
	rv, okR := booleanTokens[strings.ToLower(strings.TrimSpace(reference))]
	if okE && okR && ev == rv {
		return models.Match(models.MatchDifferentFormat)
	}
	return models.Match(models.MatchNone)
}

// compareDateExact matches when both sides parse to the same calendar date.
// "2008-07-20" and "07/20/2008" are the same date in different formats;
// an unparsable side is a mismatch, never an error.
func compareDateExact(extracted, reference string) models.MatchResult {
	equal, ok := normalize.SameDate(extracted, reference)
	if !ok || !equal {
		return models.Match(models.MatchNone)
	}
	if extracted == reference {
		return models.Match(models.MatchExact)
	}
	return models.Match(models.MatchDifferentFormat)
}
