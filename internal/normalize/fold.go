// Package normalize provides the field-type-aware canonicalization helpers
// used by the value comparator: string folding, numeric and date parsing,
// duration-to-days conversion, and list splitting.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

var caseFolder = cases.Fold()

// Fold canonicalizes a string for tolerant comparison: Unicode case folding,
// trimming, and collapsing of internal whitespace runs to single spaces.
func Fold(s string) string {
	folded := caseFolder.String(s)
	return strings.Join(strings.Fields(folded), " ")
}

// FoldEqual reports whether two strings are equal after folding.
func FoldEqual(a, b string) bool {
	return Fold(a) == Fold(b)
}

// TrimEqual reports whether two strings are identical after trimming
// surrounding whitespace, with case preserved.
func TrimEqual(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
