package normalize

import "strings"

// sublistDelimiters are the separators recognized when mining a single
// value for embedded sub-values (multi-value containment).
var sublistDelimiters = []string{",", "|", ";"}

// SplitList splits a raw value on the given separator, trimming each item
// and dropping empties.
func SplitList(s, separator string) []string {
	parts := strings.Split(s, separator)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}

// DefaultSeparators is the separator auto-detection priority: "|" is
// preferred because pipe-delimited values routinely contain commas.
var DefaultSeparators = []string{"|", ","}

// DetectSeparator picks the list separator for a pair of raw values when
// none is configured: "|" when either side contains one, else ",".
func DetectSeparator(a, b string) string {
	return DetectSeparatorIn(a, b, DefaultSeparators)
}

// DetectSeparatorIn picks the first separator from priority present in
// either value, falling back to the last entry.
func DetectSeparatorIn(a, b string, priority []string) string {
	if len(priority) == 0 {
		priority = DefaultSeparators
	}
	for _, sep := range priority {
		if strings.Contains(a, sep) || strings.Contains(b, sep) {
			return sep
		}
	}
	return priority[len(priority)-1]
}

// SubValues splits a value on every known delimiter and returns the trimmed
// fragments. The whole (trimmed) value is always the first element, so a
// caller can test both the value itself and its parts.
func SubValues(s string) []string {
	whole := strings.TrimSpace(s)
	values := []string{whole}

	fragments := []string{whole}
	for _, delim := range sublistDelimiters {
		var next []string
		for _, f := range fragments {
			next = append(next, strings.Split(f, delim)...)
		}
		fragments = next
	}

	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f != "" && f != whole {
			values = append(values, f)
		}
	}
	return values
}
