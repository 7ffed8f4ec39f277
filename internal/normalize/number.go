package normalize

import (
	"strconv"
	"strings"
)

// currencyRunes are symbols stripped before numeric parsing.
const currencyRunes = "$€£¥₹"

// ParseNumber parses a human-formatted number: currency symbols, thousands
// separators, surrounding whitespace, and a redundant trailing ".0" are all
// ignored. Returns the value and whether parsing succeeded.
func ParseNumber(s string) (float64, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.Trim(cleaned, currencyRunes)
	cleaned = strings.TrimSpace(cleaned)

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		// Accounting negative, e.g. "(1,500.00)".
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
		cleaned = strings.Trim(strings.TrimSpace(cleaned), currencyRunes)
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSuffix(cleaned, "%")

	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}
