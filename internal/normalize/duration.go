package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Day ratios used to reduce every duration to a day count. A month is
// 365/12 days so that "24 months" and "2 years" reduce to the same count.
const (
	DaysPerWeek  = 7.0
	DaysPerMonth = 365.0 / 12.0
	DaysPerYear  = 365.0
)

// DayRatios holds the unit-to-days conversion ratios. They are constants
// in spirit but kept overridable because the month and year ratios are
// conventions, not facts.
type DayRatios struct {
	Week  float64
	Month float64
	Year  float64
}

// DefaultDayRatios are the ratios used by ParseDurationDays.
var DefaultDayRatios = DayRatios{
	Week:  DaysPerWeek,
	Month: DaysPerMonth,
	Year:  DaysPerYear,
}

// days returns the day ratio for a singular lowercase unit word, or ok
// false for anything that is not a duration unit.
func (r DayRatios) days(unit string) (float64, bool) {
	switch unit {
	case "day":
		return 1, true
	case "week":
		return r.Week, true
	case "month":
		return r.Month, true
	case "year":
		return r.Year, true
	default:
		return 0, false
	}
}

// durationQualifiers are words that decorate a duration without changing
// its magnitude for comparison purposes.
var durationQualifiers = map[string]bool{
	"business": true,
	"calendar": true,
	"working":  true,
	"full":     true,
	"whole":    true,
}

var parenthesizedNumber = regexp.MustCompile(`\((\d+(?:\.\d+)?)\)`)

// smallNumberWords covers the written numbers that show up in contract
// language ("sixty (60) days", "ninety days").
var smallNumberWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20, "thirty": 30, "forty": 40,
	"fifty": 50, "sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100,
}

// ParseDurationDays parses a quantity of time such as "30 days", "2 years",
// "sixty (60) business days", or "twenty-one days" and reduces it to a day
// count. Returns the count and whether the string was recognized as a
// duration.
func ParseDurationDays(s string) (float64, bool) {
	return ParseDurationDaysIn(s, DefaultDayRatios)
}

// ParseDurationDaysIn is ParseDurationDays with explicit conversion
// ratios.
func ParseDurationDaysIn(s string, ratios DayRatios) (float64, bool) {
	folded := Fold(s)
	if folded == "" {
		return 0, false
	}

	// "sixty (60) days": the parenthesized digits are authoritative.
	if m := parenthesizedNumber.FindStringSubmatch(folded); m != nil {
		folded = parenthesizedNumber.ReplaceAllString(folded, " "+m[1]+" ")
		folded = strings.Join(strings.Fields(folded), " ")
	}

	words := strings.Fields(strings.ReplaceAll(folded, "-", " "))

	var (
		value    float64
		haveNum  bool
		unitDays float64
		haveUnit bool
	)

	for _, w := range words {
		w = strings.Trim(w, "().,")
		if w == "" || durationQualifiers[w] {
			continue
		}

		if v, err := strconv.ParseFloat(w, 64); err == nil {
			if haveNum && !haveUnit {
				// Written form followed by digits ("sixty 60"): the
				// digits win. Two distinct numbers otherwise is not a
				// duration we understand.
				if v != value {
					value = v
				}
			} else if haveNum {
				return 0, false
			} else {
				value = v
			}
			haveNum = true
			continue
		}

		if v, ok := smallNumberWords[w]; ok {
			if haveNum {
				// Compound written numbers: "twenty one" = 21,
				// "one hundred" = 100.
				if v == 100 {
					value *= v
				} else {
					value += v
				}
			} else {
				value = v
				haveNum = true
			}
			continue
		}

		if days, ok := ratios.days(strings.TrimSuffix(w, "s")); ok {
			if haveUnit {
				return 0, false
			}
			unitDays = days
			haveUnit = true
			continue
		}

		// Any other word means this is prose, not a duration.
		return 0, false
	}

	if !haveNum || !haveUnit {
		return 0, false
	}
	return value * unitDays, true
}
