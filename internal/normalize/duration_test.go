package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDurationDays(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"days", "30 days", 30},
		{"single day", "1 day", 1},
		{"weeks", "2 weeks", 14},
		{"years", "2 years", 730},
		{"months", "24 months", 730},
		{"written number", "ninety days", 90},
		{"written number with digits", "sixty (60) days", 60},
		{"hyphenated written number", "twenty-one days", 21},
		{"compound written number", "one hundred days", 100},
		{"business qualifier", "30 business days", 30},
		{"calendar qualifier", "sixty (60) calendar days", 60},
		{"case and spacing", "  Thirty   DAYS ", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDurationDays(tt.in)
			require.True(t, ok)
			require.InDelta(t, tt.want, got, 1e-6)
		})
	}

	t.Run("not durations", func(t *testing.T) {
		for _, in := range []string{
			"", "30", "days", "several days", "30 fortnights",
			"the term of this agreement", "New York",
		} {
			_, ok := ParseDurationDays(in)
			require.False(t, ok, "input %q", in)
		}
	})

	t.Run("two years equals twenty-four months", func(t *testing.T) {
		years, ok := ParseDurationDays("2 years")
		require.True(t, ok)
		months, ok := ParseDurationDays("24 months")
		require.True(t, ok)
		require.InDelta(t, years, months, 1e-6)
	})
}
