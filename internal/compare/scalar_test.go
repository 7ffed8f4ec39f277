package compare

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldlens/fieldlens/internal/models"
)

func TestCompareExactString(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		reference string
		wantClass models.MatchClassification
	}{
		{"identical", "Supply Agreement", "Supply Agreement", models.MatchExact},
		{"case differs", "supply agreement", "Supply Agreement", models.MatchNone},
		{"whitespace differs", "Supply Agreement ", "Supply Agreement", models.MatchNone},
		{"different", "Supply Agreement", "Services Agreement", models.MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareExactString(tt.extracted, tt.reference)
			require.Equal(t, tt.wantClass, got.MatchClassification)
			require.Equal(t, tt.wantClass != models.MatchNone, got.IsMatch)
		})
	}
}

func TestCompareExactNumber(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		reference string
		wantClass models.MatchClassification
	}{
		{"identical strings", "1500", "1500", models.MatchExact},
		{"thousands separator", "1,500", "1500", models.MatchDifferentFormat},
		{"currency symbol", "$1,500.00", "1500", models.MatchDifferentFormat},
		{"trailing .0", "100.0", "100", models.MatchDifferentFormat},
		{"different values", "1500", "1501", models.MatchNone},
		{"unparsable side", "about 1500", "1500", models.MatchNone},
		{"both unparsable but identical", "N/A", "N/A", models.MatchExact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareExactNumber(tt.extracted, tt.reference)
			require.Equal(t, tt.wantClass, got.MatchClassification)
		})
	}
}

func TestCompareBoolean(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		reference string
		wantClass models.MatchClassification
	}{
		{"identical token", "Yes", "Yes", models.MatchExact},
		{"case differs", "yes", "Yes", models.MatchDifferentFormat},
		{"different spellings same value", "Yes", "true", models.MatchDifferentFormat},
		{"numeric true", "1", "true", models.MatchDifferentFormat},
		{"numeric false", "0", "No", models.MatchDifferentFormat},
		{"opposite values", "Yes", "No", models.MatchNone},
		{"unmapped token", "maybe", "yes", models.MatchNone},
		{"identical unmapped token", "maybe", "maybe", models.MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareBoolean(tt.extracted, tt.reference)
			require.Equal(t, tt.wantClass, got.MatchClassification)
			require.Equal(t, tt.wantClass != models.MatchNone, got.IsMatch)
		})
	}
}

func TestCompareDateExact(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		reference string
		wantClass models.MatchClassification
	}{
		{"identical", "2008-07-20", "2008-07-20", models.MatchExact},
		{"ISO vs US", "2008-07-20", "07/20/2008", models.MatchDifferentFormat},
		{"long form vs ISO", "July 20, 2008", "2008-07-20", models.MatchDifferentFormat},
		{"different days", "2008-07-20", "2008-07-21", models.MatchNone},
		{"unparsable side", "sometime in 2008", "2008-07-20", models.MatchNone},
		{"both unparsable", "N/A", "N/A", models.MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareDateExact(tt.extracted, tt.reference)
			require.Equal(t, tt.wantClass, got.MatchClassification)
		})
	}
}
