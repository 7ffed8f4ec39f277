package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Supply Agreement", "supply agreement"},
		{"collapses internal whitespace", "Supply   \t Agreement", "supply agreement"},
		{"trims", "  hello  ", "hello"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFoldEqual(t *testing.T) {
	require.True(t, FoldEqual("New York", "new  york"))
	require.True(t, FoldEqual(" ACME Corp ", "acme corp"))
	require.False(t, FoldEqual("New York", "NY"))
}

func TestTrimEqual(t *testing.T) {
	require.True(t, TrimEqual(" Jane Doe", "Jane Doe "))
	require.False(t, TrimEqual("jane doe", "Jane Doe"))
}
