package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expected    string
		expectError bool
	}{
		{
			name:     "valid query",
			query:    "the matrix",
			expected: "the matrix",
		},
		{
			name:        "empty query",
			query:       "",
			expectError: true,
		},
		{
			name:        "whitespace only",
			query:       "   \t  ",
			expectError: true,
		},
		{
			name:     "whitespace trimmed",
			query:    "  dune  ",
			expected: "dune",
		},
		{
			name:     "unicode title",
			query:    "アキラ",
			expected: "アキラ",
		},
		{
			name:        "too long",
			query:       strings.Repeat("a", MaxSearchQueryLength+1),
			expectError: true,
		},
		{
			name:        "control characters",
			query:       "matrix\x00reloaded",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSearchQuery(tt.query)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
