package security

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// MaxSearchQueryLength defines the maximum allowed length for search queries
	MaxSearchQueryLength = 200
)

// ValidateSearchQuery validates a search query before it is logged to a user's
// search history or forwarded to the catalog API. Queries never reach SQL
// directly, so this only guards against oversized or garbage input.
func ValidateSearchQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("search query must not be empty")
	}

	if len(query) > MaxSearchQueryLength {
		return "", errors.New("search query too long")
	}

	for _, char := range query {
		if unicode.IsControl(char) {
			return "", errors.New("search query contains invalid characters")
		}
	}

	return query, nil
}
