package skillicons

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
)

// SearchMode picks the matcher used by the catalog search box.
type SearchMode string

const (
	// SearchSubstring keeps catalog order and matches case-insensitive substrings.
	SearchSubstring SearchMode = "substring"
	// SearchFuzzy ranks matches by fuzzy score, best first.
	SearchFuzzy SearchMode = "fuzzy"
)

var ErrUnknownSearchMode = errors.New("unknown search mode")

// ParseSearchMode accepts "substring" (or empty) and "fuzzy".
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SearchSubstring:
		return SearchSubstring, nil
	case SearchFuzzy:
		return SearchFuzzy, nil
	}
	return "", errors.Wrapf(ErrUnknownSearchMode, "%q", s)
}

// MatchesFilter checks if text contains the filter string (case-insensitive)
func MatchesFilter(text, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(filter))
}

// Filter returns the ids containing query, case-insensitively, in their
// original order. A blank query returns ids unchanged.
func Filter(ids []IconID, query string) []IconID {
	if strings.TrimSpace(query) == "" {
		return ids
	}
	filtered := make([]IconID, 0, len(ids))
	for _, id := range ids {
		if MatchesFilter(string(id), query) {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

// FuzzyFilter returns the ids fuzzily matching query, best match first.
// A blank query returns ids unchanged.
func FuzzyFilter(ids []IconID, query string) []IconID {
	query = strings.TrimSpace(query)
	if query == "" {
		return ids
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	matches := fuzzy.Find(query, names)
	filtered := make([]IconID, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, ids[m.Index])
	}
	return filtered
}

// Search dispatches to Filter or FuzzyFilter.
func Search(ids []IconID, query string, mode SearchMode) []IconID {
	if mode == SearchFuzzy {
		return FuzzyFilter(ids, query)
	}
	return Filter(ids, query)
}
