package icd

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeQuery folds full-width Latin letters and digits to their half-width forms and lowercases the text,
// so "Ｆ７" and "f7" compare equal. Other full-width and half-width characters are left as they are.
func NormalizeQuery(s string) string {
	return strings.ToLower(strings.Map(foldFullWidthAlphanumeric, s))
}

func foldFullWidthAlphanumeric(r rune) rune {
	switch {
	case r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ', r >= '０' && r <= '９':
		narrow := width.LookupRune(r).Narrow()

		return narrow
	default:
		return r
	}
}

// Matches reports whether any field of the mapping contains the normalized query.
func (m *Mapping) Matches(normalizedQuery string) bool {
	for _, field := range m.Fields() {
		if field != nil && strings.Contains(NormalizeQuery(*field), normalizedQuery) {
			return true
		}
	}

	return false
}

// Search returns the mappings matching query in their original order.
// An empty query matches nothing.
func Search(mappings []*Mapping, query string) []*Mapping {
	normalizedQuery := NormalizeQuery(strings.TrimSpace(query))
	if normalizedQuery == "" {
		return []*Mapping{}
	}

	result := make([]*Mapping, 0)

	for _, mapping := range mappings {
		if mapping != nil && mapping.Matches(normalizedQuery) {
			result = append(result, mapping)
		}
	}

	return result
}
