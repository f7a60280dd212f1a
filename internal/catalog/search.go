package catalog

import "strings"

// SearchByText returns the attractions whose name, description, or any tag
// contains query as a case-insensitive literal substring. The query is never
// interpreted as a pattern. An empty or whitespace-only query means "no
// active search" and returns the list unchanged. Order is preserved.
func SearchByText(query string, list []Attraction) []Attraction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	var out []Attraction
	for _, a := range list {
		if matchesText(q, a) {
			out = append(out, a)
		}
	}
	return out
}

func matchesText(q string, a Attraction) bool {
	if strings.Contains(strings.ToLower(a.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}

// FilterByCategories keeps only attractions whose category is in selected.
// An empty selection means "all categories": the list is returned unchanged.
// This mirrors the filter chips in the UI, where deselecting everything shows
// the full map, and must not be generalized to "empty selection = empty
// results". Unknown categories in selected simply match nothing.
func FilterByCategories(selected map[Category]bool, list []Attraction) []Attraction {
	if len(selected) == 0 {
		return list
	}

	var out []Attraction
	for _, a := range list {
		if selected[a.Category] {
			out = append(out, a)
		}
	}
	return out
}

// CombinedFilter intersects the text and category predicates: an attraction
// is kept iff it passes both. The predicates are independent, so application
// order does not matter.
func CombinedFilter(query string, selected map[Category]bool, list []Attraction) []Attraction {
	return FilterByCategories(selected, SearchByText(query, list))
}
