package catalog

import "strings"

// Filter returns the beats visible under the given spec, preserving the
// catalog's relative order. A beat is visible when both predicates hold:
//
//   - tags: no tags selected, or the beat carries at least one selected tag
//     (OR semantics across the selection, not AND)
//   - text: empty query, or the lower-cased query is a substring of the
//     lower-cased title or producer
//
// There is no ranking; the result is a subset in original order.
func Filter(beats []Beat, spec FilterSpec) []Beat {
	query := strings.ToLower(spec.SearchQuery)

	result := make([]Beat, 0, len(beats))
	for _, beat := range beats {
		if !matchesTags(beat, spec.SelectedTags) {
			continue
		}
		if !matchesQuery(beat, query) {
			continue
		}
		result = append(result, beat)
	}
	return result
}

func matchesTags(beat Beat, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, have := range beat.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func matchesQuery(beat Beat, queryLower string) bool {
	if queryLower == "" {
		return true
	}
	return strings.Contains(strings.ToLower(beat.Title), queryLower) ||
		strings.Contains(strings.ToLower(beat.Producer), queryLower)
}
