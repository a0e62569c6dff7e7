package filter

import (
	"strings"

	v1 "github.com/the-turing-way/pull-files/pkg/api/v1"
)

const DefaultStartPhrase = "book/website"

// Matches reports whether path starts with the start phrase and does not end
// with any excluded suffix.
func Matches(path string, criteria v1.FilterCriteria) bool {
	if !strings.HasPrefix(path, criteria.StartPhrase) {
		return false
	}

	for suffix := range criteria.ExcludedSuffixes {
		if strings.HasSuffix(path, suffix) {
			return false
		}
	}

	return true
}

// Apply returns the paths that match criteria, in their original order.
// The result is never nil.
func Apply(paths []string, criteria v1.FilterCriteria) []string {
	filtered := []string{}
	for _, path := range paths {
		if Matches(path, criteria) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}
