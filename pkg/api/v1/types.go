package v1

import "k8s.io/apimachinery/pkg/util/sets"

// PullRequest identifies a pull request. ID is passed to the API as-is.
type PullRequest struct {
	Owner      string
	Repository string
	ID         string
}

// FilterCriteria selects changed files by path prefix and excluded suffixes.
type FilterCriteria struct {
	StartPhrase      string
	ExcludedSuffixes sets.Set[string]
}

// NewFilterCriteria builds criteria from a start phrase and any number of
// suffixes. Duplicate suffixes collapse.
func NewFilterCriteria(startPhrase string, excludedSuffixes ...string) FilterCriteria {
	return FilterCriteria{
		StartPhrase:      startPhrase,
		ExcludedSuffixes: sets.New[string](excludedSuffixes...),
	}
}
