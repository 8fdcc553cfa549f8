package coha_filter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Search named fixed length token pattern, Filters are borrowed, not owned
type Search struct {
	Label   string
	Filters []*Filter
}

func NewSearch(label string, filters ...*Filter) *Search {
	return &Search{Label: label, Filters: filters}
}

// Len number of token positions the pattern covers
func (s *Search) Len() int {
	return len(s.Filters)
}

// FilterSizes eg: "12, ∞, 3"
func (s *Search) FilterSizes() string {
	sizes := make([]string, 0, len(s.Filters))
	for _, f := range s.Filters {
		sizes = append(sizes, f.String())
	}
	return strings.Join(sizes, ", ")
}

// matchAt test the pattern against tokens[i:i+m], stop at the first failing position
func (s *Search) matchAt(tokens []Token, i int) bool {
	for j, f := range s.Filters {
		if !f.Matches(tokens[i+j].WordID) {
			return false
		}
	}
	return true
}

// validateSearches labels become directory and file names, so they must be
// non-empty, free of path separators and unique within one run
func validateSearches(searches []*Search) error {
	seen := make(map[string]struct{}, len(searches))
	for _, s := range searches {
		if s.Len() == 0 {
			return fmt.Errorf("%w: %q", ErrEmptySearch, s.Label)
		}
		for j, f := range s.Filters {
			if f == nil {
				return fmt.Errorf("%w: %q position %d", ErrNilFilter, s.Label, j)
			}
		}
		if s.Label == "" || s.Label == "." || s.Label == ".." ||
			strings.ContainsRune(s.Label, filepath.Separator) || strings.ContainsRune(s.Label, '/') {
			return fmt.Errorf("%w: %q", ErrInvalidLabel, s.Label)
		}
		if _, ok := seen[s.Label]; ok {
			return fmt.Errorf("%w: duplicated %q", ErrInvalidLabel, s.Label)
		}
		seen[s.Label] = struct{}{}
	}
	return nil
}
