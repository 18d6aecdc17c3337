package discovery

import (
	"path/filepath"
	"strings"

	"jth/internal/domain"
)

// Filter filters fixtures by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterSuites applies FilterByName to every suite, dropping suites left empty
func (f *Filter) FilterSuites(suites []domain.Suite, pattern string) []domain.Suite {
	if pattern == "" {
		return suites
	}

	var filtered []domain.Suite
	for _, suite := range suites {
		kept := f.FilterByName(suite.Fixtures, pattern)
		if len(kept) == 0 {
			continue
		}
		suite.Fixtures = kept
		filtered = append(filtered, suite)
	}
	return filtered
}

// FilterByName filters fixtures by name pattern using wildcard matching.
// Supports patterns like "*InnerClass" or "*Static*".
func (f *Filter) FilterByName(fixtures []domain.Fixture, pattern string) []domain.Fixture {
	if pattern == "" {
		return fixtures
	}

	var filtered []domain.Fixture

	for _, fixture := range fixtures {
		name := fixture.Name

		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, fixture)
			continue
		}

		// If the pattern contains wildcards but filepath.Match didn't match,
		// fall back to a substring match on each non-wildcard part
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(name, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, fixture)
				continue
			}
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
			if strings.Contains(name, pattern) {
				filtered = append(filtered, fixture)
			}
		}
	}

	return filtered
}
