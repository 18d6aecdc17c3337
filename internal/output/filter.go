// Package output isolates program print statements from raw VM output and
// compares them against golden expectation files.
package output

import "strings"

// Filter selects marker lines from captured VM output
type Filter struct {
	marker string
}

// NewFilter creates a Filter for the given marker substring
func NewFilter(marker string) *Filter {
	return &Filter{marker: marker}
}

// Apply returns, preserving order, every line of raw that contains the
// marker substring. The result may be empty.
func (f *Filter) Apply(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, f.marker) {
			lines = append(lines, line)
		}
	}
	return lines
}
