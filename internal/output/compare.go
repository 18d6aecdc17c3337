package output

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Comparator checks filtered output against a golden expectation file
type Comparator struct{}

// NewComparator creates a new Comparator
func NewComparator() *Comparator {
	return &Comparator{}
}

// Compare materializes the actual lines to a temp file and byte-compares its
// full contents with the expectation file. Line terminators count: a trailing
// newline difference is a mismatch. Returns the match verdict plus the
// expectation file's lines for diagnostics.
func (c *Comparator) Compare(actual []string, expectedPath string) (bool, []string, error) {
	want, err := os.ReadFile(expectedPath)
	if err != nil {
		return false, nil, fmt.Errorf("read expectation %s: %w", expectedPath, err)
	}

	got := Materialize(actual)
	tmp, err := os.CreateTemp("", "jth-actual-*.txt")
	if err != nil {
		return false, nil, fmt.Errorf("create actual file: %w", err)
	}
	if _, err := tmp.WriteString(got); err != nil {
		tmp.Close()
		return false, nil, fmt.Errorf("write actual file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, nil, fmt.Errorf("close actual file: %w", err)
	}

	written, err := os.ReadFile(tmp.Name())
	if err != nil {
		return false, nil, fmt.Errorf("read actual file: %w", err)
	}

	return bytes.Equal(written, want), SplitLines(string(want)), nil
}

// Materialize renders filtered lines the way the expectation files are
// written: one line per entry, each newline-terminated, empty output empty.
func Materialize(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// SplitLines splits file contents into lines without a trailing empty entry
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
