package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Parser inspects Java fixture sources
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

var (
	// Top-level type declarations:
	// - public class StaticInnerClass
	// - public final class Helper
	// - abstract class Base / interface Printable
	classDeclPattern = regexp.MustCompile(`(?m)^\s*(?:(?:public|final|abstract|strictfp)\s+)*(class|interface|enum)\s+(\w+)`)

	publicClassPattern = regexp.MustCompile(`(?m)^\s*public\s+(?:(?:final|abstract|strictfp)\s+)*class\s+(\w+)`)
)

// EntryClass returns the fixture's entry class name: the declared public class
// if one exists, otherwise the file stem.
func (p *Parser) EntryClass(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}

	if match := publicClassPattern.FindStringSubmatch(string(content)); len(match) > 1 {
		return match[1], nil
	}

	return strings.TrimSuffix(filepath.Base(path), javaExt), nil
}

// FindClasses returns every top-level class, interface and enum declared in a
// Java source file, in declaration order.
func (p *Parser) FindClasses(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	var classes []string
	seen := make(map[string]bool)
	for _, match := range classDeclPattern.FindAllStringSubmatch(string(content), -1) {
		if len(match) > 2 && !seen[match[2]] {
			seen[match[2]] = true
			classes = append(classes, match[2])
		}
	}

	return classes, nil
}
