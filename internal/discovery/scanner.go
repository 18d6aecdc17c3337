package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"jth/internal/domain"
)

const (
	javaExt     = ".java"
	expectedExt = ".expected"
	bundleExt   = ".bundle"
)

// Scanner discovers suites and fixtures in a fixture repository
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan finds every suite (immediate subdirectory) under the repository root
// together with its fixtures. An unreadable root or suite directory is fatal.
func (s *Scanner) Scan(root string) ([]domain.Suite, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("fixture root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture root is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read fixture root %s: %w", root, err)
	}

	var suites []domain.Suite
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		suite, err := s.ScanSuite(root, entry.Name())
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}

	return suites, nil
}

// ScanSuite discovers the fixtures of a single named suite
func (s *Scanner) ScanSuite(root, name string) (domain.Suite, error) {
	suitePath := filepath.Join(filepath.Clean(root), name)
	entries, err := os.ReadDir(suitePath)
	if err != nil {
		return domain.Suite{}, fmt.Errorf("read suite %s: %w", name, err)
	}

	suite := domain.Suite{Name: name, Path: suitePath}
	for _, entry := range entries {
		// Bundle directories and the suite's own subdirectories are not fixtures
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), javaExt) {
			continue
		}
		fixture, err := s.resolve(suite, filepath.Join(suitePath, entry.Name()))
		if err != nil {
			return domain.Suite{}, err
		}
		suite.Fixtures = append(suite.Fixtures, fixture)
	}

	return suite, nil
}

// Lookup resolves one named fixture inside a suite
func (s *Scanner) Lookup(root, suiteName, caseName string) (domain.Fixture, error) {
	suitePath := filepath.Join(filepath.Clean(root), suiteName)
	path := filepath.Join(suitePath, caseName+javaExt)
	if _, err := os.Stat(path); err != nil {
		return domain.Fixture{}, fmt.Errorf("fixture does not exist: %s", path)
	}
	return s.resolve(domain.Suite{Name: suiteName, Path: suitePath}, path)
}

// resolve fills in the optional expectation and bundle associations for one
// fixture source file, by directory convention:
//
//	<case>.java.expected    golden output
//	<case>.java.bundle/     auxiliary sources compiled with the fixture
func (s *Scanner) resolve(suite domain.Suite, path string) (domain.Fixture, error) {
	fixture := domain.Fixture{
		Suite: suite.Name,
		Name:  strings.TrimSuffix(filepath.Base(path), javaExt),
		Path:  path,
	}

	if info, err := os.Stat(path + expectedExt); err == nil && !info.IsDir() {
		fixture.Expected = path + expectedExt
	}

	bundleDir := path + bundleExt
	if info, err := os.Stat(bundleDir); err == nil && info.IsDir() {
		entries, err := os.ReadDir(bundleDir)
		if err != nil {
			return domain.Fixture{}, fmt.Errorf("read bundle %s: %w", bundleDir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), javaExt) {
				continue
			}
			fixture.Bundle = append(fixture.Bundle, filepath.Join(bundleDir, entry.Name()))
		}
		sort.Strings(fixture.Bundle)
	}

	return fixture, nil
}
