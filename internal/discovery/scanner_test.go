package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// writeRepo lays out a small fixture repository under a temp dir:
//
//	inner-classes/StaticInnerClass.java (+ .expected)
//	inner-classes/BundleCase.java (+ .expected, + .bundle/{Helper.java,Aux.java})
//	arithmetic/IntAdd.java (no expectation)
func writeRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"inner-classes/StaticInnerClass.java":              "public class StaticInnerClass {}\n",
		"inner-classes/StaticInnerClass.java.expected":     "OUT: 5\n",
		"inner-classes/BundleCase.java":                    "public class BundleCase {}\n",
		"inner-classes/BundleCase.java.expected":           "OUT: 1\n",
		"inner-classes/BundleCase.java.bundle/Helper.java": "public class Helper {}\n",
		"inner-classes/BundleCase.java.bundle/Aux.java":    "class Aux {}\n",
		"inner-classes/BundleCase.java.bundle/notes.txt":   "not a source file\n",
		"arithmetic/IntAdd.java":                           "public class IntAdd {}\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", name, err)
		}
	}

	return root
}

func TestScanner_Scan(t *testing.T) {
	root := writeRepo(t)
	scanner := NewScanner()

	suites, err := scanner.Scan(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suites) != 2 {
		t.Fatalf("expected 2 suites, got %d", len(suites))
	}

	byName := make(map[string]int)
	total := 0
	for _, suite := range suites {
		byName[suite.Name] = len(suite.Fixtures)
		total += len(suite.Fixtures)
	}

	if byName["inner-classes"] != 2 {
		t.Errorf("expected 2 fixtures in inner-classes, got %d", byName["inner-classes"])
	}
	if byName["arithmetic"] != 1 {
		t.Errorf("expected 1 fixture in arithmetic, got %d", byName["arithmetic"])
	}
	if total != 3 {
		t.Errorf("expected 3 fixtures in total, got %d", total)
	}
}

func TestScanner_Scan_Errors(t *testing.T) {
	scanner := NewScanner()

	t.Run("non-existent root", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent root")
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "root.txt")
		os.WriteFile(file, []byte("x"), 0644)
		_, err := scanner.Scan(file)
		if err == nil {
			t.Error("expected error for file root")
		}
	})
}

func TestScanner_Lookup(t *testing.T) {
	root := writeRepo(t)
	scanner := NewScanner()

	t.Run("fixture with expectation", func(t *testing.T) {
		fixture, err := scanner.Lookup(root, "inner-classes", "StaticInnerClass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fixture.Suite != "inner-classes" || fixture.Name != "StaticInnerClass" {
			t.Errorf("unexpected identity: %s", fixture.ID())
		}
		if !fixture.HasExpectation() {
			t.Error("expected expectation file to be resolved")
		}
		if fixture.HasBundle() {
			t.Error("fixture should not have a bundle")
		}
	})

	t.Run("fixture with bundle", func(t *testing.T) {
		fixture, err := scanner.Lookup(root, "inner-classes", "BundleCase")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fixture.Bundle) != 2 {
			t.Fatalf("expected 2 bundle sources, got %d: %v", len(fixture.Bundle), fixture.Bundle)
		}
		// Bundle order is sorted for stable compile invocations
		if filepath.Base(fixture.Bundle[0]) != "Aux.java" || filepath.Base(fixture.Bundle[1]) != "Helper.java" {
			t.Errorf("unexpected bundle order: %v", fixture.Bundle)
		}
	})

	t.Run("fixture without expectation", func(t *testing.T) {
		fixture, err := scanner.Lookup(root, "arithmetic", "IntAdd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fixture.HasExpectation() {
			t.Error("did not expect an expectation file")
		}
	})

	t.Run("missing fixture", func(t *testing.T) {
		_, err := scanner.Lookup(root, "arithmetic", "Missing")
		if err == nil {
			t.Error("expected error for missing fixture")
		}
	})
}
