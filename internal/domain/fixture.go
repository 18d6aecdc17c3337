package domain

// Suite is a named directory of fixtures in the repository
type Suite struct {
	Name     string    // Directory name, used as the suite identity
	Path     string    // Full path to the suite directory
	Fixtures []Fixture // Fixtures discovered in the suite, in directory order
}

// Fixture represents a single Java source test case
type Fixture struct {
	Suite    string   // Name of the owning suite
	Name     string   // File stem, also the default entry class name
	Path     string   // Full path to the .java source file
	Expected string   // Path to the .expected golden file, empty if absent
	Bundle   []string // Auxiliary .java files compiled together with the fixture
}

// ID returns the suite-qualified case identity
func (f Fixture) ID() string {
	return f.Suite + "/" + f.Name
}

// HasExpectation reports whether the fixture has a golden expectation file
func (f Fixture) HasExpectation() bool {
	return f.Expected != ""
}

// HasBundle reports whether the fixture carries auxiliary bundle sources
func (f Fixture) HasBundle() bool {
	return len(f.Bundle) > 0
}
