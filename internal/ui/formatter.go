package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"jth/internal/config"
	"jth/internal/discovery"
	"jth/internal/domain"
)

// Formatter formats and displays harness output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintSuiteHeader prints the per-suite progress line
func (f *Formatter) PrintSuiteHeader(name string) {
	fmt.Println()
	color.Cyan("══ suite: %s", name)
}

// PrintVerdict renders one case's result. Passing cases get a single line
// (plus the raw VM output when debug is set); failing cases get the full
// diagnostic dump so expected vs actual can be inspected directly.
func (f *Formatter) PrintVerdict(v domain.Verdict, debug bool) {
	switch v.Status {
	case domain.StatusPassed:
		color.Green("✓ %s", v.Fixture.ID())
		if debug {
			f.printBlock("vm output", v.Raw)
		}
	case domain.StatusCompileFailed:
		color.Red("✗ %s — unable to compile", v.Fixture.ID())
		f.printBlock("compiler output", v.Reason)
	case domain.StatusSetupFailed:
		color.Red("✗ %s — %s", v.Fixture.ID(), v.Reason)
	default:
		color.Red("✗ %s", v.Fixture.ID())
		f.printBlock("vm output", v.Raw)
		fmt.Printf("  classes: %s\n", v.ClassDir)
		f.printLines("expected", v.Expected, color.New(color.FgYellow))
		f.printLines("actual", v.Actual, color.New(color.FgRed))
	}
}

func (f *Formatter) printBlock(title, content string) {
	color.White("  %s:", title)
	if content == "" {
		fmt.Println("    (empty)")
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		fmt.Printf("    %s\n", line)
	}
}

func (f *Formatter) printLines(title string, lines []string, c *color.Color) {
	color.White("  %s:", title)
	if len(lines) == 0 {
		fmt.Println("    (empty)")
		return
	}
	for _, line := range lines {
		c.Printf("    %s\n", line)
	}
}

// PrintRunStats reads and displays the statistics of the stored run
func (f *Formatter) PrintRunStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Conformance Run Statistics                 ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Compile Failures")
	color.Red("%-27d │\n", meta.CompileFailures)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedCases == 0 && meta.CompileFailures == 0 {
		color.Green("✓ All cases passed!")
	} else {
		color.Red("✗ %d case(s) failed (%d of them at compile time)", meta.FailedCases+meta.CompileFailures, meta.CompileFailures)
		for _, failure := range output.Details {
			color.Red("    %s/%s", failure.Suite, failure.Case)
		}
	}

	return nil
}

// PrintFixtureList prints the suite/case tree without executing anything.
// With showClasses, each fixture's declared classes (and bundle sources) are
// listed as children.
func (f *Formatter) PrintFixtureList(suites []domain.Suite, showClasses bool) error {
	total := 0
	for _, suite := range suites {
		total += len(suite.Fixtures)
	}
	color.Green("Found %d case(s) in %d suite(s):\n", total, len(suites))

	for si, suite := range suites {
		isLastSuite := si == len(suites)-1
		if isLastSuite {
			color.Cyan("└── %s", suite.Name)
		} else {
			color.Cyan("├── %s", suite.Name)
		}

		suitePrefix := "│   "
		if isLastSuite {
			suitePrefix = "    "
		}

		for fi, fixture := range suite.Fixtures {
			isLastFixture := fi == len(suite.Fixtures)-1
			connector := "├── "
			if isLastFixture {
				connector = "└── "
			}

			marker := ""
			if !fixture.HasExpectation() {
				marker = " " + color.RedString("[no expectation]")
			}
			if fixture.HasBundle() {
				marker += " " + color.YellowString("[bundle: %d]", len(fixture.Bundle))
			}
			fmt.Printf("%s%s%s%s\n", suitePrefix, connector, color.YellowString(fixture.Name), marker)

			if !showClasses {
				continue
			}

			classes, err := f.parser.FindClasses(fixture.Path)
			if err != nil {
				color.Red("%s    error reading fixture %s: %v", suitePrefix, fixture.Path, err)
				continue
			}
			for _, bundled := range fixture.Bundle {
				classes = append(classes, filepath.Base(bundled))
			}

			childPrefix := suitePrefix + "│   "
			if isLastFixture {
				childPrefix = suitePrefix + "    "
			}
			for ci, class := range classes {
				childConnector := "├── "
				if ci == len(classes)-1 {
					childConnector = "└── "
				}
				fmt.Printf("%s%s%s\n", childPrefix, childConnector, class)
			}
		}
	}

	return nil
}
