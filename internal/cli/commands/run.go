package commands

import (
	"fmt"

	"jth/internal/config"
	"jth/internal/discovery"
	"jth/internal/pipeline"
	"jth/internal/storage"
	"jth/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config      *config.Config
	scanner     *discovery.Scanner
	filter      *discovery.Filter
	caseRunner  *pipeline.CaseRunner
	suiteRunner *pipeline.SuiteRunner
	storage     storage.Storage
	formatter   *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	caseRunner *pipeline.CaseRunner,
	suiteRunner *pipeline.SuiteRunner,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:      cfg,
		scanner:     scanner,
		filter:      filter,
		caseRunner:  caseRunner,
		suiteRunner: suiteRunner,
		storage:     st,
		formatter:   formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// The VM cannot resolve standard-library references without the extracted
	// runtime classes; refuse to start rather than fail every case.
	if rc.config.RuntimeClasses == "" {
		return fmt.Errorf("%s is not set (directory of extracted runtime-library classes)", config.EnvRuntimeClasses)
	}

	if len(args) == 1 {
		return fmt.Errorf("a single case run needs both a suite and a case name")
	}
	if len(args) == 2 {
		return rc.runSingle(args[0], args[1])
	}
	return rc.runAll()
}

// runSingle executes exactly one case and renders its verdict
func (rc *RunCommand) runSingle(suite, caseName string) error {
	fixture, err := rc.scanner.Lookup(rc.config.GetFixtureRoot(), suite, caseName)
	if err != nil {
		return err
	}

	verdict := rc.caseRunner.Run(fixture)
	rc.formatter.PrintVerdict(verdict, rc.config.Flags.Debug)
	return nil
}

// runAll executes the whole fixture repository
func (rc *RunCommand) runAll() error {
	suites, err := rc.scanner.Scan(rc.config.GetFixtureRoot())
	if err != nil {
		return err
	}

	suites = rc.filter.FilterSuites(suites, rc.config.Flags.NameFilter)

	total := 0
	for _, suite := range suites {
		total += len(suite.Fixtures)
	}
	if total == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(total)
	rc.suiteRunner.SetProgress(progressBar)

	verdicts, duration, err := rc.suiteRunner.Run(suites)
	if err != nil {
		return err
	}

	if err := rc.storage.Save(verdicts, duration); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	return rc.formatter.PrintRunStats()
}
