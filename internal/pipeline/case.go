// Package pipeline orchestrates the per-case conformance pipeline:
// compile, run VM, filter output, compare against the expectation.
package pipeline

import (
	"time"

	"jth/internal/compiler"
	"jth/internal/discovery"
	"jth/internal/domain"
	"jth/internal/output"
	"jth/internal/vm"
)

// CaseRunner executes the full pipeline for a single fixture
type CaseRunner struct {
	compiler   *compiler.Javac
	vm         *vm.Runner
	filter     *output.Filter
	comparator *output.Comparator
	parser     *discovery.Parser
}

// NewCaseRunner creates a new CaseRunner
func NewCaseRunner(
	javac *compiler.Javac,
	vmRunner *vm.Runner,
	filter *output.Filter,
	comparator *output.Comparator,
	parser *discovery.Parser,
) *CaseRunner {
	return &CaseRunner{
		compiler:   javac,
		vm:         vmRunner,
		filter:     filter,
		comparator: comparator,
		parser:     parser,
	}
}

// Run drives one fixture through compile, VM invocation, filtering and
// comparison. Stages run strictly in order and each consumes the previous
// stage's result; a compile failure abandons the case before any VM
// invocation. Every failure is local to this case.
func (cr *CaseRunner) Run(fixture domain.Fixture) domain.Verdict {
	start := time.Now()
	verdict := domain.Verdict{Fixture: fixture}

	if !fixture.HasExpectation() {
		return cr.finish(verdict, start, domain.StatusSetupFailed, "missing expectation file")
	}

	compiled, err := cr.compiler.Compile(fixture)
	if err != nil {
		return cr.finish(verdict, start, domain.StatusSetupFailed, err.Error())
	}
	verdict.ClassDir = compiled.ClassDir
	if !compiled.Success {
		return cr.finish(verdict, start, domain.StatusCompileFailed, compiled.Output)
	}

	entryClass, err := cr.parser.EntryClass(fixture.Path)
	if err != nil {
		return cr.finish(verdict, start, domain.StatusSetupFailed, err.Error())
	}

	// A crashed VM still produced output worth comparing; abnormal exits are
	// not a separate failure class.
	run := cr.vm.Run(compiled.Classes, entryClass)
	verdict.Raw = run.Output

	verdict.Actual = cr.filter.Apply(run.Output)

	match, expected, err := cr.comparator.Compare(verdict.Actual, fixture.Expected)
	if err != nil {
		return cr.finish(verdict, start, domain.StatusSetupFailed, err.Error())
	}
	verdict.Expected = expected

	if match {
		return cr.finish(verdict, start, domain.StatusPassed, "")
	}
	return cr.finish(verdict, start, domain.StatusFailed, "")
}

func (cr *CaseRunner) finish(v domain.Verdict, start time.Time, status domain.Status, reason string) domain.Verdict {
	v.Status = status
	v.Reason = reason
	v.Duration = time.Since(start)
	return v
}
