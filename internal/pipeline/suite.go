package pipeline

import (
	"time"

	"jth/internal/config"
	"jth/internal/domain"
	"jth/internal/ui"
)

// SuiteRunner drives the CaseRunner over every discovered suite, one case at
// a time. Execution is strictly sequential; cases share no state, so a
// failing case never affects the ones after it.
type SuiteRunner struct {
	config    *config.Config
	cases     *CaseRunner
	formatter *ui.Formatter
	progress  *ui.ProgressBar
}

// NewSuiteRunner creates a new SuiteRunner
func NewSuiteRunner(cfg *config.Config, cases *CaseRunner, formatter *ui.Formatter) *SuiteRunner {
	return &SuiteRunner{
		config:    cfg,
		cases:     cases,
		formatter: formatter,
	}
}

// SetProgress sets the progress bar for the suite runner
func (sr *SuiteRunner) SetProgress(progress *ui.ProgressBar) {
	sr.progress = progress
}

// Run executes every fixture of every suite, rendering each verdict as soon
// as the case finishes, and returns all verdicts in execution order.
func (sr *SuiteRunner) Run(suites []domain.Suite) ([]domain.Verdict, time.Duration, error) {
	startTime := time.Now()

	var verdicts []domain.Verdict
	var passed, failed int
	for _, suite := range suites {
		sr.formatter.PrintSuiteHeader(suite.Name)
		for _, fixture := range suite.Fixtures {
			verdict := sr.cases.Run(fixture)
			verdicts = append(verdicts, verdict)
			sr.formatter.PrintVerdict(verdict, sr.config.Flags.Debug)

			if verdict.Passed() {
				passed++
			} else {
				failed++
			}
			if sr.progress != nil {
				sr.progress.Update(passed+failed, passed, failed)
			}
		}
	}
	if sr.progress != nil {
		sr.progress.Finish()
	}

	return verdicts, time.Since(startTime), nil
}
