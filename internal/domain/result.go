package domain

import "time"

// Status is the terminal state of one case's pipeline run
type Status string

const (
	StatusPassed        Status = "passed"
	StatusFailed        Status = "failed"
	StatusCompileFailed Status = "compile_failed"
	StatusSetupFailed   Status = "setup_failed"
)

// CompileResult represents the outcome of one javac invocation
type CompileResult struct {
	ClassDir string   // Scratch directory the class files were written to
	Classes  []string // Paths of every produced .class file
	Output   string   // Raw compiler output
	Success  bool     // Whether the compiler exited zero
}

// RunResult represents the outcome of one VM invocation
type RunResult struct {
	Output string // Combined stdout/stderr, captured verbatim
	Error  error  // Non-nil on abnormal VM exit; output is still compared
}

// Verdict is the result of one fixture's full pipeline run
type Verdict struct {
	Fixture  Fixture
	Status   Status
	Reason   string        // Setup or compile failure detail
	ClassDir string        // Scratch directory holding the compiled classes
	Raw      string        // Full VM output, unfiltered
	Expected []string      // Lines of the expectation file
	Actual   []string      // Marker lines filtered from the VM output
	Duration time.Duration // Time taken by the whole pipeline
}

// Passed reports whether the case passed
func (v Verdict) Passed() bool {
	return v.Status == StatusPassed
}

// RunMeta contains metadata about a harness run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	CompileFailures int     `json:"compile_failures"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete stored output structure for a harness run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}
