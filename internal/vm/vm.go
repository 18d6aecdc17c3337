// Package vm drives the VM binary under test.
package vm

import (
	"context"
	"os/exec"

	"jth/internal/config"
	"jth/internal/domain"
)

// Runner invokes the VM executable for one compiled case
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the VM with every class file, the runtime-class directory when
// configured, and the entry class name last, capturing combined output
// verbatim. The VM's argument contract is positional: all arguments but the
// last are classfile paths. A non-zero exit is recorded in the result but
// does not suppress the captured output; crashes surface downstream as a
// comparison mismatch.
func (r *Runner) Run(classes []string, entryClass string) domain.RunResult {
	args := make([]string, 0, len(classes)+2)
	args = append(args, classes...)
	if r.config.RuntimeClasses != "" {
		args = append(args, r.config.RuntimeClasses)
	}
	args = append(args, entryClass)

	cmd := exec.CommandContext(context.Background(), r.config.GetVMPath(), args...)
	out, err := cmd.CombinedOutput()

	return domain.RunResult{
		Output: string(out),
		Error:  err,
	}
}
