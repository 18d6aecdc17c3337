// Package compiler drives the external Java compiler.
package compiler

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"jth/internal/config"
	"jth/internal/domain"
)

// Javac compiles a fixture (and its bundle) into a fresh scratch directory
type Javac struct {
	config *config.Config
}

// NewJavac creates a new Javac adapter
func NewJavac(cfg *config.Config) *Javac {
	return &Javac{config: cfg}
}

// Compile invokes the compiler once for the fixture plus every bundle source,
// targeting a scratch directory created fresh for this case. Bundle sources go
// into the same invocation: they may reference the fixture's types and vice
// versa. The returned error covers harness setup problems only; a compiler
// failure comes back as an unsuccessful CompileResult.
func (j *Javac) Compile(fixture domain.Fixture) (domain.CompileResult, error) {
	scratch, err := os.MkdirTemp("", "jth-classes-*")
	if err != nil {
		return domain.CompileResult{}, fmt.Errorf("create scratch dir: %w", err)
	}

	args := []string{"-d", scratch, fixture.Path}
	args = append(args, fixture.Bundle...)

	cmd := exec.CommandContext(context.Background(), j.config.JavacPath, args...)
	out, err := cmd.CombinedOutput()

	result := domain.CompileResult{
		ClassDir: scratch,
		Output:   string(out),
		Success:  err == nil,
	}
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			// Compiler could not be started at all
			return domain.CompileResult{}, fmt.Errorf("run %s: %w", j.config.JavacPath, err)
		}
		return result, nil
	}

	result.Classes, err = classFiles(scratch)
	if err != nil {
		return domain.CompileResult{}, err
	}
	return result, nil
}

// classFiles collects every .class file under the scratch directory. Inner
// classes and packages produce additional files, all of which the VM needs.
func classFiles(dir string) ([]string, error) {
	var classes []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".class") {
			classes = append(classes, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect class files in %s: %w", dir, err)
	}
	return classes, nil
}
