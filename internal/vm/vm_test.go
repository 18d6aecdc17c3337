package vm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jth/internal/config"
)

// fakeVM writes a shell stub standing in for the VM binary: it records its
// argv, prints the given output and exits with the given code.
func fakeVM(t *testing.T, argsFile, stdout string, exitCode int) string {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > %q
printf '%%b' %q
exit %d
`, argsFile, stdout, exitCode)

	path := filepath.Join(t.TempDir(), "vm")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestRunner_Run(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	cfg := config.New()
	cfg.VMPath = fakeVM(t, argsFile, "INFO: Starting VM...\nOUT: 5\nDEBUG: Reached end of method\n", 0)
	cfg.RuntimeClasses = ""

	classes := []string{"/tmp/classes/Case.class", "/tmp/classes/Case$Inner.class"}
	result := NewRunner(cfg).Run(classes, "Case")

	require.NoError(t, result.Error)
	assert.Contains(t, result.Output, "OUT: 5")

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	// Positional contract: every class file first, entry class last
	assert.Equal(t, append(classes, "Case"), args)
}

func TestRunner_Run_RuntimeClasses(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	cfg := config.New()
	cfg.VMPath = fakeVM(t, argsFile, "", 0)
	cfg.RuntimeClasses = "/rt/classes"

	NewRunner(cfg).Run([]string{"/tmp/classes/Case.class"}, "Case")

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	// Runtime class directory rides between the class files and the entry class
	assert.Equal(t, []string{"/tmp/classes/Case.class", "/rt/classes", "Case"}, args)
}

func TestRunner_Run_AbnormalExit(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	cfg := config.New()
	cfg.VMPath = fakeVM(t, argsFile, "OUT: 1\npanic: unresolved class\n", 3)
	cfg.RuntimeClasses = ""

	result := NewRunner(cfg).Run([]string{"/tmp/classes/Case.class"}, "Case")

	// Crash output is still captured for comparison and diagnostics
	assert.Error(t, result.Error)
	assert.Contains(t, result.Output, "OUT: 1")
	assert.Contains(t, result.Output, "panic: unresolved class")
}
