package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jth/internal/config"
	"jth/internal/domain"
)

// fakeJavac writes a shell stub standing in for javac: it records its argv,
// then either populates the -d directory with class files or exits non-zero.
func fakeJavac(t *testing.T, argsFile string, classes []string, exitCode int) string {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > %q
out="$2"
`, argsFile)
	// Single-quoted so inner-class names like Case$Inner.class survive the shell
	for _, class := range classes {
		script += fmt.Sprintf("mkdir -p \"$out\"/'%s'\ntouch \"$out\"/'%s'\n",
			filepath.Dir(class), class)
	}
	if exitCode != 0 {
		script += fmt.Sprintf("echo 'error: cannot find symbol' >&2\nexit %d\n", exitCode)
	}

	path := filepath.Join(t.TempDir(), "javac")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func recordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestJavac_Compile(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	cfg := config.New()
	cfg.JavacPath = fakeJavac(t, argsFile, []string{"Case.class", "Case$Inner.class"}, 0)

	fixture := domain.Fixture{Suite: "inner-classes", Name: "Case", Path: "/fixtures/Case.java"}

	result, err := NewJavac(cfg).Compile(fixture)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Classes, 2)
	assert.NotEmpty(t, result.ClassDir)

	args := recordedArgs(t, argsFile)
	require.Len(t, args, 3)
	assert.Equal(t, "-d", args[0])
	assert.Equal(t, result.ClassDir, args[1])
	assert.Equal(t, "/fixtures/Case.java", args[2])
}

func TestJavac_Compile_Bundle(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	cfg := config.New()
	cfg.JavacPath = fakeJavac(t, argsFile, []string{"Case.class", "Helper.class"}, 0)

	fixture := domain.Fixture{
		Suite:  "bundles",
		Name:   "Case",
		Path:   "/fixtures/Case.java",
		Bundle: []string{"/fixtures/Case.java.bundle/Aux.java", "/fixtures/Case.java.bundle/Helper.java"},
	}

	result, err := NewJavac(cfg).Compile(fixture)
	require.NoError(t, err)
	assert.True(t, result.Success)

	// One compile call carrying the fixture and every bundle source together
	args := recordedArgs(t, argsFile)
	require.Len(t, args, 5)
	assert.Equal(t, []string{
		"/fixtures/Case.java",
		"/fixtures/Case.java.bundle/Aux.java",
		"/fixtures/Case.java.bundle/Helper.java",
	}, args[2:])
}

func TestJavac_Compile_Failure(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	cfg := config.New()
	cfg.JavacPath = fakeJavac(t, argsFile, nil, 1)

	result, err := NewJavac(cfg).Compile(domain.Fixture{Name: "Broken", Path: "/fixtures/Broken.java"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Output, "cannot find symbol")
	assert.Empty(t, result.Classes)
}

func TestJavac_Compile_MissingCompiler(t *testing.T) {
	cfg := config.New()
	cfg.JavacPath = "/no/such/javac"

	_, err := NewJavac(cfg).Compile(domain.Fixture{Name: "Case", Path: "/fixtures/Case.java"})
	assert.Error(t, err)
}
