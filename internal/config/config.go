package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness
type Config struct {
	// Project settings
	ProjectPath string
	FixtureRoot string

	// External tools
	VMPath         string
	JavacPath      string
	RuntimeClasses string

	// Marker identifying program print output in the VM stream
	Marker string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	FixtureRoot string
	VMPath      string
	NameFilter  string
	Debug       bool
	Classes     bool
}

// New creates a new Config with defaults and environment overrides applied
func New() *Config {
	// A missing .env file is fine; explicit environment always wins
	_ = godotenv.Load()

	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		FixtureRoot:    DefaultFixtureRoot,
		VMPath:         DefaultVMPath,
		JavacPath:      DefaultJavacPath,
		Marker:         DefaultMarker,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}

	if v := os.Getenv(EnvVMPath); v != "" {
		cfg.VMPath = v
	}
	if v := os.Getenv(EnvJavacPath); v != "" {
		cfg.JavacPath = v
	}
	cfg.RuntimeClasses = os.Getenv(EnvRuntimeClasses)

	return cfg
}

// GetFixtureRoot returns the fixture repository root, using the flag if provided
func (c *Config) GetFixtureRoot() string {
	if c.Flags.FixtureRoot != "" {
		if filepath.IsAbs(c.Flags.FixtureRoot) {
			return c.Flags.FixtureRoot
		}
		return filepath.Join(c.ProjectPath, c.Flags.FixtureRoot)
	}

	return filepath.Join(c.ProjectPath, c.FixtureRoot)
}

// GetVMPath returns the VM binary path, using the flag if provided
func (c *Config) GetVMPath() string {
	if c.Flags.VMPath != "" {
		return c.Flags.VMPath
	}
	return c.VMPath
}

// GetOutputPath returns the full path to the output JSON file (under project so run and faills use the same file).
// Resolves to an absolute path so run and faills always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
