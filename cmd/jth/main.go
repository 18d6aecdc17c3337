package main

import (
	"fmt"
	"os"

	"jth/internal/cli"
	"jth/internal/cli/commands"
	"jth/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "jth",
		Short:   "Java VM conformance test harness",
		Long:    `A conformance test harness for a Java bytecode VM. Compile Java fixtures, run them on the VM under test and byte-compare the marker output against golden expectation files.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
