package commands

import (
	"jth/internal/cli"
	"jth/internal/compiler"
	"jth/internal/config"
	"jth/internal/discovery"
	"jth/internal/output"
	"jth/internal/pipeline"
	"jth/internal/storage"
	"jth/internal/ui"
	"jth/internal/vm"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Faills *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	parser := discovery.NewParser()
	javac := compiler.NewJavac(cfg)
	vmRunner := vm.NewRunner(cfg)
	outputFilter := output.NewFilter(cfg.Marker)
	comparator := output.NewComparator()
	formatter := ui.NewFormatter(cfg, parser)
	caseRunner := pipeline.NewCaseRunner(javac, vmRunner, outputFilter, comparator, parser)
	suiteRunner := pipeline.NewSuiteRunner(cfg, caseRunner, formatter)
	jsonStorage := storage.NewJSONStorage(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:    NewRunCommand(cfg, scanner, filter, caseRunner, suiteRunner, jsonStorage, formatter),
		List:   NewListCommand(cfg, scanner, filter, formatter),
		Faills: NewFaillsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run [suite case]",
		Short: "Run conformance cases against the VM",
		Long:  "Compile fixtures, execute the VM and compare marker output against golden expectations. With no arguments the whole fixture repository runs; with a suite and case name only that case runs.",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g., '*InnerClass' or '*Static*')")
	runCmd.Flags().StringVarP(&flags.FixtureRoot, "fixture-root", "t", "", "Path to the fixture repository root")
	runCmd.Flags().StringVar(&flags.VMPath, "vm", "", "Path to the VM binary under test")
	runCmd.Flags().BoolVarP(&flags.Debug, "debug", "d", false, "Dump raw VM output for passing cases too")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered suites and cases",
		Long:  "Scan the fixture repository and print the suite/case tree without executing anything",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g., '*InnerClass' or '*Static*')")
	listCmd.Flags().StringVarP(&flags.FixtureRoot, "fixture-root", "t", "", "Path to the fixture repository root")
	listCmd.Flags().BoolVarP(&flags.Classes, "classes", "c", false, "List declared classes and bundle sources per case")
	rootCmd.AddCommand(listCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View case failures interactively",
		Long:  "Display case failures from the last run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)
}
