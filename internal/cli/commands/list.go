package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"jth/internal/config"
	"jth/internal/discovery"
	"jth/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := lc.scanner.Scan(lc.config.GetFixtureRoot())
	if err != nil {
		return err
	}

	suites = lc.filter.FilterSuites(suites, lc.config.Flags.NameFilter)

	if len(suites) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	return lc.formatter.PrintFixtureList(suites, lc.config.Flags.Classes)
}
