package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"jth/internal/config"
	"jth/internal/domain"
	"jth/internal/storage"
)

// ErrorViewer displays case failures in an interactive TUI
type ErrorViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(cfg *config.Config, st storage.Storage) *ErrorViewer {
	return &ErrorViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the stored case failures in an interactive TUI
func (ev *ErrorViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No case failures found!")
		return nil
	}

	// Track resolved cases (by index) - load from JSON
	resolved := make(map[int]bool)
	for i, failure := range results.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolvedStatus := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}

		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		outputPath := ev.config.GetOutputPath()
		return os.WriteFile(outputPath, jsonData, 0644)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		failure := results.Details[index]
		caseName := failure.Suite + "/" + failure.Case
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, caseName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, caseName)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range results.Details {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := countUnresolved()
		headerText := fmt.Sprintf(" Case Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(results.Details), unresolved)
		headerView.SetText(headerText)
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			failure := results.Details[index]
			statsView.SetText(ev.formatFailureStats(failure))
			detailsView.SetText(ev.formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a case failure for display using tview color tags ([red], [cyan], etc.)
func (ev *ErrorViewer) formatFailureDetails(failure domain.CaseFailure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Case: %s/%s[white]\n\n", failure.Suite, failure.Case)
	fmt.Fprintf(&builder, "[cyan]Fixture: %s[white]\n", failure.FilePath)
	if failure.ClassDir != "" {
		fmt.Fprintf(&builder, "[cyan]Classes: %s[white]\n", failure.ClassDir)
	}
	builder.WriteString("\n")

	if failure.Reason != "" {
		fmt.Fprintf(&builder, "[yellow]Reason:[white]\n%s\n\n", failure.Reason)
	}

	if len(failure.Expected) > 0 || len(failure.Actual) > 0 {
		builder.WriteString("[yellow]Expected:[white]\n")
		for _, line := range failure.Expected {
			fmt.Fprintf(&builder, "  %s\n", line)
		}
		builder.WriteString("\n[yellow]Actual:[white]\n")
		for _, line := range failure.Actual {
			fmt.Fprintf(&builder, "  %s\n", line)
		}
		builder.WriteString("\n")
	}

	if failure.RawOutput != "" {
		lines := strings.Split(strings.TrimSuffix(failure.RawOutput, "\n"), "\n")
		builder.WriteString("[yellow]Raw VM Output:[white]\n")
		for i, line := range lines {
			if i < 40 {
				fmt.Fprintf(&builder, "  %s\n", line)
			}
		}
		if len(lines) > 40 {
			fmt.Fprintf(&builder, "  [gray]... and %d more lines[white]\n", len(lines)-40)
		}
	}

	return builder.String()
}

// formatFailureStats formats the stats header for a case failure
func (ev *ErrorViewer) formatFailureStats(failure domain.CaseFailure) string {
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]::[yellow]%s[white] [cyan]status:[white] [red]%s[white]\n",
		failure.Suite, failure.Case, failure.Status)
}
