package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func printf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}

func writeOut(cmd *cobra.Command, s string) {
	w := cmd.OutOrStdout()
	io.WriteString(w, s)
	if !strings.HasSuffix(s, "\n") {
		io.WriteString(w, "\n")
	}
}

// expandAll returns an expansion set opening every summary node.
func expandAll(tree []*domain.Task) map[string]bool {
	out := map[string]bool{}
	wbs.Walk(tree, func(t *domain.Task, _ int) {
		if t.HasChildren() {
			out[t.ID] = true
		}
	})
	return out
}

// expandSet parses a comma-separated id list.
func expandSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out[id] = true
		}
	}
	return out
}

func ganttlyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative number.
func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}

// applyFormNumbers copies the form's duration and cost text onto d. Empty
// text leaves the draft value alone.
func applyFormNumbers(d *wbs.DraftTask, durText, costText string) error {
	if err := validateNonNegativeInt(durText); err != nil {
		return fmt.Errorf("duration %q: %w", durText, err)
	}
	if err := validateNonNegativeFloat(costText); err != nil {
		return fmt.Errorf("cost %q: %w", costText, err)
	}
	if durText != "" {
		n, err := strconv.Atoi(durText)
		if err != nil {
			return fmt.Errorf("duration: %w", err)
		}
		d.Duration = n
	}
	if costText != "" {
		v, err := strconv.ParseFloat(costText, 64)
		if err != nil {
			return fmt.Errorf("cost: %w", err)
		}
		d.Cost = v
	}
	return nil
}

func requiredText(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// draftForm collects the fields of a new task. Numeric answers land in the
// string pointers and are parsed by the caller.
func draftForm(d *wbs.DraftTask, duration, cost *string) *huh.Form {
	statusOpts := make([]huh.Option[domain.TaskStatus], 0, len(domain.TaskStatuses))
	for _, s := range domain.TaskStatuses {
		statusOpts = append(statusOpts, huh.NewOption(string(s), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task name").Value(&d.Name).Validate(requiredText("Task name")),
			huh.NewInput().Title("Duration (days)").Placeholder(strconv.Itoa(wbs.DefaultDraftDuration)).
				Value(duration).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Resources").Placeholder("Team Member").Value(&d.Resources),
			huh.NewInput().Title("Cost").Placeholder("0").Value(cost).Validate(validateNonNegativeFloat),
		),
		huh.NewGroup(
			huh.NewSelect[domain.TaskStatus]().Title("Status").Options(statusOpts...).Value(&d.Status),
			huh.NewSelect[domain.Priority]().Title("Priority").Options(
				huh.NewOption("High", domain.PriorityHigh),
				huh.NewOption("Medium", domain.PriorityMedium),
				huh.NewOption("Low", domain.PriorityLow),
			).Value(&d.Priority),
			huh.NewSelect[domain.RiskLevel]().Title("Risk").Options(
				huh.NewOption("High", domain.RiskHigh),
				huh.NewOption("Medium", domain.RiskMedium),
				huh.NewOption("Low", domain.RiskLow),
			).Value(&d.RiskLevel),
			huh.NewText().Title("Notes").Value(&d.Notes),
		),
	).WithTheme(ganttlyHuhTheme()).WithShowHelp(false)
}
