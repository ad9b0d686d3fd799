// Package formatter renders projects, task views and Gantt charts for the
// terminal with lipgloss styles.
package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle colors a task status.
func StatusStyle(s domain.TaskStatus) lipgloss.Style {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleYellow
	case domain.StatusBlocked:
		return StyleRed
	case domain.StatusOnHold:
		return StylePurple
	default:
		return StyleBlue
	}
}

// StatusPill returns a status label with a leading glyph.
func StatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ " + string(s))
	case domain.StatusInProgress:
		return StyleYellow.Render("● " + string(s))
	case domain.StatusBlocked:
		return StyleRed.Render("✖ " + string(s))
	case domain.StatusOnHold:
		return StylePurple.Render("‖ " + string(s))
	case "":
		return Dim("--")
	default:
		return StyleBlue.Render("○ " + string(s))
	}
}

// PriorityBadge marks high priority loudly and everything else quietly.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ " + string(p))
	case domain.PriorityLow:
		return Dim("▽ " + string(p))
	case "":
		return Dim("--")
	default:
		return StyleFg.Render("◆ " + string(p))
	}
}

// RiskColor returns the style for a risk level.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskHigh:
		return StyleRed
	case domain.RiskMedium:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
