package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// FormatTaskTable renders a flat list of tasks, as returned by a filter.
func FormatTaskTable(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No matching tasks.") + "\n"
	}
	headers := []string{"ID", "NAME", "START", "END", "DAYS", "PROGRESS", "STATUS", "PRIORITY", "COST"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		name := t.Name
		if t.HasChildren() {
			name = Bold(name)
		}
		rows = append(rows, []string{
			t.ID,
			name,
			t.StartDate.String(),
			t.EndDate.String(),
			strconv.Itoa(t.Duration),
			RenderProgress(t.Progress, 10),
			StatusPill(t.Status),
			PriorityBadge(t.Priority),
			Money(t.Cost),
		})
	}
	return RenderTableAligned(headers, rows, map[int]bool{4: true, 8: true})
}

// FormatTaskDetail renders every field of one task.
func FormatTaskDetail(t *domain.Task) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-13s %s\n", Dim(label+":"), value))
	}
	line("ID", t.ID)
	line("Dates", fmt.Sprintf("%s → %s (%d days)", t.StartDate, t.EndDate, t.Duration))
	line("Progress", RenderProgress(t.Progress, 20))
	line("Status", StatusPill(t.Status))
	line("Priority", PriorityBadge(t.Priority))
	line("Risk", RiskColor(t.RiskLevel).Render(string(t.RiskLevel)))
	line("Cost", Money(t.Cost))
	if t.Resources != "" {
		line("Resources", t.Resources)
	}
	if len(t.Dependencies) > 0 {
		line("Depends on", strings.Join(t.Dependencies, ", "))
	}
	if t.Notes != "" {
		line("Notes", t.Notes)
	}
	if n := len(t.Children); n > 0 {
		line("Children", strconv.Itoa(n))
	}
	return RenderBox(t.Name, strings.TrimRight(b.String(), "\n"))
}
