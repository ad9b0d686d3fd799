package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/view"
)

// FormatStats renders task counts by status, then totals.
func FormatStats(s view.Stats) string {
	var b strings.Builder
	b.WriteString(Header("Summary") + "\n")
	b.WriteString(fmt.Sprintf("%-16s %d\n", "Tasks", s.Total))
	for _, st := range domain.TaskStatuses {
		n := s.ByStatus[st]
		label := fmt.Sprintf("%-16s", string(st))
		if n == 0 {
			b.WriteString(Dim(fmt.Sprintf("%s %d", label, n)) + "\n")
			continue
		}
		b.WriteString(StatusStyle(st).Render(label) + fmt.Sprintf(" %d\n", n))
	}
	b.WriteString(fmt.Sprintf("%-16s %d\n", "High priority", s.HighPriority))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Total cost", Money(s.TotalCost)))
	b.WriteString(fmt.Sprintf("%-16s %s\n", "Avg progress", RenderProgress(s.AvgProgress, 20)))
	return b.String()
}
