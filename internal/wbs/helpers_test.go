package wbs

import (
	"github.com/alexanderramin/ganttly/internal/domain"
)

func d(s string) domain.Date { return domain.MustParseDate(s) }

func node(id, name string, level int, start, end string, children ...*domain.Task) *domain.Task {
	if children == nil {
		children = []*domain.Task{}
	}
	return &domain.Task{
		ID:           id,
		Name:         name,
		Level:        level,
		StartDate:    d(start),
		EndDate:      d(end),
		Duration:     d(start).DaysUntil(d(end)),
		Status:       domain.StatusNotStarted,
		Priority:     domain.PriorityMedium,
		RiskLevel:    domain.RiskLow,
		Dependencies: []string{},
		Children:     children,
	}
}

// sampleTree is two phases; the first has a nested task under 1.2.
func sampleTree() []*domain.Task {
	return []*domain.Task{
		node("1", "Planning", 1, "2025-01-01", "2025-01-15",
			node("1.1", "Requirements", 2, "2025-01-01", "2025-01-05"),
			node("1.2", "Design", 2, "2025-01-06", "2025-01-15",
				node("1.2.1", "Wireframes", 3, "2025-01-06", "2025-01-10"),
			),
		),
		node("2", "Build", 1, "2025-01-16", "2025-02-10",
			node("2.1", "Backend", 2, "2025-01-16", "2025-02-01"),
			node("2.2", "Frontend", 2, "2025-01-20", "2025-02-10"),
		),
	}
}

func ids(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
