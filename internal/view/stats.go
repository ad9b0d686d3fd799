package view

import (
	"math"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// Stats summarizes a task list.
type Stats struct {
	Total        int
	ByStatus     map[domain.TaskStatus]int
	HighPriority int
	TotalCost    float64
	AvgProgress  int
}

// Completed is a shorthand for ByStatus[StatusCompleted].
func (s Stats) Completed() int { return s.ByStatus[domain.StatusCompleted] }

// Aggregate counts tasks by status and priority and averages progress,
// rounding half away from zero. Every status has an entry, and an empty list
// yields zeros.
func Aggregate(tasks []*domain.Task) Stats {
	s := Stats{ByStatus: make(map[domain.TaskStatus]int, len(domain.TaskStatuses))}
	for _, st := range domain.TaskStatuses {
		s.ByStatus[st] = 0
	}

	var progress int
	for _, t := range tasks {
		s.Total++
		s.ByStatus[t.Status]++
		if t.Priority == domain.PriorityHigh {
			s.HighPriority++
		}
		s.TotalCost += t.Cost
		progress += t.Progress
	}
	if s.Total > 0 {
		s.AvgProgress = int(math.Round(float64(progress) / float64(s.Total)))
	}
	return s
}
