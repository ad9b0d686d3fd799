package view

import (
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
	"golang.org/x/text/cases"
)

// All is the criteria value that disables a status or priority filter.
const All = "all"

// Criteria selects tasks. Empty fields, and All for Status and Priority,
// match everything. Conditions are combined with AND.
type Criteria struct {
	Text     string
	Status   string
	Priority string
}

// IsZero reports whether c matches every task.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Text) == "" && isAll(c.Status) && isAll(c.Priority)
}

// Filter returns the tasks matching c in their original order. Text is a
// case-insensitive substring match over name, id, resources and notes.
func Filter(tasks []*domain.Task, c Criteria) []*domain.Task {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(c.Text))

	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !isAll(c.Status) && string(t.Status) != c.Status {
			continue
		}
		if !isAll(c.Priority) && string(t.Priority) != c.Priority {
			continue
		}
		if needle != "" && !containsFolded(fold, needle, t.Name, t.ID, t.Resources, t.Notes) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func containsFolded(fold cases.Caser, needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

func isAll(s string) bool {
	return s == "" || strings.EqualFold(s, All)
}
