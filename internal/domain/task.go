package domain

import "strings"

// Task is one phase or task in a work breakdown structure. Phases are simply
// tasks at level 1; anything with children is rendered as a summary row.
//
// Tasks handed to the wbs package are treated as immutable: every edit
// produces a new *Task and untouched subtrees are shared by pointer.
type Task struct {
	ID           string     `json:"id"`
	Key          string     `json:"key,omitempty"` // stable surrogate identity, never displayed
	Name         string     `json:"name"`
	Level        int        `json:"level"`
	StartDate    Date       `json:"startDate"`
	EndDate      Date       `json:"endDate"`
	Duration     int        `json:"duration"`
	Progress     int        `json:"progress"`
	Status       TaskStatus `json:"status"`
	Priority     Priority   `json:"priority"`
	RiskLevel    RiskLevel  `json:"riskLevel"`
	Resources    string     `json:"resources"`
	Cost         float64    `json:"cost"`
	Dependencies []string   `json:"dependencies"`
	Notes        string     `json:"notes"`
	Children     []*Task    `json:"children"`
}

// HasChildren reports whether the task is a summary node.
func (t *Task) HasChildren() bool {
	return len(t.Children) > 0
}

// IDDepth returns the number of dot-separated segments in the id, which must
// equal Level for a well-formed node.
func (t *Task) IDDepth() int {
	if t.ID == "" {
		return 0
	}
	return strings.Count(t.ID, ".") + 1
}

// ParentID returns the id of the node's parent derived from its code, or ""
// for a root phase.
func (t *Task) ParentID() string {
	i := strings.LastIndexByte(t.ID, '.')
	if i < 0 {
		return ""
	}
	return t.ID[:i]
}

// Clone returns a shallow copy: scalar fields are copied, the children slice
// is shared until the caller replaces it.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// SpanDays returns EndDate - StartDate in days.
func (t *Task) SpanDays() int {
	return t.StartDate.DaysUntil(t.EndDate)
}
