package view

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
)

func filterTasks() []*domain.Task {
	return []*domain.Task{
		{ID: "1", Name: "Planning", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, Resources: "PM"},
		{ID: "1.1", Name: "Vendor review", Status: domain.StatusBlocked, Priority: domain.PriorityMedium, Notes: "Waiting on legal"},
		{ID: "2", Name: "Straße design", Status: domain.StatusInProgress, Priority: domain.PriorityHigh},
		{ID: "2.1", Name: "API", Status: domain.StatusBlocked, Priority: domain.PriorityHigh, Resources: "Backend Team"},
	}
}

func filteredIDs(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilter_StatusBlockedPreservesOrder(t *testing.T) {
	got := Filter(filterTasks(), Criteria{Status: "Blocked"})
	assert.Equal(t, []string{"1.1", "2.1"}, filteredIDs(got))
}

func TestFilter_ZeroAndAllAreNoOps(t *testing.T) {
	tasks := filterTasks()
	assert.Len(t, Filter(tasks, Criteria{}), 4)
	assert.Len(t, Filter(tasks, Criteria{Status: "all", Priority: "ALL"}), 4)
	assert.True(t, Criteria{Status: All}.IsZero())
	assert.False(t, Criteria{Text: "x"}.IsZero())
}

func TestFilter_Text(t *testing.T) {
	tasks := filterTasks()

	tests := []struct {
		text string
		want []string
	}{
		{"LEGAL", []string{"1.1"}},   // notes
		{"backend", []string{"2.1"}}, // resources
		{"2.1", []string{"2.1"}},     // id
		{"STRASSE", []string{"2"}},   // full case folding
		{"  plan ", []string{"1"}},   // trimmed
		{"nothing-matches", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, filteredIDs(Filter(tasks, Criteria{Text: tt.text})))
		})
	}
}

func TestFilter_ComposesWithAnd(t *testing.T) {
	got := Filter(filterTasks(), Criteria{Status: "Blocked", Priority: "High", Text: "api"})
	assert.Equal(t, []string{"2.1"}, filteredIDs(got))

	got = Filter(filterTasks(), Criteria{Status: "Blocked", Priority: "Low"})
	assert.Empty(t, got)
}
