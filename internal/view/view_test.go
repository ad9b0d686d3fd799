package view

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tk(id, name string, children ...*domain.Task) *domain.Task {
	return &domain.Task{ID: id, Name: name, Children: children}
}

func tree() []*domain.Task {
	return []*domain.Task{
		tk("1", "Planning", tk("1.1", "Scope"), tk("1.2", "Design", tk("1.2.1", "Mockups"))),
		tk("2", "Build", tk("2.1", "API")),
	}
}

func rowIDs(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Task.ID
	}
	return out
}

func TestFlattenWithLineNumbers_AllExpanded(t *testing.T) {
	expanded := map[string]bool{"1": true, "1.2": true, "2": true}
	rows := FlattenWithLineNumbers(tree(), expanded)

	assert.Equal(t, []string{"1", "1.1", "1.2", "1.2.1", "2", "2.1"}, rowIDs(rows))
	for i, r := range rows {
		assert.Equal(t, i+1, r.LineNumber)
	}
	assert.Equal(t, 2, rows[3].Depth)
	assert.True(t, rows[0].HasChildren)
	assert.True(t, rows[0].Expanded)
	assert.False(t, rows[1].HasChildren)
}

func TestFlattenWithLineNumbers_CollapsedSubtreeSkipsNumbers(t *testing.T) {
	rows := FlattenWithLineNumbers(tree(), map[string]bool{"2": true})

	require.Equal(t, []string{"1", "2", "2.1"}, rowIDs(rows))
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].LineNumber, rows[1].LineNumber, rows[2].LineNumber})
	assert.False(t, rows[0].Expanded)
	assert.True(t, rows[0].HasChildren)
}

func TestFlattenWithLineNumbers_NilSetShowsRoots(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, rowIDs(FlattenWithLineNumbers(tree(), nil)))
	assert.Empty(t, FlattenWithLineNumbers(nil, nil))
}

func TestToggle(t *testing.T) {
	in := map[string]bool{"1": true}

	out := Toggle(in, "2")
	assert.Equal(t, map[string]bool{"1": true, "2": true}, out)
	assert.Equal(t, map[string]bool{"1": true}, in, "input must not change")

	assert.Empty(t, Toggle(in, "1"))
}
