// Package view projects a task tree into what a table, tree or chart shows:
// numbered visible rows, filtered task lists and summary statistics. Expansion
// and filter state are passed in by the caller.
package view

import (
	"github.com/alexanderramin/ganttly/internal/domain"
)

// Row is one visible line of a tree view.
type Row struct {
	Task        *domain.Task
	LineNumber  int // 1-based
	Depth       int
	Expanded    bool
	HasChildren bool
}

// FlattenWithLineNumbers walks tree in pre-order, descending only into nodes
// whose id is in expanded. Hidden descendants do not consume line numbers.
// A nil expanded set collapses everything to the root phases.
func FlattenWithLineNumbers(tree []*domain.Task, expanded map[string]bool) []Row {
	rows := make([]Row, 0, len(tree))
	var visit func(nodes []*domain.Task, depth int)
	visit = func(nodes []*domain.Task, depth int) {
		for _, n := range nodes {
			open := expanded[n.ID]
			rows = append(rows, Row{
				Task:        n,
				LineNumber:  len(rows) + 1,
				Depth:       depth,
				Expanded:    open,
				HasChildren: n.HasChildren(),
			})
			if open {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(tree, 0)
	return rows
}

// Tasks returns the task of every row.
func Tasks(rows []Row) []*domain.Task {
	out := make([]*domain.Task, len(rows))
	for i, r := range rows {
		out[i] = r.Task
	}
	return out
}

// Toggle returns a copy of expanded with id flipped.
func Toggle(expanded map[string]bool, id string) map[string]bool {
	out := make(map[string]bool, len(expanded)+1)
	for k, v := range expanded {
		if v {
			out[k] = true
		}
	}
	if out[id] {
		delete(out, id)
	} else {
		out[id] = true
	}
	return out
}
