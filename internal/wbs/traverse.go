// Package wbs implements the work breakdown structure tree: traversal,
// structural-sharing mutation and boundary validation.
//
// A tree is a []*domain.Task of root phases. No function in this package
// mutates a node it was given; edits return a new tree in which only the
// path from the root to the edited node is rebuilt.
package wbs

import (
	"fmt"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// Walk visits every node depth-first, parent before children. Roots are at
// depth 0.
func Walk(tree []*domain.Task, visit func(t *domain.Task, depth int)) {
	var walk func(nodes []*domain.Task, depth int)
	walk = func(nodes []*domain.Task, depth int) {
		for _, n := range nodes {
			visit(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(tree, 0)
}

// Flatten returns all nodes in pre-order, ignoring expand/collapse state.
func Flatten(tree []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, 0, len(tree))
	Walk(tree, func(t *domain.Task, _ int) {
		out = append(out, t)
	})
	return out
}

// Count returns the number of nodes in the tree.
func Count(tree []*domain.Task) int {
	n := 0
	Walk(tree, func(*domain.Task, int) { n++ })
	return n
}

// Find returns the first node in pre-order satisfying pred.
func Find(tree []*domain.Task, pred func(*domain.Task) bool) (*domain.Task, error) {
	var found *domain.Task
	var find func(nodes []*domain.Task) bool
	find = func(nodes []*domain.Task) bool {
		for _, n := range nodes {
			if pred(n) {
				found = n
				return true
			}
			if find(n.Children) {
				return true
			}
		}
		return false
	}
	if !find(tree) {
		return nil, ErrNodeNotFound
	}
	return found, nil
}

// FindByID returns the node with the given id.
func FindByID(tree []*domain.Task, id string) (*domain.Task, error) {
	t, err := Find(tree, func(t *domain.Task) bool { return t.ID == id })
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, id)
	}
	return t, nil
}

// Map returns a new tree with transform applied to every node. Children are
// rebuilt first, so transform receives a copy whose Children already hold the
// transformed subtree. Transforms must not modify slices in place.
func Map(tree []*domain.Task, transform func(t domain.Task) domain.Task) []*domain.Task {
	if tree == nil {
		return nil
	}
	out := make([]*domain.Task, len(tree))
	for i, n := range tree {
		c := *n
		c.Children = Map(n.Children, transform)
		mapped := transform(c)
		out[i] = &mapped
	}
	return out
}

// ExpandAll returns the set of every id in the tree, the initial expansion
// state when a project is opened.
func ExpandAll(tree []*domain.Task) map[string]bool {
	expanded := make(map[string]bool)
	Walk(tree, func(t *domain.Task, _ int) {
		expanded[t.ID] = true
	})
	return expanded
}

// Span returns the earliest start and latest end over all nodes. ok is false
// for an empty tree; nodes with unset dates are ignored.
func Span(tree []*domain.Task) (start, end domain.Date, ok bool) {
	Walk(tree, func(t *domain.Task, _ int) {
		if t.StartDate.IsZero() || t.EndDate.IsZero() {
			return
		}
		if !ok {
			start, end, ok = t.StartDate, t.EndDate, true
			return
		}
		start = domain.MinDate(start, t.StartDate)
		end = domain.MaxDate(end, t.EndDate)
	})
	return start, end, ok
}
