package wbs

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/google/uuid"
)

// newKey generates surrogate keys. Replaced in tests.
var newKey = uuid.NewString

// UpdateField returns a tree in which the node with the given id has field
// set to value. Ancestors of the node are new objects; every other node is
// shared with the input. On error the input tree is returned unchanged.
func UpdateField(tree []*domain.Task, id string, field Field, value any) ([]*domain.Task, error) {
	return replace(tree, id, func(n *domain.Task) (*domain.Task, error) {
		c := n.Clone()
		if err := setField(c, field, value); err != nil {
			return nil, fmt.Errorf("updating %s of %q: %w", field, id, err)
		}
		return c, nil
	})
}

// Update is the typed form of UpdateField: fn receives a copy of the node and
// returns its replacement. Children of the returned value are kept as given.
func Update(tree []*domain.Task, id string, fn func(t domain.Task) domain.Task) ([]*domain.Task, error) {
	return replace(tree, id, func(n *domain.Task) (*domain.Task, error) {
		updated := fn(*n)
		return &updated, nil
	})
}

// InsertChild appends n under parentID, or as a new root phase when parentID
// is empty. The id is derived from the live sibling count at call time
// (parentID + "." + (children+1), or rootCount+1). After a delete that id can
// still belong to a live sibling; the insert is then refused with
// ErrDuplicateID and the input tree is returned. Level is set from the parent
// and a surrogate Key is assigned when n has none. The inserted node is
// returned.
func InsertChild(tree []*domain.Task, parentID string, n domain.Task) ([]*domain.Task, *domain.Task, error) {
	if n.Key == "" {
		n.Key = newKey()
	}
	if n.Children == nil {
		n.Children = []*domain.Task{}
	}

	if parentID == "" {
		n.ID = strconv.Itoa(len(tree) + 1)
		n.Level = 1
		if err := checkFree(tree, n.ID); err != nil {
			return tree, nil, err
		}
		out := make([]*domain.Task, len(tree), len(tree)+1)
		copy(out, tree)
		return append(out, &n), &n, nil
	}

	var inserted *domain.Task
	out, err := replace(tree, parentID, func(p *domain.Task) (*domain.Task, error) {
		n.ID = fmt.Sprintf("%s.%d", p.ID, len(p.Children)+1)
		n.Level = p.Level + 1
		if err := checkFree(tree, n.ID); err != nil {
			return nil, err
		}
		inserted = &n

		c := p.Clone()
		c.Children = make([]*domain.Task, len(p.Children), len(p.Children)+1)
		copy(c.Children, p.Children)
		c.Children = append(c.Children, inserted)
		return c, nil
	})
	if err != nil {
		return tree, nil, err
	}
	return out, inserted, nil
}

func checkFree(tree []*domain.Task, id string) error {
	if _, err := FindByID(tree, id); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	return nil
}

// DeleteNode removes the node and its subtree. Remaining siblings keep their
// ids; gaps are permitted.
func DeleteNode(tree []*domain.Task, id string) ([]*domain.Task, error) {
	out, ok := remove(tree, id)
	if !ok {
		return tree, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return out, nil
}

// BulkTransform applies transform to every node matching pred at any depth.
// Subtrees containing no match are shared with the input.
func BulkTransform(tree []*domain.Task, pred func(t *domain.Task) bool, transform func(t domain.Task) domain.Task) []*domain.Task {
	out, _ := bulk(tree, pred, transform)
	return out
}

// MarkAllComplete sets every node to Completed with 100% progress.
func MarkAllComplete(tree []*domain.Task) []*domain.Task {
	return BulkTransform(tree, all, func(t domain.Task) domain.Task {
		t.Status = domain.StatusCompleted
		t.Progress = 100
		return t
	})
}

// ResetAllProgress sets every node back to Not Started with 0% progress.
func ResetAllProgress(tree []*domain.Task) []*domain.Task {
	return BulkTransform(tree, all, func(t domain.Task) domain.Task {
		t.Status = domain.StatusNotStarted
		t.Progress = 0
		return t
	})
}

// AssignKeys gives every node without a surrogate key a fresh one.
func AssignKeys(tree []*domain.Task) []*domain.Task {
	return BulkTransform(tree,
		func(t *domain.Task) bool { return t.Key == "" },
		func(t domain.Task) domain.Task {
			t.Key = newKey()
			return t
		})
}

func all(*domain.Task) bool { return true }

// replace rebuilds the spine down to the first node (pre-order) with the given
// id and swaps it for fn's result.
func replace(tree []*domain.Task, id string, fn func(*domain.Task) (*domain.Task, error)) ([]*domain.Task, error) {
	out, ok, err := replaceIn(tree, id, fn)
	if err != nil {
		return tree, err
	}
	if !ok {
		return tree, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return out, nil
}

func replaceIn(nodes []*domain.Task, id string, fn func(*domain.Task) (*domain.Task, error)) ([]*domain.Task, bool, error) {
	for i, n := range nodes {
		var next *domain.Task
		if n.ID == id {
			r, err := fn(n)
			if err != nil {
				return nil, false, err
			}
			next = r
		} else {
			children, ok, err := replaceIn(n.Children, id, fn)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			next = n.Clone()
			next.Children = children
		}
		out := make([]*domain.Task, len(nodes))
		copy(out, nodes)
		out[i] = next
		return out, true, nil
	}
	return nodes, false, nil
}

func remove(nodes []*domain.Task, id string) ([]*domain.Task, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make([]*domain.Task, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			return append(out, nodes[i+1:]...), true
		}
		if children, ok := remove(n.Children, id); ok {
			c := n.Clone()
			c.Children = children
			out := make([]*domain.Task, len(nodes))
			copy(out, nodes)
			out[i] = c
			return out, true
		}
	}
	return nodes, false
}

func bulk(nodes []*domain.Task, pred func(*domain.Task) bool, transform func(domain.Task) domain.Task) ([]*domain.Task, bool) {
	var out []*domain.Task
	for i, n := range nodes {
		children, childChanged := bulk(n.Children, pred, transform)
		matched := pred(n)
		if !childChanged && !matched {
			if out != nil {
				out[i] = n
			}
			continue
		}
		if out == nil {
			out = make([]*domain.Task, len(nodes))
			copy(out, nodes[:i])
		}
		c := *n
		c.Children = children
		if matched {
			c = transform(c)
		}
		out[i] = &c
	}
	if out == nil {
		return nodes, false
	}
	return out, true
}
