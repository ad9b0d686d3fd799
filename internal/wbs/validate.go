package wbs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// ValidateTree checks the structural invariants of a tree before it is handed
// to the mutation engine. It returns every violation found; each one wraps
// ErrMalformedTree.
func ValidateTree(tree []*domain.Task) []error {
	var errs []error
	seen := make(map[string]string)

	var visit func(nodes []*domain.Task, prefix string, depth int)
	visit = func(nodes []*domain.Task, prefix string, depth int) {
		for i, n := range nodes {
			path := fmt.Sprintf("%s[%d]", prefix, i)
			if n == nil {
				errs = append(errs, malformed("%s: null node", path))
				continue
			}
			errs = append(errs, validateNode(n, path, depth, seen)...)
			visit(n.Children, path+".children", depth+1)
		}
	}
	visit(tree, "wbs", 0)
	return errs
}

// Validate joins ValidateTree's findings into one error, or returns nil.
func Validate(tree []*domain.Task) error {
	errs := ValidateTree(tree)
	if len(errs) == 0 {
		return nil
	}
	msg := fmt.Sprintf("%d errors:", len(errs))
	for _, e := range errs {
		msg += "\n  - " + strings.TrimPrefix(e.Error(), ErrMalformedTree.Error()+": ")
	}
	return fmt.Errorf("%w: %s", ErrMalformedTree, msg)
}

func validateNode(n *domain.Task, path string, depth int, seen map[string]string) []error {
	var errs []error

	if n.ID == "" {
		errs = append(errs, malformed("%s.id is required", path))
	} else if prev, dup := seen[n.ID]; dup {
		errs = append(errs, malformed("%s.id: duplicate id %q (first seen at %s)", path, n.ID, prev))
	} else {
		seen[n.ID] = path
	}

	if strings.TrimSpace(n.Name) == "" {
		errs = append(errs, malformed("%s.name is required", path))
	}

	if n.Level < 1 {
		errs = append(errs, malformed("%s.level must be >= 1, got %d", path, n.Level))
	} else {
		if n.Level != depth+1 {
			errs = append(errs, malformed("%s.level %d does not match nesting depth %d", path, n.Level, depth+1))
		}
		if n.ID != "" && n.Level != n.IDDepth() {
			errs = append(errs, malformed("%s.level %d does not match id %q", path, n.Level, n.ID))
		}
	}

	switch {
	case n.StartDate.IsZero():
		errs = append(errs, malformed("%s.startDate is required", path))
	case n.EndDate.IsZero():
		errs = append(errs, malformed("%s.endDate is required", path))
	case n.StartDate.After(n.EndDate):
		errs = append(errs, malformed("%s: startDate %s is after endDate %s", path, n.StartDate, n.EndDate))
	}

	if n.Progress < 0 || n.Progress > 100 {
		errs = append(errs, malformed("%s.progress must be 0-100, got %d", path, n.Progress))
	}
	if !finite(n.Cost) {
		errs = append(errs, malformed("%s.cost must be a finite number, got %g", path, n.Cost))
	} else if n.Cost < 0 {
		errs = append(errs, malformed("%s.cost must be >= 0, got %g", path, n.Cost))
	}
	if n.Duration < 0 {
		errs = append(errs, malformed("%s.duration must be >= 0, got %d", path, n.Duration))
	}
	if n.Status != "" && !n.Status.Valid() {
		errs = append(errs, malformed("%s.status: invalid value %q", path, n.Status))
	}
	if n.Priority != "" && !n.Priority.Valid() {
		errs = append(errs, malformed("%s.priority: invalid value %q", path, n.Priority))
	}
	if n.RiskLevel != "" && !n.RiskLevel.Valid() {
		errs = append(errs, malformed("%s.riskLevel: invalid value %q", path, n.RiskLevel))
	}

	return errs
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedTree, fmt.Sprintf(format, args...))
}

// IsMalformed reports whether err came from tree validation.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedTree)
}
