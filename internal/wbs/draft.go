package wbs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// DefaultDraftDuration is the duration, in days, offered for a new task.
const DefaultDraftDuration = 5

// ErrEmptyName is returned when a draft has no name.
var ErrEmptyName = errors.New("task name is required")

// DraftTask holds the user-entered fields of a task about to be added. Dates,
// id and level are derived from where it is inserted.
type DraftTask struct {
	Name      string
	Duration  int
	Resources string
	Cost      float64
	Priority  domain.Priority
	Status    domain.TaskStatus
	RiskLevel domain.RiskLevel
	Notes     string
}

// NewDraft returns a draft with the defaults of the add-task form.
func NewDraft(name string) DraftTask {
	return DraftTask{
		Name:      name,
		Duration:  DefaultDraftDuration,
		Priority:  domain.PriorityMedium,
		Status:    domain.StatusNotStarted,
		RiskLevel: domain.RiskLow,
	}
}

// NewTask builds the node for a draft inserted under parentID (or as a new
// phase when parentID is empty). A child is scheduled to start the day after
// its parent ends. A new phase starts the day after the last phase ends, or
// today for an empty tree, and depends on the previous phase.
func NewTask(tree []*domain.Task, parentID string, d DraftTask, today domain.Date) (domain.Task, error) {
	if strings.TrimSpace(d.Name) == "" {
		return domain.Task{}, ErrEmptyName
	}
	if d.Duration < 0 {
		return domain.Task{}, fmt.Errorf("%w: duration must be >= 0, got %d", ErrFieldValue, d.Duration)
	}
	if d.Cost < 0 {
		return domain.Task{}, fmt.Errorf("%w: cost must be >= 0, got %g", ErrFieldValue, d.Cost)
	}

	t := domain.Task{
		Name:         d.Name,
		Duration:     d.Duration,
		Cost:         d.Cost,
		Priority:     withDefault(d.Priority, domain.PriorityMedium),
		Status:       withDefault(d.Status, domain.StatusNotStarted),
		RiskLevel:    withDefault(d.RiskLevel, domain.RiskLow),
		Notes:        d.Notes,
		Dependencies: []string{},
	}

	if parentID != "" {
		parent, err := FindByID(tree, parentID)
		if err != nil {
			return domain.Task{}, err
		}
		t.StartDate = parent.EndDate.AddDays(1)
		t.Resources = domain.CoalesceStr(d.Resources, "Team Member")
	} else {
		t.StartDate = today
		if len(tree) > 0 {
			last := tree[len(tree)-1]
			t.StartDate = last.EndDate.AddDays(1)
			t.Dependencies = []string{last.ID}
		}
		t.Resources = domain.CoalesceStr(d.Resources, "Project Team")
	}
	t.EndDate = t.StartDate.AddDays(d.Duration)

	return t, nil
}

// AddTask combines NewTask and InsertChild.
func AddTask(tree []*domain.Task, parentID string, d DraftTask, today domain.Date) ([]*domain.Task, *domain.Task, error) {
	t, err := NewTask(tree, parentID, d, today)
	if err != nil {
		return tree, nil, err
	}
	return InsertChild(tree, parentID, t)
}

func withDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
