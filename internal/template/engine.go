package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

// ErrInvalidTemplate wraps schema validation failures.
var ErrInvalidTemplate = errors.New("invalid template")

// LoadSchema reads and parses a template JSON file.
func LoadSchema(path string) (*TemplateSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema decodes and validates a template document.
func ParseSchema(data []byte) (*TemplateSchema, error) {
	var schema TemplateSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if errs := ValidateSchema(&schema); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("%w %q: %s", ErrInvalidTemplate, schema.ID, strings.Join(msgs, "; "))
	}
	return &schema, nil
}

// Execute lays the template out from start. Phases run back to back, each
// starting on the day the previous one ends; tasks within a phase share its
// duration evenly (at least one day each) and run back to back from the phase
// start. Costs split the budget evenly over phases and over all tasks.
func Execute(schema *TemplateSchema, start domain.Date, now time.Time) domain.Project {
	phaseCount := len(schema.Phases)
	phaseCost := math.Round(schema.Budget / float64(phaseCount))

	tree := make([]*domain.Task, 0, phaseCount)
	cursor := start
	for i, ph := range schema.Phases {
		phaseID := strconv.Itoa(i + 1)
		phaseEnd := cursor.AddDays(ph.Duration)
		taskDays := max(1, ph.Duration/len(ph.Tasks))
		taskCost := math.Round(schema.Budget / float64(phaseCount*len(ph.Tasks)))

		children := make([]*domain.Task, 0, len(ph.Tasks))
		taskStart := cursor
		for j, name := range ph.Tasks {
			taskEnd := taskStart.AddDays(taskDays)
			priority := domain.PriorityMedium
			if j == 0 {
				priority = domain.PriorityHigh
			}
			children = append(children, &domain.Task{
				ID:           fmt.Sprintf("%s.%d", phaseID, j+1),
				Name:         name,
				Level:        2,
				StartDate:    taskStart,
				EndDate:      taskEnd,
				Duration:     taskDays,
				Status:       domain.StatusNotStarted,
				Priority:     priority,
				RiskLevel:    domain.RiskLow,
				Resources:    "Team Member",
				Cost:         taskCost,
				Dependencies: []string{},
				Notes:        fmt.Sprintf("%s for %s", name, ph.Name),
				Children:     []*domain.Task{},
			})
			taskStart = taskEnd
		}

		deps := []string{}
		if i > 0 {
			deps = []string{strconv.Itoa(i)}
		}
		tree = append(tree, &domain.Task{
			ID:           phaseID,
			Name:         ph.Name,
			Level:        1,
			StartDate:    cursor,
			EndDate:      phaseEnd,
			Duration:     ph.Duration,
			Status:       domain.StatusNotStarted,
			Priority:     domain.PriorityHigh,
			RiskLevel:    domain.RiskMedium,
			Resources:    "Project Team",
			Cost:         phaseCost,
			Dependencies: deps,
			Notes:        ph.Name,
			Children:     children,
		})
		cursor = phaseEnd
	}

	return domain.Project{
		Name:                schema.Name,
		Description:         schema.Description,
		ProjectStart:        start,
		ProjectBudget:       schema.Budget,
		ProjectManager:      schema.Manager,
		TemplateID:          schema.ID,
		WBS:                 wbs.AssignKeys(tree),
		Resources:           []domain.Resource{},
		ConversationHistory: []domain.ConversationEntry{},
		CreatedAt:           now.UTC(),
		LastModified:        now.UTC(),
	}
}
